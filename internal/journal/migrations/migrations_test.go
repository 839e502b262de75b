package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	migrations, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	// Versions are sorted and start at 1.
	require.Equal(t, 1, migrations[0].Version)
	for i := 1; i < len(migrations); i++ {
		require.Greater(t, migrations[i].Version, migrations[i-1].Version)
	}
}

func TestParseFilename(t *testing.T) {
	version, description, err := parseFilename("01_create_operations.sql")
	require.NoError(t, err)
	require.Equal(t, 1, version)
	require.Equal(t, "create_operations", description)

	_, _, err = parseFilename("nonsense.sql")
	require.Error(t, err)

	_, _, err = parseFilename("xx_bad.sql")
	require.Error(t, err)
}

func TestRunIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, len(mustLoad(t)), count)
}

func mustLoad(t *testing.T) []Migration {
	t.Helper()
	migrations, err := Load()
	require.NoError(t, err)
	return migrations
}
