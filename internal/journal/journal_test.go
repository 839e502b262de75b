package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grafter-tools/grafter/internal/bridge"
)

func openTest(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenRunsMigrations(t *testing.T) {
	db := openTest(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='operations'").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "operations table should exist")
}

func TestInsertAndList(t *testing.T) {
	db := openTest(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, Insert(db, Entry{Op: "install", Label: "fly", CreatedAt: base}))
	require.NoError(t, Insert(db, Entry{Op: "merge", Label: "fly", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, Insert(db, Entry{Op: "remove", Label: "fly", CreatedAt: base.Add(2 * time.Minute)}))

	entries, err := List(db, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	require.Equal(t, "remove", entries[0].Op)
	require.Equal(t, "merge", entries[1].Op)
	require.Equal(t, "install", entries[2].Op)
	require.Equal(t, "fly", entries[0].Label)
	require.NotEmpty(t, entries[0].ID)
	require.True(t, entries[0].CreatedAt.Equal(base.Add(2*time.Minute)))
}

func TestListHonorsLimit(t *testing.T) {
	db := openTest(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, Insert(db, Entry{Op: "install", Label: "cmd"}))
	}

	entries, err := List(db, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestRecorderWritesEvents(t *testing.T) {
	db := openTest(t)

	record := Recorder(db, zap.NewNop())
	record(bridge.Event{Op: bridge.OpInstall, Label: "fly", At: time.Now()})
	record(bridge.Event{Op: bridge.OpRemove, Label: "fly", At: time.Now()})

	entries, err := List(db, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "remove", entries[0].Op)
}

func TestRecorderSwallowsWriteFailures(t *testing.T) {
	db := openTest(t)
	require.NoError(t, db.Close())

	record := Recorder(db, zap.NewNop())
	require.NotPanics(t, func() {
		record(bridge.Event{Op: bridge.OpInstall, Label: "fly", At: time.Now()})
	})
}
