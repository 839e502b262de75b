// Package journal keeps a sqlite-backed audit of installer operations:
// every install, merge and removal of a native subtree gets a row. The
// bridge itself owns no storage; it only emits events, and the journal
// records them.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/grafter-tools/grafter/internal/bridge"
	"github.com/grafter-tools/grafter/internal/journal/migrations"
)

// Entry is one recorded installer operation.
type Entry struct {
	ID        string
	Op        string
	Label     string
	CreatedAt time.Time
}

// Open opens the journal database and runs any pending migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping journal: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure journal: %w", err)
	}
	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return db, nil
}

// Insert records one operation.
func Insert(db *sql.DB, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := db.Exec(
		`INSERT INTO operations (id, op, label, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Op, e.Label, e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func List(db *sql.DB, limit int) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT id, op, label, created_at FROM operations ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Op, &e.Label, &createdAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Recorder returns a bridge observer that writes every installer event to
// the journal. Write failures are logged, never propagated: auditing must
// not break registration.
func Recorder(db *sql.DB, logger *zap.Logger) func(bridge.Event) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(evt bridge.Event) {
		err := Insert(db, Entry{
			Op:        string(evt.Op),
			Label:     evt.Label,
			CreatedAt: evt.At,
		})
		if err != nil {
			logger.Warn("journal write failed",
				zap.String("op", string(evt.Op)),
				zap.String("label", evt.Label),
				zap.Error(err))
		}
	}
}
