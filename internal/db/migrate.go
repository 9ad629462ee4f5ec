package db

import (
	"database/sql"
	"fmt"
)

// migrations run in order on every open; each statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		focus INTEGER NOT NULL,
		social INTEGER NOT NULL,
		sensory INTEGER NOT NULL,
		motor INTEGER NOT NULL,
		routine INTEGER NOT NULL,
		emotional INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
