package testutil

import (
	"database/sql"
	"testing"

	"github.com/nmorrow/spectra/internal/db"
)

// NewTestDB opens an in-memory SQLite database with migrations applied and
// closes it when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}
