// Package testutil provides shared test fixtures.
package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/averine/opshub-service/internal/storage"
)

// NewDB returns a fully migrated in-memory database that lives for the
// duration of the test. A single connection keeps every query on the same
// in-memory instance.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
