// Package testutil provides shared test fixtures.
package testutil

import (
	"context"
	"testing"

	"github.com/krisrowe/pay-calc-sub001/internal/storage"
)

// SetupTestDB creates an in-memory SQLite database with migrations applied
// and cleanup registered.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
