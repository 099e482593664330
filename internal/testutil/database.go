// Package testutil provides helpers shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/fernwood/dresscode/internal/storage"
	"github.com/stretchr/testify/require"
)

// SetupTestDB creates an in-memory SQLite database with the full schema
// applied. The database is closed automatically when the test finishes.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, store.Migrate(context.Background()), "failed to migrate test database")

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
