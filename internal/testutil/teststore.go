package testutil

import (
	"testing"

	"shopquote/internal/store"
)

// NewTestStore creates an in-memory SQLite-backed store, closed when the
// test completes. Repositories behave identically on it and on the on-disk
// store.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})
	return s
}
