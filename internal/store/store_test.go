package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s := newTestStore(t)

	s.Set("k", "v")
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	v, ok := s.Get("absent")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	s := newTestStore(t)

	s.Set("k", "first")
	s.Set("k", "second")
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestSQLiteStore_Remove(t *testing.T) {
	s := newTestStore(t)

	s.Set("k", "v")
	s.Remove("k")
	_, ok := s.Get("k")
	assert.False(t, ok)

	// Removing a missing key is a no-op.
	s.Remove("absent")
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	s.Set("k", "v")
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	s.Remove("k")
	_, ok = s.Get("k")
	assert.False(t, ok)
}

func TestMemoryStore_FailWrites(t *testing.T) {
	s := NewMemoryStore()
	s.Set("before", "kept")

	s.FailWrites = true
	s.Set("after", "dropped")

	_, ok := s.Get("after")
	assert.False(t, ok)

	v, ok := s.Get("before")
	require.True(t, ok)
	assert.Equal(t, "kept", v)
}
