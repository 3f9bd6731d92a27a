package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopquote/internal/testutil"
)

func TestCustomerRepo_AddAndList_NewestFirst(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVCustomerRepo(kv)

	first := testutil.NewTestCustomer("Jane Doe")
	second := testutil.NewTestCustomer("Bob Smith")
	repo.Add(first)
	repo.Add(second)

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Bob Smith", list[0].Name)
	assert.Equal(t, "Jane Doe", list[1].Name)
}

func TestCustomerRepo_Find(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVCustomerRepo(kv)

	c := testutil.NewTestCustomer("Jane Doe")
	repo.Add(c)

	found, ok := repo.Find(c.ID)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", found.Name)

	_, ok = repo.Find("nonexistent")
	assert.False(t, ok)
}

func TestCustomerRepo_RestoresFromBackup(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVCustomerRepo(kv)

	c := testutil.NewTestCustomer("Jane Doe")
	repo.Add(c)

	// Simulate the primary key being wiped.
	kv.Remove(customersKey)

	list := repo.List()
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	// The restore rewrote the primary, so the next read does not depend on
	// the backup.
	raw, ok := kv.Get(customersKey)
	require.True(t, ok)
	assert.Contains(t, raw, c.ID)

	// List is idempotent once healed.
	assert.Equal(t, list, repo.List())
}

func TestCustomerRepo_RestoresFromBackup_MalformedPrimary(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVCustomerRepo(kv)

	c := testutil.NewTestCustomer("Jane Doe")
	repo.Add(c)

	kv.Set(customersKey, "{corrupt")

	list := repo.List()
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
}

func TestCustomerRepo_Remove_DoesNotResurrect(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVCustomerRepo(kv)

	keep := testutil.NewTestCustomer("Jane Doe")
	gone := testutil.NewTestCustomer("Bob Smith")
	repo.Add(keep)
	repo.Add(gone)

	repo.Remove(gone.ID)

	// Even a restore from backup must not bring the deleted customer back.
	kv.Remove(customersKey)
	list := repo.List()
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)
}

func TestCustomerRepo_List_Empty(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVCustomerRepo(kv)

	assert.Empty(t, repo.List())
}

func TestCustomerRepo_DropsRecordsMissingFields(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVCustomerRepo(kv)

	// Second record has no email field; it reads as absent, not half-typed.
	kv.Set(customersKey, `[
		{"id":"a","name":"Jane Doe","phone":"555-0100","email":"j@example.com","createdAt":"2024-01-01T00:00:00Z"},
		{"id":"b","name":"Bob Smith","phone":"555-0101","createdAt":"2024-01-02T00:00:00Z"},
		"not an object"
	]`)

	list := repo.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Jane Doe", list[0].Name)
}

func TestCustomerRepo_Search(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVCustomerRepo(kv)

	jane := testutil.NewTestCustomer("Jane Doe")
	jane.Email = "jane@garage.com"
	bob := testutil.NewTestCustomer("Bob Smith")
	bob.Phone = "555-7777"
	repo.Add(jane)
	repo.Add(bob)

	assert.Len(t, repo.Search("jane"), 1)
	assert.Len(t, repo.Search("DOE"), 1)
	assert.Len(t, repo.Search("7777"), 1)
	assert.Len(t, repo.Search("garage"), 1)
	assert.Len(t, repo.Search("zzz"), 0)

	// Empty query returns everyone.
	assert.Len(t, repo.Search("  "), 2)
}
