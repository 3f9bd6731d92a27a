package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopquote/internal/domain"
	"shopquote/internal/testutil"
)

func TestDraftRepo_RoundTrip(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVDraftRepo(kv)

	d := domain.Draft{
		CustomerID: "c1",
		Title:      "Brake job",
		Status:     domain.StatusSent,
		Notes:      "rear pads only",
		TaxRate:    0.07,
		Items:      []domain.LineItem{{Name: "Pads", Qty: 1, Unit: 180}},
	}
	repo.SaveDraft(d)

	got, ok := repo.Draft()
	require.True(t, ok)
	assert.Equal(t, d, got)
}

func TestDraftRepo_NoDraft(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVDraftRepo(kv)

	_, ok := repo.Draft()
	assert.False(t, ok)
}

func TestDraftRepo_MergesPartialDraftOverDefaults(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVDraftRepo(kv)

	kv.Set(quoteDraftKey, `{"title":"Brakes"}`)

	d, ok := repo.Draft()
	require.True(t, ok)
	assert.Equal(t, "Brakes", d.Title)
	assert.Equal(t, domain.DefaultTaxRate, d.TaxRate)
	require.Len(t, d.Items, 1)
	assert.Equal(t, domain.DefaultItemName, d.Items[0].Name)
}

func TestDraftRepo_MalformedDraftReadsAbsent(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVDraftRepo(kv)

	kv.Set(quoteDraftKey, "{broken")

	_, ok := repo.Draft()
	assert.False(t, ok)
}

func TestDraftRepo_ClearDraft(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVDraftRepo(kv)

	repo.SaveDraft(domain.NewDraft())
	repo.ClearDraft()

	_, ok := repo.Draft()
	assert.False(t, ok)
}

func TestDraftRepo_EditPointer(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVDraftRepo(kv)

	_, ok := repo.EditPointer()
	assert.False(t, ok)

	repo.SetEditPointer("q1")
	id, ok := repo.EditPointer()
	require.True(t, ok)
	assert.Equal(t, "q1", id)

	repo.ClearEditPointer()
	_, ok = repo.EditPointer()
	assert.False(t, ok)
}

func TestDraftRepo_EmptyEditPointerIsAbsent(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVDraftRepo(kv)

	repo.SetEditPointer("")
	_, ok := repo.EditPointer()
	assert.False(t, ok)
}
