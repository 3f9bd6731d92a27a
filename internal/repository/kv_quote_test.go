package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopquote/internal/domain"
	"shopquote/internal/testutil"
)

func TestQuoteRepo_InsertAndList_SortedByCreatedAtDesc(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVQuoteRepo(kv)

	old := testutil.NewTestQuote("Old", "2024-01-01T10:00:00Z")
	newer := testutil.NewTestQuote("Newer", "2024-03-01T10:00:00Z")
	middle := testutil.NewTestQuote("Middle", "2024-02-01T10:00:00Z")
	repo.Insert(old)
	repo.Insert(newer)
	repo.Insert(middle)

	list := repo.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Newer", list[0].Title)
	assert.Equal(t, "Middle", list[1].Title)
	assert.Equal(t, "Old", list[2].Title)
}

func TestQuoteRepo_FindByID(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVQuoteRepo(kv)

	q := testutil.NewTestQuote("Brakes", "2024-01-01T10:00:00Z")
	repo.Insert(q)

	found, ok := repo.FindByID(q.ID)
	require.True(t, ok)
	assert.Equal(t, "Brakes", found.Title)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Labor", found.Items[0].Name)

	_, ok = repo.FindByID("nonexistent")
	assert.False(t, ok)
}

func TestQuoteRepo_NormalizesOnRead(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVQuoteRepo(kv)

	kv.Set(quotesKey, `[
		{"id":"q1","createdAt":"2024-01-01T10:00:00Z","title":"   ","status":"Archived"},
		{"title":"no identity"},
		{"id":"q2","createdAt":"2024-01-02T10:00:00Z","title":"Oil change","status":"Sent","items":[{"name":"Oil","qty":1,"unit":45}]}
	]`)

	list := repo.List()
	require.Len(t, list, 2)

	assert.Equal(t, "Oil change", list[0].Title)
	assert.Equal(t, domain.StatusSent, list[0].Status)

	// Blank title and unknown status fall back to usable values.
	assert.Equal(t, "Quote", list[1].Title)
	assert.Equal(t, domain.StatusDraft, list[1].Status)
	assert.Empty(t, list[1].Items)
}

func TestQuoteRepo_Update_InPlace(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVQuoteRepo(kv)

	older := testutil.NewTestQuote("Older", "2024-01-01T10:00:00Z")
	newer := testutil.NewTestQuote("Newer", "2024-02-01T10:00:00Z")
	repo.Insert(older)
	repo.Insert(newer)

	older.Title = "Older, revised"
	require.True(t, repo.Update(older))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Newer", list[0].Title)
	assert.Equal(t, "Older, revised", list[1].Title)
}

func TestQuoteRepo_Update_Missing(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVQuoteRepo(kv)

	assert.False(t, repo.Update(testutil.NewTestQuote("Ghost", "2024-01-01T10:00:00Z")))
}

func TestQuoteRepo_Remove(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVQuoteRepo(kv)

	q := testutil.NewTestQuote("Brakes", "2024-01-01T10:00:00Z")
	keep := testutil.NewTestQuote("Tires", "2024-01-02T10:00:00Z")
	repo.Insert(q)
	repo.Insert(keep)

	repo.Remove(q.ID)

	list := repo.List()
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)
}

func TestQuoteRepo_MalformedPayloadReadsEmpty(t *testing.T) {
	kv := testutil.NewTestStore(t)
	repo := NewKVQuoteRepo(kv)

	kv.Set(quotesKey, `{"not":"an array"}`)
	assert.Empty(t, repo.List())
}
