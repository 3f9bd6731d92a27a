package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopquote/internal/domain"
)

func TestGenerate(t *testing.T) {
	q := domain.Quote{
		ID:            "f81d4fae-7dec-11d0-a765-00a0c91e6bf6",
		CreatedAt:     "2024-01-30T09:30:00Z",
		Title:         "Brake job",
		Status:        domain.StatusSent,
		Notes:         "rear pads only",
		CustomerName:  "Jane Doe",
		CustomerPhone: "555-0100",
		TaxRate:       0.09,
		Items: []domain.LineItem{
			{Name: "Labor", Qty: 2, Unit: 120},
			{Name: "Brake pads", Qty: 1, Unit: 180},
		},
	}

	data, err := Generate(q)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 500)
}

func TestGenerate_EmptyQuote(t *testing.T) {
	data, err := Generate(domain.Quote{Title: "Bare"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "short", trim("short", 10))
	assert.Equal(t, "abcd...", trim("abcdefgh", 5))
}

func TestContactLine(t *testing.T) {
	assert.Equal(t, "555-0100 / a@b.com", contactLine("555-0100", "a@b.com"))
	assert.Equal(t, "555-0100", contactLine("555-0100", ""))
	assert.Equal(t, "a@b.com", contactLine("", "a@b.com"))
	assert.Equal(t, "", contactLine("", ""))
}
