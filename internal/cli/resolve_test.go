package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopquote/internal/domain"
	"shopquote/internal/repository"
	"shopquote/internal/service"
	"shopquote/internal/testutil"
)

func newTestApp(t *testing.T) (*App, *repository.KVCustomerRepo, *repository.KVQuoteRepo) {
	t.Helper()
	kv := testutil.NewTestStore(t)
	customers := repository.NewKVCustomerRepo(kv)
	quotes := repository.NewKVQuoteRepo(kv)
	drafts := repository.NewKVDraftRepo(kv)
	quoteSvc := service.NewQuoteService(quotes, customers)
	app := &App{
		Customers: service.NewCustomerService(customers),
		Quotes:    quoteSvc,
		Access:    service.NewAccessService(kv),
		Drafts:    drafts,
		Editor:    service.NewEditor(customers, quoteSvc, drafts),
	}
	return app, customers, quotes
}

func TestResolveCustomerID(t *testing.T) {
	app, customers, _ := newTestApp(t)

	jane := testutil.NewTestCustomer("Jane Doe")
	jane.ID = "aaaa1111-0000-0000-0000-000000000000"
	bob := testutil.NewTestCustomer("Bob Smith")
	bob.ID = "aaaa2222-0000-0000-0000-000000000000"
	customers.Add(jane)
	customers.Add(bob)

	id, err := resolveCustomerID(app, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, jane.ID, id)

	// Exact name, case-insensitive.
	id, err = resolveCustomerID(app, "jane doe")
	require.NoError(t, err)
	assert.Equal(t, jane.ID, id)

	// Unique prefix.
	id, err = resolveCustomerID(app, "aaaa2")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, id)

	// Shared prefix is ambiguous.
	_, err = resolveCustomerID(app, "aaaa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = resolveCustomerID(app, "zzz")
	assert.Error(t, err)

	_, err = resolveCustomerID(app, "")
	assert.Error(t, err)
}

func TestResolveQuoteID(t *testing.T) {
	app, _, quotes := newTestApp(t)

	q := testutil.NewTestQuote("Brakes", "2024-01-01T10:00:00Z")
	q.ID = "bbbb1111-0000-0000-0000-000000000000"
	quotes.Insert(q)

	id, err := resolveQuoteID(app, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.ID, id)

	id, err = resolveQuoteID(app, "bbbb")
	require.NoError(t, err)
	assert.Equal(t, q.ID, id)

	_, err = resolveQuoteID(app, "cccc")
	assert.Error(t, err)
}

func TestParseItemFlag(t *testing.T) {
	it, err := parseItemFlag("Labor:2:120")
	require.NoError(t, err)
	assert.Equal(t, domain.LineItem{Name: "Labor", Qty: 2, Unit: 120}, it)

	it, err = parseItemFlag(" Brake pads : 1 : 179.99 ")
	require.NoError(t, err)
	assert.Equal(t, "Brake pads", it.Name)
	assert.Equal(t, 179.99, it.Unit)

	_, err = parseItemFlag("Labor:2")
	assert.Error(t, err)
	_, err = parseItemFlag("Labor:two:120")
	assert.Error(t, err)
	_, err = parseItemFlag("Labor:2:cheap")
	assert.Error(t, err)
}

func TestGateExempt(t *testing.T) {
	app, _, _ := newTestApp(t)
	root := NewRootCmd(app)

	for _, c := range root.Commands() {
		switch c.Name() {
		case "unlock":
			assert.True(t, gateExempt(c))
		case "lock", "customer", "quote", "draft":
			assert.False(t, gateExempt(c), c.Name())
		}
	}
}
