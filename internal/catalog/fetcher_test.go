package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hawkerdev/hawker/internal/bazaar"
	"github.com/hawkerdev/hawker/internal/filter"
)

// fakeCatalog serves canned pages keyed by search text. A call whose search
// has a gate blocks until the gate is closed, which lets tests settle
// overlapping fetches in a chosen order.
type fakeCatalog struct {
	mu       sync.Mutex
	pages    map[string]bazaar.ProductPage
	products map[string]bazaar.Product
	errs     map[string]error
	gates    map[string]chan struct{}
	started  map[string]chan struct{}
	queries  []bazaar.Query
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		pages:    make(map[string]bazaar.ProductPage),
		products: make(map[string]bazaar.Product),
		errs:     make(map[string]error),
		gates:    make(map[string]chan struct{}),
		started:  make(map[string]chan struct{}),
	}
}

func (f *fakeCatalog) ListProducts(ctx context.Context, query bazaar.Query) (bazaar.ProductPage, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	gate := f.gates[query.Search]
	started := f.started[query.Search]
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[query.Search]; err != nil {
		return bazaar.ProductPage{}, err
	}
	return f.pages[query.Search], nil
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id string) (bazaar.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return bazaar.Product{}, bazaar.ErrNotFound
}

func TestFetcher_AppliesLatestResult(t *testing.T) {
	fake := newFakeCatalog()
	fake.pages["lamp"] = bazaar.ProductPage{
		Products: []bazaar.Product{{ID: "p1", Name: "Desk Lamp"}},
		Total:    1,
		Pages:    1,
	}

	f := NewFetcher(fake, 12)
	if got := f.Fetch(context.Background(), filter.New().WithSearch("lamp")); got != Applied {
		t.Fatalf("Fetch outcome = %v, want Applied", got)
	}

	snap := f.Snapshot()
	if !snap.HasPage || snap.Err != nil {
		t.Fatalf("snapshot = %#v, want committed page without error", snap)
	}
	if len(snap.Page.Products) != 1 || snap.Page.Products[0].ID != "p1" {
		t.Fatalf("snapshot page = %#v, want p1", snap.Page)
	}

	// Returned snapshot is independent of the committed one.
	snap.Page.Products[0].ID = "mutated"
	if got := f.Snapshot().Page.Products[0].ID; got != "p1" {
		t.Fatalf("Snapshot should clone products; got id %q want p1", got)
	}
}

func TestFetcher_DiscardsSupersededResult(t *testing.T) {
	fake := newFakeCatalog()
	fake.pages["old"] = bazaar.ProductPage{Products: []bazaar.Product{{ID: "old"}}, Pages: 1}
	fake.pages["new"] = bazaar.ProductPage{Products: []bazaar.Product{{ID: "new"}}, Pages: 1}
	fake.gates["old"] = make(chan struct{})
	fake.started["old"] = make(chan struct{})

	f := NewFetcher(fake, 12)

	outcomeA := make(chan Outcome, 1)
	go func() {
		outcomeA <- f.Fetch(context.Background(), filter.New().WithSearch("old"))
	}()

	// Wait until fetch A holds its token and is blocked in the client, then
	// issue fetch B which supersedes it and settles first.
	<-fake.started["old"]
	if got := f.Fetch(context.Background(), filter.New().WithSearch("new")); got != Applied {
		t.Fatalf("fetch B outcome = %v, want Applied", got)
	}

	close(fake.gates["old"])
	select {
	case got := <-outcomeA:
		if got != Stale {
			t.Fatalf("fetch A outcome = %v, want Stale", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("fetch A did not settle")
	}

	snap := f.Snapshot()
	if len(snap.Page.Products) != 1 || snap.Page.Products[0].ID != "new" {
		t.Fatalf("committed page = %#v, want fetch B's result", snap.Page)
	}
}

func TestFetcher_FailureKeepsPreviousPage(t *testing.T) {
	fake := newFakeCatalog()
	fake.pages["good"] = bazaar.ProductPage{Products: []bazaar.Product{{ID: "p1"}}, Total: 1, Pages: 1}
	fake.errs["bad"] = errors.New("connection refused")

	f := NewFetcher(fake, 12)
	ctx := context.Background()

	if got := f.Fetch(ctx, filter.New().WithSearch("good")); got != Applied {
		t.Fatalf("first fetch outcome = %v, want Applied", got)
	}
	if got := f.Fetch(ctx, filter.New().WithSearch("bad")); got != Failed {
		t.Fatalf("second fetch outcome = %v, want Failed", got)
	}

	snap := f.Snapshot()
	if !snap.HasPage || len(snap.Page.Products) != 1 || snap.Page.Products[0].ID != "p1" {
		t.Fatalf("snapshot = %#v, want previous page retained", snap)
	}
	if snap.Err == nil || !strings.Contains(snap.Err.Error(), "fetch catalog page") {
		t.Fatalf("snapshot err = %v, want wrapped fetch error", snap.Err)
	}

	// A later success clears the error.
	if got := f.Fetch(ctx, filter.New().WithSearch("good")); got != Applied {
		t.Fatalf("third fetch outcome = %v, want Applied", got)
	}
	if snap := f.Snapshot(); snap.Err != nil {
		t.Fatalf("snapshot err = %v, want nil after recovery", snap.Err)
	}
}

func TestFetcher_ForwardsFilterStateVerbatim(t *testing.T) {
	fake := newFakeCatalog()
	f := NewFetcher(fake, 20)

	state := filter.State{Search: "calc", Category: "Electronics", Condition: "Used", Page: 4}
	_ = f.Fetch(context.Background(), state)

	if len(fake.queries) != 1 {
		t.Fatalf("queries = %d, want 1", len(fake.queries))
	}
	q := fake.queries[0]
	if q.Search != "calc" || q.Category != "Electronics" || q.Condition != "Used" || q.Page != 4 || q.Limit != 20 {
		t.Fatalf("query = %#v, want filter fields forwarded with limit 20", q)
	}
}

func TestFetcher_ProductBypassesSnapshot(t *testing.T) {
	fake := newFakeCatalog()
	fake.products["p9"] = bazaar.Product{ID: "p9", Name: "Graphing Calculator"}

	f := NewFetcher(fake, 12)
	ctx := context.Background()

	p, err := f.Product(ctx, "p9")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if p.Name != "Graphing Calculator" {
		t.Fatalf("product = %#v, want Graphing Calculator", p)
	}
	if snap := f.Snapshot(); snap.HasPage || snap.Err != nil {
		t.Fatalf("snapshot = %#v, detail lookups must not commit", snap)
	}

	_, err = f.Product(ctx, "missing")
	if !errors.Is(err, bazaar.ErrNotFound) {
		t.Fatalf("Product error = %v, want ErrNotFound", err)
	}
}

func TestSnapshot_TotalPagesDefaultsToOne(t *testing.T) {
	var snap Snapshot
	if got := snap.TotalPages(); got != 1 {
		t.Fatalf("TotalPages = %d, want 1 before first page", got)
	}
	snap = Snapshot{HasPage: true, Page: bazaar.ProductPage{Pages: 3}}
	if got := snap.TotalPages(); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}
}
