package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hawkerdev/hawker/internal/bazaar"
	"github.com/hawkerdev/hawker/internal/filter"
)

// Outcome reports what happened to one Fetch call.
type Outcome int

const (
	// Applied means the result was committed as the visible page.
	Applied Outcome = iota
	// Failed means the fetch was the latest but errored; the previous page
	// stays visible and Snapshot carries the retryable error.
	Failed
	// Stale means a newer fetch was issued before this one settled; the
	// result was discarded, success or not.
	Stale
)

// Snapshot is the fetcher's committed view for rendering.
type Snapshot struct {
	Page      bazaar.ProductPage
	HasPage   bool
	Err       error
	FetchedAt time.Time
}

// TotalPages returns the committed page count, defaulting to 1 before the
// first page lands.
func (s Snapshot) TotalPages() int {
	if !s.HasPage || s.Page.Pages < 1 {
		return 1
	}
	return s.Page.Pages
}

// Fetcher requests catalog pages and guarantees that only the most recently
// issued fetch may commit its result. Overlapping fetches caused by rapid
// filter changes settle in any order; superseded results are discarded
// silently rather than cancelled.
type Fetcher struct {
	client   bazaar.Catalog
	pageSize int

	mu       sync.Mutex
	latest   uint64
	snapshot Snapshot
}

// DefaultPageSize matches the marketplace server's default listing size.
const DefaultPageSize = 12

// NewFetcher builds a Fetcher over the given catalog client.
func NewFetcher(client bazaar.Catalog, pageSize int) *Fetcher {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Fetcher{client: client, pageSize: pageSize}
}

// Fetch requests the page described by state and commits it if no newer
// fetch has been issued in the meantime. The state's own invariant
// (Page >= 1) is trusted; the fetcher does not clamp against the server's
// page count.
func (f *Fetcher) Fetch(ctx context.Context, state filter.State) Outcome {
	token := f.issue()

	page, err := f.client.ListProducts(ctx, bazaar.Query{
		Search:    state.Search,
		Category:  state.Category,
		Condition: state.Condition,
		Page:      state.Page,
		Limit:     f.pageSize,
	})

	f.mu.Lock()
	defer f.mu.Unlock()

	if token != f.latest {
		return Stale
	}
	if err != nil {
		// Keep the previous page; surface a retryable error.
		f.snapshot.Err = fmt.Errorf("fetch catalog page: %w", err)
		f.snapshot.FetchedAt = time.Now()
		return Failed
	}
	f.snapshot = Snapshot{
		Page:      page,
		HasPage:   true,
		FetchedAt: time.Now(),
	}
	return Applied
}

// Product fetches one listing directly. Detail lookups bypass the page
// fencing entirely; they never commit to the snapshot.
func (f *Fetcher) Product(ctx context.Context, id string) (bazaar.Product, error) {
	p, err := f.client.GetProduct(ctx, id)
	if err != nil {
		return bazaar.Product{}, fmt.Errorf("fetch product %s: %w", id, err)
	}
	return p, nil
}

// Snapshot returns a copy of the committed view.
func (f *Fetcher) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := f.snapshot
	snap.Page.Products = cloneProducts(f.snapshot.Page.Products)
	return snap
}

func (f *Fetcher) issue() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest++
	return f.latest
}

func cloneProducts(products []bazaar.Product) []bazaar.Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]bazaar.Product, len(products))
	copy(dup, products)
	return dup
}
