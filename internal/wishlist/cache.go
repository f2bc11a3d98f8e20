package wishlist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hawkerdev/hawker/internal/bazaar"
)

// ErrNoCredential is returned by Toggle when no credential is present. The
// cache never issues a remote call without one.
var ErrNoCredential = errors.New("wishlist: sign in required")

// CredentialSource supplies the current opaque credential. An empty token
// means unauthenticated.
type CredentialSource interface {
	Token() string
}

// pending tracks the single in-flight mutation for one product. Toggles
// arriving while it exists fold their intent into target (last toggle wins)
// and wait on done; all coalesced callers settle together.
type pending struct {
	target    bool
	item      bazaar.Product
	confirmed bool // remote state as of the last settled call
	done      chan struct{}
	err       error
}

// Cache owns the wishlist membership set and the saved product records. It
// is shared by every view that renders a product; all mutation goes through
// Toggle and Refresh.
type Cache struct {
	store bazaar.WishlistStore
	creds CredentialSource

	mu      sync.Mutex
	members map[string]bazaar.Product
	pending map[string]*pending
}

// NewCache builds an empty cache over the given store and credential source.
func NewCache(store bazaar.WishlistStore, creds CredentialSource) *Cache {
	return &Cache{
		store:   store,
		creds:   creds,
		members: make(map[string]bazaar.Product),
		pending: make(map[string]*pending),
	}
}

// Contains reports whether the product is saved. During an in-flight toggle
// it reflects the optimistic, not-yet-confirmed state.
func (c *Cache) Contains(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.members[productID]
	return ok
}

// Len returns the number of saved products.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.members)
}

// Products returns the saved records, newest first.
func (c *Cache) Products() []bazaar.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	products := make([]bazaar.Product, 0, len(c.members))
	for _, p := range c.members {
		products = append(products, p)
	}
	sort.SliceStable(products, func(i, j int) bool {
		ti, tj := products[i].ParsedCreatedAt(), products[j].ParsedCreatedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return products[i].Name < products[j].Name
	})
	return products
}

// Toggle flips the saved state of the product: optimistically in local
// state first, then against the remote store. It blocks until the intent
// settles and returns nil on success. A remote failure rolls the product
// back to its last confirmed state and returns the error
// (bazaar.ErrUnauthorized passes through for the caller to branch on).
//
// At most one remote call per product is ever in flight. A Toggle arriving
// while one is pending does not dispatch; it folds into the pending intent
// last-toggle-wins, and after the in-flight call settles the dispatcher
// issues at most one follow-up call to reach the latest intent.
func (c *Cache) Toggle(ctx context.Context, item bazaar.Product) error {
	token := c.creds.Token()
	if token == "" {
		return ErrNoCredential
	}

	c.mu.Lock()
	id := item.ID
	_, saved := c.members[id]
	target := !saved

	// Optimistic apply: visible to every Contains caller immediately.
	if target {
		c.members[id] = item
	} else {
		delete(c.members, id)
	}

	if p := c.pending[id]; p != nil {
		p.target = target
		p.item = item
		done := p.done
		c.mu.Unlock()
		<-done
		return p.err
	}

	p := &pending{target: target, item: item, confirmed: saved, done: make(chan struct{})}
	c.pending[id] = p
	c.mu.Unlock()

	return c.settle(ctx, token, id, p)
}

// settle dispatches remote calls for the pending intent until the confirmed
// remote state matches the latest requested target, then releases all
// coalesced waiters.
func (c *Cache) settle(ctx context.Context, token, id string, p *pending) error {
	for {
		c.mu.Lock()
		target := p.target
		item := p.item
		if target == p.confirmed {
			// Intent already matches the remote store; nothing to send.
			c.finishLocked(id, p, nil)
			c.mu.Unlock()
			return nil
		}
		c.mu.Unlock()

		attempt := uuid.NewString()
		var err error
		if target {
			err = c.store.AddWishlist(ctx, token, id)
		} else {
			err = c.store.RemoveWishlist(ctx, token, id)
		}

		c.mu.Lock()
		if err != nil {
			// Roll back to the last confirmed state.
			if p.confirmed {
				c.members[id] = item
			} else {
				delete(c.members, id)
			}
			c.finishLocked(id, p, fmt.Errorf("toggle wishlist: %w", err))
			c.mu.Unlock()
			log.Printf("wishlist toggle %s attempt %s failed: %v", id, attempt, err)
			return p.err
		}
		p.confirmed = target
		if p.target == target {
			c.finishLocked(id, p, nil)
			c.mu.Unlock()
			return nil
		}
		// A newer intent queued behind this call; dispatch it next.
		c.mu.Unlock()
	}
}

func (c *Cache) finishLocked(id string, p *pending, err error) {
	p.err = err
	delete(c.pending, id)
	close(p.done)
}

// Refresh re-synchronizes membership and records from the remote store.
// With no credential present it empties the cache instead. Products with a
// mutation still in flight keep their optimistic state across the refresh.
func (c *Cache) Refresh(ctx context.Context) error {
	token := c.creds.Token()
	if token == "" {
		c.mu.Lock()
		c.members = make(map[string]bazaar.Product)
		c.mu.Unlock()
		return nil
	}

	products, err := c.store.FetchWishlist(ctx, token)
	if err != nil {
		return fmt.Errorf("refresh wishlist: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	fresh := make(map[string]bazaar.Product, len(products))
	for _, p := range products {
		fresh[p.ID] = p
	}
	for id, p := range c.pending {
		if p.target {
			fresh[id] = p.item
		} else {
			delete(fresh, id)
		}
	}
	c.members = fresh
	return nil
}
