// Package bazaar provides an HTTP client for the campus marketplace API.
//
// # Overview
//
// This package defines the API client Hawker uses to talk to the marketplace
// server. It covers the two remote contracts the rest of the application
// depends on: the public catalog (paginated product listings and single
// product lookups) and the per-user wishlist store. HTTP transport, JSON
// decoding, and the error taxonomy all live here so callers only ever see
// typed values and sentinel errors.
//
// # Client Usage
//
// Create a client using the api_url value from configuration:
//
//	client, err := bazaar.NewClient("marketplace.example.edu:8000")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	page, err := client.ListProducts(ctx, bazaar.Query{
//		Category: "Electronics",
//		Page:     1,
//		Limit:    12,
//	})
//
// # API Endpoints
//
//   - GET    /api/products           paginated catalog listing with filters
//   - GET    /api/products/{id}      single product detail
//   - GET    /api/wishlist           saved products for the credential
//   - POST   /api/wishlist/{id}      save a product
//   - DELETE /api/wishlist/{id}      unsave a product
//
// Wishlist endpoints require a bearer token. The token is treated as an
// opaque credential; this package never inspects or refreshes it.
//
// # Error Taxonomy
//
// Callers branch on two sentinels with errors.Is:
//
//   - ErrUnauthorized: the credential is missing or invalid. Never retried.
//   - ErrNotFound: the addressed product does not exist.
//
// Every other failure (connection refused, timeout, 5xx, malformed JSON) is
// returned as a wrapped error and is treated as a retryable condition by the
// catalog fetcher and the wishlist cache.
//
// # Interfaces
//
// Catalog and WishlistStore split the client along its two consumers so the
// fetcher and the cache can be tested against small fakes. *Client
// implements both.
package bazaar
