package bazaar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for the API error taxonomy. Everything else the client
// returns is a retryable transport or server condition.
var (
	// ErrUnauthorized means the request needs a valid credential.
	ErrUnauthorized = errors.New("bazaar: authentication required")
	// ErrNotFound means the addressed product does not exist (or is not in
	// the wishlist, for removals).
	ErrNotFound = errors.New("bazaar: not found")
)

// Catalog is the read side of the marketplace API. Implemented by *Client
// and by test fakes.
type Catalog interface {
	ListProducts(ctx context.Context, query Query) (ProductPage, error)
	GetProduct(ctx context.Context, id string) (Product, error)
}

// WishlistStore is the per-credential saved-items store. All calls require
// a bearer token and fail with ErrUnauthorized when it is absent or invalid.
type WishlistStore interface {
	FetchWishlist(ctx context.Context, token string) ([]Product, error)
	AddWishlist(ctx context.Context, token, productID string) error
	RemoveWishlist(ctx context.Context, token, productID string) error
}

var (
	_ Catalog       = (*Client)(nil)
	_ WishlistStore = (*Client)(nil)
)

// Client talks to the marketplace HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "127.0.0.1:8000"
	defaultUserAgent = "hawker/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given base URL or host:port value.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Query configures /api/products requests. Zero-valued fields are omitted
// from the request; Page and Limit fall back to server defaults when <= 0.
type Query struct {
	Search    string
	Category  string
	Condition string
	Page      int
	Limit     int
}

// Values encodes the query as URL parameters.
func (q Query) Values() url.Values {
	values := url.Values{}
	if search := strings.TrimSpace(q.Search); search != "" {
		values.Set("search", search)
	}
	if category := strings.TrimSpace(q.Category); category != "" {
		values.Set("category", category)
	}
	if condition := strings.TrimSpace(q.Condition); condition != "" {
		values.Set("condition", condition)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	return values
}

// ListProducts retrieves one page of catalog results.
func (c *Client) ListProducts(ctx context.Context, query Query) (ProductPage, error) {
	if c == nil {
		return ProductPage{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/products", RawQuery: query.Values().Encode()}
	var payload ProductPage
	if err := c.doURL(ctx, http.MethodGet, rel, "", &payload); err != nil {
		return ProductPage{}, err
	}
	return payload, nil
}

// GetProduct retrieves a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	if c == nil {
		return Product{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return Product{}, fmt.Errorf("product id required")
	}
	var payload Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, "", &payload); err != nil {
		return Product{}, err
	}
	return payload, nil
}

// FetchWishlist retrieves the full saved-product records for the credential.
func (c *Client) FetchWishlist(ctx context.Context, token string) ([]Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Product
	if err := c.do(ctx, http.MethodGet, "/api/wishlist", token, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// AddWishlist saves a product for the credential.
func (c *Client) AddWishlist(ctx context.Context, token, productID string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(productID) == "" {
		return fmt.Errorf("product id required")
	}
	return c.do(ctx, http.MethodPost, "/api/wishlist/"+productID, token, nil)
}

// RemoveWishlist deletes a product from the credential's wishlist.
func (c *Client) RemoveWishlist(ctx context.Context, token, productID string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(productID) == "" {
		return fmt.Errorf("product id required")
	}
	return c.do(ctx, http.MethodDelete, "/api/wishlist/"+productID, token, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, token, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, token string, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("api %s: %w", rel.Path, ErrUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("api %s: %w", rel.Path, ErrNotFound)
	case resp.StatusCode >= 400:
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
