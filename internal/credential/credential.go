// Package credential holds the opaque bearer token for the marketplace API
// and notifies subscribers synchronously when it changes (login/logout).
// The token is never inspected; it is carried verbatim on wishlist calls.
package credential

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Provider is the single owner of the current credential.
type Provider struct {
	mu        sync.Mutex
	token     string
	tokenPath string
	subs      []func(token string)
}

// NewProvider builds a Provider seeded with the given token. When the token
// is empty and tokenPath names an existing file, the token is read from it.
func NewProvider(token, tokenPath string) *Provider {
	p := &Provider{tokenPath: tokenPath}
	if token == "" && tokenPath != "" {
		token = readTokenFile(tokenPath)
	}
	p.token = token
	return p
}

// Token returns the current credential, or "" when unauthenticated.
func (p *Provider) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// Authenticated reports whether a credential is present.
func (p *Provider) Authenticated() bool {
	return p.Token() != ""
}

// Subscribe registers a callback invoked synchronously on every credential
// change, with the new token ("" on logout).
func (p *Provider) Subscribe(fn func(token string)) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

// Set replaces the credential and notifies subscribers. When a token path is
// configured the new token is persisted there.
func (p *Provider) Set(token string) error {
	token = strings.TrimSpace(token)

	p.mu.Lock()
	changed := token != p.token
	p.token = token
	subs := append([]func(string){}, p.subs...)
	path := p.tokenPath
	p.mu.Unlock()

	if !changed {
		return nil
	}
	for _, fn := range subs {
		fn(token)
	}
	if path == "" {
		return nil
	}
	return writeTokenFile(path, token)
}

// Clear drops the credential, notifies subscribers, and removes the
// persisted token file if any.
func (p *Provider) Clear() error {
	return p.Set("")
}

func readTokenFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func writeTokenFile(path, token string) error {
	if token == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove token file: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
