package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hawkerdev/hawker/internal/bazaar"
	"github.com/hawkerdev/hawker/internal/catalog"
	"github.com/hawkerdev/hawker/internal/config"
	"github.com/hawkerdev/hawker/internal/credential"
	"github.com/hawkerdev/hawker/internal/filter"
	"github.com/hawkerdev/hawker/internal/prefs"
	"github.com/hawkerdev/hawker/internal/ui"
	"github.com/hawkerdev/hawker/internal/wishlist"
)

// Options configure the Hawker application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/hawker/prefs.toml
	RefreshEvery int    // seconds between wishlist reconciles; zero uses default
}

// Run boots the Hawker TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if closeLog, err := redirectLog(); err == nil {
		defer closeLog()
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := bazaar.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init bazaar client: %w", err)
	}

	creds := credential.NewProvider(cfg.Token, cfg.TokenPath)
	cache := wishlist.NewCache(client, creds)
	fetcher := catalog.NewFetcher(client, cfg.PageSize)

	// Re-sync the wishlist whenever the credential changes. Signing out
	// routes through here too and empties the cache without a network call.
	creds.Subscribe(func(string) {
		go func() {
			if err := cache.Refresh(ctx); err != nil {
				log.Printf("wishlist resync failed: %v", err)
			}
		}()
	})

	interval := defaultRefreshInterval
	if opts.RefreshEvery > 0 {
		interval = time.Duration(opts.RefreshEvery) * time.Second
	}

	// Background reconcile keeps saved items fresh across other sessions.
	StartPoller(ctx, cache, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		Fetcher:   fetcher,
		Cache:     cache,
		Creds:     creds,
		Filter:    filter.Decode(userPrefs.Location),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// redirectLog sends the standard logger to a state file so background
// errors do not corrupt the alternate screen.
func redirectLog() (func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".local", "state", "hawker")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "hawker.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}
