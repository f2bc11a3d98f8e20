// Package app provides the orchestration layer for the Hawker application.
//
// # Overview
//
// This package wires together configuration, credentials, the catalog
// fetcher, the wishlist cache, and the UI to create the complete Hawker TUI
// experience. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/hawker/config.toml plus env overrides
//  2. Redirect the standard logger to a state file, away from the TUI screen
//  3. Initialize the HTTP client for the bazaar API
//  4. Create the credential provider from the configured token or token file
//  5. Build the wishlist cache and catalog fetcher on top of the client
//  6. Launch the background wishlist reconcile goroutine
//  7. Restore the saved filter location from prefs and start the TUI
//
// # Polling Behavior
//
// The poller reconciles the wishlist cache at a configurable interval
// (default: 30 seconds). On each tick:
//
//   - Refreshes wishlist membership from the server
//   - Preserves any optimistic mutations still in flight
//   - Logs errors and backs off exponentially on consecutive failures
//
// Catalog pages are not polled; they refresh only when the user changes
// filters or asks for a reload, and stale responses are fenced off by the
// catalog fetcher.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - Bazaar client initialization failure
//
// Recoverable errors (logged, app continues):
//   - Wishlist reconcile failures
//   - Credential-change resync failures
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to config.toml (default: ~/.config/hawker/config.toml)
//   - PrefsPath: Path to prefs.toml (default: ~/.config/hawker/prefs.toml)
//   - RefreshEvery: Wishlist reconcile interval in seconds (default: 30)
package app
