// Package ui provides the terminal user interface for the Hawker application.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea's model/update/view loop. Model is the root
// application state; every keypress or asynchronous result flows through
// Update as a message, and View re-renders the whole screen from the model.
// All blocking work (catalog fetches, wishlist mutations) runs inside
// tea.Cmd functions so the update loop never stalls.
//
// # Package Structure
//
//   - app.go: Model, Update, key handling, messages, commands, and Run
//   - browse.go: Product table and detail pane rendering
//   - wishlist_view.go: Saved-items view sharing the browse table layout
//   - header.go: Header bar, filter command bar, and status line
//   - help.go: Keyboard shortcut overlay
//   - card.go: Per-product view model derived from catalog and wishlist state
//   - theme.go: Color themes and pre-built Lipgloss styles
//   - strings.go: Text layout and price formatting helpers
//
// # View Types
//
// Two main views are available:
//
//   - Browse View: Paged product table with search, category and condition
//     filters, and a detail pane for the selected listing
//   - Wishlist View: Saved listings, including pending optimistic state
//
// # Event Flow
//
//  1. Run() constructs the Model and starts the Bubble Tea program
//  2. Filter changes dispatch a fetch command; results arrive as fetchDoneMsg
//  3. Save/remove keys dispatch a toggle command; results arrive as
//     toggleDoneMsg and trigger a wishlist refresh
//  4. Stale fetch results are discarded by the catalog fetcher, so the view
//     always reflects the most recent filter state
//
// # External Dependencies
//
//   - catalog.Fetcher: Paged product snapshots with superseded-fetch fencing
//   - wishlist.Cache: Optimistic wishlist membership
//   - credential.Provider: Bearer token state for authenticated actions
//   - prefs: Persisted theme and shareable filter location
package ui
