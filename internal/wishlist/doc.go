// Package wishlist maintains the user's saved-items overlay on top of the
// marketplace catalog.
//
// # Overview
//
// The Cache is the single owner of wishlist state in the process: a
// membership set plus the full product records behind it (the two always
// agree at every externally observable point). Every product card and the
// wishlist view read membership live through Contains, so all renderings of
// an item stay consistent with no invalidation messages. The remote store is
// the source of truth; the cache is an optimistic mirror of it.
//
// # Optimistic Mutation
//
// Toggle applies the flip locally before the remote call so the UI responds
// immediately, then settles against the store:
//
//	settled(saved|unsaved) -> pending(target) -> settled(target) | rolled back
//
// A failed remote call rolls the item back to its last confirmed state and
// the error is returned to the caller.
//
// # Coalescing
//
// Per product, at most one remote call is in flight at a time. Toggles that
// arrive while one is pending fold into the pending intent (last toggle
// wins) and wait; after the in-flight call settles the dispatcher issues at
// most one follow-up call to reach the latest intent, and skips the network
// entirely when the intent already matches the confirmed remote state. Rapid
// double-clicks therefore collapse into a consistent final state instead of
// contradictory concurrent requests.
//
// # Credentials
//
// The credential is consumed opaquely from a CredentialSource. With no
// credential the cache is empty, Contains is always false, and Toggle fails
// with ErrNoCredential without touching the network. Refresh on credential
// change (login/logout) is wired by the app package.
package wishlist
