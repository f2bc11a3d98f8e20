// Package filter models the browse criteria for the marketplace catalog and
// its shareable external encoding.
//
// # Overview
//
// A filter.State is the single source of truth for what the browse view is
// showing: search text, category, condition, and page. The State value is
// immutable; every change goes through a With* method that returns a new
// value, which keeps the invariant that changing any filter field resets the
// page to 1 atomically; there is never an observable intermediate state on
// page 5 of a different filter set.
//
// # External Encoding
//
// Encode/Decode map a State to and from a URL query string. The encoding is
// what gets persisted as the "location" in prefs and what a user can copy
// out of the UI to share a view. The mapping is lossy-safe:
//
//   - empty fields are omitted
//   - page 1 encodes as no page token
//   - Decode never fails: bad page tokens fall back to 1, unknown
//     category/condition strings fall back to unconstrained
//
// so Decode(Encode(s)) observationally equals s for every valid State.
package filter
