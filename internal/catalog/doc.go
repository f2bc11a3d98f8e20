// Package catalog fetches pages of marketplace listings and owns the
// committed page shown by the UI.
//
// # Overview
//
// The user can change filters faster than the network settles, so fetches
// overlap and their responses can arrive out of order. The Fetcher resolves
// this with a fencing token rather than cancellation: every Fetch call takes
// a monotonically increasing token, and a settling fetch may commit its
// result only while its token is still the latest issued. A superseded
// response, success or failure, is discarded silently (Outcome Stale).
//
// # Failure Semantics
//
// When the latest fetch fails, the previously committed page stays in place
// so the view never flashes empty; the Snapshot carries a retryable error
// for the header/status line instead. The fetcher never retries on its own.
//
// # Pagination
//
// The fetcher trusts filter.State's Page >= 1 invariant and forwards the
// page as-is. Clamping navigation to [1, TotalPages] is the UI's job;
// whatever the server returns for an out-of-range page is committed
// verbatim.
package catalog
