// Package state owns the accumulated season listing shared between page
// loads and the UI.
//
// # Overview
//
// Catalog holds the ordered collection of items merged from successive page
// fetches, the pagination cursor, and the loading/error status the UI
// renders. Loader sits in front of it and decides which page to ask for next.
//
//	Loader (tea.Cmd goroutine):      UI (Bubble Tea update loop):
//	┌──────────────────────────┐    ┌──────────────────────────┐
//	│ Reset() / LoadMore()     │    │                          │
//	│      ↓                   │    │                          │
//	│ catalog.LoadPage()       │───→│ catalog.Snapshot()       │
//	│   begin → fetch → commit │    │      ↓                   │
//	│                          │    │ catalog.Derive → render  │
//	└──────────────────────────┘    └──────────────────────────┘
//
// # Load semantics
//
//	// reset: replace the collection, cursor = page
//	catalog.LoadPage(ctx, src, 1, true)
//
//	// incremental: append, cursor = page
//	catalog.LoadPage(ctx, src, 2, false)
//
// HasNext is overwritten from the response pagination on every successful
// load. A failed load records LastError, ErrorKind and ErrorMessage and leaves
// Items, Page and HasNext exactly as they were. Nothing is retried; the
// caller issues another load.
//
// While a request is in flight Status is StatusInitialLoading for a reset and
// StatusLoadingMore for an incremental load.
//
// # Sequence tickets
//
// Every LoadPage call takes a ticket from a monotonically increasing counter
// before fetching. When the fetch returns, the result is applied only if its
// ticket is still the latest one issued; otherwise it is dropped and
// ErrSuperseded is returned. A slow load-more that resolves after a reset
// therefore cannot overwrite the reset's result.
//
// # Single flight
//
// Catalog does not serialize callers. Loader does:
//
//   - LoadMore returns ErrBusy while any load it started is in flight.
//   - LoadMore returns ErrExhausted once the source reports no next page.
//   - Reset is always accepted and supersedes whatever is running.
//
// # Snapshots
//
// Snapshot returns a copy; the item slice is cloned so the UI can sort and
// filter it freely. Items themselves are never mutated after they are merged.
package state
