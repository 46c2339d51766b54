// Package ui provides the Bubble Tea terminal interface for shiki.
//
// # Architecture Overview
//
// Model is the single Bubble Tea model. It holds a *state.Loader (and
// through it the *state.Catalog), the *favorites.Store, and the local view
// state: filter criteria, sort option, cursor, overlays. Nothing here talks
// to the network directly; page loads run as tea.Cmds that call
// Loader.Reset or Loader.LoadMore and report back with a loadDoneMsg.
//
// # Data Flow
//
//	Init ──► resetCmd ──► Loader.Reset ──► loadDoneMsg
//	                                           │
//	                  Catalog.Snapshot ◄───────┘
//	                         │
//	          BuildFacets + Derive(items, criteria, favorites, sort)
//	                         │
//	                      visible ──► View
//
// The visible list is recomputed whenever the snapshot, the criteria, the
// favorites set, or the sort option changes. Spinner ticks poll
// Catalog.Status so the header reflects an in-flight load without copying
// the item slice.
//
// # Load-more
//
// Moving the cursor onto the last row, or pressing m, requests the next
// page. The request is skipped while Loader.Busy reports a load in flight
// and after the source reports no further pages. Auto-load stops after a
// failure until the user retries with r, which always reloads page 1.
//
// # Package Structure
//
//   - app.go: Model, Options, New, Init, Update, View, Run, load commands
//   - input.go: key routing for the list, detail, search and picker
//   - header.go: status bar, filter bar and footer
//   - list.go: column layout, rows and empty states
//   - detail.go: detail viewport content (synopsis, links)
//   - picker.go: fuzzy facet picker for sources and genres
//   - help.go, modal.go: overlays
//   - keys.go: key bindings
//   - theme.go, style_helpers.go: colors and background-safe rendering
//   - strings.go, layout.go: formatting helpers and size constants
//
// # Preferences
//
// Theme (T), language (L) and sort (s) changes are written to the prefs
// file immediately. Save failures are logged and otherwise ignored.
package ui
