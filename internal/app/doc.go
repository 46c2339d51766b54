// Package app provides the orchestration layer for shiki.
//
// # Overview
//
// This package wires configuration, logging, the Jikan client, the catalog
// accumulator, the favorites store and the UI together. It is the
// composition root: every command opens an Env, does its work, and closes
// it.
//
// # Startup
//
//	┌──────────────┐
//	│   Open()     │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        config.toml, .env, SHIKI_* vars
//	       ├─────> prefs.Load()         theme, language, sort
//	       ├─────> logging.Setup()      JSON log file
//	       ├─────> jikan.NewClient()    season endpoint client
//	       ├─────> favorites.Open()     bbolt database (or memory)
//	       ├─────> state.NewCatalog()   localized error messages
//	       └─────> state.NewLoader()    single-flight pagination
//
// Run then hands the Env to ui.Run, which blocks until the user quits.
//
// # Non-interactive commands
//
// List walks pages sequentially through the same Loader the TUI uses. A
// rate-limited page is retried up to three times, waiting 4s, 8s, then 16s
// (doubling from a 2s base, capped at 30s). Any other failure stops the walk
// and is returned.
//
// Unknown --source values keep filtering (so nothing matches) and print a
// "did you mean" hint to stderr. Unknown --genre names are an error.
//
// # Error Handling
//
// Fatal errors (returned from Open or Run):
//   - Invalid configuration (unknown season, year out of range, bad TOML)
//   - Log file or favorites database that cannot be opened
//
// Everything that happens after startup is recoverable: fetch failures
// surface in the UI with a retry key, favorites write failures are logged.
package app
