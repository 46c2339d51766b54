package state

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var (
	// ErrBusy is returned by LoadMore while another load is in flight.
	ErrBusy = errors.New("a page load is already in progress")
	// ErrExhausted is returned by LoadMore when the source has no next page.
	ErrExhausted = errors.New("no more pages")
)

// Loader drives a Catalog from a PageSource and enforces single-flight
// load-more. Reset is always allowed and supersedes anything in flight.
type Loader struct {
	catalog *Catalog
	source  PageSource
	logger  *slog.Logger

	mu       sync.Mutex
	inflight int
}

// NewLoader wires a catalog to its page source.
func NewLoader(c *Catalog, src PageSource, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{catalog: c, source: src, logger: logger}
}

// Catalog returns the catalog this loader feeds.
func (l *Loader) Catalog() *Catalog {
	return l.catalog
}

// Busy reports whether any load started by this loader is still running.
func (l *Loader) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inflight > 0
}

// Reset reloads page 1 and replaces the collection.
func (l *Loader) Reset(ctx context.Context) error {
	l.mu.Lock()
	l.inflight++
	l.mu.Unlock()
	defer l.release()

	l.logger.Info("loading first page")
	err := l.catalog.LoadPage(ctx, l.source, 1, true)
	l.logResult(1, err)
	return err
}

// LoadMore fetches the page after the cursor and appends it. Before any page
// has been merged it behaves like Reset.
func (l *Loader) LoadMore(ctx context.Context) error {
	l.mu.Lock()
	if l.inflight > 0 {
		l.mu.Unlock()
		return ErrBusy
	}
	snap := l.catalog.Snapshot()
	if snap.Loaded && !snap.HasNext {
		l.mu.Unlock()
		return ErrExhausted
	}
	l.inflight++
	l.mu.Unlock()
	defer l.release()

	page, reset := snap.Page+1, false
	if !snap.Loaded {
		page, reset = 1, true
	}
	l.logger.Debug("loading page", "page", page, "reset", reset)
	err := l.catalog.LoadPage(ctx, l.source, page, reset)
	l.logResult(page, err)
	return err
}

func (l *Loader) release() {
	l.mu.Lock()
	l.inflight--
	l.mu.Unlock()
}

func (l *Loader) logResult(page int, err error) {
	switch {
	case err == nil:
		snap := l.catalog.Snapshot()
		l.logger.Info("page merged", "page", page, "items", len(snap.Items), "has_next", snap.HasNext)
	case errors.Is(err, ErrSuperseded):
		l.logger.Debug("discarded stale page", "page", page)
	default:
		l.logger.Warn("page load failed", "page", page, "error", err)
	}
}
