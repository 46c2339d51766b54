package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/five82/shiki/internal/catalog"
	"github.com/five82/shiki/internal/jikan"
)

// ErrSuperseded is returned by LoadPage when a newer load was issued while
// this one was in flight. The stale result is discarded.
var ErrSuperseded = errors.New("load superseded by newer request")

// PageSource fetches one page of the remote catalog.
type PageSource interface {
	FetchSeasonPage(ctx context.Context, page int) (catalog.Page, error)
}

var _ PageSource = (*jikan.Client)(nil)

// Status describes what the accumulator is doing right now.
type Status int

const (
	StatusIdle Status = iota
	StatusInitialLoading
	StatusLoadingMore
)

func (s Status) String() string {
	switch s {
	case StatusInitialLoading:
		return "initial"
	case StatusLoadingMore:
		return "more"
	default:
		return "idle"
	}
}

// ErrorKind classifies the last fetch failure for message lookup.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorFetch
	ErrorRateLimited
)

// Classify maps a fetch error to its ErrorKind.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorNone
	case errors.Is(err, jikan.ErrRateLimited):
		return ErrorRateLimited
	default:
		return ErrorFetch
	}
}

// DefaultMessage returns the English user-facing text for an error.
func DefaultMessage(err error) string {
	switch Classify(err) {
	case ErrorNone:
		return ""
	case ErrorRateLimited:
		return "Rate limit exceeded. Please wait a moment."
	default:
		return "Failed to load the season listing. Please try again."
	}
}

// Snapshot represents the accumulated catalog as seen by the UI.
type Snapshot struct {
	Items               []catalog.Item
	Page                int  // cursor; last page merged (1 before any load)
	HasNext             bool // overwritten from pagination on every success
	Loaded              bool // at least one page has been merged
	LastVisiblePage     int
	Total               int
	Status              Status
	LastError           error
	ErrorKind           ErrorKind
	ErrorMessage        string
	LastUpdated         time.Time
	ConsecutiveFailures int
}

// Loading reports whether a page request is in flight.
func (s Snapshot) Loading() bool {
	return s.Status != StatusIdle
}

// IsOffline returns true when several fetches in a row have failed.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Catalog owns the paginated item collection. Every LoadPage takes a
// sequence ticket; only the latest ticket may change the snapshot.
type Catalog struct {
	mu       sync.RWMutex
	snapshot Snapshot
	seq      uint64
	describe func(error) string
}

// NewCatalog returns an empty catalog positioned at page 1. describe turns
// fetch errors into user-facing text; nil selects DefaultMessage.
func NewCatalog(describe func(error) string) *Catalog {
	if describe == nil {
		describe = DefaultMessage
	}
	return &Catalog{
		snapshot: Snapshot{Page: 1, HasNext: true},
		describe: describe,
	}
}

// LoadPage fetches page from src. With reset the result replaces the
// collection; otherwise it is appended. On failure the collection, cursor
// and HasNext are left untouched. A result whose ticket is no longer the
// latest is dropped and ErrSuperseded returned.
func (c *Catalog) LoadPage(ctx context.Context, src PageSource, page int, reset bool) error {
	if page < 1 {
		return fmt.Errorf("invalid page %d", page)
	}
	if src == nil {
		return fmt.Errorf("page source is nil")
	}

	ticket := c.begin(reset)
	result, err := src.FetchSeasonPage(ctx, page)
	if err != nil {
		return c.fail(ticket, err)
	}
	return c.commit(ticket, page, reset, result)
}

func (c *Catalog) begin(reset bool) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	if reset {
		c.snapshot.Status = StatusInitialLoading
	} else {
		c.snapshot.Status = StatusLoadingMore
	}
	return c.seq
}

func (c *Catalog) commit(ticket uint64, page int, reset bool, result catalog.Page) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket != c.seq {
		return ErrSuperseded
	}

	if reset {
		c.snapshot.Items = cloneItems(result.Items)
	} else {
		c.snapshot.Items = append(cloneItems(c.snapshot.Items), result.Items...)
	}
	c.snapshot.Page = page
	c.snapshot.HasNext = result.Pagination.HasNextPage
	c.snapshot.Loaded = true
	c.snapshot.LastVisiblePage = result.Pagination.LastVisiblePage
	c.snapshot.Total = result.Pagination.Total
	c.snapshot.Status = StatusIdle
	c.snapshot.LastError = nil
	c.snapshot.ErrorKind = ErrorNone
	c.snapshot.ErrorMessage = ""
	c.snapshot.LastUpdated = time.Now()
	c.snapshot.ConsecutiveFailures = 0
	return nil
}

func (c *Catalog) fail(ticket uint64, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket != c.seq {
		return ErrSuperseded
	}

	c.snapshot.Status = StatusIdle
	c.snapshot.LastError = err
	c.snapshot.ErrorKind = Classify(err)
	c.snapshot.ErrorMessage = c.describe(err)
	c.snapshot.LastUpdated = time.Now()
	c.snapshot.ConsecutiveFailures++
	return err
}

// HasNextPage returns the last-seen "has more pages" flag.
func (c *Catalog) HasNextPage() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.HasNext
}

// Status reports the in-flight state without copying items.
func (c *Catalog) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.Status
}

// Snapshot returns a copy of the current state.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := c.snapshot
	snap.Items = cloneItems(c.snapshot.Items)
	if c.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", c.snapshot.LastError)
	}
	return snap
}

func cloneItems(items []catalog.Item) []catalog.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]catalog.Item, len(items))
	copy(dup, items)
	return dup
}
