package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/five82/shiki/internal/catalog"
	"github.com/five82/shiki/internal/jikan"
	"github.com/five82/shiki/internal/logging"
	"github.com/five82/shiki/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

// scriptedSource returns queued errors for a page before serving it.
type scriptedSource struct {
	mu    sync.Mutex
	pages map[int]catalog.Page
	fails map[int][]error
	calls int
}

func (s *scriptedSource) FetchSeasonPage(_ context.Context, page int) (catalog.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if queue := s.fails[page]; len(queue) > 0 {
		s.fails[page] = queue[1:]
		return catalog.Page{}, queue[0]
	}
	p, ok := s.pages[page]
	if !ok {
		return catalog.Page{}, fmt.Errorf("no page %d", page)
	}
	return p, nil
}

func onePage(hasNext bool, ids ...int) catalog.Page {
	items := make([]catalog.Item, len(ids))
	for i, id := range ids {
		items[i] = catalog.Item{ID: id, Title: fmt.Sprintf("title %d", id), Source: "Manga"}
	}
	return catalog.Page{Items: items, Pagination: catalog.Pagination{HasNextPage: hasNext}}
}

func newTestLoader(src state.PageSource) *state.Loader {
	return state.NewLoader(state.NewCatalog(nil), src, logging.NullLogger())
}

func TestLoadPages_StopsWhenExhausted(t *testing.T) {
	src := &scriptedSource{pages: map[int]catalog.Page{
		1: onePage(true, 1, 2),
		2: onePage(false, 3),
	}}
	loader := newTestLoader(src)

	if err := loadPages(context.Background(), loader, 5, time.Millisecond, logging.NullLogger()); err != nil {
		t.Fatalf("loadPages error: %v", err)
	}
	snap := loader.Catalog().Snapshot()
	if len(snap.Items) != 3 || snap.Page != 2 || snap.HasNext {
		t.Fatalf("snapshot = %d items page %d hasNext %v", len(snap.Items), snap.Page, snap.HasNext)
	}
	if src.calls != 2 {
		t.Fatalf("calls = %d, want 2", src.calls)
	}
}

func TestLoadPages_RetriesRateLimit(t *testing.T) {
	src := &scriptedSource{
		pages: map[int]catalog.Page{1: onePage(true, 1), 2: onePage(true, 2)},
		fails: map[int][]error{2: {jikan.ErrRateLimited, jikan.ErrRateLimited}},
	}
	loader := newTestLoader(src)

	if err := loadPages(context.Background(), loader, 2, time.Millisecond, logging.NullLogger()); err != nil {
		t.Fatalf("loadPages error: %v", err)
	}
	if got := len(loader.Catalog().Snapshot().Items); got != 2 {
		t.Fatalf("items = %d, want 2", got)
	}
	if src.calls != 4 {
		t.Fatalf("calls = %d, want 4 (1 + 2 retries + success)", src.calls)
	}
}

func TestLoadPages_GivesUpAfterMaxRetries(t *testing.T) {
	fails := make([]error, maxRetries+1)
	for i := range fails {
		fails[i] = jikan.ErrRateLimited
	}
	src := &scriptedSource{
		pages: map[int]catalog.Page{1: onePage(true, 1)},
		fails: map[int][]error{1: fails},
	}
	loader := newTestLoader(src)

	err := loadPages(context.Background(), loader, 1, time.Millisecond, logging.NullLogger())
	if !errors.Is(err, jikan.ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
}

func TestLoadPages_OtherErrorsStop(t *testing.T) {
	boom := errors.New("boom")
	src := &scriptedSource{
		pages: map[int]catalog.Page{1: onePage(true, 1)},
		fails: map[int][]error{1: {boom}},
	}
	loader := newTestLoader(src)

	if err := loadPages(context.Background(), loader, 1, time.Millisecond, logging.NullLogger()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if src.calls != 1 {
		t.Fatalf("calls = %d, want 1", src.calls)
	}
}

func TestLoadPages_HonorsCancellation(t *testing.T) {
	src := &scriptedSource{
		pages: map[int]catalog.Page{1: onePage(true, 1)},
		fails: map[int][]error{1: {jikan.ErrRateLimited}},
	}
	loader := newTestLoader(src)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loadPages(ctx, loader, 1, time.Hour, logging.NullLogger())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
