package state

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoader_LoadMoreBeforeFirstPageResets(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = page(true, 1)
	l := NewLoader(NewCatalog(nil), src, quietLogger())

	if err := l.LoadMore(context.Background()); err != nil {
		t.Fatalf("LoadMore error: %v", err)
	}
	if !reflect.DeepEqual(src.calls, []int{1}) {
		t.Fatalf("calls = %v, want [1]", src.calls)
	}
}

func TestLoader_WalksPagesUntilExhausted(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = page(true, 1)
	src.pages[2] = page(true, 2)
	src.pages[3] = page(false, 3)
	l := NewLoader(NewCatalog(nil), src, quietLogger())
	ctx := context.Background()

	if err := l.Reset(ctx); err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := l.LoadMore(ctx); err != nil {
			t.Fatalf("LoadMore #%d error: %v", i+1, err)
		}
	}
	if err := l.LoadMore(ctx); !errors.Is(err, ErrExhausted) {
		t.Fatalf("LoadMore after last page = %v, want ErrExhausted", err)
	}

	if got := itemIDs(l.Catalog().Snapshot().Items); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("items = %v, want [1 2 3]", got)
	}
	if !reflect.DeepEqual(src.calls, []int{1, 2, 3}) {
		t.Fatalf("calls = %v, want [1 2 3]", src.calls)
	}
}

func TestLoader_LoadMoreRejectedWhileBusy(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = page(true, 1)
	src.pages[2] = page(true, 2)
	l := NewLoader(NewCatalog(nil), src, quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	if err := l.Reset(ctx); err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	<-src.started

	gate := make(chan struct{})
	src.mu.Lock()
	src.gates[2] = gate
	src.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- l.LoadMore(ctx) }()
	<-src.started

	if !l.Busy() {
		t.Fatalf("Busy() = false with a load in flight")
	}
	if err := l.LoadMore(ctx); !errors.Is(err, ErrBusy) {
		t.Fatalf("second LoadMore = %v, want ErrBusy", err)
	}

	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("first LoadMore error: %v", err)
	}
	if l.Busy() {
		t.Fatalf("Busy() = true after load finished")
	}
	if got := itemIDs(l.Catalog().Snapshot().Items); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("items = %v, want [1 2] with no duplicate merge", got)
	}
}

func TestLoader_ResetSupersedesInFlightLoadMore(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = page(true, 1)
	src.pages[2] = page(true, 2)
	l := NewLoader(NewCatalog(nil), src, quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	if err := l.Reset(ctx); err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	<-src.started

	gate := make(chan struct{})
	src.mu.Lock()
	src.gates[2] = gate
	src.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- l.LoadMore(ctx) }()
	<-src.started

	if err := l.Reset(ctx); err != nil {
		t.Fatalf("Reset while busy error: %v", err)
	}
	<-src.started
	close(gate)

	if err := <-done; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("LoadMore = %v, want ErrSuperseded", err)
	}
	snap := l.Catalog().Snapshot()
	if got := itemIDs(snap.Items); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("items = %v, want [1]", got)
	}
	if snap.Page != 1 {
		t.Fatalf("page = %d, want 1", snap.Page)
	}
}
