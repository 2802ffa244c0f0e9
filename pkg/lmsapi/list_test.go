package lmsapi

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
)

type recordingFetcher struct {
	mu      sync.Mutex
	queries []ListQuery
	items   []Row
	meta    PageMeta
	err     error
	gate    chan struct{} // when non-nil, fetch blocks until closed
}

func (f *recordingFetcher) fetch(ctx context.Context, q ListQuery) ([]Row, PageMeta, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items, f.meta, f.err
}

func (f *recordingFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func TestPageResetInvariant(t *testing.T) {
	f := &recordingFetcher{meta: PageMeta{Page: 1, TotalPages: 1}}
	lc := NewListController[Row](10, f.fetch)
	ctx := context.Background()

	if err := lc.GoPage(ctx, 3); err != nil {
		t.Fatalf("GoPage: %v", err)
	}
	if lc.Query().Page != 3 {
		t.Fatalf("page = %d, want 3", lc.Query().Page)
	}

	if err := lc.SetFilter(ctx, "status", "ACTIVE"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	if lc.Query().Page != 1 {
		t.Errorf("SetFilter should reset page to 1, got %d", lc.Query().Page)
	}

	_ = lc.GoPage(ctx, 5)
	lc.SetKeyword("kim")
	if lc.Query().Page != 1 {
		t.Errorf("SetKeyword should reset page to 1, got %d", lc.Query().Page)
	}

	_ = lc.GoPage(ctx, 5)
	if err := lc.SetSize(ctx, 20); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if lc.Query().Page != 1 {
		t.Errorf("SetSize should reset page to 1, got %d", lc.Query().Page)
	}
}

func TestSetFilterEqualityShortCircuit(t *testing.T) {
	f := &recordingFetcher{meta: PageMeta{Page: 1, TotalPages: 1}}
	lc := NewListController[Row](10, f.fetch)
	ctx := context.Background()

	if err := lc.SetFilter(ctx, "status", "ACTIVE"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	_ = lc.GoPage(ctx, 4)
	before := f.calls()

	// Same value: no reload, no page reset.
	if err := lc.SetFilter(ctx, "status", "ACTIVE"); err != nil {
		t.Fatalf("SetFilter repeat: %v", err)
	}
	if f.calls() != before {
		t.Errorf("equal filter value must not reload (calls %d → %d)", before, f.calls())
	}
	if lc.Query().Page != 4 {
		t.Errorf("equal filter value must not reset page, got %d", lc.Query().Page)
	}
}

func TestReloadKeepsPage(t *testing.T) {
	f := &recordingFetcher{meta: PageMeta{Page: 2, TotalPages: 3}}
	lc := NewListController[Row](10, f.fetch)
	ctx := context.Background()

	_ = lc.GoPage(ctx, 2)
	if err := lc.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if lc.Query().Page != 2 {
		t.Errorf("Reload must not change page, got %d", lc.Query().Page)
	}
}

func TestLoadErrorClearsItems(t *testing.T) {
	f := &recordingFetcher{
		items: []Row{{"id": float64(1)}},
		meta:  PageMeta{Page: 1, TotalPages: 1},
	}
	lc := NewListController[Row](10, f.fetch)
	ctx := context.Background()

	if err := lc.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(lc.Items()) != 1 {
		t.Fatalf("expected 1 item, got %d", len(lc.Items()))
	}

	f.err = errors.New("backend down")
	if err := lc.Reload(ctx); err == nil {
		t.Fatal("expected error")
	}
	if len(lc.Items()) != 0 {
		t.Errorf("failed load must clear items, got %d", len(lc.Items()))
	}
	if lc.Err() == nil {
		t.Error("Err must be set after failed load")
	}

	// A following success clears the error again.
	f.err = nil
	if err := lc.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if lc.Err() != nil {
		t.Errorf("Err should clear on success, got %v", lc.Err())
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	gate := make(chan struct{})
	f := &recordingFetcher{
		items: []Row{{"id": float64(1), "tag": "stale"}},
		meta:  PageMeta{Page: 1, TotalPages: 1},
		gate:  gate,
	}
	lc := NewListController[Row](10, f.fetch)
	ctx := context.Background()

	// First load blocks on the gate with the stale payload captured.
	done := make(chan struct{})
	go func() {
		_ = lc.Reload(ctx)
		close(done)
	}()
	for f.calls() == 0 {
		runtime.Gosched()
	}

	// Second load supersedes it while the first is still in flight.
	f.mu.Lock()
	f.gate = nil
	f.items = []Row{{"id": float64(2), "tag": "fresh"}}
	f.mu.Unlock()
	if err := lc.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	// Now let the first (stale) response land; it must be discarded.
	f.mu.Lock()
	f.items = []Row{{"id": float64(1), "tag": "stale"}}
	f.mu.Unlock()
	close(gate)
	<-done

	items := lc.Items()
	if len(items) != 1 || items[0].Str("tag") != "fresh" {
		t.Errorf("stale response overwrote fresh state: %v", items)
	}
}

func TestCloseSuppressesCommit(t *testing.T) {
	f := &recordingFetcher{items: []Row{{"id": float64(9)}}, meta: PageMeta{Page: 1, TotalPages: 1}}
	lc := NewListController[Row](10, f.fetch)
	lc.Close()

	if err := lc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload after Close: %v", err)
	}
	if len(lc.Items()) != 0 {
		t.Errorf("closed controller must not commit, got %v", lc.Items())
	}
}
