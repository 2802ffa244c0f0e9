// pkg/lmsapi/list.go
package lmsapi

import (
	"context"
	"sync"
)

// ListQuery is the query state for one list screen: page, page size,
// keyword, and per-feature filters.
type ListQuery struct {
	Page    int
	Size    int
	Keyword string
	Filters map[string]string
}

// clone returns a copy safe to hand to a fetcher while the controller
// keeps mutating its own state.
func (q ListQuery) clone() ListQuery {
	out := q
	out.Filters = make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		out.Filters[k] = v
	}
	return out
}

// Fetcher loads one page of results for a query.
type Fetcher[T any] func(ctx context.Context, q ListQuery) ([]T, PageMeta, error)

// ListController owns the query state for one list screen and the
// results of the most recent load. Mutators follow the page-reset rule:
// changing the keyword, a filter, or the page size resets Page to 1;
// only GoPage leaves it alone. Setting a filter to its current value is
// a complete no-op, including no reload.
//
// Loads carry a monotonically increasing sequence token; a response
// commits only if its token is still the latest issued, so a slow stale
// response can never overwrite the result of a newer query.
type ListController[T any] struct {
	mu     sync.Mutex
	query  ListQuery
	items  []T
	meta   PageMeta
	load   bool
	err    error
	seq    uint64
	closed bool

	fetch Fetcher[T]
}

// NewListController creates a controller with page=1 and the given page
// size (values below 1 become the defaults 1 and 10).
func NewListController[T any](size int, fetch Fetcher[T]) *ListController[T] {
	if size < 1 {
		size = 10
	}
	return &ListController[T]{
		query: ListQuery{Page: 1, Size: size, Filters: map[string]string{}},
		meta:  PageMeta{Page: 1, TotalPages: 1, Sort: []string{}},
		fetch: fetch,
	}
}

// Query returns a copy of the current query state.
func (lc *ListController[T]) Query() ListQuery {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.query.clone()
}

// Items returns the rows from the most recent committed load.
func (lc *ListController[T]) Items() []T {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.items
}

// Meta returns the paging metadata from the most recent committed load.
func (lc *ListController[T]) Meta() PageMeta {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.meta
}

// Err returns the error from the most recent committed load, if any.
func (lc *ListController[T]) Err() error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.err
}

// Loading reports whether a load is in flight.
func (lc *ListController[T]) Loading() bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.load
}

// Close stops the controller; in-flight responses are discarded.
func (lc *ListController[T]) Close() {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.closed = true
}

// SetKeyword stages a keyword and resets Page to 1. It does not reload;
// Search does. Setting the current keyword again is a no-op.
func (lc *ListController[T]) SetKeyword(keyword string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.query.Keyword == keyword {
		return
	}
	lc.query.Keyword = keyword
	lc.query.Page = 1
}

// Search resets Page to 1 and reloads with the current keyword.
func (lc *ListController[T]) Search(ctx context.Context) error {
	lc.mu.Lock()
	lc.query.Page = 1
	lc.mu.Unlock()
	return lc.run(ctx)
}

// SetFilter sets a filter and resets Page to 1, then reloads. If the
// value equals the current one the call is a full no-op.
func (lc *ListController[T]) SetFilter(ctx context.Context, key, value string) error {
	lc.mu.Lock()
	if current, ok := lc.query.Filters[key]; ok && current == value {
		lc.mu.Unlock()
		return nil
	}
	if value == "" {
		delete(lc.query.Filters, key)
	} else {
		lc.query.Filters[key] = value
	}
	lc.query.Page = 1
	lc.mu.Unlock()
	return lc.run(ctx)
}

// GoPage moves to the given page (clamped to ≥1) and reloads.
func (lc *ListController[T]) GoPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	lc.mu.Lock()
	lc.query.Page = page
	lc.mu.Unlock()
	return lc.run(ctx)
}

// SetSize changes the page size, resets Page to 1, and reloads. Setting
// the current size again is a no-op.
func (lc *ListController[T]) SetSize(ctx context.Context, size int) error {
	if size < 1 {
		size = 1
	}
	lc.mu.Lock()
	if lc.query.Size == size {
		lc.mu.Unlock()
		return nil
	}
	lc.query.Size = size
	lc.query.Page = 1
	lc.mu.Unlock()
	return lc.run(ctx)
}

// Reload re-issues the fetch with the current query, keeping Page.
func (lc *ListController[T]) Reload(ctx context.Context) error {
	return lc.run(ctx)
}

// Update mutates the current items in place under the controller lock.
// The toggle controller uses it for optimistic writes.
func (lc *ListController[T]) Update(fn func(items []T)) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	fn(lc.items)
}

func (lc *ListController[T]) run(ctx context.Context) error {
	lc.mu.Lock()
	if lc.closed {
		lc.mu.Unlock()
		return nil
	}
	lc.seq++
	token := lc.seq
	q := lc.query.clone()
	lc.load = true
	lc.mu.Unlock()

	items, meta, err := lc.fetch(ctx, q)

	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.seq == token {
		lc.load = false
	}
	if lc.closed || lc.seq != token {
		// A newer load was issued (or the screen is gone); this
		// response is stale and must not overwrite fresher state.
		return nil
	}
	if err != nil {
		lc.items = nil
		lc.meta = PageMeta{Page: 1, TotalPages: 1, Sort: []string{}}
		lc.err = err
		return err
	}
	lc.items = items
	lc.meta = meta
	lc.err = nil
	return nil
}
