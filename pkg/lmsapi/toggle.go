// pkg/lmsapi/toggle.go
package lmsapi

import (
	"context"
	"sync"
)

// ApplyFunc writes a status into the local row collection.
type ApplyFunc func(id int64, status string)

// CallFunc sends the status change to the backend.
type CallFunc func(ctx context.Context, id int64, status string) error

// ToggleController applies status flips optimistically: the local write
// happens before the network call, and is reverted if the call fails.
// A per-id pending set blocks a second toggle on the same row while the
// first is in flight, so double-clicks cannot issue conflicting
// requests whose responses might land out of order.
type ToggleController struct {
	mu      sync.Mutex
	pending map[int64]struct{}

	apply ApplyFunc
	call  CallFunc
}

// NewToggleController creates a controller over a local apply function
// and a backend call.
func NewToggleController(apply ApplyFunc, call CallFunc) *ToggleController {
	return &ToggleController{
		pending: make(map[int64]struct{}),
		apply:   apply,
		call:    call,
	}
}

// Pending reports whether a toggle for id is awaiting the backend.
// Row controls disable themselves while this is true.
func (tc *ToggleController) Pending(id int64) bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	_, ok := tc.pending[id]
	return ok
}

// Toggle flips a row from cur to next. No-ops when cur equals next or a
// toggle for the same id is already in flight. On backend failure the
// local row is reverted to cur and the error is returned for the caller
// to surface. The id always leaves the pending set, success or failure.
func (tc *ToggleController) Toggle(ctx context.Context, id int64, cur, next string) error {
	if cur == next {
		return nil
	}

	tc.mu.Lock()
	if _, inFlight := tc.pending[id]; inFlight {
		tc.mu.Unlock()
		return nil
	}
	tc.pending[id] = struct{}{}
	tc.mu.Unlock()

	defer func() {
		tc.mu.Lock()
		delete(tc.pending, id)
		tc.mu.Unlock()
	}()

	tc.apply(id, next)

	if err := tc.call(ctx, id, next); err != nil {
		tc.apply(id, cur)
		return err
	}
	return nil
}
