package lmsapi

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// rowSet is a minimal local row collection for toggle tests.
type rowSet struct {
	mu   sync.Mutex
	rows map[int64]string
}

func newRowSet(rows map[int64]string) *rowSet {
	return &rowSet{rows: rows}
}

func (rs *rowSet) apply(id int64, status string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.rows[id] = status
}

func (rs *rowSet) status(id int64) string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.rows[id]
}

func TestToggleSuccess(t *testing.T) {
	rs := newRowSet(map[int64]string{1: "ACTIVE"})
	var calls atomic.Int32

	tc := NewToggleController(rs.apply, func(ctx context.Context, id int64, status string) error {
		calls.Add(1)
		return nil
	})

	if err := tc.Toggle(context.Background(), 1, "ACTIVE", "INACTIVE"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got := rs.status(1); got != "INACTIVE" {
		t.Errorf("status = %q, want INACTIVE", got)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
	if tc.Pending(1) {
		t.Error("pending set must be empty after success")
	}
}

func TestToggleRollbackOnFailure(t *testing.T) {
	rs := newRowSet(map[int64]string{1: "ACTIVE"})
	var sawOptimistic bool

	tc := NewToggleController(rs.apply, func(ctx context.Context, id int64, status string) error {
		// The optimistic write happens before the call.
		sawOptimistic = rs.status(1) == "INACTIVE"
		return errors.New("update failed")
	})

	err := tc.Toggle(context.Background(), 1, "ACTIVE", "INACTIVE")
	if err == nil {
		t.Fatal("expected error")
	}
	if !sawOptimistic {
		t.Error("local state was not applied optimistically before the call")
	}
	if got := rs.status(1); got != "ACTIVE" {
		t.Errorf("status = %q, want ACTIVE after rollback", got)
	}
	if tc.Pending(1) {
		t.Error("pending set must be empty after failure")
	}
}

func TestToggleNoopOnSameValue(t *testing.T) {
	rs := newRowSet(map[int64]string{1: "ACTIVE"})
	var calls atomic.Int32

	tc := NewToggleController(rs.apply, func(ctx context.Context, id int64, status string) error {
		calls.Add(1)
		return nil
	})

	if err := tc.Toggle(context.Background(), 1, "ACTIVE", "ACTIVE"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("equal cur/next must not call the backend, calls = %d", calls.Load())
	}
}

func TestToggleSameIDRace(t *testing.T) {
	rs := newRowSet(map[int64]string{1: "ACTIVE"})
	var calls atomic.Int32
	release := make(chan struct{})

	tc := NewToggleController(rs.apply, func(ctx context.Context, id int64, status string) error {
		calls.Add(1)
		<-release
		return nil
	})

	done := make(chan struct{})
	go func() {
		_ = tc.Toggle(context.Background(), 1, "ACTIVE", "INACTIVE")
		close(done)
	}()
	for !tc.Pending(1) {
		runtime.Gosched()
	}

	// Second toggle while the first is in flight: no second network call.
	if err := tc.Toggle(context.Background(), 1, "INACTIVE", "ACTIVE"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (second toggle must be a no-op)", calls.Load())
	}

	close(release)
	<-done
	if tc.Pending(1) {
		t.Error("pending set must drain")
	}
}

func TestToggleDistinctIDsRunIndependently(t *testing.T) {
	rs := newRowSet(map[int64]string{1: "ACTIVE", 2: "ACTIVE"})
	var calls atomic.Int32

	tc := NewToggleController(rs.apply, func(ctx context.Context, id int64, status string) error {
		calls.Add(1)
		return nil
	})

	_ = tc.Toggle(context.Background(), 1, "ACTIVE", "INACTIVE")
	_ = tc.Toggle(context.Background(), 2, "ACTIVE", "INACTIVE")
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
	if rs.status(1) != "INACTIVE" || rs.status(2) != "INACTIVE" {
		t.Errorf("rows = %v", rs.rows)
	}
}
