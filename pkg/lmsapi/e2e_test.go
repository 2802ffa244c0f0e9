package lmsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeBackend is an in-memory accounts endpoint speaking the {data, meta}
// envelope, enough for a full list-load → toggle → reload pass.
type fakeBackend struct {
	mu       sync.Mutex
	statuses map[int64]string
	failNext bool
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/accounts", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		rows := make([]map[string]any, 0, len(b.statuses))
		for id, status := range b.statuses {
			rows = append(rows, map[string]any{"id": id, "status": status})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": rows,
			"meta": map[string]any{
				"page": 1, "size": 10,
				"totalElements": len(rows), "totalPages": 1,
				"hasNext": false, "hasPrev": false, "sort": []string{},
			},
		})
	})
	mux.HandleFunc("PATCH /api/accounts/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failNext {
			b.failNext = false
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "status update rejected"})
			return
		}
		var req struct {
			Status string `json:"status"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		var id int64
		fmt.Sscanf(r.PathValue("id"), "%d", &id)
		b.statuses[id] = req.Status
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": id, "status": req.Status}})
	})
	return mux
}

func TestEndToEndListAndToggle(t *testing.T) {
	backend := &fakeBackend{statuses: map[int64]string{1: "ACTIVE"}}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	client := New(srv.URL)
	ctx := context.Background()

	lc := NewListController[Row](10, client.ListFetcher("/api/accounts"))
	if err := lc.Reload(ctx); err != nil {
		t.Fatalf("initial load: %v", err)
	}

	items := lc.Items()
	if len(items) != 1 || items[0].Int64("id") != 1 || items[0].Str("status") != "ACTIVE" {
		t.Fatalf("items = %v", items)
	}
	if meta := lc.Meta(); meta.TotalElements != 1 || meta.TotalPages != 1 {
		t.Fatalf("meta = %+v", meta)
	}

	apply := func(id int64, status string) {
		lc.Update(func(rows []Row) {
			for _, row := range rows {
				if row.Int64("id") == id {
					row["status"] = status
				}
			}
		})
	}
	tc := NewToggleController(apply, client.StatusCall("/api/accounts"))

	// Successful toggle: local state flips and stays flipped.
	if err := tc.Toggle(ctx, 1, "ACTIVE", "INACTIVE"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := lc.Items()[0].Str("status"); got != "INACTIVE" {
		t.Errorf("status = %q, want INACTIVE", got)
	}
	if tc.Pending(1) {
		t.Error("pending set must be empty")
	}

	// The server agrees after a reload.
	if err := lc.Reload(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := lc.Items()[0].Str("status"); got != "INACTIVE" {
		t.Errorf("server status = %q, want INACTIVE", got)
	}

	// Failed toggle: optimistic write rolls back.
	backend.mu.Lock()
	backend.failNext = true
	backend.mu.Unlock()
	err := tc.Toggle(ctx, 1, "INACTIVE", "ACTIVE")
	if err == nil {
		t.Fatal("expected toggle failure")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "status update rejected" {
		t.Errorf("err = %v", err)
	}
	if got := lc.Items()[0].Str("status"); got != "INACTIVE" {
		t.Errorf("status after rollback = %q, want INACTIVE", got)
	}
}
