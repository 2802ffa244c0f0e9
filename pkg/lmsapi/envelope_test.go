package lmsapi

import (
	"reflect"
	"testing"
)

func TestUnwrapListShapes(t *testing.T) {
	want := []any{map[string]any{"id": float64(1)}}

	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[{"id":1}]`},
		{"data", `{"data":[{"id":1}]}`},
		{"items", `{"items":[{"id":1}]}`},
		{"content", `{"content":[{"id":1}]}`},
		{"data.items", `{"data":{"items":[{"id":1}]}}`},
		{"data.content", `{"data":{"content":[{"id":1}]}}`},
		{"result", `{"result":[{"id":1}]}`},
		{"data.result", `{"data":{"result":[{"id":1}]}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := UnwrapList([]byte(tc.body))
			if !reflect.DeepEqual(got, want) {
				t.Errorf("UnwrapList(%s) = %v, want %v", tc.body, got, want)
			}
		})
	}
}

func TestUnwrapListUnknownShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unrelated object", `{"foo":1}`},
		{"scalar", `42`},
		{"string", `"hello"`},
		{"null", `null`},
		{"malformed", `{"data":`},
		{"data is object without list", `{"data":{"id":1}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := UnwrapList([]byte(tc.body))
			if len(got) != 0 {
				t.Errorf("UnwrapList(%s) = %v, want empty", tc.body, got)
			}
		})
	}
}

func TestUnwrapListIdempotentOnCanonical(t *testing.T) {
	body := []byte(`{"items":[{"id":1},{"id":2}]}`)
	first := UnwrapList(body)
	second := UnwrapList(body)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("canonical input not stable: %v vs %v", first, second)
	}
	if len(first) != 2 {
		t.Errorf("len = %d, want 2", len(first))
	}
}

func TestUnwrapListPriorityOrder(t *testing.T) {
	// data wins over items when both are present.
	body := []byte(`{"data":[{"id":1}],"items":[{"id":2}]}`)
	got := UnwrapRows(body)
	if len(got) != 1 || got[0].Int64("id") != 1 {
		t.Errorf("expected data to win, got %v", got)
	}
}

func TestUnwrapListResultRanksLast(t *testing.T) {
	// The legacy result field loses to every other key, including the
	// keys nested under data.
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"items beats result", `{"result":[1],"items":[2]}`, 2},
		{"nested data.items beats top-level result", `{"result":[1],"data":{"items":[2]}}`, 2},
		{"nested data.content beats top-level result", `{"result":[1],"data":{"content":[2]}}`, 2},
		{"result wins only when nothing else matches", `{"result":[1],"data":{"note":"x"}}`, 1},
		{"top-level result beats data.result", `{"result":[1],"data":{"result":[2]}}`, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := UnwrapList([]byte(tc.body))
			if len(got) != 1 || got[0] != tc.want {
				t.Errorf("UnwrapList(%s) = %v, want [%v]", tc.body, got, tc.want)
			}
		})
	}
}

func TestUnwrapRowsDropsNonObjects(t *testing.T) {
	rows := UnwrapRows([]byte(`{"data":[{"id":1},"stray",2,{"id":3}]}`))
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].Int64("id") != 1 || rows[1].Int64("id") != 3 {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestUnwrapData(t *testing.T) {
	row := UnwrapData([]byte(`{"data":{"id":7,"name":"x"}}`))
	if row.Int64("id") != 7 {
		t.Errorf("id = %d, want 7", row.Int64("id"))
	}

	// Bare object bodies work too.
	row = UnwrapData([]byte(`{"id":8}`))
	if row.Int64("id") != 8 {
		t.Errorf("id = %d, want 8", row.Int64("id"))
	}

	if got := UnwrapData([]byte(`[1,2]`)); len(got) != 0 {
		t.Errorf("array body should yield empty row, got %v", got)
	}
}

func TestUnwrapMeta(t *testing.T) {
	body := []byte(`{"data":[],"meta":{"page":2,"size":10,"totalElements":31,"totalPages":4,"hasNext":true,"hasPrev":true,"sort":["name,asc"]}}`)
	meta := UnwrapMeta(body)
	if meta.Page != 2 || meta.Size != 10 || meta.TotalElements != 31 || meta.TotalPages != 4 {
		t.Errorf("unexpected meta: %+v", meta)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Errorf("expected hasNext/hasPrev true: %+v", meta)
	}
	if len(meta.Sort) != 1 || meta.Sort[0] != "name,asc" {
		t.Errorf("sort = %v", meta.Sort)
	}
}

func TestUnwrapMetaDefaults(t *testing.T) {
	meta := UnwrapMeta([]byte(`{"data":[]}`))
	if meta.Page != 1 || meta.TotalPages != 1 {
		t.Errorf("missing meta should default page=1 totalPages=1, got %+v", meta)
	}
	if meta.Sort == nil {
		t.Error("sort must be non-nil")
	}
}

func TestUnwrapMetaComputesTotalPages(t *testing.T) {
	// totalPages absent: derived from totalElements/size, clamped to ≥1.
	meta := UnwrapMeta([]byte(`{"meta":{"page":1,"size":10,"totalElements":25}}`))
	if meta.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", meta.TotalPages)
	}

	meta = UnwrapMeta([]byte(`{"meta":{"page":1,"size":10,"totalElements":0}}`))
	if meta.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1 (clamped)", meta.TotalPages)
	}
}

func TestRowAliasesAndCoercion(t *testing.T) {
	row := Row{
		"createAt": "2026-03-01T10:00:00Z",
		"id":       float64(42),
		"gpa":      "3.75",
		"active":   "true",
		"title":    "",
	}

	if got := row.Int64("accountId", "id"); got != 42 {
		t.Errorf("Int64 alias = %d, want 42", got)
	}
	if got := row.Float64("gpa"); got != 3.75 {
		t.Errorf("Float64 string coercion = %v, want 3.75", got)
	}
	if !row.Bool("active") {
		t.Error("Bool string coercion failed")
	}
	if got := row.Str("title", "name"); got != "-" {
		t.Errorf("empty string should fall back to dash, got %q", got)
	}
	if row.Time("createdAt", "createAt").IsZero() {
		t.Error("Time alias read failed")
	}
	if got := row.Int64("missing"); got != 0 {
		t.Errorf("missing Int64 = %d, want 0", got)
	}
	if got := row.Str("missing"); got != "-" {
		t.Errorf("missing Str = %q, want -", got)
	}
}
