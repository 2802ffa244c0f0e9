package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantPage    int
		wantSize    int
		wantKeyword string
	}{
		{"defaults", "/accounts", 1, DefaultSize, ""},
		{"explicit", "/accounts?page=3&size=25&keyword=kim", 3, 25, "kim"},
		{"zero page falls back", "/accounts?page=0", 1, DefaultSize, ""},
		{"negative size falls back", "/accounts?size=-5", 1, DefaultSize, ""},
		{"garbage values fall back", "/accounts?page=abc&size=xyz", 1, DefaultSize, ""},
		{"size capped", "/accounts?size=9999", 1, MaxSize, ""},
		{"keyword trimmed", "/accounts?keyword=%20lee%20", 1, DefaultSize, "lee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			p := Parse(r)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.Size != tt.wantSize {
				t.Errorf("Size = %d, want %d", p.Size, tt.wantSize)
			}
			if p.Keyword != tt.wantKeyword {
				t.Errorf("Keyword = %q, want %q", p.Keyword, tt.wantKeyword)
			}
		})
	}
}

func TestSkipLimit(t *testing.T) {
	p := Params{Page: 3, Size: 20}
	if got := p.Skip(); got != 40 {
		t.Errorf("Skip() = %d, want 40", got)
	}
	if got := p.Limit(); got != 20 {
		t.Errorf("Limit() = %d, want 20", got)
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		total      int64
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"empty list still has one page", 1, 10, 0, 1, false, false},
		{"exact fit", 1, 10, 10, 1, false, false},
		{"one over", 1, 10, 11, 2, true, false},
		{"middle page", 2, 10, 35, 4, true, true},
		{"last page", 4, 10, 35, 4, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeta(Params{Page: tt.page, Size: tt.size}, tt.total)
			if m.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", m.TotalPages, tt.wantPages)
			}
			if m.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", m.HasNext, tt.wantNext)
			}
			if m.HasPrev != tt.wantPrev {
				t.Errorf("HasPrev = %v, want %v", m.HasPrev, tt.wantPrev)
			}
			if m.TotalElements != tt.total {
				t.Errorf("TotalElements = %d, want %d", m.TotalElements, tt.total)
			}
			if m.Sort == nil {
				t.Error("Sort should be an empty slice, not nil")
			}
		})
	}
}
