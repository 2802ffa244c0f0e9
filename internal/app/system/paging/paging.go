// internal/app/system/paging/paging.go

// Package paging implements page/size offset pagination for list endpoints.
//
// Every list endpoint accepts ?page= (1-based) and ?size= and responds with a
// PageMeta block the frontend trusts for its pager controls. The server is
// the single source of truth for totalPages; clients clamp it to ≥1 but do
// not recompute it.
package paging

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultSize is the number of rows returned when ?size= is absent or invalid.
const DefaultSize = 10

// MaxSize caps ?size= so a client cannot request unbounded lists.
const MaxSize = 100

// Params holds the parsed pagination request values.
type Params struct {
	Page    int    // 1-based page number
	Size    int    // rows per page
	Keyword string // free-text search keyword, already trimmed
}

// Skip returns the number of documents to skip for Mongo Find().SetSkip().
func (p Params) Skip() int64 { return int64((p.Page - 1) * p.Size) }

// Limit returns the page size as int64 for Mongo Find().SetLimit().
func (p Params) Limit() int64 { return int64(p.Size) }

// Parse extracts page, size, and keyword from the request query.
// Invalid or missing values fall back to page 1 / DefaultSize.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Size: DefaultSize}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := query.Get(r, "size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Size = n
			if p.Size > MaxSize {
				p.Size = MaxSize
			}
		}
	}
	p.Keyword = strings.TrimSpace(query.Get(r, "keyword"))
	return p
}

// Meta is the pagination metadata block returned beside every list.
type Meta struct {
	Page          int      `json:"page"`
	Size          int      `json:"size"`
	TotalElements int64    `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
	HasNext       bool     `json:"hasNext"`
	HasPrev       bool     `json:"hasPrev"`
	Sort          []string `json:"sort"`
}

// NewMeta computes the metadata for a page given the total match count.
// TotalPages is never less than 1 so pagers always have a page to stand on.
func NewMeta(p Params, total int64, sort ...string) Meta {
	pages := int((total + int64(p.Size) - 1) / int64(p.Size))
	if pages < 1 {
		pages = 1
	}
	if sort == nil {
		sort = []string{}
	}
	return Meta{
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    pages,
		HasNext:       p.Page < pages,
		HasPrev:       p.Page > 1,
		Sort:          sort,
	}
}
