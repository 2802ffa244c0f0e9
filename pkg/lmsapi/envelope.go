// pkg/lmsapi/envelope.go
//
// Package lmsapi is a Go client for the LMS REST API. It wraps the
// {data, meta} envelope the server emits, but tolerates the envelope
// variants older deployments produced ({items}, {content}, nested
// data.items) so callers never have to care which backend build they
// are talking to.
package lmsapi

import (
	"encoding/json"
	"math"
)

// PageMeta describes one page of a list response.
type PageMeta struct {
	Page          int64    `json:"page"`
	Size          int64    `json:"size"`
	TotalElements int64    `json:"totalElements"`
	TotalPages    int64    `json:"totalPages"`
	HasNext       bool     `json:"hasNext"`
	HasPrev       bool     `json:"hasPrev"`
	Sort          []string `json:"sort"`
}

// listKeys are the primary envelope fields probed for the row array, in
// priority order. First structural match wins. The legacy result field
// ranks below these, even nested under data.
var listKeys = []string{"data", "items", "content"}

// UnwrapList extracts the row array from a response body. It probes, in
// order: the body itself is an array; then data / items / content; then
// data.items / data.content nested one level down; then result and
// data.result last. No match yields an empty slice. Malformed input
// never errors; a partially wrong result beats a failed call.
func UnwrapList(body []byte) []any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return []any{}
	}
	return unwrapValue(v)
}

func unwrapValue(v any) []any {
	if arr, ok := v.([]any); ok {
		return arr
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return []any{}
	}
	for _, key := range listKeys {
		if arr, ok := obj[key].([]any); ok {
			return arr
		}
	}
	inner, nested := obj["data"].(map[string]any)
	if nested {
		for _, key := range listKeys[1:] {
			if arr, ok := inner[key].([]any); ok {
				return arr
			}
		}
	}
	if arr, ok := obj["result"].([]any); ok {
		return arr
	}
	if nested {
		if arr, ok := inner["result"].([]any); ok {
			return arr
		}
	}
	return []any{}
}

// UnwrapRows is UnwrapList with each object element converted to a Row.
// Non-object elements are dropped.
func UnwrapRows(body []byte) []Row {
	raw := UnwrapList(body)
	rows := make([]Row, 0, len(raw))
	for _, el := range raw {
		if m, ok := el.(map[string]any); ok {
			rows = append(rows, Row(m))
		}
	}
	return rows
}

// UnwrapData extracts a single object payload: the data field when it is
// an object, otherwise the body itself when it is an object, otherwise
// an empty Row.
func UnwrapData(body []byte) Row {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return Row{}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return Row{}
	}
	if inner, ok := obj["data"].(map[string]any); ok {
		return Row(inner)
	}
	return Row(obj)
}

// UnwrapMeta extracts paging metadata from meta (or data.meta). Missing
// or partial metadata degrades to defaults; TotalPages is clamped to at
// least 1 so paging arithmetic never divides by zero.
func UnwrapMeta(body []byte) PageMeta {
	var v any
	meta := PageMeta{Page: 1, Size: 0, TotalPages: 1, Sort: []string{}}
	if err := json.Unmarshal(body, &v); err != nil {
		return meta
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return meta
	}
	m, ok := obj["meta"].(map[string]any)
	if !ok {
		if inner, innerOK := obj["data"].(map[string]any); innerOK {
			m, ok = inner["meta"].(map[string]any)
		}
	}
	if !ok {
		return meta
	}

	row := Row(m)
	meta.Page = row.Int64Or(1, "page")
	meta.Size = row.Int64Or(0, "size")
	meta.TotalElements = row.Int64Or(0, "totalElements", "total")
	meta.TotalPages = row.Int64Or(0, "totalPages")
	if meta.TotalPages < 1 {
		if meta.Size > 0 {
			meta.TotalPages = int64(math.Ceil(float64(meta.TotalElements) / float64(meta.Size)))
		}
		if meta.TotalPages < 1 {
			meta.TotalPages = 1
		}
	}
	meta.HasNext = row.Bool("hasNext")
	meta.HasPrev = row.Bool("hasPrev")
	meta.Sort = row.Strings("sort")
	return meta
}
