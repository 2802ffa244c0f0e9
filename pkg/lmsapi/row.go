// pkg/lmsapi/row.go
package lmsapi

import (
	"strconv"
	"time"
)

// Row is one decoded list element. Its accessors read the first present
// of several alias keys and coerce defensively: the backend's field
// naming has drifted over time (createdAt vs createAt vs create_at), so
// callers name every spelling they have seen and get a stable value or
// the documented fallback.
type Row map[string]any

// Int64 returns the first key coercible to an integer, else 0.
func (r Row) Int64(keys ...string) int64 {
	return r.Int64Or(0, keys...)
}

// Int64Or returns the first key coercible to an integer, else fallback.
func (r Row) Int64Or(fallback int64, keys ...string) int64 {
	for _, key := range keys {
		v, ok := r[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int64(n)
		case int64:
			return n
		case int:
			return int64(n)
		case string:
			if parsed, err := strconv.ParseInt(n, 10, 64); err == nil {
				return parsed
			}
		}
	}
	return fallback
}

// Float64 returns the first key coercible to a float, else 0.
func (r Row) Float64(keys ...string) float64 {
	for _, key := range keys {
		v, ok := r[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int64:
			return float64(n)
		case int:
			return float64(n)
		case string:
			if parsed, err := strconv.ParseFloat(n, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// Str returns the first key coercible to a non-empty string, else "-".
// The dash is what list screens render for an absent cell.
func (r Row) Str(keys ...string) string {
	return r.StrOr("-", keys...)
}

// StrOr returns the first key coercible to a non-empty string, else
// fallback.
func (r Row) StrOr(fallback string, keys ...string) string {
	for _, key := range keys {
		v, ok := r[key]
		if !ok {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(s)
		}
	}
	return fallback
}

// Bool returns the first key coercible to a bool, else false.
func (r Row) Bool(keys ...string) bool {
	for _, key := range keys {
		v, ok := r[key]
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if parsed, err := strconv.ParseBool(b); err == nil {
				return parsed
			}
		}
	}
	return false
}

// Strings returns the first key holding an array, with each element
// stringified; else an empty slice.
func (r Row) Strings(keys ...string) []string {
	for _, key := range keys {
		arr, ok := r[key].([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(arr))
		for _, el := range arr {
			if s, isStr := el.(string); isStr {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

// Time returns the first key parseable as RFC 3339, else the zero time.
func (r Row) Time(keys ...string) time.Time {
	for _, key := range keys {
		s, ok := r[key].(string)
		if !ok {
			continue
		}
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
