// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans user-supplied HTML before storage.
//
// Community content (FAQ answers, Q&A posts and replies, resource
// descriptions) may carry rich-text markup from the editor. Sanitizing on
// write means stored HTML is always safe to serve back verbatim; readers
// never need to re-sanitize.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ugcPolicy allows common formatting, links, and images but strips scripts,
// event handlers, and non-http(s) URL schemes.
var ugcPolicy = bluemonday.UGCPolicy()

// strictPolicy strips all markup; used for plain-text fields like titles.
var strictPolicy = bluemonday.StrictPolicy()

// Sanitize cleans rich-text HTML for storage. Safe formatting tags survive;
// scripts, inline handlers, and javascript: URLs do not.
func Sanitize(html string) string {
	return ugcPolicy.Sanitize(html)
}

// Text strips all markup and trims whitespace, for fields that must be
// plain text (titles, categories, question text).
func Text(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
