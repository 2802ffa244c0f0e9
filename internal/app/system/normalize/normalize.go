// internal/app/system/normalize/normalize.go

// Package normalize canonicalizes user-entered identity fields before
// storage or comparison, so lookups are not defeated by case or whitespace.
package normalize

import "strings"

// LoginID trims whitespace and lowercases, since login ids are
// case-insensitive for sign-in.
func LoginID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Email trims whitespace and lowercases.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Code trims and uppercases short codes (department codes, course codes).
func Code(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Status trims and uppercases status identifiers so comparisons against
// the canonical constants are exact.
func Status(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
