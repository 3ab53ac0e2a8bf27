// Package normalize provides consistent string normalization helpers.
// Use these instead of scattered strings.ToLower/TrimSpace calls.
package normalize

import "strings"

// Email normalizes an email address by trimming whitespace and lowercasing.
// This is the canonical form for storage and comparison.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name normalizes a display name by trimming whitespace.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Status normalizes a status value by trimming whitespace and lowercasing.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam normalizes a query parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
