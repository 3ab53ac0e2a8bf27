// Package slugify derives URL-safe slugs from human-readable names.
// A slug is lowercase ASCII letters, digits, and single hyphens.
package slugify

import "strings"

// Make derives a slug from a name or title: lowercase, whitespace and
// punctuation runs collapse to a single hyphen, leading/trailing hyphens
// are trimmed. "Luxury Villas" becomes "luxury-villas".
func Make(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// IsValid reports whether s is already a well-formed slug.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	return s == Make(s)
}
