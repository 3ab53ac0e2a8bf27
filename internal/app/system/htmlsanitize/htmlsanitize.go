// Package htmlsanitize provides HTML sanitization for rich text content
// stored by the CMS (blog bodies, about/story copy, rich-text sections).
// It uses bluemonday to strip dangerous markup while preserving formatting.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// UGC policy covers the formatting the admin editor produces.
		policy = bluemonday.UGCPolicy()

		// Tables and extended text formatting from the rich-text editor
		policy.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td")
		policy.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
		policy.AllowElements("u", "s", "sub", "sup", "mark")
		policy.AllowAttrs("class").OnElements("p", "span", "div", "table", "th", "td", "tr")
	})
	return policy
}

// Sanitize cleans HTML input, removing dangerous elements and attributes
// while keeping safe formatting like bold, lists, links, and tables.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}
