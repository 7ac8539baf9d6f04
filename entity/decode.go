// Package entity decodes HTML character references.
//
// Decoding happens before any length counting so that a reference such as
// &hellip; counts as the single rune it renders as.
package entity

import (
	"strings"

	"golang.org/x/net/html"
)

// Decode converts numeric (&#NNN;, &#xHH;) and named (&amp;, &hellip;, ...)
// character references in s to the runes they stand for. The full HTML5
// named reference table is supported. Malformed or unknown references are
// left as they are.
func Decode(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return html.UnescapeString(s)
}
