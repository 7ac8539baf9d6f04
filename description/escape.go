package description

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/randalmurphal/seokit/entity"
	"github.com/randalmurphal/seokit/texturize"
)

// Escape prepares a description for an HTML attribute: references are
// decoded, punctuation texturized, then everything is escaped once.
// Existing references are therefore never double encoded.
func Escape(desc string) string {
	desc = texturize.Substitute(entity.Decode(desc))
	return strings.TrimSpace(html.EscapeString(desc))
}
