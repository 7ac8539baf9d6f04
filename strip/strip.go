// Package strip turns raw post content into plain excerpt source text.
//
// Post bodies arrive as markup with shortcodes, embedded URLs and scripts.
// Excerpt generation wants only the readable words, still encoded as
// character references so that decoding happens exactly once downstream.
package strip

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	// A URL alone on its own line, as left by oEmbed-style embeds.
	newlineURLPattern = regexp.MustCompile(`(?m)^[ \t]*https?://[^\s<>"]+[ \t\r]*$\n?`)

	// A paragraph holding nothing but a URL.
	paragraphURLPattern = regexp.MustCompile(`(?i)<p\b[^>]*>\s*https?://[^\s<>"]+\s*</p>`)

	// [shortcode], [shortcode attr="x" /] and [/shortcode]. Bracketed prose
	// such as [citation needed] is left alone.
	shortcodePattern = regexp.MustCompile(`\[/?[A-Za-z][\w-]*(?:\s+[\w-]+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s\]]+))*\s*/?\]`)
)

// Elements whose text never belongs in an excerpt.
const noiseSelector = "script, style, noscript, template, iframe, object, embed, svg"

var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// NewlineURLs removes lines that consist of a bare URL.
func NewlineURLs(s string) string {
	return newlineURLPattern.ReplaceAllString(s, "")
}

// ParagraphURLs removes paragraphs that contain only a URL.
func ParagraphURLs(s string) string {
	return paragraphURLPattern.ReplaceAllString(s, "")
}

// Shortcodes removes [shortcode] tags, keeping any enclosed text.
func Shortcodes(s string) string {
	return shortcodePattern.ReplaceAllString(s, " ")
}

// Tags strips markup from s and returns its text with whitespace collapsed.
// Block elements separate words. The result is escaped again, so character
// references that were in s survive as references.
func Tags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapse(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapse(s)
	}
	doc.Find(noiseSelector).Remove()

	var sb strings.Builder
	for _, n := range doc.Nodes {
		writeText(&sb, n)
	}

	return html.EscapeString(collapse(sb.String()))
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
	if block {
		sb.WriteByte(' ')
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Markup removes shortcodes and then markup. Hand-written excerpts and
// profile text go through Markup only; their URLs are content.
func Markup(s string) string {
	if s == "" {
		return ""
	}
	return Tags(Shortcodes(s))
}

// Excerpt prepares raw post content for excerpt trimming: URL-only lines
// and paragraphs go first, then shortcodes, then markup.
func Excerpt(content string) string {
	if content == "" {
		return ""
	}
	content = NewlineURLs(content)
	content = ParagraphURLs(content)
	return Markup(content)
}
