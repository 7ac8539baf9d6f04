package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain text", input: "  Hello   world \n", expected: "Hello world"},
		{name: "inline tags", input: "<p>Hello <b>world</b></p>", expected: "Hello world"},
		{name: "block tags separate words", input: "<p>One</p><p>Two</p><ul><li>a</li><li>b</li></ul>", expected: "One Two a b"},
		{name: "line breaks separate words", input: "One<br>Two<br/>Three", expected: "One Two Three"},
		{name: "scripts and styles removed", input: "<style>p{}</style><p>Kept</p><script>alert(1)</script>", expected: "Kept"},
		{name: "comments removed", input: "<p>Kept<!-- hidden --></p>", expected: "Kept"},
		{name: "references stay encoded", input: "<p>Fish &amp; chips &hellip;</p>", expected: "Fish &amp; chips …"},
		{name: "bare ampersand encoded", input: "AT&T", expected: "AT&amp;T"},
		{name: "angle brackets in text encoded", input: "<p>1 &lt; 2</p>", expected: "1 &lt; 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tags(tt.input))
		})
	}
}

func TestNewlineURLs(t *testing.T) {
	input := "Intro line\nhttps://www.youtube.com/watch?v=abc\nOutro line\n  http://example.com/x  \r\nEnd https://inline.example.com stays"
	expected := "Intro line\nOutro line\nEnd https://inline.example.com stays"
	assert.Equal(t, expected, NewlineURLs(input))
}

func TestParagraphURLs(t *testing.T) {
	input := `<p>Intro</p><P class="embed"> https://example.com/video </P><p>See https://example.com too</p>`
	expected := `<p>Intro</p><p>See https://example.com too</p>`
	assert.Equal(t, expected, ParagraphURLs(input))
}

func TestShortcodes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "enclosing", input: "[caption]A cat[/caption]", expected: " A cat "},
		{name: "attributes", input: `[gallery ids="1,2" size=large]Photos`, expected: " Photos"},
		{name: "self closing", input: "Before [break /] after", expected: "Before   after"},
		{name: "prose kept", input: "It was [citation needed] true", expected: "It was [citation needed] true"},
		{name: "footnote kept", input: "True[1]", expected: "True[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Shortcodes(tt.input))
		})
	}
}

func TestExcerpt(t *testing.T) {
	content := "<p>Welcome to the <em>blog</em>.</p>\nhttps://www.youtube.com/watch?v=abc\n[caption id=\"7\"]<img src=\"a.png\">A cat[/caption]<p>https://example.com</p><p>Bye &amp; thanks.</p>"
	assert.Equal(t, "Welcome to the blog. A cat Bye &amp; thanks.", Excerpt(content))
	assert.Equal(t, "", Excerpt(""))
}

func TestMarkup(t *testing.T) {
	s := "Watch this\nhttps://example.com/clip\n[b]<em>now</em>[/b]"
	assert.Equal(t, "Watch this https://example.com/clip now", Markup(s))
	assert.Equal(t, "", Markup(""))
}
