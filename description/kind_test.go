package description

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"search", Search},
		{"opengraph", OpenGraph},
		{"OG", OpenGraph},
		{"open_graph", OpenGraph},
		{" Twitter ", Twitter},
		{"", Search},
		{"facebook", Search},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseKind(tt.input), tt.input)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "search", Search.String())
	assert.Equal(t, "opengraph", OpenGraph.String())
	assert.Equal(t, "twitter", Twitter.String())
	assert.Equal(t, "search", Kind(9).String())
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "none", SourceNone.String())
	assert.Equal(t, "custom", SourceCustom.String())
	assert.Equal(t, "generated", SourceGenerated.String())
}

func TestPageType(t *testing.T) {
	for p := PageUnknown; p <= PageArchive; p++ {
		assert.Equal(t, p, ParsePageType(p.String()), p.String())
	}
	assert.Equal(t, PageUnknown, ParsePageType("nope"))
	assert.Equal(t, "unknown", PageType(99).String())
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "trimmed", input: "  plain  ", expected: "plain"},
		{name: "texturized", input: `He said "hi"...`, expected: "He said “hi”…"},
		{name: "ampersand escaped", input: "Fish & chips", expected: "Fish &amp; chips"},
		{name: "no double encoding", input: "Fish &amp; chips", expected: "Fish &amp; chips"},
		{name: "markup escaped", input: "<b>bold</b>", expected: "&lt;b&gt;bold&lt;/b&gt;"},
		{name: "apostrophe curled", input: "It's", expected: "It’s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}
