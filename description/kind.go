package description

import "strings"

// Kind selects which description is produced.
type Kind int

const (
	Search Kind = iota
	OpenGraph
	Twitter
)

// String returns the kind's name as used in settings files.
func (k Kind) String() string {
	switch k {
	case OpenGraph:
		return "opengraph"
	case Twitter:
		return "twitter"
	default:
		return "search"
	}
}

// ParseKind maps a name to a Kind. Unknown names fall back to Search.
func ParseKind(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "opengraph", "open_graph", "og":
		return OpenGraph
	case "twitter":
		return Twitter
	default:
		return Search
	}
}

// Args identify a post or term explicitly. A zero Taxonomy means a post.
type Args struct {
	ID       int64
	Taxonomy string
}

// Source says where a description came from.
type Source int

const (
	SourceNone Source = iota
	SourceCustom
	SourceGenerated
)

func (s Source) String() string {
	switch s {
	case SourceCustom:
		return "custom"
	case SourceGenerated:
		return "generated"
	default:
		return "none"
	}
}
