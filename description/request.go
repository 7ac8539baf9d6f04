package description

import "strings"

// PageType classifies the page a request is for.
type PageType int

const (
	PageUnknown PageType = iota
	// PageFront is the site's front page, static or a post listing.
	PageFront
	// PageBlog is the posts page of a site with a static front page.
	PageBlog
	PageSingular
	// PageTerm is a category, tag or custom taxonomy archive.
	PageTerm
	PageAuthor
	PagePostTypeArchive
	// PageArchive is any other archive, such as a date archive.
	PageArchive
)

var pageTypeNames = map[PageType]string{
	PageUnknown:         "unknown",
	PageFront:           "front",
	PageBlog:            "blog",
	PageSingular:        "singular",
	PageTerm:            "term",
	PageAuthor:          "author",
	PagePostTypeArchive: "post_type_archive",
	PageArchive:         "archive",
}

func (p PageType) String() string {
	if name, ok := pageTypeNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePageType maps a name from String back to a PageType.
func ParsePageType(name string) PageType {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range pageTypeNames {
		if n == name {
			return p
		}
	}
	return PageUnknown
}

// QueryState describes the page being rendered.
type QueryState struct {
	Page PageType
	// ID is the post, term or author ID. For the front page it is ignored.
	ID       int64
	Taxonomy string
}

// State returns q itself, so a QueryState is a Query.
func (q QueryState) State() QueryState {
	return q
}

func (q QueryState) isSingular() bool {
	return q.Page == PageSingular || q.Page == PageBlog
}

func (q QueryState) isArchive() bool {
	switch q.Page {
	case PageTerm, PageAuthor, PagePostTypeArchive, PageArchive:
		return true
	}
	return false
}

// Query reports the current query state.
type Query interface {
	State() QueryState
}

// Request carries the query of one page render. The query's generated
// excerpt is computed at most once per Request, however many kinds of
// description are asked for. A Request must not be shared between goroutines.
type Request struct {
	query Query

	excerpt       string
	excerptCached bool
}

// NewRequest creates a request for the given query. A nil query behaves like
// an unknown page.
func NewRequest(q Query) *Request {
	return &Request{query: q}
}

func (r *Request) state() QueryState {
	if r == nil || r.query == nil {
		return QueryState{}
	}
	return r.query.State()
}

// cachedExcerpt returns the memoized query excerpt, computing it with fill
// on first use.
func (r *Request) cachedExcerpt(fill func() string) string {
	if r == nil {
		return fill()
	}
	if !r.excerptCached {
		r.excerpt = fill()
		r.excerptCached = true
	}
	return r.excerpt
}
