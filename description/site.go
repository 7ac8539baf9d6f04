package description

import (
	"strconv"
	"strings"
)

// Site option names.
const (
	OptionBlogName               = "blogname"
	OptionTagline                = "blogdescription"
	OptionShowOnFront            = "show_on_front"
	OptionPageOnFront            = "page_on_front"
	OptionPageForPosts           = "page_for_posts"
	OptionAutoDescription        = "auto_description"
	OptionHomeDescription        = "homepage_description"
	OptionHomeOGDescription      = "homepage_og_description"
	OptionHomeTwitterDescription = "homepage_twitter_description"
)

// Post and term meta keys.
const (
	MetaDescription            = "_genesis_description"
	MetaOGDescription          = "_open_graph_description"
	MetaTwitterDescription     = "_twitter_description"
	TermMetaDescription        = "description"
	TermMetaOGDescription      = "og_description"
	TermMetaTwitterDescription = "tw_description"
)

// Options reads site options. Unset options are "".
type Options interface {
	Option(name string) string
}

// PostMeta reads post meta values. Missing values are "".
type PostMeta interface {
	PostMeta(id int64, key string) string
}

// TermMeta reads term meta values. Missing values are "".
type TermMeta interface {
	TermMeta(id int64, key string) string
}

// Post is the content a description can be generated from.
type Post struct {
	ID          int64  `yaml:"id"`
	Title       string `yaml:"title"`
	Excerpt     string `yaml:"excerpt"`
	Content     string `yaml:"content"`
	Protected   bool   `yaml:"protected"`
	PageBuilder bool   `yaml:"page_builder"`
}

// Term is a category, tag or custom taxonomy term.
type Term struct {
	ID          int64  `yaml:"id"`
	Taxonomy    string `yaml:"taxonomy"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Content looks up posts, terms and author profiles.
type Content interface {
	Post(id int64) (Post, bool)
	// Term finds a term by ID. An empty taxonomy matches any.
	Term(id int64, taxonomy string) (Term, bool)
	AuthorDescription(id int64) string
}

// Site is everything a Generator reads from.
type Site interface {
	Options
	PostMeta
	TermMeta
	Content
}

// optionInt parses a numeric option, 0 when unset or malformed.
func optionInt(o Options, name string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(o.Option(name)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// optionBool parses a boolean option, def when unset or malformed.
func optionBool(o Options, name string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(o.Option(name)))
	if err != nil {
		return def
	}
	return b
}

// frontPageID returns the static front page, or 0 when the front page
// lists posts.
func frontPageID(o Options) int64 {
	if o.Option(OptionShowOnFront) != "page" {
		return 0
	}
	return optionInt(o, OptionPageOnFront)
}

func isStaticFrontPage(o Options, id int64) bool {
	return id != 0 && id == frontPageID(o)
}

func isRealFrontPageByID(o Options, id int64) bool {
	return id == frontPageID(o)
}

// isBlogPageByID reports whether id is the posts page of a site with a
// static front page.
func isBlogPageByID(o Options, id int64) bool {
	return id != 0 && frontPageID(o) != 0 && id == optionInt(o, OptionPageForPosts)
}
