package description

import (
	"strings"

	"github.com/randalmurphal/seokit/strip"
)

func (g *Generator) excerptFromQuery(q QueryState) string {
	switch {
	case q.Page == PageBlog:
		return g.blogPageExcerpt()
	case q.Page == PageFront:
		return g.frontPageExcerpt()
	case q.isArchive():
		return g.archiveExcerptFromQuery(q)
	case q.isSingular():
		return g.singularExcerpt(q.ID)
	}
	return ""
}

func (g *Generator) excerptFromArgs(args Args) string {
	switch {
	case args.Taxonomy != "":
		term, ok := g.site.Term(args.ID, args.Taxonomy)
		if !ok {
			logMissing("term", args.ID)
			return ""
		}
		if excerpt := g.filters.archiveExcerpt(&term); excerpt != "" {
			return excerpt
		}
		return strip.Tags(term.Description)
	case isBlogPageByID(g.site, args.ID):
		return g.blogPageExcerpt()
	case isRealFrontPageByID(g.site, args.ID):
		return g.frontPageExcerpt()
	default:
		return g.singularExcerpt(args.ID)
	}
}

func (g *Generator) blogPageExcerpt() string {
	return g.additions(optionInt(g.site, OptionPageForPosts))
}

func (g *Generator) frontPageExcerpt() string {
	id := frontPageID(g.site)
	var excerpt string
	if isStaticFrontPage(g.site, id) {
		excerpt = g.singularExcerpt(id)
	}
	if excerpt == "" {
		excerpt = g.additions(id)
	}
	return excerpt
}

func (g *Generator) archiveExcerptFromQuery(q QueryState) string {
	var term *Term
	if q.Page == PageTerm {
		if t, ok := g.site.Term(q.ID, q.Taxonomy); ok {
			term = &t
		} else {
			logMissing("term", q.ID)
		}
	}

	if excerpt := g.filters.archiveExcerpt(term); excerpt != "" {
		return excerpt
	}

	switch q.Page {
	case PageTerm:
		if term == nil {
			return ""
		}
		// Term descriptions are plain text.
		return strip.Tags(term.Description)
	case PageAuthor:
		return strip.Markup(g.site.AuthorDescription(q.ID))
	case PagePostTypeArchive:
		return g.filters.postTypeArchiveExcerpt(q)
	default:
		return g.filters.fallbackArchiveExcerpt(q)
	}
}

// singularExcerpt is the post's own excerpt, else its content. Protected
// posts and posts laid out by a page builder yield "".
func (g *Generator) singularExcerpt(id int64) string {
	post, ok := g.site.Post(id)
	if !ok {
		logMissing("post", id)
		return ""
	}
	if post.Protected {
		return ""
	}

	if strings.TrimSpace(post.Excerpt) != "" {
		return strip.Markup(post.Excerpt)
	}
	if post.PageBuilder {
		return ""
	}
	// Embed URLs are only stripped from the body.
	return strip.Excerpt(post.Content)
}

// additions builds "Latest posts: <title> on <blogname>" for the posts page
// and "<tagline> on <blogname>" for the front page.
func (g *Generator) additions(id int64) string {
	var title string
	switch {
	case isBlogPageByID(g.site, id):
		post, ok := g.site.Post(id)
		if !ok {
			logMissing("post", id)
			return ""
		}
		if t := strings.TrimSpace(post.Title); t != "" {
			title = "Latest posts: " + t
		}
	case isRealFrontPageByID(g.site, id):
		title = strings.TrimSpace(g.site.Option(OptionTagline))
	}

	if title == "" {
		return ""
	}
	return strings.TrimSpace(title + " on " + strings.TrimSpace(g.site.Option(OptionBlogName)))
}
