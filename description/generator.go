package description

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/seokit/config"
	"github.com/randalmurphal/seokit/excerpt"
)

// Generator resolves descriptions for a Site.
type Generator struct {
	site       Site
	guidelines config.Guidelines
	trimmer    *excerpt.Trimmer
	filters    Filters
	metrics    Recorder
}

// New creates a generator with default guidelines, trimmer and no metrics.
func New(site Site) *Generator {
	return &Generator{
		site:       site,
		guidelines: config.DefaultGuidelines(),
		trimmer:    excerpt.New(),
		metrics:    NoopRecorder{},
	}
}

// WithConfig applies the guidelines and suffix of a settings file. The
// suffix goes on a copy of the current trimmer, so a decoder or texturizer
// set with WithTrimmer is kept and the caller's trimmer is left unchanged.
func (g *Generator) WithConfig(cfg config.Config) *Generator {
	g.guidelines = cfg.Guidelines
	tr := *g.trimmer
	g.trimmer = tr.WithSuffix(cfg.Suffix)
	return g
}

// WithGuidelines sets the length guidelines used to trim generated excerpts.
func (g *Generator) WithGuidelines(gl config.Guidelines) *Generator {
	g.guidelines = gl
	return g
}

// WithTrimmer sets the excerpt trimmer.
func (g *Generator) WithTrimmer(t *excerpt.Trimmer) *Generator {
	g.trimmer = t
	return g
}

// WithFilters sets the filter hooks.
func (g *Generator) WithFilters(f Filters) *Generator {
	g.filters = f
	return g
}

// WithMetrics sets the metrics recorder.
func (g *Generator) WithMetrics(r Recorder) *Generator {
	if r == nil {
		r = NoopRecorder{}
	}
	g.metrics = r
	return g
}

// Guidelines returns the generator's length guidelines.
func (g *Generator) Guidelines() config.Guidelines {
	return g.guidelines
}

// Bounds returns the length guidelines for one kind.
func (g *Generator) Bounds(kind Kind) config.Bounds {
	return BoundsFor(g.guidelines, kind)
}

// BoundsFor picks one kind's bounds out of gl.
func BoundsFor(gl config.Guidelines, kind Kind) config.Bounds {
	switch kind {
	case OpenGraph:
		return gl.OpenGraph
	case Twitter:
		return gl.Twitter
	default:
		return gl.Search
	}
}

// Description returns the search description: the custom field, else a
// generated excerpt.
func (g *Generator) Description(req *Request, args *Args, escape bool) string {
	return g.DescriptionFor(req, args, Search, escape)
}

// OpenGraphDescription returns the Open Graph description.
func (g *Generator) OpenGraphDescription(req *Request, args *Args, escape bool) string {
	return g.DescriptionFor(req, args, OpenGraph, escape)
}

// TwitterDescription returns the Twitter card description.
func (g *Generator) TwitterDescription(req *Request, args *Args, escape bool) string {
	return g.DescriptionFor(req, args, Twitter, escape)
}

// DescriptionFor returns the description of the given kind.
func (g *Generator) DescriptionFor(req *Request, args *Args, kind Kind, escape bool) string {
	source := SourceCustom
	desc := g.customFor(req, args, kind)
	if desc == "" {
		source = SourceGenerated
		desc = g.GeneratedDescription(req, args, kind, false)
	}
	if desc == "" {
		source = SourceNone
	}

	g.metrics.RecordDescription(kind, source, utf8.RuneCountInString(desc))

	if escape {
		return Escape(desc)
	}
	return desc
}

// CustomDescription returns the search description typed by the site owner,
// after the CustomField filter.
func (g *Generator) CustomDescription(req *Request, args *Args, escape bool) string {
	desc := g.customSearch(req, args)
	if escape {
		return Escape(desc)
	}
	return desc
}

func (g *Generator) customFor(req *Request, args *Args, kind Kind) string {
	switch kind {
	case OpenGraph:
		return g.customOpenGraph(req, args)
	case Twitter:
		return g.customTwitter(req, args)
	default:
		return g.customSearch(req, args)
	}
}

// GeneratedDescription returns an excerpt of the content trimmed to the
// kind's GoodUpper guideline. It is "" when automatic descriptions are off.
func (g *Generator) GeneratedDescription(req *Request, args *Args, kind Kind, escape bool) string {
	if !g.autoDescriptionEnabled(args) {
		return ""
	}

	var source string
	if args == nil {
		source = req.cachedExcerpt(func() string { return g.excerptFromQuery(req.state()) })
	} else {
		source = g.excerptFromArgs(*args)
	}
	source = g.filters.fetchedExcerpt(source, args)

	res := g.trimmer.TrimWithResult(source, g.Bounds(kind).GoodUpper)
	if source != "" {
		g.metrics.RecordTrim(kind, res.Rule, res.Truncated)
	}

	desc := g.filters.generated(res.Text, args)
	if escape {
		return Escape(desc)
	}
	return desc
}

func (g *Generator) autoDescriptionEnabled(args *Args) bool {
	enabled := optionBool(g.site, OptionAutoDescription, true)
	return g.filters.autoDescription(enabled, args)
}

// firstNonEmpty returns the first non-empty value, evaluating lazily.
func firstNonEmpty(fns ...func() string) string {
	for _, fn := range fns {
		if v := strings.TrimSpace(fn()); v != "" {
			return v
		}
	}
	return ""
}

func (g *Generator) option(name string) func() string {
	return func() string { return g.site.Option(name) }
}

func (g *Generator) postMeta(id int64, key string) func() string {
	return func() string { return g.site.PostMeta(id, key) }
}

func (g *Generator) termMeta(id int64, key string) func() string {
	return func() string { return g.site.TermMeta(id, key) }
}

func logMissing(what string, id int64) {
	slog.Debug("description source not found",
		slog.String("kind", what),
		slog.Int64("id", id))
}
