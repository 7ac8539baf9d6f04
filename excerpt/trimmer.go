package excerpt

import (
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/seokit/entity"
	"github.com/randalmurphal/seokit/texturize"
)

// DefaultSuffix marks an excerpt that stops mid-sentence. It is three plain
// dots so a later texturize pass can turn it into a single ellipsis glyph.
const DefaultSuffix = "..."

// Decoder converts HTML character references into literal runes.
type Decoder interface {
	Decode(s string) string
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(s string) string

// Decode calls f(s).
func (f DecoderFunc) Decode(s string) string { return f(s) }

// Texturizer converts plain punctuation into display punctuation. Its
// output may contain character references; the trimmer decodes them.
type Texturizer interface {
	Texturize(s string) string
}

// TexturizerFunc adapts a function to the Texturizer interface.
type TexturizerFunc func(s string) string

// Texturize calls f(s).
func (f TexturizerFunc) Texturize(s string) string { return f(s) }

// Result describes a trimmed excerpt.
type Result struct {
	// Text is the trimmed excerpt, decoded and texturized.
	Text string

	// Rule is the closing rule refinement applied.
	Rule Rule

	// Truncated reports whether any content was cut off.
	Truncated bool
}

// Trimmer trims text into excerpts. A Trimmer holds no per-call state and is
// safe for concurrent use once configured.
type Trimmer struct {
	decoder    Decoder
	texturizer Texturizer
	suffix     string
}

// New creates a trimmer using the entity and texturize packages.
func New() *Trimmer {
	return &Trimmer{
		decoder:    DecoderFunc(entity.Decode),
		texturizer: TexturizerFunc(texturize.Texturize),
		suffix:     DefaultSuffix,
	}
}

// WithDecoder sets a custom character reference decoder.
func (t *Trimmer) WithDecoder(d Decoder) *Trimmer {
	t.decoder = d
	return t
}

// WithTexturizer sets a custom texturizer.
func (t *Trimmer) WithTexturizer(x Texturizer) *Trimmer {
	t.texturizer = x
	return t
}

// WithSuffix sets the suffix appended to excerpts that stop mid-sentence.
func (t *Trimmer) WithSuffix(suffix string) *Trimmer {
	t.suffix = suffix
	return t
}

// Suffix returns the trimmer's suffix.
func (t *Trimmer) Suffix() string {
	return t.suffix
}

// Trim returns text trimmed to at most maxChars runes, closed at the best
// sentence, clause or word boundary.
func (t *Trimmer) Trim(text string, maxChars int) string {
	return t.TrimWithResult(text, maxChars).Text
}

// TrimWithResult trims like Trim and reports how the excerpt was closed.
func (t *Trimmer) TrimWithResult(text string, maxChars int) Result {
	if maxChars <= 0 {
		return Result{Truncated: text != ""}
	}

	decoded := strings.TrimSpace(t.decoder.Decode(text))
	cut, truncated := coarseCut(decoded, maxChars)
	cut = strings.TrimSpace(cut)
	if cut == "" {
		return Result{Truncated: truncated}
	}

	cut = t.decoder.Decode(t.texturizer.Texturize(cut))

	refined, rule := refine(cut)
	if rule == RuleLongTail {
		truncated = true
	}

	out, open := cleanup(refined)
	if out != "" && open && truncated {
		withSuffix := out + t.suffix
		if utf8.RuneCountInString(withSuffix) <= utf8.RuneCountInString(decoded) {
			out = withSuffix
		}
	}

	return Result{Text: out, Rule: rule, Truncated: truncated}
}

var defaultTrimmer = New()

// Trim trims text with the default trimmer.
func Trim(text string, maxChars int) string {
	return defaultTrimmer.Trim(text, maxChars)
}
