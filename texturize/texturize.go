// Package texturize converts plain typewriter punctuation into its
// typographic display form.
//
// Straight quotes become curly quotes, double and triple hyphens become en
// and em dashes, three dots become an ellipsis, and so on. The output is
// markup safe: every substituted glyph and every ampersand is written as a
// numeric character reference, the way a publishing platform emits
// texturized text. Callers that need literal runes decode the result.
package texturize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Display glyphs produced by substitution.
const (
	EnDash             = '–'
	EmDash             = '—'
	Ellipsis           = '…'
	OpeningSingleQuote = '‘'
	ClosingSingleQuote = '’'
	OpeningDoubleQuote = '“'
	ClosingDoubleQuote = '”'
	Prime              = '′'
	DoublePrime        = '″'
	Trademark          = '™'
	Multiplication     = '×'
)

// punycodeMarker protects "xn--" host labels from dash substitution.
const punycodeMarker = "\x00xn\x00"

var staticReplacer = strings.NewReplacer(
	"---", string(EmDash),
	" -- ", " "+string(EmDash)+" ",
	"--", string(EnDash),
	" - ", " "+string(EnDash)+" ",
	"...", string(Ellipsis),
	"``", string(OpeningDoubleQuote),
	"''", string(ClosingDoubleQuote),
	" (tm)", " "+string(Trademark),
	" (TM)", " "+string(Trademark),
)

var dimensionPattern = regexp.MustCompile(`\b(\d[\d.,]*)x(\d[\d.,]*)\b`)

// Texturize returns s with typographic substitutions applied, encoded as
// numeric character references. s is plain text: it may contain literal
// ampersands but no markup.
func Texturize(s string) string {
	return encode(Substitute(s))
}

// Substitute returns s with typographic substitutions applied as literal
// runes.
func Substitute(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "xn--", punycodeMarker)
	s = staticReplacer.Replace(s)
	s = strings.ReplaceAll(s, punycodeMarker, "xn--")
	s = dimensionPattern.ReplaceAllString(s, "${1}"+string(Multiplication)+"${2}")

	return curlQuotes(s)
}

// curlQuotes replaces straight quotes by context: opening after the start of
// text, a space or opening punctuation; primes after digits; apostrophes
// inside words; closing otherwise.
func curlQuotes(s string) string {
	if !strings.ContainsAny(s, `'"`) {
		return s
	}

	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s))

	for i, r := range runes {
		var prev, next rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch r {
		case '\'':
			sb.WriteRune(singleQuote(prev, next))
		case '"':
			sb.WriteRune(doubleQuote(prev, next))
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

func singleQuote(prev, next rune) rune {
	switch {
	case unicode.IsDigit(prev) && !unicode.IsLetter(next):
		return Prime
	case isWordRune(prev) && isWordRune(next):
		return ClosingSingleQuote
	case opensQuote(prev) && unicode.IsDigit(next):
		// Abbreviated years: '99.
		return ClosingSingleQuote
	case opensQuote(prev):
		return OpeningSingleQuote
	default:
		return ClosingSingleQuote
	}
}

func doubleQuote(prev, next rune) rune {
	switch {
	case unicode.IsDigit(prev) && !unicode.IsLetter(next):
		return DoublePrime
	case opensQuote(prev):
		return OpeningDoubleQuote
	default:
		return ClosingDoubleQuote
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// opensQuote reports whether a quote following prev opens a quotation.
// The zero rune stands for the start of text.
func opensQuote(prev rune) bool {
	if prev == 0 || unicode.IsSpace(prev) {
		return true
	}
	switch prev {
	case '(', '[', '{', '<', '/', '-', EnDash, EmDash, OpeningDoubleQuote, OpeningSingleQuote:
		return true
	}
	return false
}

// encode writes ampersands and substituted glyphs as numeric references.
func encode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/8)

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]

		if r == '&' || isGlyph(r) {
			sb.WriteString("&#")
			if r == '&' {
				sb.WriteString("038")
			} else {
				sb.WriteString(strconv.Itoa(int(r)))
			}
			sb.WriteByte(';')
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

func isGlyph(r rune) bool {
	switch r {
	case EnDash, EmDash, Ellipsis,
		OpeningSingleQuote, ClosingSingleQuote,
		OpeningDoubleQuote, ClosingDoubleQuote,
		Prime, DoublePrime, Trademark, Multiplication:
		return true
	}
	return false
}
