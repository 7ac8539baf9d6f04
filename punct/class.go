package punct

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
	"golang.org/x/text/width"
)

const (
	invertedExclamation = '¡' // ¡
	invertedQuestion    = '¿' // ¿
)

var (
	// softTable holds the category part of the soft class: Pc, Pd, Pf, Z, M.
	softTable = rangetable.Merge(unicode.Pc, unicode.Pd, unicode.Pf, unicode.Z, unicode.M)

	// clutterTable holds the category part of the clutter class: Pc, Pd, M, Z.
	clutterTable = rangetable.Merge(unicode.Pc, unicode.Pd, unicode.M, unicode.Z)

	// closerTable holds closing brackets and final quotes.
	closerTable = rangetable.Merge(unicode.Pe, unicode.Pf)
)

// IsTerminal reports whether r is terminal punctuation: Po, except the
// apostrophe, the double quote, the colon and the inverted marks ¡ ¿.
func IsTerminal(r rune) bool {
	switch r {
	case '\'', '"', ':', invertedExclamation, invertedQuestion:
		return false
	}
	return unicode.Is(unicode.Po, r)
}

// IsCoarseBoundary reports whether a coarse cut may be extended by r.
func IsCoarseBoundary(r rune) bool {
	switch r {
	case '\'', '"', ':':
		return false
	}
	return unicode.Is(unicode.Po, r) || unicode.Is(softTable, r) || unicode.IsSpace(r)
}

// IsSoft reports whether r may end a clause without ending a sentence.
func IsSoft(r rune) bool {
	switch r {
	case invertedExclamation, invertedQuestion, ':':
		return true
	}
	return unicode.Is(softTable, r) || unicode.IsSpace(r)
}

// IsClutter reports whether r is debris that must not lead or trail an
// excerpt.
func IsClutter(r rune) bool {
	switch r {
	case invertedExclamation, invertedQuestion, ':', ';', ',':
		return true
	}
	return unicode.Is(clutterTable, r) || unicode.IsSpace(r)
}

// IsCloser reports whether r is a closing bracket or final quote.
func IsCloser(r rune) bool {
	return unicode.Is(closerTable, r)
}

// IsSpace reports whether r is a Unicode separator or ASCII whitespace.
func IsSpace(r rune) bool {
	return unicode.Is(unicode.Z, r) || unicode.IsSpace(r)
}

// IsMark reports whether r is a combining mark.
func IsMark(r rune) bool {
	return unicode.Is(unicode.M, r)
}

// IsWord reports whether r belongs to a word: letters, numbers, marks and
// the underscore.
func IsWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || IsMark(r)
}

// IsWide reports whether r is an East Asian wide or fullwidth rune. Wide
// terminal punctuation such as 。 closes a sentence even when the next
// sentence follows without a space.
func IsWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// IsContent reports whether r carries content: it is neither clutter,
// terminal punctuation, nor a closer.
func IsContent(r rune) bool {
	return !IsClutter(r) && !IsTerminal(r) && !IsCloser(r)
}
