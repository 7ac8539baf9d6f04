package excerpt

import (
	"strings"

	"github.com/randalmurphal/seokit/punct"
)

// MaxTailWords is the number of words that may trail the last boundary
// before the tail counts as a runaway and is dropped.
const MaxTailWords = 3

// Rule identifies the closing rule refinement applied.
type Rule int

const (
	// RuleNone means refinement did not run (empty input).
	RuleNone Rule = iota

	// RuleHardStop keeps everything: the text ends with terminal punctuation.
	RuleHardStop

	// RuleShortTail keeps everything: the text ends with a closing bracket or
	// final quote, or at most MaxTailWords words follow the last boundary.
	RuleShortTail

	// RuleLongTail drops the words following the last boundary.
	RuleLongTail

	// RuleNoBoundary keeps the whole body: no boundary was found.
	RuleNoBoundary
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleHardStop:
		return "hard_stop"
	case RuleShortTail:
		return "short_tail"
	case RuleLongTail:
		return "long_tail"
	case RuleNoBoundary:
		return "no_boundary"
	default:
		return "none"
	}
}

type scanState int

const (
	// seekingBody: no boundary seen yet, words belong to the body.
	seekingBody scanState = iota

	// inSoftBoundary: a stop or clause run was just passed.
	inSoftBoundary

	// countingTailWords: words after the rightmost boundary are counted.
	countingTailWords

	done
)

// scanner walks text once, left to right, remembering the rightmost
// boundary and how many words follow it.
type scanner struct {
	runes []rune
	pos   int
	state scanState

	bodyStart    int
	sentenceOpen bool
	inWord       bool

	lastStop  int // end of the rightmost stop, -1 if none
	boundary  int // end of the rightmost stop or clause run, -1 if none
	tailWords int
}

func newScanner(s string) *scanner {
	return &scanner{
		runes:    []rune(s),
		lastStop: -1,
		boundary: -1,
	}
}

// refine returns s closed at its best boundary, and the rule that chose it.
func refine(s string) (string, Rule) {
	if s == "" {
		return "", RuleNone
	}

	// Trailing clutter never counts as the rightmost boundary.
	sc := newScanner(strings.TrimRightFunc(s, isTrailingDebris))
	sc.skipLeading()
	for sc.state != done {
		sc.step()
	}
	return sc.result()
}

// isTrailingDebris reports whether r is clutter that may be cut from the end
// of text. Combining marks stay with their base.
func isTrailingDebris(r rune) bool {
	return punct.IsClutter(r) && !punct.IsMark(r)
}

// skipLeading drops clutter and stray terminal punctuation ahead of the
// first body rune.
func (sc *scanner) skipLeading() {
	for sc.pos < len(sc.runes) {
		r := sc.runes[sc.pos]
		if !punct.IsClutter(r) && !punct.IsTerminal(r) {
			break
		}
		sc.pos++
	}
	sc.bodyStart = sc.pos
}

func (sc *scanner) step() {
	if sc.pos >= len(sc.runes) {
		sc.state = done
		return
	}

	r := sc.runes[sc.pos]
	switch {
	case punct.IsWord(r):
		sc.word()
	case punct.IsTerminal(r):
		if sc.sentenceOpen && sc.closesSentence(sc.pos) {
			sc.stop()
			return
		}
		// Body punctuation: 3.14, AT&T, a lone "&".
		if !sc.joinsWords(sc.pos, sc.pos+1) {
			sc.inWord = false
		}
		sc.pos++
	case punct.IsSoft(r) || punct.IsCloser(r):
		sc.softRun()
	default:
		sc.inWord = false
		sc.pos++
	}
}

func (sc *scanner) word() {
	if !sc.inWord {
		sc.inWord = true
		if sc.state != seekingBody {
			sc.state = countingTailWords
			sc.tailWords++
		}
	}
	sc.sentenceOpen = true
	sc.pos++
}

// stop consumes a terminal rune plus any terminal runes and closers that
// directly follow it, as in ?!” or .).
func (sc *scanner) stop() {
	end := sc.pos + 1
	for end < len(sc.runes) && (punct.IsTerminal(sc.runes[end]) || punct.IsCloser(sc.runes[end])) {
		end++
	}

	sc.lastStop = end
	sc.markBoundary(end)
	sc.sentenceOpen = false
	sc.pos = end
}

// softRun consumes a run of soft runes and closers. The run is a clause
// boundary when it holds a dash, connector, final quote or closer and does
// not join two halves of one word, as the hyphen in well-known or the
// apostrophe in don’t do. Colons and inverted marks introduce rather than
// close, so they never make a boundary.
func (sc *scanner) softRun() {
	start := sc.pos
	end := start
	hasSpace, hasOther := false, false
	for end < len(sc.runes) {
		r := sc.runes[end]
		if punct.IsWord(r) || !(punct.IsSoft(r) || punct.IsCloser(r)) {
			break
		}
		switch {
		case punct.IsSpace(r):
			hasSpace = true
		case r != ':' && r != '¡' && r != '¿':
			hasOther = true
		}
		end++
	}
	sc.pos = end

	if !hasSpace && sc.joinsWords(start, end) {
		return
	}
	sc.inWord = false

	if hasOther {
		sc.markBoundary(end)
	}
}

func (sc *scanner) markBoundary(end int) {
	sc.boundary = end
	sc.tailWords = 0
	sc.inWord = false
	sc.state = inSoftBoundary
}

// joinsWords reports whether the runes in [start, end) sit between two word
// runes.
func (sc *scanner) joinsWords(start, end int) bool {
	return start > 0 && end < len(sc.runes) &&
		punct.IsWord(sc.runes[start-1]) && punct.IsWord(sc.runes[end])
}

// closesSentence reports whether the terminal rune at i ends a sentence or
// clause. It must be attached to what precedes it and be followed by the
// end of text, a space, a closer or more punctuation. Wide terminal runes
// such as 。 close even when text follows directly.
func (sc *scanner) closesSentence(i int) bool {
	if i == 0 || punct.IsSpace(sc.runes[i-1]) {
		return false
	}
	if i+1 == len(sc.runes) || punct.IsWide(sc.runes[i]) {
		return true
	}
	return !punct.IsWord(sc.runes[i+1])
}

func (sc *scanner) result() (string, Rule) {
	n := len(sc.runes)
	body := string(sc.runes[sc.bodyStart:])

	switch {
	case sc.bodyStart == n:
		return "", RuleNoBoundary
	case sc.lastStop == n:
		return body, RuleHardStop
	case punct.IsCloser(sc.runes[n-1]):
		return body, RuleShortTail
	case sc.boundary < 0:
		return body, RuleNoBoundary
	case sc.tailWords <= MaxTailWords:
		return body, RuleShortTail
	default:
		return string(sc.runes[sc.bodyStart:sc.boundary]), RuleLongTail
	}
}
