package excerpt

import "github.com/randalmurphal/seokit/punct"

// coarseCut returns the longest prefix of s holding at most maxChars runes,
// extended by one rune when that rune is a boundary. When no boundary occurs
// within the budget the prefix is cut at exactly maxChars runes. The second
// return value reports whether anything was cut off.
func coarseCut(s string, maxChars int) (string, bool) {
	if maxChars <= 0 {
		return "", s != ""
	}

	runes := []rune(s)
	if len(runes) <= maxChars {
		return s, false
	}

	end := maxChars
	for k := maxChars; k >= 0; k-- {
		if punct.IsCoarseBoundary(runes[k]) {
			end = k + 1
			break
		}
	}

	// Never leave combining marks behind without their base.
	for end > 0 && end < len(runes) && punct.IsMark(runes[end]) {
		end--
	}

	return string(runes[:end]), true
}
