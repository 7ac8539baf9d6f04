package excerpt

import (
	"strings"

	"github.com/randalmurphal/seokit/punct"
)

// cleanup strips leading clutter and keeps the text up to its last content
// rune, followed by at most one run of terminal punctuation and closers.
// The second return value reports whether the text ends mid-sentence and
// wants a suffix. Text without any content rune cleans up to "".
func cleanup(s string) (string, bool) {
	runes := []rune(s)
	n := len(runes)

	start := 0
	for start < n && punct.IsClutter(runes[start]) {
		start++
	}

	last := -1
	for i := n - 1; i >= start; i-- {
		if punct.IsContent(runes[i]) {
			last = i
			break
		}
	}
	if last < 0 {
		return "", false
	}

	end := last + 1
	for end < n && punct.IsMark(runes[end]) {
		end++
	}

	// Optional spaces, then a closing run such as ." or ?!).
	j := end
	for j < n && punct.IsSpace(runes[j]) {
		j++
	}
	k := j
	for k < n && !punct.IsClutter(runes[k]) {
		k++
	}
	if k > j {
		return strings.TrimSpace(string(runes[start:k])), false
	}

	return strings.TrimSpace(string(runes[start:end])), true
}
