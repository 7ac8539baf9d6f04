// Package excerpt trims body text into a description excerpt.
//
// The trimmer cuts text to a character budget and closes it at a
// linguistically sensible boundary instead of mid-word or mid-sentence.
// It runs in stages:
//
//  1. Decode HTML character references so &hellip; counts as one rune.
//  2. Coarse cut: the longest prefix within the budget that ends at a word
//     or punctuation boundary.
//  3. Texturize and decode again, so boundary detection sees display
//     punctuation (curly quotes, dashes, the ellipsis glyph).
//  4. Refine: walk the cut with a small state machine and pick the closing
//     boundary: a full sentence end, a clause followed by a short tail, or
//     the last clause boundary before a runaway tail.
//  5. Clean up leading and trailing connector, dash and space debris, and
//     append a suffix when the excerpt stops mid-sentence.
//
// # Basic Usage
//
//	desc := excerpt.Trim(content, 160)
//
// Or with custom collaborators:
//
//	tr := excerpt.New().WithSuffix("…")
//	res := tr.TrimWithResult(content, 160)
//	fmt.Println(res.Text, res.Rule)
//
// # Budget
//
// The budget counts runes (Unicode code points), not bytes and not grapheme
// clusters. The coarse stage may keep one boundary rune past the budget;
// refinement only ever shortens. A base rune is never separated from its
// combining marks.
//
// All functions are pure and safe for concurrent use.
package excerpt
