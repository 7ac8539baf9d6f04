// Package punct classifies runes for excerpt boundary detection.
//
// Every class is derived from Unicode general categories rather than a
// hand-written character list, so the same rules hold for Latin, Cyrillic,
// Arabic, Devanagari and CJK text alike.
//
// # Classes
//
//   - Terminal: Po (other punctuation) except ' " : ¡ ¿. Sentence enders
//     such as . ! ? … and clause enders such as , ; are all terminal.
//   - CoarseBoundary: Po except ' " :, plus Pc, Pd, Pf, Z and M. A coarse
//     cut may be extended by one of these.
//   - Soft: Pc, Pd, Pf, Z, M, ¡, ¿ and the colon. May end a clause without
//     ending a sentence.
//   - Clutter: Pc, Pd, M, ¡, ¿, colon, semicolon, comma and Z. Debris that
//     must not start or end an excerpt.
//   - Closer: Pe and Pf, closing brackets and final quotes.
//   - Word: letters, numbers, marks and the underscore.
package punct
