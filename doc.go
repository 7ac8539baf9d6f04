// Package seokit derives meta descriptions for site content.
//
// seokit is a set of small packages, each usable on its own:
//
//   - punct: Unicode punctuation classes used to find sentence boundaries
//   - entity: HTML character reference decoding
//   - texturize: typographic quotes, dashes and ellipses
//   - excerpt: trimming text to a character budget at a clean boundary
//   - strip: turning post markup into excerpt source text
//   - config: length guidelines, settings files and hot reload
//   - description: search, Open Graph and Twitter description chains
//
// # Quick Start
//
// Trimming an excerpt:
//
//	import "github.com/randalmurphal/seokit/excerpt"
//	text := excerpt.Trim("This is a sentence. This is another.", 20)
//	// "This is a sentence."
//
// Resolving descriptions:
//
//	import "github.com/randalmurphal/seokit/description"
//	site, _ := description.LoadSite("site.yaml")
//	gen := description.New(site)
//	desc := gen.TwitterDescription(nil, &description.Args{ID: 42}, true)
//
// The seodesc command wraps both for the shell.
//
// # Design Philosophy
//
//   - Trimming never fails: any input yields a string, possibly empty
//   - Lengths count runes after entity decoding, not bytes
//   - Each package usable independently
//   - Interfaces for collaborators, concrete types for everything else
package seokit
