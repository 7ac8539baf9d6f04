// Package description derives search, Open Graph and Twitter descriptions
// for site content.
//
// Each kind of description is resolved through a fallback chain. A value
// typed by the site owner wins; otherwise an excerpt is generated from the
// content and trimmed to the kind's length guideline:
//
//	gen := description.New(site)
//	req := description.NewRequest(description.QueryState{Page: description.PageSingular, ID: 42})
//	desc := gen.Description(req, nil, true)
//
// Passing nil Args resolves against the request's query; explicit Args
// describe any post or term regardless of the query.
//
// # Custom field chains
//
//   - Search: homepage_description (front page), _genesis_description (posts),
//     term description.
//   - Open Graph: homepage_og_description, _open_graph_description,
//     og_description, then the search chain.
//   - Twitter: homepage_twitter_description, _twitter_description,
//     tw_description, then the Open Graph chain.
//
// A Generator is safe for concurrent use. A Request belongs to one goroutine.
package description
