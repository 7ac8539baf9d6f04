package description

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const siteFixture = `
options:
  blogname: Example Blog
  blogdescription: Notes on things
  show_on_front: page
  page_on_front: 2
  page_for_posts: 3
posts:
  - id: 2
    title: Home
    content: "<p>Welcome to the home page.</p>"
  - id: 3
    title: Journal
  - id: 10
    title: Custom
    content: "<p>Body text.</p>"
    meta:
      _genesis_description: Search custom.
      _open_graph_description: OG custom.
      _twitter_description: Twitter custom.
  - id: 11
    title: OG only
    content: "<p>Body.</p>"
    meta:
      _open_graph_description: OG only custom.
  - id: 12
    title: Search only
    meta:
      _genesis_description: Search only custom.
  - id: 20
    title: Long
    content: "<p>First sentence here. Second sentence continues with many more words that go on and on.</p>"
  - id: 21
    title: Excerpted
    excerpt: Hand made excerpt.
    content: "<p>Content ignored.</p>"
  - id: 22
    title: Secret
    protected: true
    content: "<p>Secret.</p>"
  - id: 23
    title: Built
    page_builder: true
    content: "[vc_row]Built[/vc_row]"
  - id: 24
    title: Embeds
    content: "Intro line\nhttps://www.youtube.com/watch?v=x\n<p>Fish &amp; chips.</p>"
  - id: 25
    title: Linked
    excerpt: "Watch this\nhttps://example.com/clip"
    content: "<p>Body.</p>"
terms:
  - id: 7
    taxonomy: category
    name: News
    description: All the news that fits.
    meta:
      tw_description: Term twitter.
  - id: 8
    taxonomy: post_tag
    name: Things
    description: Tagged things.
    meta:
      description: Tag custom.
authors:
  - id: 1
    description: "<p>Writes about <b>Go</b>.</p>"
`

// newSite parses the shared fixture and applies option overrides.
func newSite(t *testing.T, options map[string]string) *MemorySite {
	t.Helper()
	site, err := ParseSite([]byte(siteFixture))
	require.NoError(t, err)
	for k, v := range options {
		site.Options[k] = v
	}
	return site
}

// countingSite counts Post lookups.
type countingSite struct {
	*MemorySite
	posts int
}

func (c *countingSite) Post(id int64) (Post, bool) {
	c.posts++
	return c.MemorySite.Post(id)
}

func args(id int64, taxonomy string) *Args {
	return &Args{ID: id, Taxonomy: taxonomy}
}
