package description

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrSite is returned when a site fixture cannot be loaded.
var ErrSite = errors.New("invalid site fixture")

// Author is an author profile.
type Author struct {
	ID          int64  `yaml:"id"`
	Description string `yaml:"description"`
}

// MemorySite is an in-memory Site, handy for tests and the command line.
//
//	options:
//	  blogname: Example
//	  show_on_front: page
//	  page_on_front: 2
//	posts:
//	  - id: 2
//	    title: Home
//	    content: <p>Welcome.</p>
//	    meta: {_genesis_description: Hand written.}
type MemorySite struct {
	Options map[string]string `yaml:"options"`
	Posts   []MemoryPost      `yaml:"posts"`
	Terms   []MemoryTerm      `yaml:"terms"`
	Authors []Author          `yaml:"authors"`

	posts map[int64]*MemoryPost
	terms map[int64]*MemoryTerm
}

// MemoryPost is a Post with its meta.
type MemoryPost struct {
	Post `yaml:",inline"`
	Meta map[string]string `yaml:"meta"`
}

// MemoryTerm is a Term with its meta.
type MemoryTerm struct {
	Term `yaml:",inline"`
	Meta map[string]string `yaml:"meta"`
}

// ParseSite decodes a YAML site fixture.
func ParseSite(data []byte) (*MemorySite, error) {
	var s MemorySite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSite, err)
	}
	if err := s.index(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadSite reads a YAML site fixture from path.
func LoadSite(path string) (*MemorySite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSite, err)
	}
	return ParseSite(data)
}

func (s *MemorySite) index() error {
	s.posts = make(map[int64]*MemoryPost, len(s.Posts))
	for i := range s.Posts {
		p := &s.Posts[i]
		if _, dup := s.posts[p.ID]; dup {
			return fmt.Errorf("%w: duplicate post id %d", ErrSite, p.ID)
		}
		s.posts[p.ID] = p
	}

	s.terms = make(map[int64]*MemoryTerm, len(s.Terms))
	for i := range s.Terms {
		t := &s.Terms[i]
		if _, dup := s.terms[t.ID]; dup {
			return fmt.Errorf("%w: duplicate term id %d", ErrSite, t.ID)
		}
		s.terms[t.ID] = t
	}
	return nil
}

// Option implements Options.
func (s *MemorySite) Option(name string) string {
	return s.Options[name]
}

// PostMeta implements PostMeta.
func (s *MemorySite) PostMeta(id int64, key string) string {
	if p, ok := s.posts[id]; ok {
		return p.Meta[key]
	}
	return ""
}

// TermMeta implements TermMeta.
func (s *MemorySite) TermMeta(id int64, key string) string {
	if t, ok := s.terms[id]; ok {
		return t.Meta[key]
	}
	return ""
}

// Post implements Content.
func (s *MemorySite) Post(id int64) (Post, bool) {
	p, ok := s.posts[id]
	if !ok {
		return Post{}, false
	}
	return p.Post, true
}

// Term implements Content.
func (s *MemorySite) Term(id int64, taxonomy string) (Term, bool) {
	t, ok := s.terms[id]
	if !ok || (taxonomy != "" && t.Taxonomy != taxonomy) {
		return Term{}, false
	}
	return t.Term, true
}

// AuthorDescription implements Content.
func (s *MemorySite) AuthorDescription(id int64) string {
	for _, a := range s.Authors {
		if a.ID == id {
			return a.Description
		}
	}
	return ""
}
