package config

import "fmt"

// Bounds are the character length guidelines for one kind of description.
// A description between GoodLower and GoodUpper reads well in results;
// anything outside Lower and Upper is likely to be rewritten or cut.
type Bounds struct {
	Lower     int `json:"lower" yaml:"lower" toml:"lower" jsonschema:"minimum=0"`
	GoodLower int `json:"good_lower" yaml:"good_lower" toml:"good_lower" jsonschema:"minimum=0"`
	GoodUpper int `json:"good_upper" yaml:"good_upper" toml:"good_upper" jsonschema:"minimum=1"`
	Upper     int `json:"upper" yaml:"upper" toml:"upper" jsonschema:"minimum=1"`
}

// Guidelines holds Bounds per description kind.
type Guidelines struct {
	Search    Bounds `json:"search" yaml:"search" toml:"search"`
	OpenGraph Bounds `json:"opengraph" yaml:"opengraph" toml:"opengraph"`
	Twitter   Bounds `json:"twitter" yaml:"twitter" toml:"twitter"`
}

// DefaultGuidelines returns the stock length guidelines.
func DefaultGuidelines() Guidelines {
	return Guidelines{
		Search:    Bounds{Lower: 45, GoodLower: 80, GoodUpper: 160, Upper: 320},
		OpenGraph: Bounds{Lower: 45, GoodLower: 80, GoodUpper: 200, Upper: 300},
		Twitter:   Bounds{Lower: 45, GoodLower: 80, GoodUpper: 200, Upper: 200},
	}
}

// Validate checks that 0 <= Lower <= GoodLower <= GoodUpper <= Upper and
// that GoodUpper is positive.
func (b Bounds) Validate() error {
	if b.Lower < 0 {
		return fmt.Errorf("%w: lower must be >= 0, got %d", ErrInvalidGuidelines, b.Lower)
	}
	if b.GoodUpper <= 0 {
		return fmt.Errorf("%w: good_upper must be > 0, got %d", ErrInvalidGuidelines, b.GoodUpper)
	}
	if b.Lower > b.GoodLower || b.GoodLower > b.GoodUpper || b.GoodUpper > b.Upper {
		return fmt.Errorf("%w: want lower <= good_lower <= good_upper <= upper, got %d/%d/%d/%d",
			ErrInvalidGuidelines, b.Lower, b.GoodLower, b.GoodUpper, b.Upper)
	}
	return nil
}

// Validate checks every kind's bounds.
func (g Guidelines) Validate() error {
	if err := g.Search.Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if err := g.OpenGraph.Validate(); err != nil {
		return fmt.Errorf("opengraph: %w", err)
	}
	if err := g.Twitter.Validate(); err != nil {
		return fmt.Errorf("twitter: %w", err)
	}
	return nil
}

// Grade rates a description length against guidelines.
type Grade int

const (
	GradeEmpty Grade = iota
	GradeTooShort
	GradeShort
	GradeGood
	GradeLong
	GradeTooLong
)

var gradeNames = [...]string{"empty", "too_short", "short", "good", "long", "too_long"}

func (g Grade) String() string {
	if g < 0 || int(g) >= len(gradeNames) {
		return "unknown"
	}
	return gradeNames[g]
}

// Grade rates a length of n characters.
func (b Bounds) Grade(n int) Grade {
	switch {
	case n <= 0:
		return GradeEmpty
	case n < b.Lower:
		return GradeTooShort
	case n < b.GoodLower:
		return GradeShort
	case n <= b.GoodUpper:
		return GradeGood
	case n <= b.Upper:
		return GradeLong
	default:
		return GradeTooLong
	}
}

// Fits reports whether n characters stay within the hard upper bound.
func (b Bounds) Fits(n int) bool {
	return n <= b.Upper
}
