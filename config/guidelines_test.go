package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGuidelines(t *testing.T) {
	g := DefaultGuidelines()
	require.NoError(t, g.Validate())
	assert.Equal(t, 160, g.Search.GoodUpper)
	assert.Equal(t, 200, g.OpenGraph.GoodUpper)
	assert.Equal(t, 200, g.Twitter.Upper)
}

func TestBounds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		wantErr bool
	}{
		{name: "ordered", bounds: Bounds{Lower: 1, GoodLower: 2, GoodUpper: 3, Upper: 4}},
		{name: "equal bounds", bounds: Bounds{Lower: 5, GoodLower: 5, GoodUpper: 5, Upper: 5}},
		{name: "negative lower", bounds: Bounds{Lower: -1, GoodLower: 2, GoodUpper: 3, Upper: 4}, wantErr: true},
		{name: "zero good upper", bounds: Bounds{}, wantErr: true},
		{name: "good lower above good upper", bounds: Bounds{Lower: 1, GoodLower: 9, GoodUpper: 3, Upper: 10}, wantErr: true},
		{name: "upper below good upper", bounds: Bounds{Lower: 1, GoodLower: 2, GoodUpper: 30, Upper: 10}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGuidelines)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuidelines_ValidateNamesKind(t *testing.T) {
	g := DefaultGuidelines()
	g.Twitter.Upper = 10

	err := g.Validate()
	require.ErrorIs(t, err, ErrInvalidGuidelines)
	assert.Contains(t, err.Error(), "twitter")
}

func TestBounds_Grade(t *testing.T) {
	b := DefaultGuidelines().Search

	tests := []struct {
		n        int
		expected Grade
	}{
		{0, GradeEmpty},
		{10, GradeTooShort},
		{45, GradeShort},
		{80, GradeGood},
		{160, GradeGood},
		{161, GradeLong},
		{320, GradeLong},
		{321, GradeTooLong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, b.Grade(tt.n), "n=%d", tt.n)
	}
	assert.True(t, b.Fits(320))
	assert.False(t, b.Fits(321))
}

func TestGrade_String(t *testing.T) {
	assert.Equal(t, "good", GradeGood.String())
	assert.Equal(t, "too_long", GradeTooLong.String())
	assert.Equal(t, "unknown", Grade(42).String())
}
