package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatContributor(t *testing.T) {
	tests := []struct {
		name      string
		author    string
		email     string
		hideEmail bool
		expected  string
	}{
		{
			name:     "with email",
			author:   "Samuel Huang",
			email:    "sam@example.com",
			expected: "Samuel Huang <sam@example.com>",
		},
		{
			name:      "email hidden",
			author:    "Samuel Huang",
			email:     "sam@example.com",
			hideEmail: true,
			expected:  "Samuel Huang",
		},
		{
			name:     "empty email still bracketed",
			author:   "Samuel Huang",
			email:    "",
			expected: "Samuel Huang <>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatContributor(tt.author, tt.email, tt.hideEmail))
		})
	}
}

func TestSectionTotals(t *testing.T) {
	sections := []Section{
		{
			Type:  TypeFeat,
			Title: TypeFeat.Title(),
			Commits: []Commit{
				{Breaking: true},
				{},
			},
		},
		{
			Type:  TypeFix,
			Title: TypeFix.Title(),
			Commits: []Commit{
				{},
			},
		},
	}

	assert.Equal(t, 3, TotalCommits(sections))
	assert.Equal(t, 1, TotalBreaking(sections))
	assert.Equal(t, 0, TotalCommits(nil))
	assert.Equal(t, 0, TotalBreaking(nil))
}
