package core

import (
	"testing"

	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commitOf builds a parsed commit for grouping tests.
func commitOf(subject, author, email string) schema.Commit {
	return ParseCommit(schema.RawCommit{
		Subject:     subject,
		AuthorName:  author,
		AuthorEmail: email,
	})
}

func TestGroupCommitsFixedOrder(t *testing.T) {
	commits := []schema.Commit{
		commitOf("chore: bump deps", "Jo", "jo@x.dev"),
		commitOf("fix: null pointer", "Jo", "jo@x.dev"),
		commitOf("feat(api): add login", "Jo", "jo@x.dev"),
	}

	sections := GroupCommits(commits, &contract.Config{})
	require.Len(t, sections, 3)

	// Priority order, not occurrence order and not alphabetical.
	assert.Equal(t, schema.TypeFeat, sections[0].Type)
	assert.Equal(t, schema.TypeFix, sections[1].Type)
	assert.Equal(t, schema.TypeChore, sections[2].Type)

	assert.Equal(t, schema.TypeFeat.Title(), sections[0].Title)
	assert.Equal(t, "api", sections[0].Commits[0].Scope)
	assert.Empty(t, sections[1].Commits[0].Scope)
	assert.Zero(t, schema.TotalBreaking(sections))
}

func TestGroupCommitsStableWithinBucket(t *testing.T) {
	commits := []schema.Commit{
		commitOf("fix: first", "Jo", "jo@x.dev"),
		commitOf("feat: break order?", "Jo", "jo@x.dev"),
		commitOf("fix: second", "Jo", "jo@x.dev"),
		commitOf("fix: third", "Jo", "jo@x.dev"),
	}

	sections := GroupCommits(commits, &contract.Config{})
	require.Len(t, sections, 2)

	fixes := sections[1]
	require.Equal(t, schema.TypeFix, fixes.Type)
	require.Len(t, fixes.Commits, 3)
	assert.Equal(t, "first", fixes.Commits[0].Description)
	assert.Equal(t, "second", fixes.Commits[1].Description)
	assert.Equal(t, "third", fixes.Commits[2].Description)
}

func TestGroupCommitsEmptyBucketsOmitted(t *testing.T) {
	commits := []schema.Commit{
		commitOf("feat: only one", "Jo", "jo@x.dev"),
	}
	sections := GroupCommits(commits, &contract.Config{})
	require.Len(t, sections, 1)
	assert.Equal(t, schema.TypeFeat, sections[0].Type)
}

func TestGroupCommitsUnknownLast(t *testing.T) {
	commits := []schema.Commit{
		commitOf("not conventional", "Jo", "jo@x.dev"),
		commitOf("revert: bad change", "Jo", "jo@x.dev"),
		commitOf("feat: good change", "Jo", "jo@x.dev"),
	}
	sections := GroupCommits(commits, &contract.Config{})
	require.Len(t, sections, 3)
	assert.Equal(t, schema.TypeFeat, sections[0].Type)
	assert.Equal(t, schema.TypeRevert, sections[1].Type)
	assert.Equal(t, schema.TypeUnknown, sections[2].Type)
}

func TestGroupCommitsExclusion(t *testing.T) {
	commits := []schema.Commit{
		commitOf("feat: wanted", "Jo", "jo@x.dev"),
		commitOf("feat: by name", "dependabot[bot]", "bot@github.com"),
		commitOf("feat: by email", "Someone", "ci@example.com"),
	}
	cfg := &contract.Config{ExcludeAuthors: []string{"dependabot[bot]", "ci@example.com"}}

	sections := GroupCommits(commits, cfg)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Commits, 1)
	assert.Equal(t, "wanted", sections[0].Commits[0].Description)
}

func TestGroupCommitsNoInput(t *testing.T) {
	assert.Empty(t, GroupCommits(nil, &contract.Config{}))
}
