package core

import (
	"strings"
	"testing"
	"time"

	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins the header date for stable assertions.
func fixedClock(t *testing.T) {
	t.Helper()
	orig := renderClock
	renderClock = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	t.Cleanup(func() { renderClock = orig })
}

func TestRenderMarkdown(t *testing.T) {
	fixedClock(t)

	commits := []schema.Commit{
		ParseCommit(schema.RawCommit{
			Hash:      "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2",
			ShortHash: "a1b2c3d",
			Subject:   "feat(api): add login",
		}),
		ParseCommit(schema.RawCommit{
			Hash:      "b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3",
			ShortHash: "b2c3d4e",
			Subject:   "feat!: drop v1 endpoints",
		}),
	}
	cfg := &contract.Config{
		ToRef:   "v1.1.0",
		FromRef: "v1.0.0",
		RepoURL: "https://github.com/huangsam/chlog",
	}
	sections := GroupCommits(commits, cfg)
	doc := RenderMarkdown(sections, []string{"Samuel Huang <sam@example.com>"}, cfg,
		"https://github.com/huangsam/chlog/compare/v1.0.0...v1.1.0")

	assert.True(t, strings.HasPrefix(doc, "## v1.1.0 (2026-08-30)\n"), "header embeds ref and date")
	assert.Contains(t, doc, "[compare changes](https://github.com/huangsam/chlog/compare/v1.0.0...v1.1.0)")
	assert.Contains(t, doc, "### 🚀 Features")
	assert.Contains(t, doc, "- **api**: add login ([a1b2c3d](https://github.com/huangsam/chlog/commit/a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2))")
	assert.Contains(t, doc, "- drop v1 endpoints ([b2c3d4e](https://github.com/huangsam/chlog/commit/b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3)) ⚠️ BREAKING")
	assert.Contains(t, doc, "### ❤️ Contributors\n\n- Samuel Huang <sam@example.com>")
}

func TestRenderMarkdownNoDates(t *testing.T) {
	cfg := &contract.Config{ToRef: "HEAD", NoDates: true}
	doc := RenderMarkdown(nil, nil, cfg, "")
	assert.True(t, strings.HasPrefix(doc, "## HEAD\n"))
	assert.NotContains(t, doc, "(20")
}

func TestRenderMarkdownBareHashWithoutRepoURL(t *testing.T) {
	fixedClock(t)

	commits := []schema.Commit{
		ParseCommit(schema.RawCommit{ShortHash: "a1b2c3d", Subject: "fix: null pointer"}),
	}
	cfg := &contract.Config{ToRef: "HEAD"}
	sections := GroupCommits(commits, cfg)
	doc := RenderMarkdown(sections, nil, cfg, "")

	assert.Contains(t, doc, "- null pointer (a1b2c3d)")
	assert.NotContains(t, doc, "compare changes")
	assert.NotContains(t, doc, "Contributors")
}

func TestRenderMarkdownSectionOrder(t *testing.T) {
	fixedClock(t)

	commits := []schema.Commit{
		ParseCommit(schema.RawCommit{ShortHash: "1111111", Subject: "chore: bump deps"}),
		ParseCommit(schema.RawCommit{ShortHash: "2222222", Subject: "fix: null pointer"}),
		ParseCommit(schema.RawCommit{ShortHash: "3333333", Subject: "feat(api): add login"}),
	}
	cfg := &contract.Config{ToRef: "HEAD"}
	sections := GroupCommits(commits, cfg)
	doc := RenderMarkdown(sections, nil, cfg, "")

	features := strings.Index(doc, "### 🚀 Features")
	fixes := strings.Index(doc, "### 🐞 Bug Fixes")
	chores := strings.Index(doc, "### 🧹 Chores")
	require.True(t, features >= 0 && fixes >= 0 && chores >= 0)
	assert.Less(t, features, fixes)
	assert.Less(t, fixes, chores)
}
