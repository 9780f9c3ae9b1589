package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/internal/hosting"
	"github.com/huangsam/chlog/schema"
)

// dateHeaderFormat is the date stamp embedded in the document header.
const dateHeaderFormat = "2006-01-02"

// renderClock supplies the header date; tests override it for stable output.
var renderClock = time.Now

// RenderMarkdown turns the grouped sections and contributors into the
// changelog document body.
func RenderMarkdown(sections []schema.Section, contributors []string, cfg *contract.Config, compareURL string) string {
	var b strings.Builder

	if cfg.NoDates {
		fmt.Fprintf(&b, "## %s\n", cfg.ToRef)
	} else {
		fmt.Fprintf(&b, "## %s (%s)\n", cfg.ToRef, renderClock().Format(dateHeaderFormat))
	}

	if compareURL != "" {
		fmt.Fprintf(&b, "\n[compare changes](%s)\n", compareURL)
	}

	for _, section := range sections {
		fmt.Fprintf(&b, "\n### %s\n\n", section.Title)
		for _, commit := range section.Commits {
			b.WriteString(renderCommitLine(commit, cfg))
			b.WriteByte('\n')
		}
	}

	if len(contributors) > 0 {
		b.WriteString("\n### ❤️ Contributors\n\n")
		for _, id := range contributors {
			fmt.Fprintf(&b, "- %s\n", id)
		}
	}

	return b.String()
}

// renderCommitLine formats one commit entry: scope-prefixed description,
// then a commit link or bare short hash, then a breaking annotation.
func renderCommitLine(commit schema.Commit, cfg *contract.Config) string {
	var b strings.Builder

	if commit.Scope != "" {
		fmt.Fprintf(&b, "- **%s**: %s", commit.Scope, commit.Description)
	} else {
		fmt.Fprintf(&b, "- %s", commit.Description)
	}

	if url := hosting.CommitURL(cfg.RepoURL, commit.Hash); url != "" {
		fmt.Fprintf(&b, " ([%s](%s))", commit.ShortHash, url)
	} else {
		fmt.Fprintf(&b, " (%s)", commit.ShortHash)
	}

	if commit.Breaking {
		b.WriteString(" ⚠️ BREAKING")
	}

	return b.String()
}
