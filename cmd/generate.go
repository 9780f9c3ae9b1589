package cmd

import (
	"fmt"

	"github.com/huangsam/chlog/core"
	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/internal/iocache"
	"github.com/huangsam/chlog/internal/outwriter"
	"github.com/spf13/cobra"
)

// generateCmd runs the full changelog pipeline.
var generateCmd = &cobra.Command{
	Use:   "generate [repo-path]",
	Short: "Generate a changelog for a commit range.",
	Long: `Read git history for a commit range, classify each commit by its
conventional-commit prefix, and render a grouped markdown changelog.

The range is --from (exclusive) to --to (inclusive). An empty --from means
the full history. Commits whose subjects do not follow the conventional
format are kept under a catch-all section, never dropped.

Examples:
  # Print the changelog for everything since the last release tag
  chlog generate --from v1.2.0

  # Splice the new section into an existing CHANGELOG.md
  chlog generate --from v1.2.0 -o CHANGELOG.md

  # Skip bot commits and hide emails
  chlog generate --exclude-authors "dependabot[bot]" --hide-author-email

  # Show the per-section summary and bypass the cache
  chlog generate --stats --no-cache`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if hint := fullHistoryHint(cfg, inspector); hint != "" {
			contract.LogVerbose(cfg.Verbose, "%s", hint)
		}

		result, err := core.BuildChangelog(rootCtx, cfg, gitClient, iocache.Manager.GetChangelogStore())
		if err != nil {
			contract.LogFatal("Cannot generate changelog", err)
		}

		ow := outwriter.NewOutWriter()
		if err := ow.WriteChangelog(result, cfg); err != nil {
			contract.LogFatal("Cannot write changelog", err)
		}
		if cfg.Stats {
			if err := ow.WriteStats(result, cfg); err != nil {
				contract.LogFatal("Cannot write stats", err)
			}
		}
	},
}

// fullHistoryHint suggests the newest tag as a --from candidate when the
// whole history is about to be rendered in verbose mode. The range itself
// is never changed; scoping stays opt-in.
func fullHistoryHint(cfg *contract.Config, inspector contract.RepoInspector) string {
	if cfg.FromRef != "" || !cfg.Verbose {
		return ""
	}
	tag, err := inspector.LatestTag(cfg.RepoPath)
	if err != nil || tag == "" {
		return ""
	}
	return fmt.Sprintf("Rendering full history; pass --from %s to start at the latest tag", tag)
}
