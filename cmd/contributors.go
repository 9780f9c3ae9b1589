package cmd

import (
	"github.com/huangsam/chlog/core"
	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/internal/outwriter"
	"github.com/huangsam/chlog/schema"
	"github.com/spf13/cobra"
)

// contributorsCmd lists the deduplicated contributors for a range.
var contributorsCmd = &cobra.Command{
	Use:   "contributors [repo-path]",
	Short: "List the contributors for a commit range.",
	Long: `List the deduplicated contributor identities for a commit range,
in order of first appearance in the history.

Identities are "Name <email>" pairs; with --hide-author-email two people
sharing a display name collapse into one entry.

Examples:
  # Contributors since the last release
  chlog contributors --from v1.2.0

  # Names only
  chlog contributors --from v1.2.0 --hide-author-email`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		commits, err := core.ReadCommits(rootCtx, cfg, gitClient)
		if err != nil {
			contract.LogFatal("Cannot read commit history", err)
		}

		result := &schema.ChangelogResult{
			Contributors: core.Contributors(commits, cfg),
			FromRef:      cfg.FromRef,
			ToRef:        cfg.ToRef,
		}
		ow := outwriter.NewOutWriter()
		if err := ow.WriteContributors(result, cfg); err != nil {
			contract.LogFatal("Cannot write contributors", err)
		}
	},
}
