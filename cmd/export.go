package cmd

import (
	"github.com/huangsam/chlog/core"
	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/internal/outwriter"
	"github.com/spf13/cobra"
)

// exportCmd writes the parsed commit records to a file.
var exportCmd = &cobra.Command{
	Use:   "export [repo-path]",
	Short: "Export parsed commit records to parquet, csv or json.",
	Long: `Read and classify the commit range, then export one record per
commit (hash, author, date, type, scope, description, breaking flag)
instead of rendering a changelog.

Useful for feeding release data into analytics pipelines or spreadsheets.

Examples:
  # Export everything since the last release as parquet
  chlog export --from v1.2.0

  # CSV to a specific file
  chlog export --from v1.2.0 --format csv --export-file commits.csv

  # JSON to stdout
  chlog export --format json --export-file ""`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		commits, err := core.ReadCommits(rootCtx, cfg, gitClient)
		if err != nil {
			contract.LogFatal("Cannot read commit history", err)
		}

		ow := outwriter.NewOutWriter()
		if err := ow.WriteCommitsExport(commits, cfg); err != nil {
			contract.LogFatal("Cannot export commits", err)
		}
	},
}
