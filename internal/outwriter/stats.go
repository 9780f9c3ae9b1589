package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintStatsTable renders a per-section summary of the generated changelog
// using the tablewriter API.
func PrintStatsTable(w io.Writer, result *schema.ChangelogResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Section", "Commits", "Breaking"})

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, section := range result.Sections {
		breaking := 0
		for _, c := range section.Commits {
			if c.Breaking {
				breaking++
			}
		}
		data = append(data, []string{
			formatSectionLabel(section, breaking > 0, cfg),
			strconv.Itoa(len(section.Commits)),
			strconv.Itoa(breaking),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Total: %d commits (%d breaking) across %d sections, %d contributors\n",
		schema.TotalCommits(result.Sections),
		schema.TotalBreaking(result.Sections),
		len(result.Sections),
		len(result.Contributors))
	return nil
}

// formatSectionLabel colors the section title when it contains breaking
// changes and colors are enabled.
func formatSectionLabel(section schema.Section, hasBreaking bool, cfg *contract.Config) string {
	title := contract.TruncateText(section.Title, GetTableWidth(cfg)/2)
	if cfg.UseColors && hasBreaking {
		return contract.BreakingColor.Sprint(title)
	}
	return title
}

// PrintContributorTable renders the contributor list as a table.
func PrintContributorTable(w io.Writer, result *schema.ChangelogResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Contributor"})

	maxWidth := GetTableWidth(cfg) - 8 // Rank column plus borders
	var data [][]string
	for i, id := range result.Contributors {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(id, maxWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%d contributors between %s and %s\n",
		len(result.Contributors), rangeStart(result), result.ToRef)
	return nil
}

// rangeStart names the lower bound of the range for display.
func rangeStart(result *schema.ChangelogResult) string {
	if result.FromRef == "" {
		return "the beginning"
	}
	return result.FromRef
}
