// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the output formats and the changelog file handling.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteChangelog emits the generated result: to stdout when no output file
// is configured, otherwise spliced into the target changelog file.
func (ow *OutWriter) WriteChangelog(result *schema.ChangelogResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		fmt.Println(result.Document)
		return nil
	}
	if err := SpliceChangelogFile(cfg.OutputFile, result.Document); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote changelog to %s\n", cfg.OutputFile)
	return nil
}

// WriteStats prints the per-section summary table.
func (ow *OutWriter) WriteStats(result *schema.ChangelogResult, cfg *contract.Config) error {
	return PrintStatsTable(os.Stdout, result, cfg)
}

// WriteContributors prints the contributor table.
func (ow *OutWriter) WriteContributors(result *schema.ChangelogResult, cfg *contract.Config) error {
	return PrintContributorTable(os.Stdout, result, cfg)
}

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// GetTableWidth returns the usable terminal width for table output,
// honoring the configured override and falling back to a conservative
// default when detection fails.
func GetTableWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}
