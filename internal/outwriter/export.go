package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/internal/parquet"
	"github.com/huangsam/chlog/schema"
)

// WriteCommitsExport exports classified commits, dispatching on the
// configured output format.
func (ow *OutWriter) WriteCommitsExport(commits []schema.Commit, cfg *contract.Config) error {
	switch cfg.Format {
	case schema.ParquetFormat:
		records := parquet.ConvertCommits(commits)
		if err := parquet.WriteCommitsParquet(records, cfg.ExportFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.ExportFile)
	case schema.CSVFormat:
		if err := printCSVCommits(commits, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.JSONFormat:
		if err := printJSONCommits(commits, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format: %s", cfg.Format)
	}
	return nil
}

// printJSONCommits handles opening the file and calling the JSON writer.
func printJSONCommits(commits []schema.Commit, cfg *contract.Config) error {
	return writeWithFile(cfg.ExportFile, func(w io.Writer) error {
		return writeJSON(w, commits)
	}, "Wrote JSON")
}

// printCSVCommits handles opening the file and calling the CSV writer.
func printCSVCommits(commits []schema.Commit, cfg *contract.Config) error {
	return writeWithFile(cfg.ExportFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVCommits(csvWriter, commits)
	}, "Wrote CSV")
}

// writeCSVCommits emits one row per commit with a fixed header.
func writeCSVCommits(w *csv.Writer, commits []schema.Commit) error {
	header := []string{"hash", "short_hash", "author_name", "author_email", "date", "type", "scope", "description", "breaking"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, c := range commits {
		row := []string{
			c.Hash,
			c.ShortHash,
			c.AuthorName,
			c.AuthorEmail,
			c.Date,
			c.Type.String(),
			c.Scope,
			c.Description,
			strconv.FormatBool(c.Breaking),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
