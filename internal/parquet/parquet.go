// Package parquet provides data structures and functions for exporting
// commit history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/chlog/schema"
	"github.com/parquet-go/parquet-go"
)

// CommitRecord is the flat Parquet representation of a classified commit.
type CommitRecord struct {
	// Hash is the full commit hash
	Hash string `parquet:"hash,snappy"`

	// ShortHash is the abbreviated commit hash
	ShortHash string `parquet:"short_hash,snappy"`

	// AuthorName is the commit author's name
	AuthorName string `parquet:"author_name,snappy"`

	// AuthorEmail is the commit author's email
	AuthorEmail string `parquet:"author_email,snappy"`

	// Date is the author date as reported by git
	Date string `parquet:"date,snappy"`

	// Type is the conventional commit type token
	Type string `parquet:"type,snappy"`

	// Scope is the optional conventional commit scope (nullable)
	Scope *string `parquet:"scope,optional,snappy"`

	// Description is the commit description after classification
	Description string `parquet:"description,snappy"`

	// Breaking marks commits flagged as breaking changes
	Breaking bool `parquet:"breaking,snappy"`
}

// ConvertCommits converts classified commits to CommitRecord for Parquet export.
func ConvertCommits(commits []schema.Commit) []CommitRecord {
	result := make([]CommitRecord, len(commits))
	for i, c := range commits {
		record := CommitRecord{
			Hash:        c.Hash,
			ShortHash:   c.ShortHash,
			AuthorName:  c.AuthorName,
			AuthorEmail: c.AuthorEmail,
			Date:        c.Date,
			Type:        c.Type.String(),
			Description: c.Description,
			Breaking:    c.Breaking,
		}
		if c.Scope != "" {
			scope := c.Scope
			record.Scope = &scope
		}
		result[i] = record
	}
	return result
}

// WriteCommitsParquet writes a slice of CommitRecord structs to a Parquet file.
// The schema is derived from the CommitRecord struct tags.
func WriteCommitsParquet(data []CommitRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[CommitRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
