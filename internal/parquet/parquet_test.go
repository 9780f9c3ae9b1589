package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/chlog/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCommits() []schema.Commit {
	return []schema.Commit{
		{
			RawCommit: schema.RawCommit{
				Hash:        "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
				ShortHash:   "aaaaaaa",
				AuthorName:  "Alice",
				AuthorEmail: "alice@example.com",
				Date:        "2026-08-01",
				Subject:     "feat(api): add pagination",
			},
			Type:        schema.TypeFeat,
			Scope:       "api",
			Description: "add pagination",
		},
		{
			RawCommit: schema.RawCommit{
				Hash:        "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
				ShortHash:   "bbbbbbb",
				AuthorName:  "Bob",
				AuthorEmail: "bob@example.com",
				Date:        "2026-08-02",
				Subject:     "fix!: handle empty input",
			},
			Type:        schema.TypeFix,
			Description: "handle empty input",
			Breaking:    true,
		},
	}
}

func TestCommitRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	pqSchema := parquet.SchemaOf(new(CommitRecord))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{
		"hash",
		"short_hash",
		"author_name",
		"author_email",
		"date",
		"type",
		"scope",
		"description",
		"breaking",
	}

	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertCommits(t *testing.T) {
	records := ConvertCommits(sampleCommits())
	require.Len(t, records, 2)

	assert.Equal(t, "feat", records[0].Type)
	require.NotNil(t, records[0].Scope, "Scoped commit should carry its scope")
	assert.Equal(t, "api", *records[0].Scope)
	assert.False(t, records[0].Breaking)

	assert.Equal(t, "fix", records[1].Type)
	assert.Nil(t, records[1].Scope, "Unscoped commit should have nil scope")
	assert.True(t, records[1].Breaking)
}

func TestConvertCommitsUnknownType(t *testing.T) {
	records := ConvertCommits([]schema.Commit{
		{
			RawCommit: schema.RawCommit{
				Hash:      "cccccccccccccccccccccccccccccccccccccccc",
				ShortHash: "ccccccc",
				Subject:   "update readme badges",
			},
			Type:        schema.TypeUnknown,
			Description: "update readme badges",
		},
	})
	require.Len(t, records, 1)
	assert.Equal(t, "unknown", records[0].Type, "Unclassified commits should not export a blank type")
}

func TestWriteCommitsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "commits.parquet")

	data := ConvertCommits(sampleCommits())
	require.NotEmpty(t, data)

	err := WriteCommitsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[CommitRecord](file)
	defer reader.Close()

	readData := make([]CommitRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].Hash, readData[i].Hash)
		assert.Equal(t, data[i].Type, readData[i].Type)
		assert.Equal(t, data[i].Description, readData[i].Description)
		assert.Equal(t, data[i].Breaking, readData[i].Breaking)

		if data[i].Scope == nil {
			assert.Nil(t, readData[i].Scope, "Scope should be nil")
		} else {
			require.NotNil(t, readData[i].Scope)
			assert.Equal(t, *data[i].Scope, *readData[i].Scope)
		}
	}
}

func TestWriteCommitsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_commits.parquet")

	err := WriteCommitsParquet([]CommitRecord{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteCommitsParquet_InvalidPath(t *testing.T) {
	data := ConvertCommits(sampleCommits())
	err := WriteCommitsParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}
