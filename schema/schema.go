// Package schema has configs, models and shared constants for all parts of chlog.
package schema

import "time"

// RawCommit is one record from the git history reader, before any
// conventional-commit parsing. Field values are verbatim git output;
// Date in particular is a formatted string that is never reparsed.
type RawCommit struct {
	Hash        string // Full commit hash
	ShortHash   string // Abbreviated hash for display
	AuthorName  string // Author display name
	AuthorEmail string // Author email address
	Date        string // Formatted commit date, passed through as-is
	Subject     string // First line of the commit message
	Body        string // Remaining message text, may be empty
}

// Commit is a RawCommit enriched with the parser's derived fields.
// It owns copies of all its strings and is never mutated after parsing.
type Commit struct {
	RawCommit

	Type        CommitType // Classified conventional-commit type
	Scope       string     // Optional scope label, empty when absent
	Description string     // Subject with the type(scope) prefix stripped
	Breaking    bool       // True when the commit is marked as breaking
}

// Section is one grouping bucket of the report: a commit type plus the
// commits classified under it, in original input order.
type Section struct {
	Type    CommitType `json:"type"`
	Title   string     `json:"title"`
	Commits []Commit   `json:"commits"`
}

// ChangelogResult bundles the rendered document with the structured
// grouping that produced it, so callers can display one and inspect
// the other.
type ChangelogResult struct {
	Document     string    `json:"document"`
	Sections     []Section `json:"sections"`
	Contributors []string  `json:"contributors"`
	FromRef      string    `json:"from_ref,omitempty"`
	ToRef        string    `json:"to_ref"`
	CompareURL   string    `json:"compare_url,omitempty"`
}

// CacheStatus holds status information about the changelog cache store.
type CacheStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int64
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}
