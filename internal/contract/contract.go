// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"

	"github.com/huangsam/chlog/schema"
)

// Sentinel errors surfaced to the user as distinct fatal conditions.
var (
	// ErrNotARepository indicates the target directory is not under git control.
	ErrNotARepository = errors.New("not a git repository")

	// ErrMalformedRecord indicates a git log record is missing expected fields.
	ErrMalformedRecord = errors.New("malformed git log record")
)

// GitClient defines the history-reader operations the changelog pipeline
// needs. This allows the core logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its standard output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// Log returns the commit records for fromRef..toRef, most-recent-first,
	// excluding merge commits. An empty fromRef means the full history up
	// to toRef.
	Log(ctx context.Context, repoPath, fromRef, toRef string) ([]schema.RawCommit, error)

	// ResolveRef resolves a reference (tag, branch, HEAD) to a full hash.
	ResolveRef(ctx context.Context, repoPath, ref string) (string, error)
}

// CacheStore defines the interface for changelog cache storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// CacheManager defines the interface for accessing the cache store.
type CacheManager interface {
	GetChangelogStore() CacheStore
}

// RepoInspector reports repository-level facts needed outside the commit
// pipeline: presence detection, latest tag and the normalized remote URL.
type RepoInspector interface {
	// IsRepository reports whether dir is inside a git repository.
	IsRepository(dir string) bool

	// LatestTag returns the most recent tag name, or empty when none exists.
	LatestTag(dir string) (string, error)

	// RemoteURL returns the origin remote URL normalized to HTTPS form
	// with any trailing ".git" stripped. Empty when no remote is set.
	RemoteURL(dir string) (string, error)
}
