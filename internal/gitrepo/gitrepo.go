// Package gitrepo inspects local repositories with go-git, so repository
// detection, tag lookup and remote discovery work without the git binary.
package gitrepo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/huangsam/chlog/internal/contract"
)

// Inspector implements contract.RepoInspector on top of go-git.
type Inspector struct{}

var _ contract.RepoInspector = &Inspector{} // Compile-time check

// NewInspector creates a new repository inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// openRepo opens the repository containing dir, walking up to find .git.
func openRepo(dir string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
}

// IsRepository reports whether dir is inside a git repository.
func (i *Inspector) IsRepository(dir string) bool {
	_, err := openRepo(dir)
	return err == nil
}

// LatestTag returns the name of the most recent tag by tagged commit time,
// or an empty string when the repository has no tags.
func (i *Inspector) LatestTag(dir string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("listing tags: %w", err)
	}

	var latestName string
	var latestTime time.Time
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		commit, err := resolveTagCommit(repo, ref)
		if err != nil {
			return nil // Skip tags that do not point at commits
		}
		if latestName == "" || commit.Committer.When.After(latestTime) {
			latestName = ref.Name().Short()
			latestTime = commit.Committer.When
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walking tags: %w", err)
	}
	return latestName, nil
}

// resolveTagCommit follows a tag reference to its commit, handling both
// lightweight and annotated tags.
func resolveTagCommit(repo *git.Repository, ref *plumbing.Reference) (*object.Commit, error) {
	if commit, err := repo.CommitObject(ref.Hash()); err == nil {
		return commit, nil
	}
	tag, err := repo.TagObject(ref.Hash())
	if err != nil {
		return nil, err
	}
	return tag.Commit()
}

// RemoteURL returns the origin remote URL in normalized HTTPS form,
// or an empty string when no origin remote is configured.
func (i *Inspector) RemoteURL(dir string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return NormalizeRemoteURL(urls[0]), nil
}

// NormalizeRemoteURL converts SSH-style remote URLs (user@host:path) to
// HTTPS form and strips a trailing ".git" suffix. HTTPS URLs pass through
// with only the suffix stripped.
func NormalizeRemoteURL(raw string) string {
	url := strings.TrimSpace(raw)
	url = strings.TrimSuffix(url, "/")

	switch {
	case strings.HasPrefix(url, "ssh://"):
		url = strings.TrimPrefix(url, "ssh://")
		if at := strings.Index(url, "@"); at >= 0 {
			url = url[at+1:]
		}
		url = "https://" + strings.Replace(url, ":", "/", 1)
	case strings.Contains(url, "@") && !strings.Contains(url, "://"):
		// scp-like syntax: git@github.com:owner/repo
		at := strings.Index(url, "@")
		url = "https://" + strings.Replace(url[at+1:], ":", "/", 1)
	}

	return strings.TrimSuffix(url, ".git")
}
