package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/huangsam/chlog/schema"
)

// Field and record separators for git log output. ASCII unit and record
// separators cannot occur in commit metadata, unlike pipes or tabs.
const (
	logFieldSep  = "\x1f"
	logRecordSep = "\x1e"
)

// logFormat yields: hash, short hash, author name, author email, date,
// subject, body per record.
const logFormat = "%H" + logFieldSep + "%h" + logFieldSep + "%an" + logFieldSep +
	"%ae" + logFieldSep + "%ad" + logFieldSep + "%s" + logFieldSep + "%b" + logRecordSep

// minLogFields is the number of mandatory fields per record; the body is
// the only one allowed to be absent.
const minLogFields = 6

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, fmt.Errorf("git '%v' exit: %s", strings.Join(fullArgs, " "), strings.TrimSpace(string(exitErr.Stderr)))
	} else if err != nil {
		return nil, fmt.Errorf("git '%v' unknown: %w", strings.Join(fullArgs, " "), err)
	}
	return out, nil
}

// Log implements the GitClient interface. Records come back most-recent-first
// because that is git log's native order; merge commits are excluded.
func (c *LocalGitClient) Log(ctx context.Context, repoPath, fromRef, toRef string) ([]schema.RawCommit, error) {
	rangeArg := toRef
	if fromRef != "" {
		rangeArg = fromRef + ".." + toRef
	}
	args := []string{
		"log",
		"--no-merges",
		"--date=short",
		"--pretty=format:" + logFormat,
		rangeArg,
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return parseLogOutput(out)
}

// ResolveRef implements the GitClient interface.
func (c *LocalGitClient) ResolveRef(ctx context.Context, repoPath, ref string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "--verify", ref)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// parseLogOutput splits raw git log output into commit records. A record with
// fewer than the mandatory field count aborts the whole parse; the reader
// never skips records silently.
func parseLogOutput(out []byte) ([]schema.RawCommit, error) {
	text := strings.TrimSpace(string(out))
	if text == "" {
		return []schema.RawCommit{}, nil
	}

	records := strings.Split(text, logRecordSep)
	commits := make([]schema.RawCommit, 0, len(records))

	for _, rec := range records {
		rec = strings.TrimLeft(rec, "\r\n")
		if strings.TrimSpace(rec) == "" {
			continue // Trailing separator leaves an empty record
		}

		fields := strings.Split(rec, logFieldSep)
		if len(fields) < minLogFields {
			return nil, fmt.Errorf("%w: expected at least %d fields, got %d", ErrMalformedRecord, minLogFields, len(fields))
		}

		body := ""
		if len(fields) > minLogFields {
			body = strings.TrimSpace(fields[6])
		}

		commits = append(commits, schema.RawCommit{
			Hash:        fields[0],
			ShortHash:   fields[1],
			AuthorName:  fields[2],
			AuthorEmail: fields[3],
			Date:        fields[4],
			Subject:     fields[5],
			Body:        body,
		})
	}

	return commits, nil
}
