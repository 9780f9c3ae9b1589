// Package core has the commit parsing, grouping and aggregation pipeline.
package core

import (
	"strings"

	"github.com/huangsam/chlog/schema"
)

// breakingFooter is the footer text that forces the breaking flag
// regardless of subject markers.
const breakingFooter = "BREAKING CHANGE"

// ParseCommit classifies a raw commit record by its conventional-commit
// prefix. It is total: any input yields a valid Commit, falling back to
// TypeUnknown with the whole subject as the description.
//
// Note: the "!:" breaking marker is detected by first-match substring
// search over the whole subject, not anchored to the type(scope) header.
// A description containing a literal "!:" before any plain ":" is picked
// up as the marker. This mirrors the behavior of the reference tool and
// must not be "fixed" without diverging from its output.
func ParseCommit(raw schema.RawCommit) schema.Commit {
	commit := schema.Commit{
		RawCommit:   raw,
		Type:        schema.TypeUnknown,
		Description: raw.Subject,
	}

	var header string
	if idx := strings.Index(raw.Subject, "!:"); idx >= 0 {
		commit.Breaking = true
		header = raw.Subject[:idx]
		commit.Description = strings.TrimSpace(raw.Subject[idx+2:])
	} else if idx := strings.Index(raw.Subject, ":"); idx >= 0 {
		header = raw.Subject[:idx]
		commit.Description = strings.TrimSpace(raw.Subject[idx+1:])
	} else {
		// No delimiter at all: unknown type, subject kept verbatim.
		// The breaking footer scan below still applies.
		applyBreakingFooter(&commit, raw)
		return commit
	}

	commit.Type, commit.Scope = parseHeader(header)
	applyBreakingFooter(&commit, raw)
	return commit
}

// parseHeader splits a "type(scope)" header region into its parts.
// A scope requires both "(" and a later ")"; an unterminated "(" drops
// the scope and everything from "(" onward.
func parseHeader(header string) (schema.CommitType, string) {
	open := strings.Index(header, "(")
	if open < 0 {
		return schema.ParseCommitType(header), ""
	}

	token := header[:open]
	rest := header[open+1:]
	closing := strings.Index(rest, ")")
	if closing < 0 {
		return schema.ParseCommitType(token), ""
	}
	return schema.ParseCommitType(token), rest[:closing]
}

// applyBreakingFooter scans the full message text for the breaking footer.
// This is an OR with the subject marker: once breaking, always breaking.
func applyBreakingFooter(commit *schema.Commit, raw schema.RawCommit) {
	if strings.Contains(raw.Subject, breakingFooter) || strings.Contains(raw.Body, breakingFooter) {
		commit.Breaking = true
	}
}

// ParseCommits parses a sequence of raw records, preserving input order.
func ParseCommits(raws []schema.RawCommit) []schema.Commit {
	commits := make([]schema.Commit, 0, len(raws))
	for _, raw := range raws {
		commits = append(commits, ParseCommit(raw))
	}
	return commits
}
