package core

import (
	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/schema"
)

// GroupCommits classifies parsed commits into report sections. Excluded
// authors are dropped before classification; surviving commits keep their
// relative input order within each bucket. Sections come out in the fixed
// priority order with empty buckets omitted.
//
// Buckets are a fixed-size array indexed by CommitType, so grouping never
// hashes and adding a variant is a compile-time concern.
func GroupCommits(commits []schema.Commit, cfg *contract.Config) []schema.Section {
	var buckets [schema.NumCommitTypes][]schema.Commit

	for _, c := range commits {
		if cfg.IsExcluded(c.AuthorName, c.AuthorEmail) {
			continue
		}
		buckets[c.Type] = append(buckets[c.Type], c)
	}

	sections := make([]schema.Section, 0, schema.NumCommitTypes)
	for _, ct := range schema.SectionOrder {
		if len(buckets[ct]) == 0 {
			continue
		}
		sections = append(sections, schema.Section{
			Type:    ct,
			Title:   ct.Title(),
			Commits: buckets[ct],
		})
	}
	return sections
}
