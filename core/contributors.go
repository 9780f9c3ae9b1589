package core

import (
	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/schema"
)

// Contributors derives the deduplicated contributor identities from a
// commit sequence, applying the same exclusion filter as grouping.
// Identities are returned in first-seen order, which keeps output
// deterministic for a given input.
func Contributors(commits []schema.Commit, cfg *contract.Config) []string {
	seen := make(map[string]struct{}, len(commits))
	identities := make([]string, 0, len(commits))

	for _, c := range commits {
		if cfg.IsExcluded(c.AuthorName, c.AuthorEmail) {
			continue
		}
		id := schema.FormatContributor(c.AuthorName, c.AuthorEmail, cfg.HideAuthorEmail)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		identities = append(identities, id)
	}
	return identities
}
