package schema

import "fmt"

// FormatContributor builds the identity string used for contributor
// deduplication and display. With hideEmail set the identity is the
// display name alone, so two emails under one name collapse together.
func FormatContributor(name, email string, hideEmail bool) string {
	if hideEmail {
		return name
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// TotalCommits returns the number of commits across all sections.
func TotalCommits(sections []Section) int {
	total := 0
	for _, s := range sections {
		total += len(s.Commits)
	}
	return total
}

// TotalBreaking returns the number of breaking commits across all sections.
func TotalBreaking(sections []Section) int {
	total := 0
	for _, s := range sections {
		for _, c := range s.Commits {
			if c.Breaking {
				total++
			}
		}
	}
	return total
}
