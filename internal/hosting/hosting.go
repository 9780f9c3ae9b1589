// Package hosting maps normalized repository URLs to provider web views.
package hosting

import "strings"

// CompareURL produces the provider's compare view for two references.
// GitLab nests web routes under "/-/"; everything else gets the GitHub
// style path, which Gitea and Bitbucket mirrors also serve.
func CompareURL(repoURL, fromRef, toRef string) string {
	if repoURL == "" || fromRef == "" || toRef == "" {
		return ""
	}
	if strings.Contains(repoURL, "gitlab") {
		return repoURL + "/-/compare/" + fromRef + "..." + toRef
	}
	return repoURL + "/compare/" + fromRef + "..." + toRef
}

// CommitURL produces the provider's single-commit view. The "/commit/"
// path segment works across the supported hosts, GitLab included.
func CommitURL(repoURL, hash string) string {
	if repoURL == "" || hash == "" {
		return ""
	}
	return repoURL + "/commit/" + hash
}
