package outwriter

import (
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/chlog/internal/contract"
)

const changelogFileMode = 0o644

// SpliceChangelogFile merges a freshly rendered release section into the
// changelog at path. A missing file is created with the document title on
// top. An existing file keeps everything above its first release heading
// and the new section lands right before the previous ones, so the file
// stays in reverse chronological order.
func SpliceChangelogFile(path, document string) error {
	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		content := contract.ChangelogTitle + "\n\n" + strings.TrimSpace(document) + "\n"
		return os.WriteFile(path, []byte(content), changelogFileMode)
	}
	if err != nil {
		return fmt.Errorf("failed to read changelog: %w", err)
	}

	merged := spliceDocument(string(existing), document)
	return os.WriteFile(path, []byte(merged), changelogFileMode)
}

// spliceDocument inserts the new section before the first release heading
// of the existing content. Content with no release heading gets the new
// section appended instead.
func spliceDocument(existing, document string) string {
	section := strings.TrimSpace(document)
	idx := findFirstHeading(existing)
	if idx < 0 {
		head := strings.TrimRight(existing, "\n")
		if head == "" {
			return section + "\n"
		}
		return head + "\n\n" + section + "\n"
	}

	head := existing[:idx]
	tail := strings.TrimRight(existing[idx:], "\n")
	if trimmed := strings.TrimRight(head, "\n"); trimmed != "" {
		head = trimmed + "\n\n"
	} else {
		head = ""
	}
	return head + section + "\n\n" + tail + "\n"
}

// findFirstHeading returns the byte offset of the first line starting with
// "## ", or -1 when the content has none.
func findFirstHeading(content string) int {
	if strings.HasPrefix(content, "## ") {
		return 0
	}
	idx := strings.Index(content, "\n## ")
	if idx < 0 {
		return -1
	}
	return idx + 1
}
