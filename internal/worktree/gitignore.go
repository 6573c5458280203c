package worktree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gitignoreComment precedes the appended root entry so the block reads
// sensibly in the user's .gitignore.
const gitignoreComment = "# git worktrees"

// EnsureGitignore makes sure .gitignore at projectRoot ignores the
// worktree root directory. An entry matching "<rootName>/" or
// "<rootName>" counts; otherwise a two-line block is appended (or the
// file is created). Running it repeatedly never duplicates the block.
func EnsureGitignore(projectRoot, rootName string) (added bool, err error) {
	path := filepath.Join(projectRoot, ".gitignore")
	entry := rootName + "/"

	data, readErr := os.ReadFile(path)
	if readErr != nil && !os.IsNotExist(readErr) {
		return false, fmt.Errorf("read .gitignore: %w", readErr)
	}

	if readErr == nil && hasGitignoreEntry(string(data), rootName) {
		return false, nil
	}

	block := gitignoreComment + "\n" + entry + "\n"
	content := block
	if len(data) > 0 {
		content = string(data)
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += "\n" + block
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write .gitignore: %w", err)
	}
	return true, nil
}

// hasGitignoreEntry reports whether any line is exactly the root name,
// with or without a trailing slash.
func hasGitignoreEntry(content, rootName string) bool {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == rootName || line == rootName+"/" {
			return true
		}
	}
	return false
}
