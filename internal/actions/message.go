package actions

import (
	"fmt"
	"strings"
)

// QuickSaveMessage is used when no status line falls into a counted category
const QuickSaveMessage = "Quick save"

// GenerateCommitMessage summarizes porcelain status lines as
// "Add N file(s), Update N file(s), Delete N file(s)", leaving out empty
// categories. Added counts both staged additions ("A ") and untracked ("??").
func GenerateCommitMessage(lines []string) string {
	var added, modified, deleted int
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "A "), strings.HasPrefix(line, "??"):
			added++
		case strings.HasPrefix(line, "M "):
			modified++
		case strings.HasPrefix(line, "D "):
			deleted++
		}
	}

	parts := []string{}
	if added > 0 {
		parts = append(parts, fmt.Sprintf("Add %d file(s)", added))
	}
	if modified > 0 {
		parts = append(parts, fmt.Sprintf("Update %d file(s)", modified))
	}
	if deleted > 0 {
		parts = append(parts, fmt.Sprintf("Delete %d file(s)", deleted))
	}

	if len(parts) == 0 {
		return QuickSaveMessage
	}
	return strings.Join(parts, ", ")
}
