package compiler

import "strings"

// TrimBlankLines drops leading and trailing runs of whitespace-only lines.
// Interior blank lines are preserved.
func TrimBlankLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	out := make([]string, end-start)
	copy(out, lines[start:end])
	return out
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
