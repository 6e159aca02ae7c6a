package rowparser

import (
	"strings"
	"unicode/utf8"
)

// SplitLines splits extracted document text into trimmed lines, dropping
// lines of two characters or fewer.
func SplitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if utf8.RuneCountInString(l) > 2 {
			lines = append(lines, l)
		}
	}
	return lines
}
