package gemini

import (
	"strings"
	"unicode"
)

// CountWords counts whitespace-separated words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// TruncateWords cuts text after max words. The spacing and paragraph breaks
// of the kept portion stay intact.
func TruncateWords(s string, max int) string {
	if max <= 0 {
		return ""
	}
	words := 0
	inWord := false
	for i, r := range s {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			inWord = true
			words++
			if words > max {
				return strings.TrimRightFunc(s[:i], unicode.IsSpace)
			}
		}
	}
	return s
}
