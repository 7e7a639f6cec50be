package scanner

import "strings"

// stripNonDigits removes everything but decimal digits.
func stripNonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// findIndex returns the index of the first line at or after from that
// contains sub, or -1.
func findIndex(sub string, lines []string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(lines); i++ {
		if strings.Contains(lines[i], sub) {
			return i
		}
	}
	return -1
}

// joinLines concatenates OCR lines into a single space-separated string.
func joinLines(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, " "))
}

// containsDigit reports whether s contains any decimal digit.
func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
