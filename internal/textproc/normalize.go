package textproc

import "strings"

// CollapseWhitespace replaces every run of whitespace with one space and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveSpaceBefore drops a single space that directly precedes any rune in marks.
// Input is expected to be whitespace-collapsed already.
func RemoveSpaceBefore(s, marks string) string {
	if !strings.Contains(s, " ") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' && i+1 < len(s) && strings.IndexByte(marks, s[i+1]) >= 0 {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EndsWithAny reports whether s ends with one of the bytes in marks.
func EndsWithAny(s, marks string) bool {
	if s == "" {
		return false
	}
	return strings.IndexByte(marks, s[len(s)-1]) >= 0
}
