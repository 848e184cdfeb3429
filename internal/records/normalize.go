package records

import "strings"

// Normalize reduces a title or artist name to lowercase alphanumerics
// so that pressing variants ("Remastered", punctuation, casing) compare
// equal when checking for duplicates.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
