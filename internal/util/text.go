package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fold normalizes text for case- and diacritic-insensitive matching:
// compatibility decomposition (NFKD) followed by lowercasing.
func Fold(value string) string {
	return strings.ToLower(norm.NFKD.String(value))
}

// Slugify derives a URL slug from a title or name: folded text with
// everything outside [a-z0-9 -] dropped, spaces hyphenated, and hyphen
// runs collapsed.
func Slugify(value string) string {
	folded := Fold(value)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune(r)
		}
	}

	slug := strings.TrimSpace(b.String())
	slug = strings.Join(strings.Fields(slug), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}
