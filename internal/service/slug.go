package service

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// GenerateSlug normalizes a human title into a URL-safe identifier:
// lower-case, diacritics stripped, every non-alphanumeric run collapsed
// into a single hyphen, hyphens trimmed at both ends. Empty or
// all-punctuation input yields an empty string and the caller must
// reject the save.
func GenerateSlug(title string) string {
	folded, _, err := transform.String(diacriticStripper, title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(strings.TrimSpace(folded))

	var b strings.Builder
	lastDash := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// EnsureUniqueSlug returns candidate unchanged when it is not present in
// existing, otherwise appends -2, -3, ... until the result is unused.
// Pure: the caller fetches the slug set and performs no I/O here.
func EnsureUniqueSlug(candidate string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, slug := range existing {
		taken[strings.ToLower(strings.TrimSpace(slug))] = struct{}{}
	}

	if _, ok := taken[candidate]; !ok {
		return candidate
	}

	for i := 2; ; i++ {
		next := fmt.Sprintf("%s-%d", candidate, i)
		if _, ok := taken[next]; !ok {
			return next
		}
	}
}
