package content

import (
	"strings"
	"unicode"
)

// Slugify lowercases s and joins its runs of letters and digits with hyphens.
// Non-ASCII letters are kept; URL helpers escape them.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if tag := normalizeTag(t); tag != "" {
			set[tag] = struct{}{}
		}
	}
	return set
}

func limitOf(n, limit int) int {
	if limit <= 0 || limit > n {
		return n
	}
	return limit
}

// atMost clamps limit to [0, n]. Unlike limitOf, zero means none.
func atMost(n, limit int) int {
	return max(0, min(limit, n))
}
