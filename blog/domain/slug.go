package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const maxSlugLength = 80

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug: lowercase, runs of non-alphanumeric
// characters collapsed to single hyphens, leading/trailing hyphens
// stripped, capped at 80 characters. Slugifying an already-slugified
// string is a no-op.
func Slugify(input string) string {
	// Pre-hyphenate ASCII punctuation so the slug library's word
	// substitutions ("&" -> "and", "@" -> "at") never see it; non-ASCII
	// runes pass through for transliteration.
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r < 0x80:
			return '-'
		default:
			return r
		}
	}, input)

	s := nonSlugRuns.ReplaceAllString(slug.Make(cleaned), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLength {
		s = strings.Trim(s[:maxSlugLength], "-")
	}
	return s
}

// FallbackSlug returns a generated identifier for inputs that slugify to
// nothing (e.g. a title with no alphanumeric characters).
func FallbackSlug() string {
	return "post-" + uuid.NewString()[:8]
}
