package render

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9_]+`)

// Slugify derives the URL fragment identifier for a heading title:
// lowercase, every maximal run of characters outside [a-z0-9_] collapsed
// to a single hyphen, edge hyphens trimmed. Titles that differ only in
// punctuation produce the same slug; collisions are not disambiguated.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
