package render

import (
	"bufio"
	"regexp"
	"strings"
)

// Heading is one extracted heading line: its level, its title with any
// inline markup left verbatim, and the slug derived from that raw title.
type Heading struct {
	Level int
	Title string
	Slug  string
}

var headingLine = regexp.MustCompile(`^(#{1,6})[ \t]`)

// Extract scans source line by line and returns its headings in document
// order. A line counts as a heading when it begins with one to six '#'
// characters followed by whitespace. The scan does not track fenced code
// blocks, so heading-shaped lines inside a fence are extracted too.
func Extract(source string) []Heading {
	var headings []Heading
	sc := bufio.NewScanner(strings.NewReader(source))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		m := headingLine.FindString(line)
		if m == "" {
			continue
		}
		level := strings.Count(m, "#")
		title := strings.TrimSpace(line[level:])
		headings = append(headings, Heading{
			Level: level,
			Title: title,
			Slug:  Slugify(title),
		})
	}
	return headings
}
