package render

import (
	"fmt"
	"strings"
)

// indentStep is the pixel indent added per heading level below h1.
const indentStep = 24

// BuildTOC renders the navigation fragment for a heading sequence. The
// result is a flat list, not a tree: each entry links to #<slug> and is
// indented in proportion to its level. Repeated titles produce repeated
// entries pointing at the same slug. An empty sequence yields an empty
// string; the caller supplies the fallback notice.
func BuildTOC(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<nav class=\"toc\">\n")
	for _, h := range headings {
		// Titles go in verbatim, matching the unescaped heading bodies
		// the conversion pass emits.
		fmt.Fprintf(&b, "<div class=\"toc-entry\" style=\"margin-left:%dpx\"><a href=\"#%s\">%s</a></div>\n",
			(h.Level-1)*indentStep, h.Slug, h.Title)
	}
	b.WriteString("</nav>\n")
	return b.String()
}
