package render

// TOCFallback replaces the navigation block when the document has no headings.
const TOCFallback = `<p class="toc-empty">No sections found.</p>`

// Compose joins the navigation block and the converted body into the
// fragment handed to the page shell. An empty TOC gets the fixed fallback
// notice in its place.
func Compose(tocHTML, bodyHTML string) string {
	if tocHTML == "" {
		return TOCFallback + "\n" + bodyHTML
	}
	return tocHTML + bodyHTML
}
