package render

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Renderer converts one markdown document into the composed HTML
// fragment: a TOC built from a raw line scan of the source, followed by
// the goldmark-converted body whose headings carry anchor ids. A Renderer
// is stateless across calls and safe for concurrent use; the only shared
// resource is the log sink.
//
// The TOC pass and the body pass slug independently. The extractor sees
// raw line text while the anchor renderer sees inline-resolved text, so a
// heading whose markup touches word characters (a link, a**b**c) can end
// up with a TOC link that misses its anchor. Known defect, kept as is.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds the conversion engine. goldmark's automatic heading
// ids stay disabled: the anchor renderer assigns ids itself, and a second
// id source would compete with the TOC's slugs.
func NewRenderer(log *slog.Logger) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(newAnchorRenderer(log), 100),
			),
		),
	)
	return &Renderer{md: md}
}

// Render runs both passes over source and composes the result. Engine
// failure propagates to the caller; there is no partial render.
func (r *Renderer) Render(source string) (string, error) {
	toc := BuildTOC(Extract(source))

	var body bytes.Buffer
	if err := r.md.Convert([]byte(source), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return Compose(toc, body.String()), nil
}
