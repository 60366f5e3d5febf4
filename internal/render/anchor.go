package render

import (
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// anchorRenderer replaces goldmark's default heading output. It derives
// the anchor id from the heading's inline-resolved text, writes that text
// directly (child inlines are skipped, so emphasis markup inside headings
// is flattened to plain text), and reports each mapping to the log sink.
// It holds no mutable state, so the engine may invoke it from any number
// of concurrent conversions.
type anchorRenderer struct {
	log *slog.Logger
}

func newAnchorRenderer(log *slog.Logger) renderer.NodeRenderer {
	return &anchorRenderer{log: log}
}

func (r *anchorRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
}

func (r *anchorRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if !entering {
		fmt.Fprintf(w, "</h%d>\n", n.Level)
		return ast.WalkContinue, nil
	}
	text := string(n.Text(source))
	slug := Slugify(text)
	fmt.Fprintf(w, `<h%d id="%s">`, n.Level, slug)
	w.WriteString(text)
	r.log.Info("heading anchor", "text", text, "level", n.Level, "slug", slug)
	return ast.WalkSkipChildren, nil
}
