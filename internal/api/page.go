package api

import (
	"html/template"
	"net/http"
	"os"

	"mdview/internal/render"
)

var pageTemplate = template.Must(template.New("page").Parse(pageShell))

type pageData struct {
	Title   string
	Content template.HTML
}

// handlePage reads the configured document and renders it fresh for each
// request. The source is treated as immutable within a request; a failed
// read is terminal, with no retry and no partial render.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	raw, err := os.ReadFile(s.cfg.DocPath)
	if err != nil {
		s.log.Error("document read failed", "path", s.cfg.DocPath, "error", err)
		http.Error(w, "document unavailable", http.StatusNotFound)
		return
	}

	meta, body, err := render.SplitFrontMatter(string(raw))
	if err != nil {
		s.log.Error("front matter parse failed", "path", s.cfg.DocPath, "error", err)
		http.Error(w, "could not render document", http.StatusInternalServerError)
		return
	}

	fragment, err := s.renderer.Render(body)
	if err != nil {
		s.log.Error("render failed", "path", s.cfg.DocPath, "error", err)
		http.Error(w, "could not render document", http.StatusInternalServerError)
		return
	}

	title := s.cfg.SiteTitle
	if meta.Title != "" {
		title = meta.Title
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, pageData{Title: title, Content: template.HTML(fragment)}); err != nil {
		s.log.Error("page template failed", "error", err)
	}
}

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root { --bg: #ffffff; --fg: #1f2328; --muted: #57606a; --accent: #0969da; --border: #d0d7de; }
[data-theme="dark"] { --bg: #0d1117; --fg: #e6edf3; --muted: #8b949e; --accent: #58a6ff; --border: #30363d; }
body { margin: 0 auto; max-width: 52rem; padding: 2rem 1.5rem; background: var(--bg); color: var(--fg);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; line-height: 1.6; }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
pre, code { background: rgba(127, 127, 127, 0.12); border-radius: 4px; }
pre { padding: 0.75rem; overflow-x: auto; }
code { padding: 0.1rem 0.3rem; }
pre code { padding: 0; }
blockquote { margin-left: 0; padding-left: 1rem; border-left: 3px solid var(--border); color: var(--muted); }
table { border-collapse: collapse; }
th, td { border: 1px solid var(--border); padding: 0.3rem 0.6rem; }
nav.toc { border: 1px solid var(--border); border-radius: 6px; padding: 0.75rem 1rem; margin-bottom: 1.5rem; }
.toc-entry { line-height: 1.8; }
.toc-empty { color: var(--muted); font-style: italic; }
.theme-toggle { position: fixed; top: 1rem; right: 1rem; cursor: pointer; background: none;
  border: 1px solid var(--border); border-radius: 6px; color: var(--fg); padding: 0.25rem 0.6rem; }
</style>
</head>
<body>
<button class="theme-toggle" onclick="toggleTheme()" title="Toggle dark mode">&#9681;</button>
{{.Content}}
<script>
function toggleTheme() {
  var next = document.documentElement.dataset.theme === "dark" ? "light" : "dark";
  document.documentElement.dataset.theme = next;
  localStorage.setItem("theme", next);
}
(function () {
  var saved = localStorage.getItem("theme");
  if (saved) {
    document.documentElement.dataset.theme = saved;
  } else if (window.matchMedia("(prefers-color-scheme: dark)").matches) {
    document.documentElement.dataset.theme = "dark";
  }
})();
</script>
</body>
</html>
`
