package render

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is the document's optional YAML front matter.
type Meta struct {
	Title string `yaml:"title"`
}

// SplitFrontMatter separates an optional leading "---"-fenced YAML block
// from the markdown body. Input without an opening fence, or with an
// unterminated one, is returned whole as the body. The block is removed
// before rendering so its lines never register as headings.
func SplitFrontMatter(raw string) (Meta, string, error) {
	var meta Meta
	if !strings.HasPrefix(raw, "---") {
		return meta, raw, nil
	}
	parts := strings.SplitN(raw, "---", 3)
	if len(parts) < 3 {
		return meta, raw, nil
	}
	if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil {
		return Meta{}, "", fmt.Errorf("parse front matter: %w", err)
	}
	return meta, parts[2], nil
}
