// Package render wraps the external rendering collaborators: the
// markup-to-HTML converter, the page template engine, and the
// paragraph-boundary split applied to rendered bodies.
package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Markdown renders markup bodies to HTML. One instance is built per
// build and reused for every document.
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render converts one markup body to HTML.
func (m *Markdown) Render(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert(body, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
