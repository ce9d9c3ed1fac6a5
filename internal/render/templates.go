package render

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	berrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Trusted marks a string as pre-rendered HTML that the engine may emit
// without escaping. Only renderer output (document bodies) goes through
// this; everything else stays subject to contextual escaping.
func Trusted(html string) template.HTML {
	return template.HTML(html)
}

// Engine is the page templating engine: named templates parsed once
// from the templates directory (plus an optional includes directory for
// partials), rendered against a per-page context.
type Engine struct {
	t *template.Template
}

// NewEngine parses every *.html under templatesDir and includesDir.
// A missing includes directory is fine; a missing templates directory
// is a fatal configuration problem.
func NewEngine(templatesDir, includesDir string) (*Engine, error) {
	if _, err := os.Stat(templatesDir); err != nil {
		return nil, berrors.Filesystem(err, "stat templates directory", templatesDir)
	}

	root := template.New("").Option("missingkey=zero")

	for _, dir := range []string{templatesDir, includesDir} {
		if dir == "" {
			continue
		}
		pattern := filepath.Join(dir, "*.html")
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, berrors.Filesystem(err, "list", dir)
		}
		if len(matches) == 0 {
			continue
		}
		if root, err = root.ParseFiles(matches...); err != nil {
			return nil, berrors.Template(err, dir)
		}
	}

	return &Engine{t: root}, nil
}

// Render executes the named template against ctx and returns the page
// as a string.
func (e *Engine) Render(name string, ctx any) (string, error) {
	if e.t.Lookup(name) == nil {
		return "", berrors.Template(fmt.Errorf("not defined"), name)
	}

	var b strings.Builder
	if err := e.t.ExecuteTemplate(&b, name, ctx); err != nil {
		return "", berrors.Template(err, name)
	}
	return b.String(), nil
}
