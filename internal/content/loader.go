package content

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	berrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/frontmatter"
	"git.home.luguber.info/inful/sitegen/internal/routes"
	"git.home.luguber.info/inful/sitegen/internal/slug"
)

// Renderer converts a markup body into HTML. The build treats it as a
// total function for well-formed input.
type Renderer interface {
	Render(body []byte) (string, error)
}

// Loader reads document files and maps their loosely-typed metadata onto
// the fixed Document model. The coercion rules here are the contract,
// not whatever shape the YAML parser happens to return.
type Loader struct {
	renderer Renderer
	baseURL  string
}

func NewLoader(renderer Renderer, baseURL string) *Loader {
	return &Loader{renderer: renderer, baseURL: baseURL}
}

var tagSeparators = regexp.MustCompile(`[,\s]+`)

// LoadDocument reads and parses one post or page file. source is the
// path relative to the content root, used in error messages.
func (l *Loader) LoadDocument(path, source string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, berrors.Filesystem(err, "read", source)
	}

	metaRaw, body, _, err := frontmatter.Split(raw)
	if err != nil {
		return nil, berrors.MetadataParse(err, source)
	}
	meta, err := frontmatter.Parse(metaRaw)
	if err != nil {
		return nil, berrors.MetadataParse(err, source)
	}

	stem := fileStem(path)

	doc := &Document{
		Source:      source,
		Title:       coerceString(meta["title"]),
		Description: coerceString(meta["description"]),
		RawSlug:     coerceString(meta["slug"]),
		Tags:        coerceTags(meta["tags"]),
		Category:    slug.Normalize(coerceString(meta["category"])),
		Date:        coerceDate(meta["date"]),
	}

	s, err := deriveSlug(doc.RawSlug, doc.Title, stem, source)
	if err != nil {
		return nil, err
	}
	doc.Slug = s

	if doc.Title == "" {
		doc.Title = TitleFromStem(stem)
	}

	doc.URL = routes.RelURL(doc.Slug)
	doc.CanonicalURL = routes.CanonicalURL(l.baseURL, doc.URL)

	html, err := l.renderer.Render(body)
	if err != nil {
		return nil, berrors.Wrap(err, berrors.CategoryRender, berrors.SeverityFatal,
			fmt.Sprintf("rendering %s", source))
	}
	doc.BodyHTML = html

	return doc, nil
}

// LoadCategory reads one category file. Category bodies are ignored;
// only the metadata block matters.
func (l *Loader) LoadCategory(path, source string) (*Category, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, berrors.Filesystem(err, "read", source)
	}

	metaRaw, _, _, err := frontmatter.Split(raw)
	if err != nil {
		return nil, berrors.MetadataParse(err, source)
	}
	meta, err := frontmatter.Parse(metaRaw)
	if err != nil {
		return nil, berrors.MetadataParse(err, source)
	}

	stem := fileStem(path)

	s := slug.Normalize(coerceString(meta["slug"]))
	if s == "" {
		s = slug.Normalize(stem)
	}
	if s == "" {
		return nil, berrors.MissingSlug(source)
	}

	title := coerceString(meta["title"])
	if title == "" {
		title = TitleFromStem(stem)
	}

	return &Category{
		Source:      source,
		Title:       title,
		Description: coerceString(meta["description"]),
		Slug:        s,
		URL:         routes.CategoryURL(s),
	}, nil
}

// deriveSlug resolves the slug candidate: normalized metadata slug,
// else normalized filename stem, else normalized title. A document with
// no title and no derivable slug is a fatal error. A candidate claiming
// a reserved top-level segment is fatal too.
func deriveSlug(rawSlug, title, stem, source string) (string, error) {
	s := slug.Normalize(rawSlug)
	if s == "" {
		s = slug.Normalize(stem)
	}
	if s == "" {
		s = slug.Normalize(title)
	}
	if s == "" {
		return "", berrors.MissingSlug(source)
	}
	if seg, reserved := slug.ReservedSegment(s); reserved {
		return "", berrors.InvalidSlug(s, fmt.Sprintf("%q is a reserved top-level segment", seg), source)
	}
	return s, nil
}

var titleCaser = cases.Title(language.English)

// TitleFromStem builds the title fallback: separators become spaces and
// each word is capitalized.
func TitleFromStem(stem string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	s = strings.Join(strings.Fields(s), " ")
	return titleCaser.String(s)
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// coerceString maps any metadata value onto a trimmed string; nil yields
// the empty string. Never fails.
func coerceString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// coerceTags accepts a native sequence of strings or a single string
// split on commas/whitespace; any other shape becomes a single-element
// sequence via string conversion. Duplicates are legal and preserved.
func coerceTags(v any) []string {
	switch tags := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(tags))
		for _, t := range tags {
			out = append(out, coerceString(t))
		}
		return out
	case []string:
		return tags
	case string:
		fields := tagSeparators.Split(strings.TrimSpace(tags), -1)
		out := make([]string, 0, len(fields))
		for _, f := range fields {
			if f != "" {
				out = append(out, f)
			}
		}
		return out
	default:
		return []string{coerceString(v)}
	}
}

// coerceDate maps a native date/datetime value onto an ISO date string,
// any other value onto its trimmed string form. Dates are used only for
// ordering and never validated.
func coerceDate(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case time.Time:
		return d.Format("2006-01-02")
	case string:
		return strings.TrimSpace(d)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
