// Package content loads authored documents (posts, pages, categories)
// from disk, coerces their metadata onto a fixed model, and enforces
// slug uniqueness across the whole corpus.
package content

// Document is a post or page: same shape, different routing rules.
//
// Documents are constructed once per build and held read-only after
// sorting; CategoryTitle, CategoryURL, and Related are write-once
// enrichments attached by the assembler.
type Document struct {
	Source      string // path relative to the content root, for error messages
	Title       string
	Description string
	RawSlug     string // slug as declared in metadata, before normalization
	Slug        string // normalized, globally unique
	Tags        []string
	Category    string // normalized category slug, or empty
	Date        string // ISO date if parseable, else raw string, else empty
	BodyHTML    string // opaque output of the markup renderer

	// Rendered body split at a paragraph boundary so templates can place
	// mid-article widgets. Short documents have everything in ContentTop.
	ContentTop    string
	ContentBottom string

	URL          string // "/" + slug + "/" (or "/" for the home slug)
	CanonicalURL string

	CategoryTitle string
	CategoryURL   string
	Related       []*Document

	NotFound bool // the dedicated not-found page, routed to a flat 404.html
}

// Category is a listing taxonomy entry.
type Category struct {
	Source      string
	Title       string
	Description string
	Slug        string
	URL         string
}
