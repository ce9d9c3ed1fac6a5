// Package routes maps canonical slugs onto public URLs and filesystem
// output paths.
package routes

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NotFoundSlug is the reserved slug for the not-found page. Its output is
// a flat 404.html at the output root rather than a nested index.html, so
// web servers can serve it as an error document.
const NotFoundSlug = "404"

// RelURL converts a canonical slug into its site-relative URL:
// "/" for the empty (home) slug, "/{slug}/" otherwise.
func RelURL(slug string) string {
	if slug == "" {
		return "/"
	}
	return "/" + slug + "/"
}

// OutputPath returns the filesystem path under outDir that a slug's
// rendered page is written to.
func OutputPath(outDir, slug string) string {
	switch slug {
	case "":
		return filepath.Join(outDir, "index.html")
	case NotFoundSlug:
		return filepath.Join(outDir, "404.html")
	default:
		return filepath.Join(outDir, filepath.FromSlash(slug), "index.html")
	}
}

// CanonicalURL joins baseURL and a site-relative path with exactly one
// '/' between them, regardless of trailing slashes on either input.
func CanonicalURL(baseURL, rel string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(rel, "/")
}

// CategoryURL returns the listing URL for a category slug.
func CategoryURL(slug string) string {
	return fmt.Sprintf("/category/%s/", slug)
}

// CategoryPageURL returns the listing URL for page n of a category.
// Page 1 is the bare listing URL.
func CategoryPageURL(slug string, page int) string {
	if page <= 1 {
		return CategoryURL(slug)
	}
	return fmt.Sprintf("/category/%s/page/%d/", slug, page)
}

// CategoryPagePath returns the output path for page n of a category
// listing.
func CategoryPagePath(outDir, slug string, page int) string {
	if page <= 1 {
		return filepath.Join(outDir, "category", filepath.FromSlash(slug), "index.html")
	}
	return filepath.Join(outDir, "category", filepath.FromSlash(slug), "page", fmt.Sprint(page), "index.html")
}
