// Package paginate splits ordered sequences into fixed-size pages and
// computes page-to-page navigation links for listing routes.
package paginate

import "fmt"

// Nav describes one page's position within a paginated listing.
// PrevURL/NextURL are empty when there is no previous/next page.
type Nav struct {
	Page       int
	TotalPages int
	PrevURL    string
	NextURL    string
}

// Split chunks items into pages of pageSize in original order; the last
// page may be shorter. pageSize <= 0 yields a single page containing
// everything. Empty items yield exactly one empty page, never zero
// pages, so a listing route always has something to render.
func Split[T any](items []T, pageSize int) [][]T {
	if pageSize <= 0 {
		return [][]T{items}
	}
	if len(items) == 0 {
		return [][]T{{}}
	}

	pages := make([][]T, 0, (len(items)+pageSize-1)/pageSize)
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}
	return pages
}

// Navigation computes the navigation descriptor for 1-based page within
// a listing rooted at baseURL (which must end with '/'): the previous
// link of page 2 is the bare listing URL, deeper pages link to
// .../page/{n}/.
func Navigation(page, totalPages int, baseURL string) Nav {
	nav := Nav{Page: page, TotalPages: totalPages}
	if page > 1 {
		if page == 2 {
			nav.PrevURL = baseURL
		} else {
			nav.PrevURL = fmt.Sprintf("%spage/%d/", baseURL, page-1)
		}
	}
	if page < totalPages {
		nav.NextURL = fmt.Sprintf("%spage/%d/", baseURL, page+1)
	}
	return nav
}
