package content

import (
	berrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/routes"
)

// Registry tracks every assigned slug for the build and rejects
// collisions. It is seeded with the reserved home and not-found slugs so
// user content cannot silently shadow them.
//
// Category slugs are registered under their "category/" output prefix:
// that is the namespace they actually occupy in the output tree, so a
// post and a category may share a short slug without colliding.
type Registry struct {
	entries map[string]string // slug -> registering source
}

func NewRegistry() *Registry {
	return &Registry{
		entries: map[string]string{
			"":                  "home page (reserved)",
			routes.NotFoundSlug: "not-found page (reserved)",
		},
	}
}

// Register claims slug for source. A slug that was already claimed is a
// fatal DuplicateSlug error naming both sources.
func (r *Registry) Register(slug, source string) error {
	if first, taken := r.entries[slug]; taken {
		return berrors.DuplicateSlug(slug, source, first)
	}
	r.entries[slug] = source
	return nil
}

// RegisterCategory claims a category slug in its output namespace.
func (r *Registry) RegisterCategory(slug, source string) error {
	return r.Register("category/"+slug, source)
}

// Source returns the source that registered slug, if any.
func (r *Registry) Source(slug string) (string, bool) {
	src, ok := r.entries[slug]
	return src, ok
}
