package content

import (
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	berrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// DiscoverFiles lists every markdown file under root (recursively), as
// slash-separated paths relative to root, in lexicographic order.
// Lexicographic listing keeps registration order (and therefore
// duplicate-slug attribution) deterministic across builds.
//
// A missing root is an empty collection, not an error.
func DiscoverFiles(root string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), "**/*.md")
	if err != nil {
		return nil, berrors.Filesystem(err, "list", root)
	}
	sort.Strings(matches)
	return matches, nil
}
