// Package related ranks documents against a target by tag and category
// affinity, producing the "related documents" list for post pages.
package related

import (
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/content"
)

// CategoryBonus is the score contribution of a shared category. It is
// deliberately larger than a single tag match so category affinity can
// outrank a lone shared tag.
const CategoryBonus = 2

// Rank scores every corpus document against target and returns at most
// limit documents with a positive score, best first. The target itself
// is excluded. Ties break by title, then slug, ascending, so the order
// is never undefined.
//
// This is a full corpus scan per call (the build invokes it once per
// document). Corpora are hundreds of documents, not millions, so no
// index is warranted.
func Rank(target *content.Document, corpus []*content.Document, limit int) []*content.Document {
	targetTags := tagSet(target.Tags)

	type scored struct {
		score int
		doc   *content.Document
	}
	candidates := make([]scored, 0, len(corpus))

	for _, c := range corpus {
		if c.Slug == target.Slug {
			continue
		}
		score := 0
		for tag := range tagSet(c.Tags) {
			if _, ok := targetTags[tag]; ok {
				score++
			}
		}
		if target.Category != "" && c.Category == target.Category {
			score += CategoryBonus
		}
		if score > 0 {
			candidates = append(candidates, scored{score: score, doc: c})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.doc.Title != b.doc.Title {
			return a.doc.Title < b.doc.Title
		}
		return a.doc.Slug < b.doc.Slug
	})

	if limit < 0 {
		limit = 0
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]*content.Document, len(candidates))
	for i, c := range candidates {
		out[i] = c.doc
	}
	return out
}

// tagSet folds tags case-insensitively; scoring treats tags as a set
// even though documents may carry duplicates.
func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}
