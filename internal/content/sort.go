package content

import "sort"

// SortDocuments orders the corpus once per build: by date descending
// when any document carries a date, else by title ascending. Ties on
// date fall back to title ascending so the order is never undefined.
func SortDocuments(docs []*Document) {
	anyDate := false
	for _, d := range docs {
		if d.Date != "" {
			anyDate = true
			break
		}
	}

	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if anyDate {
			// ISO dates compare correctly as strings; undated documents
			// sort after dated ones.
			if a.Date != b.Date {
				return a.Date > b.Date
			}
		}
		return a.Title < b.Title
	})
}
