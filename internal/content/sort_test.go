package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func slugsOf(docs []*Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Slug
	}
	return out
}

func TestSortDocuments_DateDescendingWhenAnyDated(t *testing.T) {
	docs := []*Document{
		{Slug: "old", Title: "Old", Date: "2020-01-01"},
		{Slug: "new", Title: "New", Date: "2024-06-15"},
		{Slug: "undated", Title: "Undated"},
		{Slug: "mid", Title: "Mid", Date: "2022-03-03"},
	}

	SortDocuments(docs)
	require.Equal(t, []string{"new", "mid", "old", "undated"}, slugsOf(docs))
}

func TestSortDocuments_TitleAscendingWhenNoneDated(t *testing.T) {
	docs := []*Document{
		{Slug: "c", Title: "Cents"},
		{Slug: "a", Title: "Americana"},
		{Slug: "b", Title: "Bullion"},
	}

	SortDocuments(docs)
	require.Equal(t, []string{"a", "b", "c"}, slugsOf(docs))
}

func TestSortDocuments_DateTiesBreakOnTitle(t *testing.T) {
	docs := []*Document{
		{Slug: "z", Title: "Zed", Date: "2023-01-01"},
		{Slug: "a", Title: "Alpha", Date: "2023-01-01"},
	}

	SortDocuments(docs)
	require.Equal(t, []string{"a", "z"}, slugsOf(docs))
}
