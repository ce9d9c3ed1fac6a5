package related

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/content"
)

func TestCategoryBonusOutranksSingleTagPair(t *testing.T) {
	// Pins the tunable: with CategoryBonus = 2, one shared tag plus a
	// shared category (score 3) beats two shared tags (score 2).
	require.Equal(t, 2, CategoryBonus)

	target := &content.Document{Slug: "t", Tags: []string{"a", "b"}, Category: "x"}
	sameCat := &content.Document{Slug: "c1", Title: "Same Category", Tags: []string{"a"}, Category: "x"}
	bothTags := &content.Document{Slug: "c2", Title: "Both Tags", Tags: []string{"a", "b"}, Category: "y"}

	got := Rank(target, []*content.Document{bothTags, sameCat}, 5)
	require.Len(t, got, 2)
	require.Equal(t, "c1", got[0].Slug)
	require.Equal(t, "c2", got[1].Slug)
}

func TestRank_ExcludesTargetAndZeroScores(t *testing.T) {
	target := &content.Document{Slug: "t", Tags: []string{"coins"}, Category: "x"}
	corpus := []*content.Document{
		target,
		{Slug: "unrelated", Tags: []string{"stamps"}, Category: "y"},
		{Slug: "match", Title: "Match", Tags: []string{"coins"}},
	}

	got := Rank(target, corpus, 5)
	require.Len(t, got, 1)
	require.Equal(t, "match", got[0].Slug)
}

func TestRank_TagsMatchCaseInsensitively(t *testing.T) {
	target := &content.Document{Slug: "t", Tags: []string{"Mint-Errors"}}
	corpus := []*content.Document{
		{Slug: "c", Title: "C", Tags: []string{"mint-errors"}},
	}

	got := Rank(target, corpus, 5)
	require.Len(t, got, 1)
}

func TestRank_EmptyCategoryNeverGetsBonus(t *testing.T) {
	target := &content.Document{Slug: "t", Tags: []string{"a"}, Category: ""}
	corpus := []*content.Document{
		{Slug: "c", Title: "C", Category: ""},
	}

	require.Empty(t, Rank(target, corpus, 5), "shared empty category must not score")
}

func TestRank_TieBreakByTitleThenSlug(t *testing.T) {
	target := &content.Document{Slug: "t", Tags: []string{"a"}}
	corpus := []*content.Document{
		{Slug: "z", Title: "Beta", Tags: []string{"a"}},
		{Slug: "m", Title: "Alpha", Tags: []string{"a"}},
		{Slug: "a", Title: "Beta", Tags: []string{"a"}},
	}

	got := Rank(target, corpus, 5)
	require.Equal(t, "m", got[0].Slug) // Alpha first
	require.Equal(t, "a", got[1].Slug) // Beta ties break on slug
	require.Equal(t, "z", got[2].Slug)
}

func TestRank_LimitApplies(t *testing.T) {
	target := &content.Document{Slug: "t", Tags: []string{"a"}}
	corpus := []*content.Document{
		{Slug: "1", Title: "1", Tags: []string{"a"}},
		{Slug: "2", Title: "2", Tags: []string{"a"}},
		{Slug: "3", Title: "3", Tags: []string{"a"}},
	}

	require.Len(t, Rank(target, corpus, 2), 2)
	require.Empty(t, Rank(target, corpus, 0))
}
