package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func paragraphs(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("<p>para</p>\n")
	}
	return b.String()
}

func TestSplitMiddle_ShortArticleStaysWhole(t *testing.T) {
	in := paragraphs(5)

	top, bottom := SplitMiddle(in)
	require.Equal(t, in, top)
	require.Empty(t, bottom)
}

func TestSplitMiddle_SplitsAtParagraphBoundary(t *testing.T) {
	in := paragraphs(9)

	top, bottom := SplitMiddle(in)
	require.NotEmpty(t, bottom)
	require.Equal(t, in, top+bottom, "halves must concatenate back to the input")
	require.True(t, strings.HasSuffix(strings.TrimRight(top, "\n"), "</p>"),
		"cut must land right after a closing paragraph tag")
	// A third of nine paragraphs: the top carries three of them.
	require.Equal(t, 3, strings.Count(top, "</p>"))
}

func TestSplitMiddle_MinimumTwoParagraphsOnTop(t *testing.T) {
	in := paragraphs(6)

	top, bottom := SplitMiddle(in)
	require.Equal(t, 2, strings.Count(top, "</p>"))
	require.Equal(t, in, top+bottom)
}

func TestSplitMiddle_IgnoresNonParagraphMarkup(t *testing.T) {
	in := "<h1>Title</h1>\n" + paragraphs(5)

	top, bottom := SplitMiddle(in)
	require.Equal(t, in, top)
	require.Empty(t, bottom)
}

func TestMarkdownRender_BasicAndGFM(t *testing.T) {
	m := NewMarkdown()

	out, err := m.Render([]byte("# Heading\n\nSome *text*.\n"))
	require.NoError(t, err)
	require.Contains(t, out, "<h1")
	require.Contains(t, out, "<em>text</em>")

	out, err = m.Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	require.Contains(t, out, "<table>")
}
