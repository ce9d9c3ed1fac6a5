package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	meta, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, meta)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsMetaAndBody(t *testing.T) {
	input := []byte("---\ntitle: Rare Coins\n---\n# Title\n")

	meta, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Rare Coins\n"), meta)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	input := []byte("---\ntitle: x\n# Title\n")

	_, _, had, err := Split(input)
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF_SplitsMetaAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: x\r\n---\r\n# Title\r\n")

	meta, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: x\r\n"), meta)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock(t *testing.T) {
	input := []byte("---\n---\n# Title\n")

	meta, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, meta)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestParse_ValidYAML_ReturnsMap(t *testing.T) {
	fields, err := Parse([]byte("slug: rare-coins\ntags:\n  - errors\n"))
	require.NoError(t, err)
	require.Equal(t, "rare-coins", fields["slug"])
	require.Equal(t, []any{"errors"}, fields["tags"])
}

func TestParse_Empty_ReturnsEmptyMap(t *testing.T) {
	fields, err := Parse(nil)
	require.NoError(t, err)
	require.Empty(t, fields)
}

func TestParse_MalformedYAML_ReturnsError(t *testing.T) {
	_, err := Parse([]byte("title: [unclosed\n"))
	require.Error(t, err)
}

func TestParse_NonMappingYAML_ReturnsError(t *testing.T) {
	_, err := Parse([]byte("- just\n- a\n- list\n"))
	require.Error(t, err)
}
