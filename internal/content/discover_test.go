package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscoverFiles_SortedRecursiveMarkdownOnly(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0o755))
	for _, name := range []string{"b.md", "a.md", "notes.txt", "nested/c.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, filepath.FromSlash(name)), []byte("x"), 0o644))
	}

	files, err := DiscoverFiles(root)
	require.NoError(t, err)
	require.Equal(t, []string{"a.md", "b.md", "nested/c.md"}, files)
}

func TestDiscoverFiles_MissingRootIsEmpty(t *testing.T) {
	files, err := DiscoverFiles(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	require.Empty(t, files)
}
