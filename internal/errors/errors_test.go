package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildError_ErrorIncludesCauseAndCategory(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, CategoryConfig, SeverityFatal, "loading config")

	require.Contains(t, err.Error(), "config")
	require.Contains(t, err.Error(), "fatal")
	require.Contains(t, err.Error(), "boom")
	require.True(t, errors.Is(err, cause))
}

func TestDuplicateSlug_NamesBothSources(t *testing.T) {
	err := DuplicateSlug("coins", "posts/coins-2.md", "posts/coins.md")

	require.True(t, IsCategory(err, CategorySlug))
	require.Contains(t, err.Error(), "posts/coins-2.md")
	require.Contains(t, err.Error(), "posts/coins.md")
	require.Equal(t, "coins", err.Context["slug"])
}

func TestMetadataParse_NamesFile(t *testing.T) {
	err := MetadataParse(fmt.Errorf("yaml: line 2"), "pages/about.md")

	require.True(t, IsCategory(err, CategoryMetadata))
	require.Contains(t, err.Error(), "pages/about.md")
}

func TestGetCategory_NonBuildErrorIsInternal(t *testing.T) {
	require.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("plain")))
	require.Equal(t, CategorySlug, GetCategory(MissingSlug("x.md")))
}
