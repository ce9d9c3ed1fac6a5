package site

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestStaging_FailedBuildRetainsOldOutput ensures a failed build does
// not replace or corrupt the previously published tree, and cleans its
// staging directory up.
func TestStaging_FailedBuildRetainsOldOutput(t *testing.T) {
	cfg := newSiteFixture(t)
	root := fixtureRoot(cfg)

	writeFixture(t, root, "content/posts/stable.md", "---\ntitle: Stable\nslug: stable\n---\nv1\n")

	_, err := New(cfg, "").Build(context.Background())
	require.NoError(t, err)

	target := filepath.Join(cfg.Paths.Output, "stable", "index.html")
	before, err := os.ReadFile(target)
	require.NoError(t, err)

	// Introduce a slug collision so the next build fails mid-pipeline.
	writeFixture(t, root, "content/posts/zz-clash.md", "---\nslug: stable\n---\nbroken\n")

	_, err = New(cfg, "").Build(context.Background())
	require.Error(t, err)

	after, err := os.ReadFile(target)
	require.NoError(t, err, "previous output must survive a failed build")
	require.Equal(t, before, after)

	_, err = os.Stat(cfg.Paths.Output + "_stage")
	require.True(t, os.IsNotExist(err), "staging directory must be cleaned up")
}

func TestStaging_SuccessfulRebuildReplacesOutput(t *testing.T) {
	cfg := newSiteFixture(t)
	root := fixtureRoot(cfg)

	writeFixture(t, root, "content/posts/doc.md", "---\ntitle: Version One\nslug: doc\n---\nx\n")
	_, err := New(cfg, "").Build(context.Background())
	require.NoError(t, err)

	writeFixture(t, root, "content/posts/doc.md", "---\ntitle: Version Two\nslug: doc\n---\nx\n")
	_, err = New(cfg, "").Build(context.Background())
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "doc", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(html), "Version Two")
	require.NotContains(t, string(html), "Version One")

	_, err = os.Stat(cfg.Paths.Output + ".prev")
	require.True(t, os.IsNotExist(err), "backup of previous output must be removed")
	_, err = os.Stat(cfg.Paths.Output + "_stage")
	require.True(t, os.IsNotExist(err))
}

func TestStaging_CanceledBuildLeavesNoOutput(t *testing.T) {
	cfg := newSiteFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(cfg, "").Build(ctx)
	require.Error(t, err)

	_, err = os.Stat(cfg.Paths.Output)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(cfg.Paths.Output + "_stage")
	require.True(t, os.IsNotExist(err))
}

func TestDailyOffset_DeterministicWithinDay(t *testing.T) {
	morning := time.Date(2026, 8, 26, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 26, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 8, 27, 1, 0, 0, 0, time.UTC)

	require.Equal(t, dailyOffset(morning, 7), dailyOffset(evening, 7))
	require.NotEqual(t, dailyOffset(morning, 7), dailyOffset(nextDay, 7))
	require.Less(t, dailyOffset(morning, 7), 7)
}
