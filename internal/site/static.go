package site

import (
	"context"
	"os"
	"path/filepath"

	berrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// stageCopyStatic mirrors the static-asset subtree into the staging
// tree. The static output directory always exists, even with no assets,
// because the search index lands there later.
func stageCopyStatic(_ context.Context, bs *BuildState) error {
	dst := filepath.Join(bs.StageDir, "static")
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return berrors.Filesystem(err, "create", dst)
	}

	src := bs.Cfg.Paths.Static
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}

	if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
		return berrors.Filesystem(err, "copy static assets from", src)
	}
	return nil
}
