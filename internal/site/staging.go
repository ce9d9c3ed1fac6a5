package site

import (
	"fmt"
	"log/slog"
	"os"

	berrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// The build never writes into the live output tree directly. It fills a
// sibling staging directory and promotes it only once the whole build
// has succeeded, so a failed build leaves the previous output untouched
// instead of publishing a half-written tree.

// beginStaging creates (or resets) the sibling staging dir:
// <output>_stage.
func beginStaging(outputDir string) (string, error) {
	stage := outputDir + "_stage"
	if err := os.RemoveAll(stage); err != nil {
		return "", berrors.Filesystem(err, "reset staging directory", stage)
	}
	if err := os.MkdirAll(stage, 0o755); err != nil {
		return "", berrors.Filesystem(err, "create staging directory", stage)
	}
	slog.Debug("Initialized staging directory", "staging", stage, "final", outputDir)
	return stage, nil
}

// finalizeStaging atomically promotes the staging directory to the final
// output location. Strategy:
//  1. Move the existing output (if any) to <output>.prev.
//  2. Rename staging -> output.
//  3. Remove the backup best-effort.
func finalizeStaging(stageDir, outputDir string) error {
	if stageDir == "" {
		return fmt.Errorf("no staging directory initialized")
	}
	if _, err := os.Stat(stageDir); err != nil {
		return berrors.Filesystem(err, "stat staging directory", stageDir)
	}

	prev := outputDir + ".prev"
	if err := os.RemoveAll(prev); err != nil {
		return berrors.Filesystem(err, "remove stale backup", prev)
	}

	if _, err := os.Stat(outputDir); err == nil {
		if err := os.Rename(outputDir, prev); err != nil {
			return berrors.Filesystem(err, "back up previous output", outputDir)
		}
	}

	if err := os.Rename(stageDir, outputDir); err != nil {
		// Try to put the previous output back so the site is not left
		// without any published tree.
		if _, statErr := os.Stat(prev); statErr == nil {
			_ = os.Rename(prev, outputDir)
		}
		return berrors.Filesystem(err, "promote staging directory", stageDir)
	}

	if err := os.RemoveAll(prev); err != nil {
		slog.Warn("Could not remove previous output backup", logfields.Path(prev), logfields.Error(err))
	}
	return nil
}

// abortStaging discards the staging directory after a failed build.
func abortStaging(stageDir string) {
	if stageDir == "" {
		return
	}
	if err := os.RemoveAll(stageDir); err != nil {
		slog.Warn("Could not clean staging directory", logfields.Path(stageDir), logfields.Error(err))
	}
}
