package site

import (
	"time"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/render"
)

// BuildState is the shared state threaded through the build phases.
// It is built once, enriched in fixed phase order, and never read
// concurrently with a write: the pipeline is single-threaded by design.
type BuildState struct {
	Cfg *config.Config

	OutputDir string // final published tree
	StageDir  string // where this build writes

	Engine *render.Engine
	Loader *content.Loader

	Registry   *content.Registry
	Categories []*content.Category
	Pages      []*content.Document
	Posts      []*content.Document

	// Canonical URLs of every emitted route, collected for the sitemap.
	SitemapURLs []string

	BuildTime time.Time
	Report    *BuildReport
}

func (bs *BuildState) categoryBySlug(slug string) *content.Category {
	for _, c := range bs.Categories {
		if c.Slug == slug {
			return c
		}
	}
	return nil
}
