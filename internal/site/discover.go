package site

import (
	"context"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/render"
)

// DiscoveredDoc is one row of the discover command's output.
type DiscoveredDoc struct {
	Kind   string // "category", "page", or "post"
	Source string
	Slug   string
	URL    string
}

// Discover loads the whole corpus without rendering or writing output,
// so slug collisions and metadata problems surface before a build.
func Discover(ctx context.Context, cfg *config.Config) ([]DiscoveredDoc, error) {
	bs := &BuildState{
		Cfg:       cfg,
		Loader:    content.NewLoader(render.NewMarkdown(), cfg.BaseURL),
		Registry:  content.NewRegistry(),
		BuildTime: time.Now().UTC(),
		Report:    NewBuildReport(),
	}

	stages := []StageDef{
		{Name: "load_categories", Fn: stageLoadCategories},
		{Name: "load_pages", Fn: stageLoadPages},
		{Name: "load_posts", Fn: stageLoadPosts},
	}
	if err := RunStages(ctx, bs, stages); err != nil {
		return nil, err
	}

	out := make([]DiscoveredDoc, 0, len(bs.Categories)+len(bs.Pages)+len(bs.Posts))
	for _, c := range bs.Categories {
		out = append(out, DiscoveredDoc{Kind: "category", Source: c.Source, Slug: c.Slug, URL: c.URL})
	}
	for _, p := range bs.Pages {
		out = append(out, DiscoveredDoc{Kind: "page", Source: p.Source, Slug: p.Slug, URL: p.URL})
	}
	for _, p := range bs.Posts {
		out = append(out, DiscoveredDoc{Kind: "post", Source: p.Source, Slug: p.Slug, URL: p.URL})
	}
	return out, nil
}
