package site

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/content"
	berrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/paginate"
	"git.home.luguber.info/inful/sitegen/internal/related"
	"git.home.luguber.info/inful/sitegen/internal/render"
	"git.home.luguber.info/inful/sitegen/internal/routes"
)

// Templates the assembler renders pages through.
const (
	templatePost = "post.html"
	templateList = "list.html"
)

// Assembler drives the whole build: discovery, loading, enrichment,
// rendering, and artifact emission, in strict phase order.
type Assembler struct {
	cfg       *config.Config
	outputDir string
}

// New creates an assembler. outputDir overrides the configured output
// directory when non-empty.
func New(cfg *config.Config, outputDir string) *Assembler {
	if outputDir == "" {
		outputDir = cfg.Paths.Output
	}
	return &Assembler{cfg: cfg, outputDir: outputDir}
}

// Build runs every phase and atomically publishes the output tree.
// Any fatal error aborts the build and leaves the previous output
// untouched.
func (a *Assembler) Build(ctx context.Context) (*BuildReport, error) {
	report := NewBuildReport()
	slog.Info("Starting site build",
		logfields.BuildID(report.BuildID),
		logfields.Path(a.outputDir))

	engine, err := render.NewEngine(a.cfg.Paths.Templates, a.cfg.Paths.Includes)
	if err != nil {
		return report, err
	}

	stageDir, err := beginStaging(a.outputDir)
	if err != nil {
		return report, err
	}

	bs := &BuildState{
		Cfg:       a.cfg,
		OutputDir: a.outputDir,
		StageDir:  stageDir,
		Engine:    engine,
		Loader:    content.NewLoader(render.NewMarkdown(), a.cfg.BaseURL),
		Registry:  content.NewRegistry(),
		BuildTime: time.Now().UTC(),
		Report:    report,
	}

	stages := []StageDef{
		{Name: "copy_static", Fn: stageCopyStatic},
		{Name: "load_categories", Fn: stageLoadCategories},
		{Name: "load_pages", Fn: stageLoadPages},
		{Name: "load_posts", Fn: stageLoadPosts},
		{Name: "compute_related", Fn: stageComputeRelated},
		{Name: "render_pages", Fn: stageRenderPages},
		{Name: "render_posts", Fn: stageRenderPosts},
		{Name: "render_home", Fn: stageRenderHome},
		{Name: "render_categories", Fn: stageRenderCategories},
		{Name: "write_search_index", Fn: stageWriteSearchIndex},
		{Name: "write_sitemap", Fn: stageWriteSitemap},
		{Name: "write_robots", Fn: stageWriteRobots},
	}

	if err := RunStages(ctx, bs, stages); err != nil {
		abortStaging(stageDir)
		return report, err
	}

	if err := finalizeStaging(stageDir, a.outputDir); err != nil {
		abortStaging(stageDir)
		return report, err
	}

	report.Finish()
	slog.Info("Build complete",
		logfields.BuildID(report.BuildID),
		logfields.Count(report.RoutesWritten),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000.0))
	return report, nil
}

func stageLoadCategories(_ context.Context, bs *BuildState) error {
	dir := filepath.Join(bs.Cfg.Paths.Content, "categories")
	files, err := content.DiscoverFiles(dir)
	if err != nil {
		return err
	}

	for _, f := range files {
		source := "categories/" + f
		cat, err := bs.Loader.LoadCategory(filepath.Join(dir, filepath.FromSlash(f)), source)
		if err != nil {
			return err
		}
		if err := bs.Registry.RegisterCategory(cat.Slug, source); err != nil {
			return err
		}
		bs.Categories = append(bs.Categories, cat)
	}

	slog.Debug("Loaded categories", logfields.Count(len(bs.Categories)))
	return nil
}

func stageLoadPages(_ context.Context, bs *BuildState) error {
	dir := filepath.Join(bs.Cfg.Paths.Content, "pages")
	files, err := content.DiscoverFiles(dir)
	if err != nil {
		return err
	}

	for _, f := range files {
		source := "pages/" + f
		doc, err := bs.Loader.LoadDocument(filepath.Join(dir, filepath.FromSlash(f)), source)
		if err != nil {
			return err
		}

		if isNotFoundFile(f) {
			doc.NotFound = true
			doc.Slug = routes.NotFoundSlug
			doc.URL = "/404.html"
			doc.CanonicalURL = routes.CanonicalURL(bs.Cfg.BaseURL, doc.URL)
			// The registry pre-seeds this slug; the dedicated file is the
			// one legitimate claimant, so it skips registration.
		} else if err := bs.Registry.Register(doc.Slug, source); err != nil {
			return err
		}

		doc.ContentTop, doc.ContentBottom = render.SplitMiddle(doc.BodyHTML)
		bs.Pages = append(bs.Pages, doc)
	}

	bs.Report.DocumentsLoaded += len(bs.Pages)
	slog.Debug("Loaded pages", logfields.Count(len(bs.Pages)))
	return nil
}

func stageLoadPosts(_ context.Context, bs *BuildState) error {
	dir := filepath.Join(bs.Cfg.Paths.Content, "posts")
	files, err := content.DiscoverFiles(dir)
	if err != nil {
		return err
	}

	for _, f := range files {
		source := "posts/" + f
		doc, err := bs.Loader.LoadDocument(filepath.Join(dir, filepath.FromSlash(f)), source)
		if err != nil {
			return err
		}
		if err := bs.Registry.Register(doc.Slug, source); err != nil {
			return err
		}
		doc.ContentTop, doc.ContentBottom = render.SplitMiddle(doc.BodyHTML)
		bs.Posts = append(bs.Posts, doc)
	}

	content.SortDocuments(bs.Posts)

	bs.Report.DocumentsLoaded += len(bs.Posts)
	slog.Debug("Loaded posts", logfields.Count(len(bs.Posts)))
	return nil
}

// stageComputeRelated attaches the write-once enrichments: per-post
// related lists and resolved category display fields. Unresolved
// categories keep the raw slug as display title with a synthesized URL.
func stageComputeRelated(_ context.Context, bs *BuildState) error {
	for _, p := range bs.Posts {
		p.Related = related.Rank(p, bs.Posts, bs.Cfg.RelatedCount)

		if p.Category == "" {
			continue
		}
		if cat := bs.categoryBySlug(p.Category); cat != nil {
			p.CategoryTitle = cat.Title
			p.CategoryURL = cat.URL
		} else {
			p.CategoryTitle = p.Category
			p.CategoryURL = routes.CategoryURL(p.Category)
		}
	}
	return nil
}

func stageRenderPages(_ context.Context, bs *BuildState) error {
	for _, page := range bs.Pages {
		html, err := bs.Engine.Render(templatePost, bs.documentContext(page))
		if err != nil {
			return err
		}

		out := routes.OutputPath(bs.StageDir, page.Slug)
		if err := writeFile(out, html); err != nil {
			return err
		}
		bs.Report.RoutesWritten++

		if !page.NotFound {
			bs.SitemapURLs = append(bs.SitemapURLs, page.CanonicalURL)
		}
	}
	return nil
}

func stageRenderPosts(_ context.Context, bs *BuildState) error {
	for _, post := range bs.Posts {
		html, err := bs.Engine.Render(templatePost, bs.documentContext(post))
		if err != nil {
			return err
		}

		if err := writeFile(routes.OutputPath(bs.StageDir, post.Slug), html); err != nil {
			return err
		}
		bs.Report.RoutesWritten++
		bs.SitemapURLs = append(bs.SitemapURLs, post.CanonicalURL)
	}
	return nil
}

func stageRenderHome(_ context.Context, bs *BuildState) error {
	html, err := bs.Engine.Render(templateList, bs.homeContext(bs.homePosts()))
	if err != nil {
		return err
	}
	if err := writeFile(routes.OutputPath(bs.StageDir, ""), html); err != nil {
		return err
	}
	bs.Report.RoutesWritten++
	bs.SitemapURLs = append(bs.SitemapURLs, routes.CanonicalURL(bs.Cfg.BaseURL, "/"))
	return nil
}

// homePosts selects the home listing: the first HomePostsCount posts of
// the sorted corpus, or a deterministic date-seeded rotation of it when
// the daily policy is enabled.
func (bs *BuildState) homePosts() []*content.Document {
	posts := bs.Posts
	if bs.Cfg.HomeRotation == "daily" && len(posts) > 0 {
		offset := dailyOffset(bs.BuildTime, len(posts))
		rotated := make([]*content.Document, 0, len(posts))
		rotated = append(rotated, posts[offset:]...)
		rotated = append(rotated, posts[:offset]...)
		posts = rotated
	}
	if len(posts) > bs.Cfg.HomePostsCount {
		posts = posts[:bs.Cfg.HomePostsCount]
	}
	return posts
}

// dailyOffset derives a rotation start from the UTC calendar day, so
// re-runs within one day are byte-identical.
func dailyOffset(t time.Time, n int) int {
	days := int(t.UTC().Unix() / 86400)
	return days % n
}

func stageRenderCategories(_ context.Context, bs *BuildState) error {
	byCategory := make(map[string][]*content.Document)
	for _, p := range bs.Posts {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	for _, cat := range bs.Categories {
		chunks := paginate.Split(byCategory[cat.Slug], bs.Cfg.PostsPerPage)

		for i, chunk := range chunks {
			pageNum := i + 1
			nav := paginate.Navigation(pageNum, len(chunks), cat.URL)
			rel := routes.CategoryPageURL(cat.Slug, pageNum)
			canon := routes.CanonicalURL(bs.Cfg.BaseURL, rel)

			html, err := bs.Engine.Render(templateList, bs.categoryContext(cat, chunk, nav, canon))
			if err != nil {
				return err
			}
			if err := writeFile(routes.CategoryPagePath(bs.StageDir, cat.Slug, pageNum), html); err != nil {
				return err
			}
			bs.Report.RoutesWritten++
			bs.SitemapURLs = append(bs.SitemapURLs, canon)
		}
	}
	return nil
}

func isNotFoundFile(relPath string) bool {
	base := filepath.Base(filepath.FromSlash(relPath))
	return base == "404.md"
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return berrors.Filesystem(err, "create", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return berrors.Filesystem(err, "write", path)
	}
	return nil
}
