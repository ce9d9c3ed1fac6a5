package site

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"path/filepath"
	"sort"
	"strings"

	berrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/routes"
)

// searchRecord is one entry of static/search-index.json. Tags are
// space-joined into a single searchable string.
type searchRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Tags        string `json:"tags"`
}

func stageWriteSearchIndex(_ context.Context, bs *BuildState) error {
	records := make([]searchRecord, 0, len(bs.Posts))
	for _, p := range bs.Posts {
		records = append(records, searchRecord{
			Title:       p.Title,
			Description: p.Description,
			URL:         p.URL,
			Tags:        strings.Join(p.Tags, " "),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return berrors.Wrap(err, berrors.CategoryInternal, berrors.SeverityFatal, "encoding search index")
	}

	path := filepath.Join(bs.StageDir, "static", "search-index.json")
	return writeFile(path, string(data))
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// sitemapLastModLayout is the UTC timestamp shape crawlers are promised.
const sitemapLastModLayout = "2006-01-02T15:04:05Z"

func stageWriteSitemap(_ context.Context, bs *BuildState) error {
	lastmod := bs.BuildTime.UTC().Format(sitemapLastModLayout)

	// Deduplicate and sort so re-runs are byte-identical apart from the
	// timestamp.
	seen := make(map[string]struct{}, len(bs.SitemapURLs))
	unique := make([]string, 0, len(bs.SitemapURLs))
	for _, u := range bs.SitemapURLs {
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		unique = append(unique, u)
	}
	sort.Strings(unique)

	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, u := range unique {
		set.URLs = append(set.URLs, sitemapURL{Loc: u, LastMod: lastmod})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return berrors.Wrap(err, berrors.CategoryInternal, berrors.SeverityFatal, "encoding sitemap")
	}

	path := filepath.Join(bs.StageDir, "sitemap.xml")
	return writeFile(path, xml.Header+string(data)+"\n")
}

func stageWriteRobots(_ context.Context, bs *BuildState) error {
	sitemapURL := routes.CanonicalURL(bs.Cfg.BaseURL, "/sitemap.xml")
	body := "User-agent: *\nAllow: /\n\nSitemap: " + sitemapURL + "\n"
	return writeFile(filepath.Join(bs.StageDir, "robots.txt"), body)
}
