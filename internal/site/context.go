package site

import (
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/paginate"
	"git.home.luguber.info/inful/sitegen/internal/render"
	"git.home.luguber.info/inful/sitegen/internal/routes"
)

// Template contexts are plain maps with snake_case keys: that is the
// contract the site's template files are written against, and it keeps
// the engine decoupled from the Go model types.

func (bs *BuildState) siteContext() map[string]any {
	nav := make([]map[string]any, 0, len(bs.Cfg.Nav))
	for _, n := range bs.Cfg.Nav {
		nav = append(nav, map[string]any{"label": n.Label, "url": n.URL})
	}
	return map[string]any{
		"site_name":           bs.Cfg.SiteName,
		"base_url":            bs.Cfg.BaseURL,
		"language":            bs.Cfg.Language,
		"default_description": bs.Cfg.DefaultDescription,
		"nav":                 nav,
	}
}

func (bs *BuildState) categoriesContext() []map[string]any {
	out := make([]map[string]any, 0, len(bs.Categories))
	for _, c := range bs.Categories {
		out = append(out, categoryMap(c))
	}
	return out
}

func categoryMap(c *content.Category) map[string]any {
	return map[string]any{
		"title":       c.Title,
		"description": c.Description,
		"slug":        c.Slug,
		"url":         c.URL,
	}
}

func documentMap(d *content.Document) map[string]any {
	return map[string]any{
		"title":          d.Title,
		"description":    d.Description,
		"slug":           d.Slug,
		"url":            d.URL,
		"canonical":      d.CanonicalURL,
		"date":           d.Date,
		"category":       d.Category,
		"category_title": d.CategoryTitle,
		"category_url":   d.CategoryURL,
		"tags":           append([]string(nil), d.Tags...),
	}
}

func documentsContext(docs []*content.Document) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentMap(d))
	}
	return out
}

// documentContext builds the post/page rendering context.
func (bs *BuildState) documentContext(d *content.Document) map[string]any {
	description := d.Description
	if description == "" {
		description = bs.Cfg.DefaultDescription
	}

	page := documentMap(d)
	page["content_top"] = render.Trusted(d.ContentTop)
	page["content_bottom"] = render.Trusted(d.ContentBottom)

	return map[string]any{
		"site":             bs.siteContext(),
		"categories":       bs.categoriesContext(),
		"page":             page,
		"post":             documentMap(d),
		"related":          documentsContext(d.Related),
		"title":            d.Title,
		"page_title":       d.Title,
		"description":      description,
		"meta_description": description,
		"canonical":        d.CanonicalURL,
		"canonical_url":    d.CanonicalURL,
	}
}

// homeContext builds the home listing context.
func (bs *BuildState) homeContext(posts []*content.Document) map[string]any {
	canon := routes.CanonicalURL(bs.Cfg.BaseURL, "/")
	return map[string]any{
		"site":       bs.siteContext(),
		"categories": bs.categoriesContext(),
		"posts":      documentsContext(posts),
		"page": map[string]any{
			"title":       bs.Cfg.SiteName,
			"description": bs.Cfg.DefaultDescription,
			"slug":        "",
		},
		"title":            bs.Cfg.SiteName,
		"page_title":       bs.Cfg.SiteName,
		"description":      bs.Cfg.DefaultDescription,
		"meta_description": bs.Cfg.DefaultDescription,
		"canonical":        canon,
		"canonical_url":    canon,
		"pagination":       nil,
	}
}

// categoryContext builds one category listing page's context.
func (bs *BuildState) categoryContext(cat *content.Category, posts []*content.Document, nav paginate.Nav, canonical string) map[string]any {
	description := cat.Description
	if description == "" {
		description = bs.Cfg.DefaultDescription
	}
	title := cat.Title + " - " + bs.Cfg.SiteName

	return map[string]any{
		"site":       bs.siteContext(),
		"categories": bs.categoriesContext(),
		"posts":      documentsContext(posts),
		"category":   categoryMap(cat),
		"page": map[string]any{
			"title":       cat.Title,
			"description": description,
			"slug":        strings.TrimSuffix(strings.TrimPrefix(cat.URL, "/"), "/"),
		},
		"title":            title,
		"page_title":       title,
		"description":      description,
		"meta_description": description,
		"canonical":        canonical,
		"canonical_url":    canonical,
		"pagination":       paginationContext(nav),
	}
}

func paginationContext(nav paginate.Nav) map[string]any {
	ctx := map[string]any{
		"page":        nav.Page,
		"total_pages": nav.TotalPages,
		"prev_url":    "",
		"next_url":    "",
	}
	if nav.PrevURL != "" {
		ctx["prev_url"] = nav.PrevURL
	}
	if nav.NextURL != "" {
		ctx["next_url"] = nav.NextURL
	}
	return ctx
}
