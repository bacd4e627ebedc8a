package gamesite

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/gamesite/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string  `xml:"loc"`
	LastMod  string  `xml:"lastmod,omitempty"`
	Priority float64 `xml:"priority,omitempty"`
}

// sitemapURLs lists every public page: the fixed listings, then games,
// categories, posts and static pages.
func (a *App) sitemapURLs() []sitemapURL {
	urls := []sitemapURL{
		{Loc: a.absURL("/"), Priority: 1.0},
		{Loc: a.absURL("/categories/"), Priority: 0.8},
		{Loc: a.absURL("/blog/"), Priority: 0.8},
		{Loc: a.absURL("/sitemap/"), Priority: 0.3},
	}
	for _, g := range a.Catalog.AllGames() {
		urls = append(urls, sitemapURL{Loc: a.absURL(views.GameURL(g.Slug)), LastMod: g.AddedAt, Priority: 0.9})
	}
	for _, c := range a.Catalog.Categories() {
		urls = append(urls, sitemapURL{Loc: a.absURL(views.CategoryURL(c.Slug)), Priority: 0.7})
	}
	for _, p := range a.Catalog.RecentPosts(0) {
		urls = append(urls, sitemapURL{Loc: a.absURL(views.PostURL(p.Slug)), LastMod: p.Date, Priority: 0.6})
	}
	for _, p := range a.Catalog.Pages() {
		urls = append(urls, sitemapURL{Loc: a.absURL(views.PageURL(p.Slug)), LastMod: p.Updated, Priority: 0.3})
	}
	return urls
}

func (a *App) renderSitemap(c echo.Context) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  a.sitemapURLs(),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
