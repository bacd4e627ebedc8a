package gamesite

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/gamesite/content"
	"github.com/eringen/gamesite/structure"
	"github.com/eringen/gamesite/views"
)

const searchLimit = 30

func (a *App) handleHome(c echo.Context) error {
	site := a.siteView()
	body, ps := a.composePage(structure.PageHome, a.homeSections(site))
	meta := views.PageMeta{
		Title:       site.Name,
		Description: site.Description,
		URL:         a.absURL("/"),
		JSONLD:      views.WebsiteJsonLD(site),
	}
	applyStructureMeta(&meta, ps)
	return a.renderPage(c, site, meta, body)
}

func (a *App) handleGame(c echo.Context) error {
	g, err := a.Catalog.Game(c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		return a.notFound(c)
	}
	if err != nil {
		return err
	}
	site := a.siteView()
	body, ps := a.composePage(structure.PageGame, a.gameSections(g))
	meta := views.PageMeta{
		Title:       g.Title,
		Description: g.Description,
		URL:         a.absURL(views.GameURL(g.Slug)),
		OGType:      "website",
		Image:       g.Thumbnail,
		JSONLD:      views.VideoGameJsonLD(site, g),
		Breadcrumbs: views.BreadcrumbJsonLD(site, gameCrumbs(g)),
	}
	applyStructureMeta(&meta, ps)
	return a.renderPage(c, site, meta, body)
}

func (a *App) handleCategories(c echo.Context) error {
	site := a.siteView()
	body, ps := a.composePage(structure.PageCategories, a.categoriesSections())
	meta := views.PageMeta{Title: "Game Categories", URL: a.absURL("/categories/")}
	applyStructureMeta(&meta, ps)
	return a.renderPage(c, site, meta, body)
}

func (a *App) handleCategory(c echo.Context) error {
	category, err := a.Catalog.Category(c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		return a.notFound(c)
	}
	if err != nil {
		return err
	}
	site := a.siteView()
	body, ps := a.composePage(structure.PageCategory, a.categorySections(category))
	meta := views.PageMeta{
		Title:       category.Name + " Games",
		Description: category.Description,
		URL:         a.absURL(views.CategoryURL(category.Slug)),
	}
	applyStructureMeta(&meta, ps)
	return a.renderPage(c, site, meta, body)
}

func (a *App) handleBlog(c echo.Context) error {
	tag := strings.TrimSpace(c.QueryParam("tag"))
	site := a.siteView()
	body, ps := a.composePage(structure.PageBlog, a.blogSections(tag))
	meta := views.PageMeta{Title: "Blog", URL: a.absURL("/blog/")}
	applyStructureMeta(&meta, ps)
	if tag != "" {
		meta.Title += ": " + tag
	}
	return a.renderPage(c, site, meta, body)
}

func (a *App) handlePost(c echo.Context) error {
	p, err := a.Catalog.Post(c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		return a.notFound(c)
	}
	if err != nil {
		return err
	}
	site := a.siteView()
	body, _ := a.composePage(structure.PageBlogPost, a.postSections(p))
	// A post's own title always wins over the structure file.
	meta := views.PageMeta{
		Title:       p.Title,
		Description: p.Excerpt,
		URL:         a.absURL(views.PostURL(p.Slug)),
		OGType:      "article",
		Image:       p.Image,
		JSONLD:      views.BlogPostingJsonLD(site, p),
		Breadcrumbs: views.BreadcrumbJsonLD(site, postCrumbs(p)),
	}
	return a.renderPage(c, site, meta, body)
}

func (a *App) handleSearch(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	hits, err := a.Search.Search(c.Request().Context(), query, searchLimit)
	if err != nil {
		return err
	}
	results := make([]views.SearchResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, views.SearchResult{
			Kind:    h.Kind,
			Title:   h.Title,
			URL:     hitURL(h),
			Summary: h.Summary,
		})
	}
	site := a.siteView()
	body, ps := a.composePage(structure.PageSearch, a.searchSections(query, results))
	meta := views.PageMeta{Title: "Search", URL: a.absURL("/search/")}
	applyStructureMeta(&meta, ps)
	if query != "" {
		meta.Title = "Search: " + query
	}
	return a.renderPage(c, site, meta, body)
}

func hitURL(h SearchHit) string {
	switch h.Kind {
	case KindGame:
		return views.GameURL(h.Slug)
	case KindPost:
		return views.PostURL(h.Slug)
	default:
		return views.PageURL(h.Slug)
	}
}

func (a *App) handleSitemapPage(c echo.Context) error {
	site := a.siteView()
	body, ps := a.composePage(structure.PageSitemap, a.sitemapSections())
	meta := views.PageMeta{Title: "Sitemap", URL: a.absURL("/sitemap/")}
	applyStructureMeta(&meta, ps)
	return a.renderPage(c, site, meta, views.Sections(views.Header(meta.Title, ""), body))
}

func (a *App) handleStaticPage(c echo.Context) error {
	p, err := a.Catalog.Page(c.Param("page"))
	if errors.Is(err, content.ErrNotFound) {
		return a.notFound(c)
	}
	if err != nil {
		return err
	}
	site := a.siteView()
	body, _ := a.composePage(structure.PageStatic, staticSections(p))
	meta := views.PageMeta{
		Title:       p.Title,
		Description: p.Description,
		URL:         a.absURL(views.PageURL(p.Slug)),
	}
	return a.renderPage(c, site, meta, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Catalog.RecentPosts(feedLimit))
}

func (a *App) handleFavicon(c echo.Context) error {
	if path := filepath.Join(a.staticDir, "favicon.svg"); fileExists(path) {
		return c.File(path)
	}
	return a.serveEmbedded(c, "favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	if path := filepath.Join(a.staticDir, "robots.txt"); fileExists(path) {
		return c.File(path)
	}
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	if a.Config.AdminEnabled() {
		b.WriteString("Disallow: /admin/\n")
	}
	b.WriteString("Sitemap: " + a.absURL("/sitemap.xml") + "\n")
	return c.String(http.StatusOK, b.String())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.notFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			"method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
		_ = RenderStatus(c, code, views.ServerError(a.siteView()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
