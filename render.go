package gamesite

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/gamesite/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// renderPage wraps body in the site layout. The canonical URL defaults to
// the request path.
func (a *App) renderPage(c echo.Context, site views.SiteConfig, meta views.PageMeta, body templ.Component) error {
	if meta.URL == "" {
		meta.URL = a.absURL(c.Request().URL.Path)
	}
	return Render(c, views.Page(site, meta, body))
}

func (a *App) notFound(c echo.Context) error {
	return RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteView()))
}

// absURL turns a site-relative path into an absolute URL under Config.URL.
func (a *App) absURL(path string) string {
	return strings.TrimSuffix(a.Config.URL, "/") + path
}
