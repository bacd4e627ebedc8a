package gamesite

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/gamesite/structure"
	"github.com/eringen/gamesite/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.siteView(), false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	a.Logger.Warn("admin login failed", "ip", ip)
	return RenderStatus(c, http.StatusUnauthorized, views.AdminLogin(a.siteView(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleCacheClear(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	n := a.Cache.Len()
	a.Cache.Clear()
	a.Logger.Info("config cache cleared", "entries", n)
	return c.Redirect(http.StatusSeeOther, "/admin/?msg=cleared")
}

// adminData snapshots the section order of every known page, then the cache.
// Resolving the pages warms the cache, so the entries reflect what a visitor
// would be served.
func (a *App) adminData() views.AdminData {
	var pages []views.PageOrderView
	for _, name := range structure.PageNames {
		ps := a.Resolver.Page(name)
		ordered := structure.SortComponentsByOrder(ps.Sections)
		enabled := make(map[string]bool, len(ordered))
		for _, s := range ordered {
			enabled[s.Name] = true
		}
		var disabled []string
		for _, s := range ps.Sections {
			if !enabled[s.Name] {
				disabled = append(disabled, s.Name)
			}
		}
		pages = append(pages, views.PageOrderView{
			Page:     name,
			Sections: structure.Names(ordered),
			Disabled: disabled,
		})
	}

	var entries []views.CacheEntryView
	for _, e := range a.Cache.Entries() {
		entries = append(entries, views.CacheEntryView{Path: e.Path, Age: e.Age, Expired: e.Expired})
	}

	games, posts, categories, static := a.Catalog.Counts()
	return views.AdminData{
		Mode:        a.Config.Mode,
		CacheTTL:    a.Cache.TTL(),
		Entries:     entries,
		Pages:       pages,
		Games:       games,
		Posts:       posts,
		Categories:  categories,
		StaticPages: static,
	}
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	return Render(c, views.AdminDashboard(a.siteView(), a.adminData(), msg, CsrfToken(c)))
}
