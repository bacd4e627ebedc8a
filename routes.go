package gamesite

func (a *App) setupRoutes() {
	e := a.Echo

	// Static assets: the user's static dir first, then the embedded defaults.
	e.GET("/public/*", a.handlePublic)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Feeds
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Pages
	e.GET("/", a.handleHome)
	e.GET("/games/:slug/", a.handleGame)
	e.GET("/categories/", a.handleCategories)
	e.GET("/category/:slug/", a.handleCategory)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/search/", a.handleSearch)
	e.GET("/sitemap/", a.handleSitemapPage)
	e.GET("/:page/", a.handleStaticPage)

	// Admin cache console
	if a.Config.AdminEnabled() {
		e.GET("/admin/", a.handleAdmin)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
		e.POST("/admin/cache/clear/", a.handleCacheClear)
	}
}
