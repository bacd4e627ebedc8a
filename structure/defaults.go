package structure

// Page names with built-in default structures.
const (
	PageHome       = "homepage"
	PageGame       = "game-page"
	PageCategories = "categories-page"
	PageCategory   = "category-page"
	PageBlog       = "blog-page"
	PageBlogPost   = "blog-post"
	PageSearch     = "search-page"
	PageSitemap    = "sitemap-page"
	PageStatic     = "static-page"
)

// PageNames lists every page with a default structure.
var PageNames = []string{
	PageHome, PageGame, PageCategories, PageCategory, PageBlog,
	PageBlogPost, PageSearch, PageSitemap, PageStatic,
}

func on(name string, order float64, props map[string]any) Section {
	if props == nil {
		props = map[string]any{}
	}
	return Section{Name: name, Kind: KindObject, Enabled: true, Order: order, HasOrder: true, Props: props}
}

func off(name string, order float64) Section {
	return Section{Name: name, Kind: KindObject, Order: order, HasOrder: true, Props: map[string]any{}}
}

// DefaultPage returns the built-in structure for page. Unknown pages get an
// empty structure.
func DefaultPage(page string) PageStructure {
	switch page {
	case PageHome:
		return PageStructure{Sections: Sections{
			on("hero", 1, map[string]any{"title": "Play free games online", "ctaText": "Browse games", "ctaUrl": "/categories/"}),
			on("featuredGames", 2, map[string]any{"title": "Featured Games", "limit": float64(8), "columns": float64(4)}),
			on("popularGames", 3, map[string]any{"title": "Popular Games", "limit": float64(8), "columns": float64(4), "showPlays": true}),
			on("categories", 4, map[string]any{"title": "Categories", "showCounts": true}),
			on("newGames", 5, map[string]any{"title": "New Games", "limit": float64(8), "columns": float64(4)}),
			off("topRated", 6),
			on("latestPosts", 7, map[string]any{"title": "From the Blog", "limit": float64(3), "showExcerpt": true}),
			off("about", 8),
		}}
	case PageGame:
		return PageStructure{Sections: Sections{
			on("breadcrumbs", 1, nil),
			on("player", 2, map[string]any{"width": float64(800), "height": float64(600)}),
			on("info", 3, map[string]any{"showRating": true, "showTags": true, "showPlays": true}),
			on("instructions", 4, map[string]any{"title": "How to Play"}),
			on("controls", 5, map[string]any{"title": "Controls"}),
			on("relatedGames", 6, map[string]any{"title": "You May Also Like", "limit": float64(6), "columns": float64(3)}),
			off("relatedPosts", 7),
			on("share", 8, map[string]any{"title": "Share"}),
		}}
	case PageCategories:
		return PageStructure{Sections: Sections{
			on("header", 1, map[string]any{"title": "All Categories"}),
			on("categoryList", 2, map[string]any{"showCounts": true, "showDescription": true}),
		}}
	case PageCategory:
		return PageStructure{Sections: Sections{
			on("breadcrumbs", 1, nil),
			on("header", 2, map[string]any{"showCount": true}),
			on("gameGrid", 3, map[string]any{"columns": float64(4), "sort": "popular"}),
			on("otherCategories", 4, map[string]any{"title": "Other Categories"}),
		}}
	case PageBlog:
		return PageStructure{Sections: Sections{
			on("header", 1, map[string]any{"title": "Blog"}),
			on("featuredPost", 2, nil),
			on("postList", 3, map[string]any{"showExcerpt": true}),
			on("tags", 4, map[string]any{"title": "Topics"}),
		}}
	case PageBlogPost:
		return PageStructure{Sections: Sections{
			on("breadcrumbs", 1, nil),
			on("article", 2, map[string]any{"showAuthor": true, "showDate": true, "showTags": true}),
			on("relatedPosts", 3, map[string]any{"title": "Related Posts", "limit": float64(3)}),
			on("relatedGames", 4, map[string]any{"title": "Games Mentioned", "limit": float64(4), "columns": float64(4)}),
		}}
	case PageSearch:
		return PageStructure{Sections: Sections{
			on("searchForm", 1, map[string]any{"placeholder": "Search games and posts"}),
			on("results", 2, map[string]any{"limit": float64(30)}),
			on("popularGames", 3, map[string]any{"title": "Popular Right Now", "limit": float64(8), "columns": float64(4), "onlyWhenEmpty": true}),
		}}
	case PageSitemap:
		return PageStructure{Sections: Sections{
			on("games", 1, map[string]any{"title": "Games"}),
			on("categories", 2, map[string]any{"title": "Categories"}),
			on("posts", 3, map[string]any{"title": "Blog Posts"}),
			on("pages", 4, map[string]any{"title": "Pages"}),
		}}
	case PageStatic:
		return PageStructure{Sections: Sections{
			on("article", 1, map[string]any{"showUpdated": true}),
		}}
	}
	return PageStructure{}
}
