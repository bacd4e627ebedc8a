package gamesite

import (
	"github.com/a-h/templ"

	"github.com/eringen/gamesite/content"
	"github.com/eringen/gamesite/structure"
	"github.com/eringen/gamesite/views"
)

// sectionFunc renders one configured section. A nil component means the
// section has nothing to show on this request.
type sectionFunc func(s structure.Section) templ.Component

// composePage resolves the structure of page, orders its enabled sections
// and renders each through table. Names missing from table are skipped.
func (a *App) composePage(page string, table map[string]sectionFunc) (templ.Component, structure.PageStructure) {
	ps := a.Resolver.Page(page)
	ordered := structure.SortComponentsByOrder(ps.Sections)
	parts := make([]templ.Component, 0, len(ordered))
	for _, s := range ordered {
		render, ok := table[s.Name]
		if !ok {
			a.Logger.Debug("unknown section", "page", page, "section", s.Name)
			continue
		}
		if c := render(s); c != nil {
			parts = append(parts, views.Section(s.Name, c))
		}
	}
	return views.Sections(parts...), ps
}

// applyStructureMeta lets a structure file override the page title and
// description.
func applyStructureMeta(meta *views.PageMeta, ps structure.PageStructure) {
	if ps.Title != "" {
		meta.Title = ps.Title
	}
	if ps.Description != "" {
		meta.Description = ps.Description
	}
}

func gridOptions(s structure.Section) views.GridOptions {
	return views.GridOptions{
		Columns:      s.Int("columns", 4),
		ShowPlays:    s.Bool("showPlays", false),
		ShowRating:   s.Bool("showRating", false),
		ShowCategory: s.Bool("showCategory", false),
		MoreURL:      s.String("moreUrl", ""),
		MoreText:     s.String("moreText", ""),
		Empty:        s.String("empty", ""),
	}
}

func categoryOptions(s structure.Section) views.CategoryOptions {
	return views.CategoryOptions{
		ShowCounts:      s.Bool("showCounts", false),
		ShowDescription: s.Bool("showDescription", false),
	}
}

func postListOptions(s structure.Section) views.PostListOptions {
	return views.PostListOptions{
		ShowExcerpt: s.Bool("showExcerpt", false),
		ShowDate:    s.Bool("showDate", true),
		ShowAuthor:  s.Bool("showAuthor", false),
		MoreURL:     s.String("moreUrl", ""),
		Empty:       s.String("empty", ""),
	}
}

func gameGrid(title string, games func(limit int) []content.Game, limit int) sectionFunc {
	return func(s structure.Section) templ.Component {
		return views.GameGrid(s.String("title", title), games(s.Int("limit", limit)), gridOptions(s))
	}
}

func limitCategories(cats []content.CategoryCount, limit int) []content.CategoryCount {
	if limit > 0 && limit < len(cats) {
		return cats[:limit]
	}
	return cats
}

func (a *App) homeSections(site views.SiteConfig) map[string]sectionFunc {
	cat := a.Catalog
	return map[string]sectionFunc{
		"hero": func(s structure.Section) templ.Component {
			return views.Hero(
				s.String("title", site.Name),
				s.String("subtitle", site.Tagline),
				s.String("ctaText", ""),
				s.String("ctaUrl", ""),
			)
		},
		"featuredGames": gameGrid("Featured Games", cat.FeaturedGames, 8),
		"popularGames":  gameGrid("Popular Games", cat.PopularGames, 8),
		"newGames":      gameGrid("New Games", cat.NewGames, 8),
		"topRated":      gameGrid("Top Rated", cat.TopRatedGames, 8),
		"categories": func(s structure.Section) templ.Component {
			cats := limitCategories(cat.Categories(), s.Int("limit", 0))
			return views.CategoryGrid(s.String("title", "Categories"), cats, categoryOptions(s))
		},
		"latestPosts": func(s structure.Section) templ.Component {
			opts := postListOptions(s)
			if opts.MoreURL == "" {
				opts.MoreURL = "/blog/"
			}
			return views.PostList(s.String("title", "From the Blog"), cat.RecentPosts(s.Int("limit", 3)), opts)
		},
		"about": func(s structure.Section) templ.Component {
			body := s.String("content", site.Description)
			if body == "" {
				return nil
			}
			return views.TextBlock(s.String("title", "About "+site.Name), body)
		},
	}
}

func gameCrumbs(g content.Game) []views.Crumb {
	crumbs := []views.Crumb{{Label: "Home", URL: "/"}}
	if g.Category != "" {
		crumbs = append(crumbs, views.Crumb{Label: g.Category, URL: views.CategoryURL(g.CategorySlug())})
	}
	return append(crumbs, views.Crumb{Label: g.Title, URL: views.GameURL(g.Slug)})
}

func (a *App) gameSections(g content.Game) map[string]sectionFunc {
	cat := a.Catalog
	return map[string]sectionFunc{
		"breadcrumbs": func(structure.Section) templ.Component {
			return views.Breadcrumbs(gameCrumbs(g))
		},
		"player": func(s structure.Section) templ.Component {
			return views.GamePlayer(g, s.Int("width", 800), s.Int("height", 600))
		},
		"info": func(s structure.Section) templ.Component {
			return views.GameInfo(g, s.Bool("showPlays", true), s.Bool("showRating", true), s.Bool("showTags", true))
		},
		"instructions": func(s structure.Section) templ.Component {
			return views.Instructions(s.String("title", "How to Play"), g.Instructions)
		},
		"controls": func(s structure.Section) templ.Component {
			return views.Controls(s.String("title", "Controls"), g.Controls)
		},
		"relatedGames": func(s structure.Section) templ.Component {
			return views.GameGrid(s.String("title", "You May Also Like"), cat.RelatedGames(g, s.Int("limit", 6)), gridOptions(s))
		},
		"relatedPosts": func(s structure.Section) templ.Component {
			return views.PostList(s.String("title", "Related Posts"), cat.PostsForGame(g, s.Int("limit", 3)), postListOptions(s))
		},
		"share": func(s structure.Section) templ.Component {
			return views.ShareLinks(s.String("title", "Share"), a.absURL(views.GameURL(g.Slug)), s.String("text", "Play "+g.Title))
		},
	}
}

func (a *App) categoriesSections() map[string]sectionFunc {
	return map[string]sectionFunc{
		"header": func(s structure.Section) templ.Component {
			return views.Header(s.String("title", "All Categories"), s.String("subtitle", ""))
		},
		"categoryList": func(s structure.Section) templ.Component {
			return views.CategoryGrid(s.String("title", ""), a.Catalog.Categories(), categoryOptions(s))
		},
	}
}

func (a *App) categorySections(category content.Category) map[string]sectionFunc {
	cat := a.Catalog
	all := cat.GamesByCategory(category.Slug, 0)
	return map[string]sectionFunc{
		"breadcrumbs": func(structure.Section) templ.Component {
			return views.Breadcrumbs([]views.Crumb{
				{Label: "Home", URL: "/"},
				{Label: "Categories", URL: "/categories/"},
				{Label: category.Name, URL: views.CategoryURL(category.Slug)},
			})
		},
		"header": func(s structure.Section) templ.Component {
			return views.CategoryHeader(category, len(all), s.Bool("showCount", true))
		},
		"gameGrid": func(s structure.Section) templ.Component {
			games := append([]content.Game(nil), all...)
			content.SortGames(games, s.String("sort", "popular"))
			if limit := s.Int("limit", 0); limit > 0 && limit < len(games) {
				games = games[:limit]
			}
			opts := gridOptions(s)
			if opts.Empty == "" {
				opts.Empty = "No games in this category yet."
			}
			return views.GameGrid(s.String("title", ""), games, opts)
		},
		"otherCategories": func(s structure.Section) templ.Component {
			var others []content.CategoryCount
			for _, c := range cat.Categories() {
				if c.Slug != category.Slug {
					others = append(others, c)
				}
			}
			others = limitCategories(others, s.Int("limit", 0))
			return views.CategoryGrid(s.String("title", "Other Categories"), others, categoryOptions(s))
		},
	}
}

func (a *App) blogSections(tag string) map[string]sectionFunc {
	cat := a.Catalog
	return map[string]sectionFunc{
		"header": func(s structure.Section) templ.Component {
			subtitle := s.String("subtitle", "")
			if tag != "" {
				subtitle = "Posts tagged “" + tag + "”"
			}
			return views.Header(s.String("title", "Blog"), subtitle)
		},
		"featuredPost": func(structure.Section) templ.Component {
			if tag != "" {
				return nil
			}
			featured := cat.FeaturedPosts(1)
			if len(featured) == 0 {
				return nil
			}
			return views.FeaturedPost(featured[0])
		},
		"postList": func(s structure.Section) templ.Component {
			limit := s.Int("limit", 0)
			posts := cat.RecentPosts(limit)
			if tag != "" {
				posts = cat.PostsByTag(tag, limit)
			}
			opts := postListOptions(s)
			if opts.Empty == "" {
				opts.Empty = "No posts yet."
			}
			return views.PostList(s.String("title", ""), posts, opts)
		},
		"tags": func(s structure.Section) templ.Component {
			return views.TagCloud(s.String("title", "Topics"), cat.PostTags(), tag)
		},
	}
}

func (a *App) postSections(p content.BlogPost) map[string]sectionFunc {
	cat := a.Catalog
	return map[string]sectionFunc{
		"breadcrumbs": func(structure.Section) templ.Component {
			return views.Breadcrumbs(postCrumbs(p))
		},
		"article": func(s structure.Section) templ.Component {
			return views.Article(p, views.ArticleOptions{
				ShowAuthor: s.Bool("showAuthor", true),
				ShowDate:   s.Bool("showDate", true),
				ShowTags:   s.Bool("showTags", true),
			})
		},
		"relatedPosts": func(s structure.Section) templ.Component {
			return views.PostList(s.String("title", "Related Posts"), cat.RelatedPosts(p, s.Int("limit", 3)), postListOptions(s))
		},
		"relatedGames": func(s structure.Section) templ.Component {
			return views.GameGrid(s.String("title", "Games Mentioned"), cat.GamesForPost(p, s.Int("limit", 4)), gridOptions(s))
		},
	}
}

func postCrumbs(p content.BlogPost) []views.Crumb {
	return []views.Crumb{
		{Label: "Home", URL: "/"},
		{Label: "Blog", URL: "/blog/"},
		{Label: p.Title, URL: views.PostURL(p.Slug)},
	}
}

func (a *App) searchSections(query string, results []views.SearchResult) map[string]sectionFunc {
	return map[string]sectionFunc{
		"searchForm": func(s structure.Section) templ.Component {
			return views.SearchForm(query, s.String("placeholder", "Search games and posts"))
		},
		"results": func(structure.Section) templ.Component {
			return views.SearchResults(query, results)
		},
		"popularGames": func(s structure.Section) templ.Component {
			if s.Bool("onlyWhenEmpty", true) && len(results) > 0 {
				return nil
			}
			return views.GameGrid(s.String("title", "Popular Right Now"), a.Catalog.PopularGames(s.Int("limit", 8)), gridOptions(s))
		},
	}
}

func (a *App) sitemapSections() map[string]sectionFunc {
	cat := a.Catalog
	return map[string]sectionFunc{
		"games": func(s structure.Section) templ.Component {
			games := cat.AllGames()
			content.SortGames(games, "title")
			links := make([]views.NavLink, len(games))
			for i, g := range games {
				links[i] = views.NavLink{Label: g.Title, URL: views.GameURL(g.Slug)}
			}
			return views.LinkList(s.String("title", "Games"), links)
		},
		"categories": func(s structure.Section) templ.Component {
			var links []views.NavLink
			for _, c := range cat.Categories() {
				links = append(links, views.NavLink{Label: c.Name, URL: views.CategoryURL(c.Slug)})
			}
			return views.LinkList(s.String("title", "Categories"), links)
		},
		"posts": func(s structure.Section) templ.Component {
			var links []views.NavLink
			for _, p := range cat.RecentPosts(0) {
				links = append(links, views.NavLink{Label: p.Title, URL: views.PostURL(p.Slug)})
			}
			return views.LinkList(s.String("title", "Blog Posts"), links)
		},
		"pages": func(s structure.Section) templ.Component {
			var links []views.NavLink
			for _, p := range cat.Pages() {
				links = append(links, views.NavLink{Label: p.Title, URL: views.PageURL(p.Slug)})
			}
			return views.LinkList(s.String("title", "Pages"), links)
		},
	}
}

func staticSections(p content.Page) map[string]sectionFunc {
	return map[string]sectionFunc{
		"article": func(s structure.Section) templ.Component {
			return views.PageArticle(p, s.Bool("showUpdated", true))
		},
	}
}
