package views

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/gamesite/content"
	"github.com/eringen/gamesite/markdown"
)

func heading(h *htmlWriter, title, moreURL, moreText string) {
	if title == "" {
		return
	}
	h.raw(`<div class="section-heading">`)
	h.printf(`<h2>%s</h2>`, esc(title))
	if moreURL != "" {
		if moreText == "" {
			moreText = "View all"
		}
		h.printf(`<a class="more" href="%s">%s</a>`, safeURL(moreURL), esc(moreText))
	}
	h.raw(`</div>`)
}

// Hero is the homepage banner.
func Hero(title, subtitle, ctaText, ctaURL string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="hero">`)
		h.printf(`<h1>%s</h1>`, esc(title))
		if subtitle != "" {
			h.printf(`<p class="hero-subtitle">%s</p>`, esc(subtitle))
		}
		if ctaText != "" && ctaURL != "" {
			h.printf(`<a class="button" href="%s">%s</a>`, safeURL(ctaURL), esc(ctaText))
		}
		h.raw(`</div>`)
	})
}

// Header is a page title with an optional subtitle.
func Header(title, subtitle string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<header class="page-header">`)
		h.printf(`<h1>%s</h1>`, esc(title))
		if subtitle != "" {
			h.printf(`<p>%s</p>`, esc(subtitle))
		}
		h.raw(`</header>`)
	})
}

// GameGrid renders games as cards. An empty list renders opts.Empty, or
// nothing when that is blank.
func GameGrid(title string, games []content.Game, opts GridOptions) templ.Component {
	return component(func(h *htmlWriter) {
		if len(games) == 0 && opts.Empty == "" {
			return
		}
		heading(h, title, opts.MoreURL, opts.MoreText)
		if len(games) == 0 {
			h.printf(`<p class="empty">%s</p>`, esc(opts.Empty))
			return
		}
		h.printf(`<div class="%s">`, gridClass(opts.Columns))
		for _, g := range games {
			gameCard(h, g, opts)
		}
		h.raw(`</div>`)
	})
}

func gameCard(h *htmlWriter, g content.Game, opts GridOptions) {
	h.printf(`<a class="game-card" href="%s">`, safeURL(GameURL(g.Slug)))
	if g.Thumbnail != "" {
		h.printf(`<img src="%s" alt="%s" loading="lazy" width="320" height="240"/>`, safeURL(g.Thumbnail), esc(g.Title))
	} else {
		h.printf(`<div class="thumb-placeholder">%s</div>`, esc(initial(g.Title)))
	}
	h.printf(`<span class="game-title">%s</span>`, esc(g.Title))
	if opts.ShowCategory || opts.ShowPlays || opts.ShowRating {
		h.raw(`<span class="game-meta">`)
		if opts.ShowCategory && g.Category != "" {
			h.printf(`<span class="game-category">%s</span>`, esc(g.Category))
		}
		if opts.ShowRating && g.Rating > 0 {
			h.printf(`<span class="game-rating">★ %s</span>`, FormatRating(g.Rating))
		}
		if opts.ShowPlays {
			h.printf(`<span class="game-plays">%s plays</span>`, FormatPlays(g.Plays))
		}
		h.raw(`</span>`)
	}
	h.raw(`</a>`)
}

func initial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// CategoryGrid lists categories with optional game counts.
func CategoryGrid(title string, cats []content.CategoryCount, opts CategoryOptions) templ.Component {
	return component(func(h *htmlWriter) {
		if len(cats) == 0 {
			return
		}
		heading(h, title, "", "")
		h.raw(`<ul class="category-grid">`)
		for _, c := range cats {
			h.printf(`<li><a class="category-card" href="%s">`, safeURL(CategoryURL(c.Slug)))
			if c.Icon != "" {
				h.printf(`<span class="category-icon">%s</span>`, esc(c.Icon))
			}
			h.printf(`<span class="category-name">%s</span>`, esc(c.Name))
			if opts.ShowCounts {
				h.printf(`<span class="category-count">%s</span>`, esc(gameCount(c.Games)))
			}
			if opts.ShowDescription && c.Description != "" {
				h.printf(`<span class="category-description">%s</span>`, esc(c.Description))
			}
			h.raw(`</a></li>`)
		}
		h.raw(`</ul>`)
	})
}

func gameCount(n int) string {
	if n == 1 {
		return "1 game"
	}
	return fmt.Sprintf("%d games", n)
}

// CategoryHeader is the title block of a category page.
func CategoryHeader(cat content.Category, games int, showCount bool) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<header class="page-header category-header">`)
		if cat.Icon != "" {
			h.printf(`<span class="category-icon">%s</span>`, esc(cat.Icon))
		}
		h.printf(`<h1>%s</h1>`, esc(cat.Name))
		if cat.Description != "" {
			h.printf(`<p>%s</p>`, esc(cat.Description))
		}
		if showCount {
			h.printf(`<p class="category-count">%s</p>`, esc(gameCount(games)))
		}
		h.raw(`</header>`)
	})
}

// PostList renders post summaries.
func PostList(title string, posts []content.BlogPost, opts PostListOptions) templ.Component {
	return component(func(h *htmlWriter) {
		if len(posts) == 0 && opts.Empty == "" {
			return
		}
		heading(h, title, opts.MoreURL, "All posts")
		if len(posts) == 0 {
			h.printf(`<p class="empty">%s</p>`, esc(opts.Empty))
			return
		}
		h.raw(`<ul class="post-list">`)
		for _, p := range posts {
			h.raw(`<li class="post-item">`)
			h.printf(`<a class="post-title" href="%s">%s</a>`, safeURL(PostURL(p.Slug)), esc(p.Title))
			if opts.ShowDate || opts.ShowAuthor {
				h.raw(`<span class="post-meta">`)
				if opts.ShowDate && p.Date != "" {
					h.printf(`<time datetime="%s">%s</time>`, esc(p.Date), esc(p.Date))
				}
				if opts.ShowAuthor && p.Author != "" {
					h.printf(` <span class="post-author">by %s</span>`, esc(p.Author))
				}
				h.raw(`</span>`)
			}
			if opts.ShowExcerpt {
				if ex := postExcerpt(p); ex != "" {
					h.printf(`<p class="post-excerpt">%s</p>`, esc(ex))
				}
			}
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	})
}

func postExcerpt(p content.BlogPost) string {
	if p.Excerpt != "" {
		return p.Excerpt
	}
	return markdown.Excerpt(p.Content, 160)
}

// FeaturedPost is a large card for one post.
func FeaturedPost(p content.BlogPost) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<article class="featured-post">`)
		if p.Image != "" {
			h.printf(`<img src="%s" alt="%s" loading="lazy"/>`, safeURL(p.Image), esc(p.Title))
		}
		h.printf(`<h2><a href="%s">%s</a></h2>`, safeURL(PostURL(p.Slug)), esc(p.Title))
		if ex := postExcerpt(p); ex != "" {
			h.printf(`<p>%s</p>`, esc(ex))
		}
		h.printf(`<a class="button" href="%s">Read more</a>`, safeURL(PostURL(p.Slug)))
		h.raw(`</article>`)
	})
}

// TextBlock renders a titled markdown block.
func TextBlock(title, body string) templ.Component {
	return component(func(h *htmlWriter) {
		heading(h, title, "", "")
		h.raw(`<div class="prose">`)
		h.render(markdown.Markdown(body))
		h.raw(`</div>`)
	})
}

// Breadcrumbs renders a trail. The last crumb is plain text.
func Breadcrumbs(crumbs []Crumb) templ.Component {
	return component(func(h *htmlWriter) {
		if len(crumbs) == 0 {
			return
		}
		h.raw(`<nav class="breadcrumbs" aria-label="Breadcrumb"><ol>`)
		for i, c := range crumbs {
			if i == len(crumbs)-1 || c.URL == "" {
				h.printf(`<li aria-current="page">%s</li>`, esc(c.Label))
				continue
			}
			h.printf(`<li><a href="%s">%s</a></li>`, safeURL(c.URL), esc(c.Label))
		}
		h.raw(`</ol></nav>`)
	})
}

// GamePlayer embeds the game in a sandboxed iframe. The game's own size
// wins over the section defaults.
func GamePlayer(g content.Game, width, height int) templ.Component {
	return component(func(h *htmlWriter) {
		if g.Width > 0 {
			width = g.Width
		}
		if g.Height > 0 {
			height = g.Height
		}
		h.printf(`<div class="game-player" style="aspect-ratio: %d / %d">`, width, height)
		if g.EmbedURL == "" {
			h.raw(`<p class="empty">This game is not available right now.</p></div>`)
			return
		}
		h.printf(`<iframe src="%s" title="%s" width="%d" height="%d" loading="lazy" allowfullscreen sandbox="allow-scripts allow-same-origin allow-pointer-lock"></iframe>`,
			safeURL(g.EmbedURL), esc(g.Title), width, height)
		h.raw(`</div>`)
	})
}

// GameInfo shows the title, description and stats of a game.
func GameInfo(g content.Game, showPlays, showRating, showTags bool) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="game-info">`)
		h.printf(`<h1>%s</h1>`, esc(g.Title))
		h.raw(`<p class="game-stats">`)
		if g.Category != "" {
			h.printf(`<a class="game-category" href="%s">%s</a>`, safeURL(CategoryURL(g.CategorySlug())), esc(g.Category))
		}
		if showRating && g.Rating > 0 {
			h.printf(` <span class="game-rating">★ %s</span>`, FormatRating(g.Rating))
		}
		if showPlays {
			h.printf(` <span class="game-plays">%s plays</span>`, FormatPlays(g.Plays))
		}
		if g.Developer != "" {
			h.printf(` <span class="game-developer">by %s</span>`, esc(g.Developer))
		}
		h.raw(`</p>`)
		if g.Description != "" {
			h.printf(`<p class="game-description">%s</p>`, esc(g.Description))
		}
		if showTags && len(g.Tags) > 0 {
			h.raw(`<ul class="tags">`)
			for _, t := range g.Tags {
				h.printf(`<li><a href="/search/?q=%s">%s</a></li>`, esc(url.QueryEscape(t)), esc(t))
			}
			h.raw(`</ul>`)
		}
		h.raw(`</div>`)
	})
}

// Instructions renders how-to-play text. Nothing renders when text is empty.
func Instructions(title, text string) templ.Component {
	return component(func(h *htmlWriter) {
		if strings.TrimSpace(text) == "" {
			return
		}
		h.render(TextBlock(title, text))
	})
}

// Controls lists the game's key bindings.
func Controls(title string, controls []string) templ.Component {
	return component(func(h *htmlWriter) {
		if len(controls) == 0 {
			return
		}
		heading(h, title, "", "")
		h.raw(`<ul class="controls">`)
		for _, c := range controls {
			h.printf(`<li>%s</li>`, esc(c))
		}
		h.raw(`</ul>`)
	})
}

// ShareLinks renders social share links for an absolute page URL.
func ShareLinks(title, pageURL, text string) templ.Component {
	return component(func(h *htmlWriter) {
		u := url.QueryEscape(pageURL)
		t := url.QueryEscape(text)
		heading(h, title, "", "")
		h.raw(`<ul class="share-links">`)
		h.printf(`<li><a href="%s" rel="noopener noreferrer" target="_blank">X</a></li>`,
			safeURL("https://twitter.com/intent/tweet?url="+u+"&text="+t))
		h.printf(`<li><a href="%s" rel="noopener noreferrer" target="_blank">Facebook</a></li>`,
			safeURL("https://www.facebook.com/sharer/sharer.php?u="+u))
		h.printf(`<li><a href="%s" rel="noopener noreferrer" target="_blank">Reddit</a></li>`,
			safeURL("https://www.reddit.com/submit?url="+u+"&title="+t))
		h.raw(`</ul>`)
	})
}

// TagCloud links each blog tag to its filtered list. The active tag is marked.
func TagCloud(title string, tags []content.TagCount, active string) templ.Component {
	return component(func(h *htmlWriter) {
		if len(tags) == 0 {
			return
		}
		heading(h, title, "", "")
		h.raw(`<ul class="tags tag-cloud">`)
		for _, t := range tags {
			class := ""
			if strings.EqualFold(t.Tag, active) {
				class = ` class="active"`
			}
			h.printf(`<li><a%s href="%s">%s <span class="count">%d</span></a></li>`,
				class, safeURL(TagURL(t.Tag)), esc(t.Tag), t.Count)
		}
		h.raw(`</ul>`)
	})
}

// Article renders a full blog post.
func Article(p content.BlogPost, opts ArticleOptions) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<article class="post">`)
		h.printf(`<h1>%s</h1>`, esc(p.Title))
		h.raw(`<p class="post-meta">`)
		if opts.ShowDate && p.Date != "" {
			h.printf(`<time datetime="%s">%s</time> · `, esc(p.Date), esc(p.Date))
		}
		if opts.ShowAuthor && p.Author != "" {
			h.printf(`<span class="post-author">%s</span> · `, esc(p.Author))
		}
		h.printf(`<span class="reading-time">%d min read</span>`, p.ReadingTime)
		h.raw(`</p>`)
		if p.Image != "" {
			h.printf(`<img class="post-image" src="%s" alt="%s"/>`, safeURL(p.Image), esc(p.Title))
		}
		h.raw(`<div class="prose">`)
		h.render(markdown.Markdown(p.Content))
		h.raw(`</div>`)
		if opts.ShowTags && len(p.Tags) > 0 {
			h.raw(`<ul class="tags">`)
			for _, t := range p.Tags {
				h.printf(`<li><a href="%s">%s</a></li>`, safeURL(TagURL(t)), esc(t))
			}
			h.raw(`</ul>`)
		}
		h.raw(`</article>`)
	})
}

// PageArticle renders a static markdown page.
func PageArticle(p content.Page, showUpdated bool) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<article class="page">`)
		// Bodies usually open with their own heading.
		if !strings.HasPrefix(strings.TrimSpace(p.Body), "# ") {
			h.printf(`<h1>%s</h1>`, esc(p.Title))
		}
		if showUpdated && p.Updated != "" {
			h.printf(`<p class="page-updated">Last updated <time datetime="%s">%s</time></p>`, esc(p.Updated), esc(p.Updated))
		}
		h.raw(`<div class="prose">`)
		h.render(markdown.Markdown(p.Body))
		h.raw(`</div></article>`)
	})
}

// SearchForm is the search box on the search page.
func SearchForm(query, placeholder string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form class="search-form" action="/search/" method="get" role="search">`)
		h.printf(`<input type="search" name="q" value="%s" placeholder="%s" aria-label="Search"/>`, esc(query), esc(placeholder))
		h.raw(`<button type="submit">Search</button></form>`)
	})
}

// SearchResults lists hits for query. A blank query renders nothing.
func SearchResults(query string, results []SearchResult) templ.Component {
	return component(func(h *htmlWriter) {
		if strings.TrimSpace(query) == "" {
			return
		}
		if len(results) == 0 {
			h.printf(`<p class="empty">No results for &ldquo;%s&rdquo;.</p>`, esc(query))
			return
		}
		h.printf(`<p class="result-count">%d results for &ldquo;%s&rdquo;</p>`, len(results), esc(query))
		h.raw(`<ul class="search-results">`)
		for _, r := range results {
			h.printf(`<li class="result result-%s">`, esc(r.Kind))
			h.printf(`<a href="%s">%s</a> <span class="result-kind">%s</span>`, safeURL(r.URL), esc(r.Title), esc(r.Kind))
			if r.Summary != "" {
				h.printf(`<p>%s</p>`, esc(r.Summary))
			}
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	})
}

// LinkList is a titled list of links, used by the HTML sitemap.
func LinkList(title string, links []NavLink) templ.Component {
	return component(func(h *htmlWriter) {
		if len(links) == 0 {
			return
		}
		heading(h, title, "", "")
		h.raw(`<ul class="link-list">`)
		for _, l := range links {
			h.printf(`<li><a href="%s">%s</a></li>`, safeURL(l.URL), esc(l.Label))
		}
		h.raw(`</ul>`)
	})
}
