package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/gamesite/content"
)

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// printf writes a formatted string. Callers escape arguments with esc.
func (h *htmlWriter) printf(format string, args ...any) {
	if h.err == nil {
		_, h.err = fmt.Fprintf(h.w, format, args...)
	}
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

var esc = templ.EscapeString[string]

// safeURL escapes an href or src value after templ's URL sanitization, which
// replaces javascript: and other unsafe schemes.
func safeURL(u string) string {
	return esc(string(templ.URL(u)))
}

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// GameURL is the site-relative URL of a game page.
func GameURL(slug string) string { return "/games/" + url.PathEscape(slug) + "/" }

// CategoryURL is the site-relative URL of a category page.
func CategoryURL(slug string) string { return "/category/" + url.PathEscape(slug) + "/" }

// PostURL is the site-relative URL of a blog post.
func PostURL(slug string) string { return "/blog/" + url.PathEscape(slug) + "/" }

// PageURL is the site-relative URL of a static page.
func PageURL(slug string) string { return "/" + url.PathEscape(slug) + "/" }

// TagURL links to the blog filtered by tag.
func TagURL(tag string) string { return "/blog/?tag=" + url.QueryEscape(tag) }

// FormatPlays renders a play count compactly: 950, 12.3K, 4.1M.
func FormatPlays(n int) string {
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "M"
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000)) + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// FormatRating renders a 0-5 rating with one decimal.
func FormatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

// JoinTags formats a tag slice as a comma-separated string.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func gridClass(columns int) string {
	if columns < 1 || columns > 6 {
		columns = 4
	}
	return fmt.Sprintf("game-grid cols-%d", columns)
}

func marshalLD(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block with a search action.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      buildURL(cfg.URL),
		"potentialAction": map[string]any{
			"@type":       "SearchAction",
			"target":      buildURL(cfg.URL, "search") + "?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	return marshalLD(data)
}

// VideoGameJsonLD produces a Schema.org VideoGame JSON-LD block for a game.
func VideoGameJsonLD(cfg SiteConfig, g content.Game) string {
	data := map[string]any{
		"@context":            "https://schema.org",
		"@type":               "VideoGame",
		"name":                g.Title,
		"description":         g.Description,
		"url":                 buildURL(cfg.URL, "games", g.Slug),
		"genre":               g.Category,
		"gamePlatform":        "Web browser",
		"applicationCategory": "Game",
	}
	if g.Thumbnail != "" {
		data["image"] = g.Thumbnail
	}
	if g.Developer != "" {
		data["author"] = map[string]string{"@type": "Organization", "name": g.Developer}
	}
	if g.Rating > 0 {
		data["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": FormatRating(g.Rating),
			"bestRating":  "5",
			"ratingCount": max(g.Plays, 1),
		}
	}
	if len(g.Tags) > 0 {
		data["keywords"] = JoinTags(g.Tags)
	}
	return marshalLD(data)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(cfg SiteConfig, post content.BlogPost) string {
	postURL := buildURL(cfg.URL, "blog", post.Slug)
	data := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": post.Date,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	author := post.Author
	if author == "" {
		author = cfg.Author
	}
	if author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  author,
		}
	}
	if post.Image != "" {
		data["image"] = post.Image
	}
	if len(post.Tags) > 0 {
		data["keywords"] = JoinTags(post.Tags)
	}
	return marshalLD(data)
}

// BreadcrumbJsonLD produces a Schema.org BreadcrumbList for crumbs.
func BreadcrumbJsonLD(cfg SiteConfig, crumbs []Crumb) string {
	items := make([]map[string]any, 0, len(crumbs))
	for i, c := range crumbs {
		item := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Label,
		}
		if c.URL != "" {
			item["item"] = strings.TrimSuffix(cfg.URL, "/") + c.URL
		}
		items = append(items, item)
	}
	return marshalLD(map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	})
}
