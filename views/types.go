package views

import "time"

// SiteConfig holds site-wide settings every page template reads.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
	Tagline     string
	Nav         []NavLink
	Footer      Footer
	Social      []NavLink
}

// NavLink is a labelled link in the header, footer or a link list.
type NavLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Footer is the site footer content.
type Footer struct {
	Text  string    `json:"text"`
	Links []NavLink `json:"links"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
	JSONLD      string
	Breadcrumbs string // BreadcrumbList JSON-LD
}

// Crumb is one breadcrumb entry. The last crumb is rendered without a link.
type Crumb struct {
	Label string
	URL   string
}

// GridOptions controls how a game grid renders.
type GridOptions struct {
	Columns      int
	ShowPlays    bool
	ShowRating   bool
	ShowCategory bool
	MoreURL      string
	MoreText     string
	Empty        string
}

// CategoryOptions controls how a category list renders.
type CategoryOptions struct {
	ShowCounts      bool
	ShowDescription bool
}

// PostListOptions controls how a post list renders.
type PostListOptions struct {
	ShowExcerpt bool
	ShowDate    bool
	ShowAuthor  bool
	MoreURL     string
	Empty       string
}

// ArticleOptions controls which post metadata is shown.
type ArticleOptions struct {
	ShowAuthor bool
	ShowDate   bool
	ShowTags   bool
}

// SearchResult is one hit on the search page.
type SearchResult struct {
	Kind    string // "game" or "post"
	Title   string
	URL     string
	Summary string
}

// CacheEntryView describes a cached config file on the admin console.
type CacheEntryView struct {
	Path    string
	Age     time.Duration
	Expired bool
}

// PageOrderView lists the resolved section order of one page.
type PageOrderView struct {
	Page     string
	Sections []string
	Disabled []string
}

// AdminData is everything the admin console shows.
type AdminData struct {
	Mode        string
	CacheTTL    time.Duration
	Entries     []CacheEntryView
	Pages       []PageOrderView
	Games       int
	Posts       int
	Categories  int
	StaticPages int
}
