package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// Page wraps body in the site layout: head, header, main and footer.
func Page(site SiteConfig, meta PageMeta, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		title := site.Name
		if meta.Title != "" && meta.Title != site.Name {
			title = meta.Title + " | " + site.Name
		}
		desc := meta.Description
		if desc == "" {
			desc = site.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		h.printf(`<title>%s</title>`, esc(title))
		if desc != "" {
			h.printf(`<meta name="description" content="%s"/>`, esc(desc))
		}
		if meta.URL != "" {
			h.printf(`<link rel="canonical" href="%s"/>`, safeURL(meta.URL))
			h.printf(`<meta property="og:url" content="%s"/>`, safeURL(meta.URL))
		}
		h.printf(`<meta property="og:title" content="%s"/>`, esc(title))
		h.printf(`<meta property="og:type" content="%s"/>`, esc(ogType))
		h.printf(`<meta property="og:site_name" content="%s"/>`, esc(site.Name))
		if desc != "" {
			h.printf(`<meta property="og:description" content="%s"/>`, esc(desc))
		}
		if meta.Image != "" {
			h.printf(`<meta property="og:image" content="%s"/>`, esc(meta.Image))
		}
		h.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
		h.raw(`<link rel="stylesheet" href="/public/site.css"/>`)
		h.printf(`<link rel="alternate" type="application/rss+xml" title="%s" href="/feed.xml"/>`, esc(site.Name))
		if meta.JSONLD != "" {
			// json.Marshal escapes <, > and &, so the block cannot close the script tag.
			h.printf(`<script type="application/ld+json">%s</script>`, meta.JSONLD)
		}
		if meta.Breadcrumbs != "" {
			h.printf(`<script type="application/ld+json">%s</script>`, meta.Breadcrumbs)
		}
		h.raw(`</head><body>`)

		h.render(siteHeader(site))
		h.raw(`<main class="container">`)
		h.render(body)
		h.raw(`</main>`)
		h.render(siteFooter(site))
		h.raw(`</body></html>`)
	})
}

func siteHeader(site SiteConfig) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<header class="site-header"><div class="container header-inner">`)
		h.printf(`<a class="brand" href="/">%s</a>`, esc(site.Name))
		if len(site.Nav) > 0 {
			h.raw(`<nav class="site-nav"><ul>`)
			for _, l := range site.Nav {
				h.printf(`<li><a href="%s">%s</a></li>`, safeURL(l.URL), esc(l.Label))
			}
			h.raw(`</ul></nav>`)
		}
		h.raw(`<form class="nav-search" action="/search/" method="get" role="search">`)
		h.raw(`<input type="search" name="q" placeholder="Search games" aria-label="Search games"/>`)
		h.raw(`</form></div></header>`)
	})
}

func siteFooter(site SiteConfig) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<footer class="site-footer"><div class="container">`)
		if len(site.Footer.Links) > 0 {
			h.raw(`<ul class="footer-links">`)
			for _, l := range site.Footer.Links {
				h.printf(`<li><a href="%s">%s</a></li>`, safeURL(l.URL), esc(l.Label))
			}
			h.raw(`</ul>`)
		}
		if len(site.Social) > 0 {
			h.raw(`<ul class="social-links">`)
			for _, l := range site.Social {
				h.printf(`<li><a href="%s" rel="noopener noreferrer" target="_blank">%s</a></li>`, safeURL(l.URL), esc(l.Label))
			}
			h.raw(`</ul>`)
		}
		if site.Footer.Text != "" {
			h.printf(`<p class="footer-text">%s</p>`, esc(site.Footer.Text))
		}
		h.raw(`</div></footer>`)
	})
}

// Section wraps a rendered section in a container tagged with its name.
// A body that renders nothing produces no container.
func Section(name string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		var buf bytes.Buffer
		if err := body.Render(h.ctx, &buf); err != nil {
			h.err = err
			return
		}
		if buf.Len() == 0 {
			return
		}
		h.printf(`<section class="section section-%s" data-section="%s">`, esc(name), esc(name))
		h.raw(buf.String())
		h.raw(`</section>`)
	})
}

// Sections renders components one after another.
func Sections(parts ...templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		for _, p := range parts {
			h.render(p)
		}
	})
}

// NotFound renders the 404 page.
func NotFound(site SiteConfig) templ.Component {
	return Page(site, PageMeta{Title: "Page not found"}, component(func(h *htmlWriter) {
		h.raw(`<div class="error-page"><h1>Page not found</h1>`)
		h.raw(`<p>The page you were looking for does not exist or has moved.</p>`)
		h.raw(`<p><a class="button" href="/">Back to the games</a></p></div>`)
	}))
}

// ServerError renders the 500 page.
func ServerError(site SiteConfig) templ.Component {
	return Page(site, PageMeta{Title: "Something went wrong"}, component(func(h *htmlWriter) {
		h.raw(`<div class="error-page"><h1>Something went wrong</h1>`)
		h.raw(`<p>We could not load this page. Please try again in a moment.</p>`)
		h.raw(`<p><a class="button" href="/">Home</a></p></div>`)
	}))
}
