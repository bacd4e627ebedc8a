package views

import (
	"strings"
	"time"

	"github.com/a-h/templ"
)

func csrfField(h *htmlWriter, csrf string) {
	h.printf(`<input type="hidden" name="_csrf" value="%s"/>`, esc(csrf))
}

// AdminLogin renders the password form of the admin console.
func AdminLogin(site SiteConfig, showError bool, csrf string) templ.Component {
	return Page(site, PageMeta{Title: "Admin"}, component(func(h *htmlWriter) {
		h.raw(`<div class="admin admin-login"><h1>Admin</h1>`)
		if showError {
			h.raw(`<p class="flash flash-error">Wrong password.</p>`)
		}
		h.raw(`<form method="post" action="/admin/login/">`)
		csrfField(h, csrf)
		h.raw(`<label for="password">Password</label>`)
		h.raw(`<input id="password" type="password" name="password" autocomplete="current-password" required/>`)
		h.raw(`<button type="submit">Log in</button></form></div>`)
	}))
}

// AdminDashboard renders the cache console.
func AdminDashboard(site SiteConfig, data AdminData, msg, csrf string) templ.Component {
	return Page(site, PageMeta{Title: "Admin"}, component(func(h *htmlWriter) {
		h.raw(`<div class="admin admin-dashboard"><div class="admin-top"><h1>Admin</h1>`)
		h.raw(`<form method="post" action="/admin/logout/">`)
		csrfField(h, csrf)
		h.raw(`<button type="submit" class="link">Log out</button></form></div>`)

		switch msg {
		case "":
		case "cleared":
			h.raw(`<p class="flash">Configuration cache cleared.</p>`)
		default:
			h.printf(`<p class="flash">%s</p>`, esc(msg))
		}

		h.raw(`<dl class="admin-stats">`)
		h.printf(`<dt>Mode</dt><dd>%s</dd>`, esc(data.Mode))
		h.printf(`<dt>Cache TTL</dt><dd>%s</dd>`, esc(data.CacheTTL.String()))
		h.printf(`<dt>Games</dt><dd>%d</dd>`, data.Games)
		h.printf(`<dt>Posts</dt><dd>%d</dd>`, data.Posts)
		h.printf(`<dt>Categories</dt><dd>%d</dd>`, data.Categories)
		h.printf(`<dt>Pages</dt><dd>%d</dd>`, data.StaticPages)
		h.raw(`</dl>`)

		h.raw(`<h2>Cached configuration</h2>`)
		if len(data.Entries) == 0 {
			h.raw(`<p class="empty">The cache is empty.</p>`)
		} else {
			h.raw(`<table class="admin-table"><thead><tr><th>File</th><th>Age</th><th>State</th></tr></thead><tbody>`)
			for _, e := range data.Entries {
				state := "fresh"
				if e.Expired {
					state = "expired"
				}
				h.printf(`<tr><td><code>%s</code></td><td>%s</td><td>%s</td></tr>`,
					esc(e.Path), esc(e.Age.Truncate(time.Second).String()), state)
			}
			h.raw(`</tbody></table>`)
		}
		h.raw(`<form method="post" action="/admin/cache/clear/">`)
		csrfField(h, csrf)
		h.raw(`<button type="submit">Clear cache</button></form>`)

		h.raw(`<h2>Section order</h2><table class="admin-table"><thead><tr><th>Page</th><th>Rendered</th><th>Disabled</th></tr></thead><tbody>`)
		for _, p := range data.Pages {
			h.printf(`<tr><td><code>%s</code></td><td>%s</td><td>%s</td></tr>`,
				esc(p.Page), esc(strings.Join(p.Sections, " → ")), esc(strings.Join(p.Disabled, ", ")))
		}
		h.raw(`</tbody></table></div>`)
	}))
}
