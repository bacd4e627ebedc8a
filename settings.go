package gamesite

import (
	"github.com/eringen/gamesite/structure"
	"github.com/eringen/gamesite/views"
)

// SiteSettingsFile holds the site chrome, relative to the config directory.
const SiteSettingsFile = "site.json"

// SiteSettings is the editable site chrome: tagline, navigation, footer and
// social links.
type SiteSettings struct {
	Tagline string          `json:"tagline"`
	Nav     []views.NavLink `json:"nav"`
	Footer  views.Footer    `json:"footer"`
	Social  []views.NavLink `json:"social"`
}

// DefaultSiteSettings is used when site.json is missing or malformed.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Tagline: "Free browser games, no downloads",
		Nav: []views.NavLink{
			{Label: "Games", URL: "/categories/"},
			{Label: "Blog", URL: "/blog/"},
			{Label: "About", URL: "/about/"},
		},
		Footer: views.Footer{
			Links: []views.NavLink{
				{Label: "About", URL: "/about/"},
				{Label: "Privacy", URL: "/privacy/"},
				{Label: "Terms", URL: "/terms/"},
				{Label: "Contact", URL: "/contact/"},
				{Label: "Sitemap", URL: "/sitemap/"},
			},
		},
	}
}

// siteView resolves site.json and merges it with the process configuration.
func (a *App) siteView() views.SiteConfig {
	def := DefaultSiteSettings()
	s, _ := structure.Resolve(a.Resolver, SiteSettingsFile, &def)
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
		Tagline:     s.Tagline,
		Nav:         s.Nav,
		Footer:      s.Footer,
		Social:      s.Social,
	}
}
