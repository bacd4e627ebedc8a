package gamesite

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/eringen/gamesite/structure"
)

// Modes select between development and production behaviour.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// SiteConfig holds all configuration for a game site.
type SiteConfig struct {
	Name        string // Site name (default "GameSite")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Default author for JSON-LD

	Addr string // Listen address (default ":3000")
	Mode string // "development" or "production" (default production)

	ConfigDir    string // Structure and site.json directory (default "config")
	ContentDir   string // games.json, blog-posts.json, pages/ (default "content")
	SearchDBPath string // SQLite search index (default "data/search.db")

	AdminPassword string // Enables /admin/ when set
	SessionSecret string // Required with AdminPassword
	CookieSecure  bool   // Set true for HTTPS

	ConfigTTL        time.Duration // Config cache TTL; zero selects the mode default (0 in development, 5min otherwise)
	DevClearInterval time.Duration // Full cache clear period in development (default 5s)

	LogLevel string // debug, info, warn or error (default info)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "GameSite"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Mode == "" {
		c.Mode = ModeProduction
	}
	if c.ConfigDir == "" {
		c.ConfigDir = "config"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.SearchDBPath == "" {
		c.SearchDBPath = "data/search.db"
	}
	if c.ConfigTTL == 0 && !c.Development() {
		c.ConfigTTL = 5 * time.Minute
	}
	if c.DevClearInterval <= 0 {
		c.DevClearInterval = 5 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Development reports whether the site runs in development mode.
func (c SiteConfig) Development() bool {
	return c.Mode == ModeDevelopment
}

// AdminEnabled reports whether the admin console is mounted.
func (c SiteConfig) AdminEnabled() bool {
	return c.AdminPassword != ""
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are mounted.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithConfigFS reads structure files from fsys instead of Config.ConfigDir.
// The development watcher is not started for an injected filesystem.
func WithConfigFS(fsys fs.FS) Option {
	return func(a *App) {
		a.configFS = fsys
	}
}

// WithContentFS reads content from fsys instead of Config.ContentDir.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}

// WithLogger replaces the logger built from Config.Mode and Config.LogLevel.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.Logger = logger
	}
}

// WithCache replaces the config cache, typically to inject a clock in tests.
func WithCache(cache *structure.Cache) Option {
	return func(a *App) {
		a.Cache = cache
	}
}
