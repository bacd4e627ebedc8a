// Package gamesite serves a game listing and gaming blog whose pages are
// composed from JSON structure files. Each page resolves its structure
// through a cached resolver, orders the enabled sections and renders them
// around static content loaded once at start-up.
package gamesite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/gamesite/content"
	"github.com/eringen/gamesite/structure"
)

const shutdownTimeout = 10 * time.Second

// App is the central game site application. It wires together the content
// catalog, the structure resolver, the search index, handlers and middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Catalog  *content.Catalog
	Resolver *structure.Resolver
	Cache    *structure.Cache
	Search   *SearchIndex
	Logger   *slog.Logger

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
	configFS     fs.FS
	contentFS    fs.FS
	initialized  bool
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Logger == nil {
		a.Logger = NewLogger(os.Stderr, cfg.Mode, cfg.LogLevel)
	}
	if a.Cache == nil {
		a.Cache = structure.NewCache(cfg.ConfigTTL)
	}
	if a.configFS == nil {
		a.configFS = os.DirFS(cfg.ConfigDir)
	}
	if a.contentFS == nil {
		a.contentFS = os.DirFS(cfg.ContentDir)
	}
	a.Resolver = structure.NewResolver(a.configFS, a.Cache, a.Logger)
	return a
}

// Init loads content, builds the search index and mounts middleware and
// routes. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if a.Config.AdminEnabled() && a.Config.SessionSecret == "" {
		return errors.New("gamesite: SessionSecret is required when AdminPassword is set")
	}

	catalog, err := content.Load(a.contentFS)
	if err != nil {
		return fmt.Errorf("gamesite: load content: %w", err)
	}
	a.Catalog = catalog

	search, err := NewSearchIndex(a.Config.SearchDBPath)
	if err != nil {
		return fmt.Errorf("gamesite: open search index: %w", err)
	}
	if err := search.Rebuild(context.Background(), catalog); err != nil {
		search.Close()
		return fmt.Errorf("gamesite: build search index: %w", err)
	}
	a.Search = search

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	games, posts, categories, pages := catalog.Counts()
	a.Logger.Info("content loaded",
		"games", games, "posts", posts, "categories", categories, "pages", pages)
	a.initialized = true
	return nil
}

// Start initializes the app and serves until ctx is cancelled, then shuts
// the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.Config.Development() {
		stop := a.Cache.StartClearing(ctx, a.Config.DevClearInterval)
		defer stop()
		if info, err := os.Stat(a.Config.ConfigDir); err == nil && info.IsDir() {
			go func() {
				if err := structure.Watch(ctx, a.Config.ConfigDir, a.Cache, a.Logger); err != nil {
					a.Logger.Warn("config watcher stopped", "error", err)
				}
			}()
		}
		a.Logger.Info("development mode", "clear_interval", a.Config.DevClearInterval)
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("listening", "addr", a.Config.Addr, "url", a.Config.URL)
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("gamesite: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("gamesite: shutdown: %w", err)
	}
	return nil
}

// Close releases the search index and the login limiter.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Close()
	}
	if a.Search == nil {
		return nil
	}
	err := a.Search.Close()
	a.Search = nil
	return err
}
