package gamesite

import (
	"embed"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// EmbeddedAssets contains the default stylesheet and favicon. Files of the
// same name in the static directory take precedence.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func embeddedFS() fs.FS {
	sub, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		panic(err)
	}
	return sub
}

func (a *App) serveEmbedded(c echo.Context, name string) error {
	return echo.StaticFileHandler(name, embeddedFS())(c)
}

// handlePublic serves /public/* from the static directory, falling back to
// the embedded assets.
func (a *App) handlePublic(c echo.Context) error {
	name := c.Param("*")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" {
		return echo.ErrNotFound
	}
	if p := filepath.Join(a.staticDir, filepath.FromSlash(name)); fileExists(p) {
		return c.File(p)
	}
	return a.serveEmbedded(c, name)
}
