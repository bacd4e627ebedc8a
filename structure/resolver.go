package structure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
)

// ErrConfigNotFound is returned when a configuration file cannot be loaded
// and no fallback was supplied.
var ErrConfigNotFound = errors.New("configuration not found")

// Resolver loads JSON configuration files from a file system through a cache.
type Resolver struct {
	fsys   fs.FS
	cache  *Cache
	logger *slog.Logger
}

// NewResolver creates a Resolver reading from fsys. A nil cache disables
// caching; a nil logger discards warnings.
func NewResolver(fsys fs.FS, cache *Cache, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{fsys: fsys, cache: cache, logger: logger}
}

// Cache returns the resolver's cache, which may be nil.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Resolve returns the decoded contents of the file at name.
//
// A fresh cache entry is returned without touching the file system. On a read
// or decode failure the fallback is returned when non-nil; otherwise the error
// wraps ErrConfigNotFound. Fallbacks are never cached.
func Resolve[T any](r *Resolver, name string, fallback *T) (T, error) {
	if r.cache != nil {
		if v, ok := r.cache.Get(name); ok {
			if typed, ok := v.(T); ok {
				return typed, nil
			}
		}
	}

	v, err := readJSON[T](r.fsys, name)
	if err != nil {
		if fallback != nil {
			r.logger.Warn("config fallback", "path", name, "error", err)
			return *fallback, nil
		}
		var zero T
		return zero, fmt.Errorf("%w: %s: %w", ErrConfigNotFound, name, err)
	}
	if r.cache != nil {
		r.cache.Set(name, v)
	}
	return v, nil
}

func readJSON[T any](fsys fs.FS, name string) (T, error) {
	var v T
	if fsys == nil {
		return v, fs.ErrNotExist
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("parse: %w", err)
	}
	return v, nil
}

// PagePath returns the structure file path for a page name.
func PagePath(page string) string {
	return path.Join("structure", page+".json")
}

// Page resolves the structure for page, falling back to the built-in default.
func (r *Resolver) Page(page string) PageStructure {
	def := DefaultPage(page)
	ps, _ := Resolve(r, PagePath(page), &def)
	return ps
}
