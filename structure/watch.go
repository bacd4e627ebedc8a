package structure

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch invalidates cache entries whenever the matching file under dir
// changes. Cache keys are slash-separated paths relative to dir, the same
// names a Resolver over os.DirFS(dir) uses. Watch blocks until ctx is done.
func Watch(ctx context.Context, dir string, cache *Cache, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("structure: create watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("structure: watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						logger.Warn("watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			rel, err := filepath.Rel(dir, event.Name)
			if err != nil {
				continue
			}
			key := filepath.ToSlash(rel)
			cache.Invalidate(key)
			logger.Debug("config changed", "path", key, "op", event.Op.String())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher", "error", err)
		}
	}
}
