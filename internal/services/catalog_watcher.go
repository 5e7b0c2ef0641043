package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yishak-cs/campus-meals/internal/logger"
)

// Reloader swaps in a freshly built catalog
type Reloader interface {
	Reload() (*Snapshot, error)
}

// CatalogWatcher reloads the catalog when dataset or config files change on disk.
// Bursts of events (editors often write a file several times) collapse into one
// reload once the directory has been quiet for the debounce interval.
type CatalogWatcher struct {
	watcher  *fsnotify.Watcher
	reloader Reloader
	log      *logger.Logger
	debounce time.Duration
}

// NewCatalogWatcher starts watching dirs. Call Run to process events and Close
// when Run is not going to be called.
func NewCatalogWatcher(dirs []string, reloader Reloader, debounce time.Duration, log *logger.Logger) (*CatalogWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create catalog watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &CatalogWatcher{
		watcher:  w,
		reloader: reloader,
		log:      log.With("component", "CatalogWatcher"),
		debounce: debounce,
	}, nil
}

// Run blocks until ctx is done, reloading after each settled burst of changes
func (cw *CatalogWatcher) Run(ctx context.Context) error {
	defer cw.watcher.Close()

	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			cw.log.Debug("Catalog file changed", "path", event.Name, "op", event.Op.String())
			settle = time.After(cw.debounce)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			cw.log.Warn("Catalog watcher error", "error", err)

		case <-settle:
			settle = nil
			if _, err := cw.reloader.Reload(); err != nil {
				cw.log.Error("Catalog reload after file change failed; keeping previous catalog", "error", err)
			}
		}
	}
}

// Close stops watching without running
func (cw *CatalogWatcher) Close() error {
	return cw.watcher.Close()
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
