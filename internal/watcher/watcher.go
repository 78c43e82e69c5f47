// Package watcher watches a catalog data directory and triggers a
// library rebuild when its files change.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stencil-labs/stencil-cli/internal/logger"
)

// debounceDelay coalesces editor save bursts into one rebuild.
const debounceDelay = 500 * time.Millisecond

// Watcher invokes a callback when catalog files under a directory
// change.
type Watcher struct {
	dir      string
	onChange func(context.Context)
}

// New creates a watcher over dir. onChange runs on the watcher's
// goroutine after changes settle.
func New(dir string, onChange func(context.Context)) *Watcher {
	return &Watcher{dir: dir, onChange: onChange}
}

// Run watches until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	logger.Info("Watching %s for catalog changes", w.dir)

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("Catalog change: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.onChange(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// relevant reports whether an event should trigger a rebuild: writes,
// creates, removes and renames of non-hidden data files.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}

	switch strings.ToLower(filepath.Ext(base)) {
	case ".csv", ".db":
		return true
	default:
		return false
	}
}
