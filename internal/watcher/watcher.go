// Package watcher monitors a directory for new EAF files.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Handler is called for each new EAF file. Handlers run one at a time, in
// event order; aggregation here has no concurrency model.
type Handler func(ctx context.Context, path string) error

// settleDelay gives the writing process time to finish before we parse.
const settleDelay = 500 * time.Millisecond

type Watcher struct {
	dir     string
	handler Handler
	logger  *zap.SugaredLogger
	fs      *fsnotify.Watcher
}

func New(dir string, handler Handler, log *zap.SugaredLogger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &Watcher{dir: dir, handler: handler, logger: log, fs: fs}, nil
}

// Start blocks, dispatching create events until the context is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Infof("watching %s for new EAF files", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isEAFFile(event.Name) {
				w.logger.Debugf("ignoring %s", event.Name)
				continue
			}

			w.logger.Infof("new EAF file: %s", event.Name)
			time.Sleep(settleDelay)
			if err := w.handler(ctx, event.Name); err != nil {
				w.logger.Errorf("failed to process %s: %v", event.Name, err)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Errorf("watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *Watcher) Stop() error {
	return w.fs.Close()
}

func isEAFFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".eaf")
}
