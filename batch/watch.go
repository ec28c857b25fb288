package batch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/gnolang/searchq"
	"github.com/gnolang/searchq/internal/types"
)

// settleDelay lets a burst of writes to the same file finish before the
// file is read again.
const settleDelay = 100 * time.Millisecond

// ReportFunc receives the results of a query file that changed.
type ReportFunc func(path string, results []types.Result)

// Watcher re-translates query files whenever they are written.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	tr      searchq.Translator
	opts    Options
	report  ReportFunc

	files map[string]bool // explicitly watched files; empty when only directories are watched
	seen  digests
}

// NewWatcher starts watching paths. A directory is watched recursively for
// query files; a file is watched through its parent directory.
func NewWatcher(logger *zap.Logger, tr searchq.Translator, paths []string, opts Options, report ReportFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Watcher{
		watcher: fw,
		logger:  logger,
		tr:      tr,
		opts:    opts,
		report:  report,
		files:   make(map[string]bool),
		seen:    make(digests),
	}
	for _, path := range paths {
		if err := w.add(path); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		w.files[filepath.Clean(path)] = true
		return w.watcher.Add(filepath.Dir(path))
	}

	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}
	return nil
}

// Run handles file events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFileEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !w.wants(event.Name) {
		return
	}

	select {
	case <-ctx.Done():
		return
	case <-time.After(settleDelay):
	}

	data, err := os.ReadFile(event.Name)
	if err != nil {
		w.logger.Error("Error reading query file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	if !w.seen.changed(event.Name, data) {
		w.logger.Debug("Query file unchanged", zap.String("file", event.Name))
		return
	}

	queries, err := ReadQueries(bytes.NewReader(data), event.Name)
	if err != nil {
		w.logger.Error("Error reading query file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	results, err := Process(ctx, w.logger, w.tr, queries, w.opts)
	if err != nil {
		return
	}
	w.logger.Info("Query file translated",
		zap.String("file", event.Name),
		zap.Int("queries", len(results)))
	w.report(event.Name, results)
}

func (w *Watcher) wants(name string) bool {
	name = filepath.Clean(name)
	if w.files[name] {
		return true
	}
	return hasDesiredExtension(name) && !w.underWatchedFileOnly(name)
}

// underWatchedFileOnly reports whether name sits in a directory that is
// watched only because one of its files was named explicitly.
func (w *Watcher) underWatchedFileOnly(name string) bool {
	dir := filepath.Dir(name)
	for f := range w.files {
		if filepath.Dir(f) == dir {
			return true
		}
	}
	return false
}
