// Package watch regenerates the docs whenever a component source changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/llmsdocs/internal/logfields"
)

// DefaultDelay is how long the watcher waits for a burst of events to settle.
const DefaultDelay = 300 * time.Millisecond

// RebuildFunc regenerates the output. Errors are logged, not fatal.
type RebuildFunc func(ctx context.Context) error

// Watcher runs a RebuildFunc on changes below a directory.
type Watcher struct {
	dir     string
	ext     string
	extra   []string
	delay   time.Duration
	rebuild RebuildFunc
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithExtension limits file events to names ending in ext. Directory creation
// always counts.
func WithExtension(ext string) Option {
	return func(w *Watcher) { w.ext = ext }
}

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithFiles also watches individual files, e.g. the config file.
func WithFiles(paths ...string) Option {
	return func(w *Watcher) {
		for _, p := range paths {
			if p != "" {
				w.extra = append(w.extra, p)
			}
		}
	}
}

// New returns a Watcher for dir.
func New(dir string, rebuild RebuildFunc, opts ...Option) *Watcher {
	w := &Watcher{dir: dir, delay: DefaultDelay, rebuild: rebuild}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run builds once, then rebuilds after every settled burst of relevant events
// until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if _, err := os.Stat(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	addDirsRecursive(fw, w.dir)
	for _, p := range w.extra {
		// Watch the parent so editors that replace the file are still seen.
		if err := fw.Add(filepath.Dir(p)); err != nil {
			slog.Warn("watch add failed", logfields.Path(p), logfields.Error(err))
		}
	}

	w.runOnce(ctx)

	rebuildReq, trigger, stop := setupRebuildDebouncer(w.delay)
	defer stop()
	done := startRebuildWorker(ctx, rebuildReq, w.runOnce)

	slog.Info("Watching for changes", logfields.Path(w.dir))
	for {
		select {
		case <-ctx.Done():
			<-done
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(fw, ev) {
				slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
				trigger()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	start := time.Now()
	if err := w.rebuild(ctx); err != nil {
		if ctx.Err() == nil {
			slog.Warn("Rebuild failed", logfields.Error(err))
		}
		return
	}
	slog.Info("Rebuilt docs", logfields.DurationMS(float64(time.Since(start).Milliseconds())))
}

// relevant filters an event and starts watching newly created directories.
func (w *Watcher) relevant(fw *fsnotify.Watcher, ev fsnotify.Event) bool {
	if shouldIgnoreEvent(ev.Name) || ev.Op == fsnotify.Chmod {
		return false
	}
	for _, p := range w.extra {
		if filepath.Clean(ev.Name) == filepath.Clean(p) {
			return true
		}
	}
	if !isWithin(w.dir, ev.Name) {
		return false
	}
	if ev.Op.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			addDirsRecursive(fw, ev.Name)
			return true
		}
	}
	return w.ext == "" || filepath.Ext(ev.Name) == w.ext
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// setupRebuildDebouncer returns the rebuild channel, a trigger that (re)arms
// the timer and a stop func for the pending timer.
func setupRebuildDebouncer(delay time.Duration) (chan struct{}, func(), func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return rebuildReq, trigger, stop
}

// startRebuildWorker serializes rebuilds. A request arriving mid-build is
// coalesced in the buffered channel and served afterwards.
func startRebuildWorker(ctx context.Context, rebuildReq <-chan struct{}, build func(context.Context)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-rebuildReq:
				slog.Info("Change detected; regenerating docs")
				build(ctx)
			}
		}
	}()
	return done
}

func addDirsRecursive(w *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				slog.Warn("watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent reports hidden, editor swap and OS metadata files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	return base == "Thumbs.db"
}
