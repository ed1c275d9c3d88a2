// Package watch recomputes results when a configuration file changes. A
// burst of file events inside the debounce window triggers one callback.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/iwvelando/amortize/pkg/constants"
	"go.uber.org/zap"
)

// Debouncer runs fn once delay has passed without another Trigger.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

// NewDebouncer returns a Debouncer for fn.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger restarts the delay.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels a pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Watcher calls OnChange after the watched file is written, created or
// replaced.
type Watcher struct {
	logger   *zap.Logger
	path     string
	debounce time.Duration
	onChange func(context.Context)

	done chan struct{}
}

// New returns a Watcher for path. A non-positive debounce uses the default.
func New(logger *zap.Logger, path string, debounce time.Duration, onChange func(context.Context)) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = constants.DefaultDebounce
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Watcher{
		logger:   logger,
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}
}

// Start begins watching and returns once events are being received. The
// watch ends when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Editors often replace the file, so watch its directory.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	debouncer := NewDebouncer(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		w.logger.Info("configuration changed, recomputing",
			zap.String("op", "watch.Watcher"),
			zap.String("path", w.path),
		)
		w.onChange(ctx)
	})

	go w.loop(ctx, fsw, debouncer)
	return nil
}

// Done is closed once the watch has ended.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, debouncer *Debouncer) {
	defer close(w.done)
	defer debouncer.Stop()
	defer func() {
		if err := fsw.Close(); err != nil {
			w.logger.Warn("failed to close file watcher", zap.String("op", "watch.Watcher"), zap.Error(err))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("configuration file event",
				zap.String("op", "watch.Watcher"),
				zap.String("event", event.String()),
			)
			debouncer.Trigger()
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", zap.String("op", "watch.Watcher"), zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
