// Package watch reloads a local sheet export when it changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileWatcher calls a function after a watched file is written, created or
// renamed into place. Bursts of events are collapsed into one call.
type FileWatcher struct {
	path     string
	onChange func()
	logger   *zap.Logger
	debounce time.Duration

	watcher *fsnotify.Watcher
	stop    sync.Once
}

// New creates a watcher for path. It watches the parent directory so that
// editors replacing the file atomically are noticed too.
func New(path string, onChange func(), logger *zap.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &FileWatcher{
		path:     abs,
		onChange: onChange,
		logger:   logger,
		debounce: 250 * time.Millisecond,
		watcher:  w,
	}, nil
}

// Run delivers change notifications until ctx is done or Close is called.
func (fw *FileWatcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			fw.logger.Debug("sheet file changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			fw.onChange()
		}
	}
}

// Close stops watching. A running Run returns once the watcher shuts down.
func (fw *FileWatcher) Close() error {
	var err error
	fw.stop.Do(func() {
		err = fw.watcher.Close()
	})
	return err
}
