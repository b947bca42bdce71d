package silsilah

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/source"
)

// Loader keeps the last successfully parsed snapshot of a source.
//
// Refresh may be called from any goroutine. A new refresh cancels the one
// in flight, and only the newest refresh may replace the snapshot. A failed
// refresh leaves the previous snapshot in place. Nothing is retried.
type Loader struct {
	src    source.Source
	opts   Options
	logger *zap.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc

	current atomic.Pointer[Snapshot]
}

// NewLoader creates a loader for src. No fetch happens until Refresh.
func NewLoader(src source.Source, opts Options) *Loader {
	return &Loader{
		src:    src,
		opts:   opts,
		logger: opts.logger(),
	}
}

// Source returns the loader's source.
func (l *Loader) Source() source.Source {
	return l.src
}

// Current returns the latest snapshot, or nil before the first success.
func (l *Loader) Current() *Snapshot {
	return l.current.Load()
}

// Refresh fetches and parses the sheet, replacing the current snapshot on
// success. It returns ErrSuperseded when a later Refresh started meanwhile.
func (l *Loader) Refresh(ctx context.Context) (*Snapshot, error) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()
	defer cancel()

	snap, err := Load(ctx, l.src, l.opts)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		l.logger.Debug("discarding superseded refresh", zap.Uint64("generation", gen))
		return nil, ErrSuperseded
	}
	l.cancel = nil

	if err != nil {
		l.logger.Warn("refresh failed", zap.String("source", l.src.String()), zap.Error(err))
		return nil, err
	}

	l.current.Store(snap)
	return snap, nil
}

// Poll refreshes every interval until ctx is done.
func (l *Loader) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := l.Refresh(ctx); err != nil && !errors.Is(err, ErrSuperseded) && ctx.Err() == nil {
				l.logger.Debug("scheduled refresh did not replace snapshot", zap.Error(err))
			}
		}
	}
}

// Close cancels any refresh in flight.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
