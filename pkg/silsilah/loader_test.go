package silsilah

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/source"
)

// gatedSource blocks every fetch until released or canceled.
type gatedSource struct {
	mu      sync.Mutex
	data    string
	err     error
	started chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func newGatedSource(data string) *gatedSource {
	return &gatedSource{
		data:    data,
		started: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
}

func (s *gatedSource) set(data string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data, s.err = data, err
}

func (s *gatedSource) Fetch(ctx context.Context) (*source.Payload, error) {
	s.calls.Add(1)
	select {
	case s.started <- struct{}{}:
	default:
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.release:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &source.Payload{Data: []byte(s.data), Format: source.FormatCSV, Origin: "gated"}, nil
}

func (s *gatedSource) String() string { return "gated" }

func TestLoaderRefresh(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newGatedSource(familyCSV)
	close(src.release)
	l := NewLoader(src, DefaultOptions())
	assert.Nil(t, l.Current())

	snap, err := l.Refresh(context.Background())
	require.NoError(t, err)
	assert.Same(t, snap, l.Current())
}

func TestLoaderFailedRefreshKeepsSnapshot(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newGatedSource(familyCSV)
	close(src.release)
	l := NewLoader(src, DefaultOptions())

	first, err := l.Refresh(context.Background())
	require.NoError(t, err)

	src.set("", errors.New("connection reset"))
	_, err = l.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailure)
	assert.Same(t, first, l.Current())

	src.set("Pasangan Awal,Anak\n", nil)
	_, err = l.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Same(t, first, l.Current())
}

func TestLoaderSupersedesInFlightRefresh(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newGatedSource(familyCSV)
	l := NewLoader(src, DefaultOptions())

	staleErr := make(chan error, 1)
	go func() {
		_, err := l.Refresh(context.Background())
		staleErr <- err
	}()
	<-src.started

	done := make(chan struct{})
	var fresh *Snapshot
	var freshErr error
	go func() {
		defer close(done)
		fresh, freshErr = l.Refresh(context.Background())
	}()

	// The first refresh is canceled as soon as the second one starts.
	select {
	case err := <-staleErr:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(5 * time.Second):
		t.Fatal("stale refresh was not canceled")
	}

	<-src.started
	close(src.release)
	<-done

	require.NoError(t, freshErr)
	assert.Same(t, fresh, l.Current())
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestLoaderClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newGatedSource(familyCSV)
	l := NewLoader(src, DefaultOptions())

	errc := make(chan error, 1)
	go func() {
		_, err := l.Refresh(context.Background())
		errc <- err
	}()
	<-src.started
	l.Close()

	err := <-errc
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, l.Current())
}

func TestLoaderPoll(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newGatedSource(familyCSV)
	close(src.release)
	l := NewLoader(src, DefaultOptions())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Poll(ctx, 10*time.Millisecond)
	}()

	require.Eventually(t, func() bool { return l.Current() != nil }, 5*time.Second, 10*time.Millisecond)
	cancel()
	<-done
}
