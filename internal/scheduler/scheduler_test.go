package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weibo_push/internal/domain"
)

type fakeSyncer struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (f *fakeSyncer) Sync(ctx context.Context) (*domain.SyncStats, error) {
	f.calls.Add(1)
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SyncStats{CycleID: "test"}, nil
}

func newTestScheduler(syncer Syncer, cfg Config) *Scheduler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewScheduler(syncer, cfg, logger)
}

func start(t *testing.T, s *Scheduler) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()
	t.Cleanup(cancel)
	return cancel, done
}

func TestScheduler_FirstRunAfterStartupDelay(t *testing.T) {
	syncer := &fakeSyncer{}
	s := newTestScheduler(syncer, Config{Interval: time.Hour, StartupDelay: 20 * time.Millisecond})

	start(t, s)

	require.Eventually(t, func() bool { return syncer.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, Idle, s.State())
}

func TestScheduler_TriggerSkipsStartupDelay(t *testing.T) {
	syncer := &fakeSyncer{}
	s := newTestScheduler(syncer, Config{Interval: time.Hour, StartupDelay: time.Hour})

	start(t, s)
	assert.True(t, s.Trigger())

	require.Eventually(t, func() bool { return syncer.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_CoalescesTriggersWhileRunning(t *testing.T) {
	syncer := &fakeSyncer{release: make(chan struct{})}
	s := newTestScheduler(syncer, Config{Interval: time.Hour, StartupDelay: time.Hour})

	start(t, s)
	s.Trigger()
	require.Eventually(t, func() bool { return s.State() == Running }, time.Second, 5*time.Millisecond)

	assert.True(t, s.Trigger())
	assert.False(t, s.Trigger())
	assert.False(t, s.Trigger())

	close(syncer.release)

	require.Eventually(t, func() bool { return syncer.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(2), syncer.calls.Load())
}

func TestScheduler_SurvivesFailedCycles(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("upstream down")}
	s := newTestScheduler(syncer, Config{Interval: 10 * time.Millisecond})

	start(t, s)

	require.Eventually(t, func() bool { return syncer.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_CycleTimeout(t *testing.T) {
	syncer := &fakeSyncer{release: make(chan struct{})}
	s := newTestScheduler(syncer, Config{Interval: time.Hour, CycleTimeout: 20 * time.Millisecond})

	start(t, s)

	require.Eventually(t, func() bool {
		return syncer.calls.Load() == 1 && s.State() == Idle
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopsOnCancel(t *testing.T) {
	s := newTestScheduler(&fakeSyncer{}, Config{Interval: time.Hour, StartupDelay: time.Hour})

	cancel, done := start(t, s)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
