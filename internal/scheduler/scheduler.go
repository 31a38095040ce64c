// Package scheduler runs synchronization cycles periodically and on demand,
// never more than one at a time.
package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"weibo_push/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

type State int32

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

type Config struct {
	Interval     time.Duration
	StartupDelay time.Duration
	CycleTimeout time.Duration
}

type Scheduler struct {
	syncer  Syncer
	cfg     Config
	trigger chan struct{}
	state   atomic.Int32
	logger  *slog.Logger
}

func NewScheduler(syncer Syncer, cfg Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:  syncer,
		cfg:     cfg,
		trigger: make(chan struct{}, 1),
		logger:  logger.With("component", "scheduler"),
	}
}

// Trigger requests a cycle. It returns false when a request is already
// pending, in which case the new one is merged into it.
func (s *Scheduler) Trigger() bool {
	select {
	case s.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Start blocks until ctx is cancelled. The first cycle runs after the startup
// delay or on the first trigger, whichever comes first.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.cfg.Interval,
		"startup_delay", s.cfg.StartupDelay,
	)

	startup := time.NewTimer(s.cfg.StartupDelay)
	defer startup.Stop()

	select {
	case <-ctx.Done():
		s.logger.Info("scheduler stopped")
		return ctx.Err()
	case <-startup.C:
	case <-s.trigger:
	}
	s.runSync(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		case <-s.trigger:
			s.runSync(ctx)
		}

		// a tick that fired during the run joins the pending trigger
		select {
		case <-ticker.C:
			s.Trigger()
		default:
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	s.state.Store(int32(Running))
	defer s.state.Store(int32(Idle))

	syncCtx := ctx
	if s.cfg.CycleTimeout > 0 {
		var cancel context.CancelFunc
		syncCtx, cancel = context.WithTimeout(ctx, s.cfg.CycleTimeout)
		defer cancel()
	}

	stats, err := s.syncer.Sync(syncCtx)
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		return
	}
	s.logger.Debug("cycle finished", "cycle_id", stats.CycleID, "duration", stats.Duration)
}
