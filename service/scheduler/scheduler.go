// ABOUTME: This file implements the interval scheduler driving background cycles
// ABOUTME: Cycles never overlap and their failures are logged, never fatal

package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Job is one schedulable unit of work, a token refresh cycle or an
// ingestion cycle.
type Job func(ctx context.Context) error

// Config holds scheduler configuration.
type Config struct {
	// Interval between cycle starts.
	Interval time.Duration
	// RunOnStart triggers an immediate first cycle before the first tick.
	RunOnStart bool
	// RunTimeout bounds a single cycle. Zero means no timeout.
	RunTimeout time.Duration
}

// Scheduler runs a single job on a fixed interval. If a cycle is still
// in flight when the next tick fires, the tick is skipped.
type Scheduler struct {
	name      string
	job       Job
	cfg       Config
	logger    *slog.Logger
	stopChan  chan struct{}
	doneChan  chan struct{}
	isRunning bool
	inFlight  atomic.Bool
	mu        sync.Mutex
}

// NewScheduler creates a scheduler for one named job.
func NewScheduler(name string, job Job, cfg Config, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		name:     name,
		job:      job,
		cfg:      cfg,
		logger:   logger.With("scheduler", name),
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start starts the scheduling loop. ctx cancellation stops the loop the
// same way Stop does.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		s.logger.Warn("Scheduler is already running")
		return
	}
	s.isRunning = true
	s.mu.Unlock()

	s.logger.Info("Starting scheduler",
		"interval", s.cfg.Interval,
		"run_on_start", s.cfg.RunOnStart)

	go s.runLoop(ctx)
}

// Stop stops the scheduler and waits for the loop to exit. An in-flight
// cycle is allowed to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.mu.Unlock()

	s.logger.Info("Stopping scheduler")
	close(s.stopChan)
	<-s.doneChan
}

func (s *Scheduler) runLoop(ctx context.Context) {
	defer close(s.doneChan)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	if s.cfg.RunOnStart {
		s.runOnce(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Warn("Previous cycle still running, skipping tick")
		return
	}
	defer s.inFlight.Store(false)

	runCtx := ctx
	if s.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.cfg.RunTimeout)
		defer cancel()
	}

	cycleID := uuid.NewString()
	logger := s.logger.With("cycle_id", cycleID)

	start := time.Now()
	if err := s.job(runCtx); err != nil {
		logger.Error("Cycle failed", "error", err, "duration", time.Since(start))
		return
	}
	logger.Info("Cycle completed", "duration", time.Since(start))
}
