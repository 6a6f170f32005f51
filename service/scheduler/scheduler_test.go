package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"biotrackr/service/scheduler"
)

func TestScheduler_RunOnStart(t *testing.T) {
	var runs atomic.Int32
	job := func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}

	sched := scheduler.NewScheduler("test", job, scheduler.Config{
		Interval:   time.Hour,
		RunOnStart: true,
	}, nil)

	sched.Start(context.Background())
	defer sched.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_TicksRunJob(t *testing.T) {
	var runs atomic.Int32
	job := func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}

	sched := scheduler.NewScheduler("test", job, scheduler.Config{
		Interval: 20 * time.Millisecond,
	}, nil)

	sched.Start(context.Background())
	defer sched.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_SkipsOverlappingCycles(t *testing.T) {
	var started atomic.Int32
	release := make(chan struct{})
	job := func(ctx context.Context) error {
		started.Add(1)
		<-release
		return nil
	}

	sched := scheduler.NewScheduler("test", job, scheduler.Config{
		Interval:   20 * time.Millisecond,
		RunOnStart: true,
	}, nil)

	sched.Start(context.Background())

	// Several ticks elapse while the first cycle is still blocked. None of
	// them may start a second cycle.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), started.Load())

	close(release)
	sched.Stop()
}

func TestScheduler_JobFailureKeepsTicking(t *testing.T) {
	var runs atomic.Int32
	job := func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("cycle failed")
	}

	sched := scheduler.NewScheduler("test", job, scheduler.Config{
		Interval: 20 * time.Millisecond,
	}, nil)

	sched.Start(context.Background())
	defer sched.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_StopWaitsForLoopExit(t *testing.T) {
	sched := scheduler.NewScheduler("test", func(ctx context.Context) error {
		return nil
	}, scheduler.Config{Interval: time.Hour}, nil)

	sched.Start(context.Background())
	sched.Stop()

	// A second Stop is a no-op.
	sched.Stop()
}

func TestScheduler_ContextCancelStopsLoop(t *testing.T) {
	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	sched := scheduler.NewScheduler("test", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}, scheduler.Config{Interval: 20 * time.Millisecond}, nil)

	sched.Start(ctx)

	assert.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(50 * time.Millisecond)
	after := runs.Load()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_RunTimeoutBoundsCycle(t *testing.T) {
	done := make(chan error, 1)
	job := func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return ctx.Err()
	}

	sched := scheduler.NewScheduler("test", job, scheduler.Config{
		Interval:   time.Hour,
		RunOnStart: true,
		RunTimeout: 20 * time.Millisecond,
	}, nil)

	sched.Start(context.Background())
	defer sched.Stop()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("cycle was not cancelled by the run timeout")
	}
}
