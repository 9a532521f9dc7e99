// Package job runs one periodic background cycle with start/stop control.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	deliverycontext "gasradar/internal/delivery/context"

	"github.com/google/uuid"
)

// State is the scheduling state of a Controller.
type State int32

const (
	Stopped State = iota
	Scheduled
)

func (s State) String() string {
	if s == Scheduled {
		return "scheduled"
	}

	return "stopped"
}

// RunFunc executes one cycle and returns a report to log.
type RunFunc func(ctx context.Context) (any, error)

// Controller runs a job immediately on Start and then once per interval.
// A cycle never overlaps with itself: a tick that fires while one is running is dropped.
type Controller struct {
	name     string
	interval time.Duration
	run      RunFunc
	logger   *slog.Logger

	mu       sync.Mutex
	state    State
	stopCh   chan struct{}
	loopDone chan struct{}

	running  atomic.Bool
	inflight sync.WaitGroup
}

// NewController creates a stopped controller.
func NewController(name string, interval time.Duration, run RunFunc, logger *slog.Logger) *Controller {
	return &Controller{
		name:     name,
		interval: interval,
		run:      run,
		logger:   logger.With(slog.String("job", name)),
	}
}

// Name returns the job name.
func (c *Controller) Name() string {
	return c.name
}

// State returns the current scheduling state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Start schedules the job and runs the first cycle right away. Cycles get a context that
// keeps ctx's values but is never cancelled. It returns false if the job was already scheduled.
func (c *Controller) Start(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Scheduled {
		return false
	}

	c.state = Scheduled
	c.stopCh = make(chan struct{})
	c.loopDone = make(chan struct{})

	go c.loop(context.WithoutCancel(ctx), c.stopCh, c.loopDone)

	c.logger.Info("[Scheduler] job scheduled", slog.Duration("interval", c.interval))

	return true
}

// Stop cancels future ticks. A cycle already running is left to finish; use Wait to block on it.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.state == Stopped {
		c.mu.Unlock()

		return
	}
	c.state = Stopped
	close(c.stopCh)
	loopDone := c.loopDone
	c.mu.Unlock()

	<-loopDone

	c.logger.Info("[Scheduler] job stopped")
}

// Wait blocks until the in-flight cycle, if any, returns or ctx is done.
func (c *Controller) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) loop(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.trigger(ctx)

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.trigger(ctx)
		}
	}
}

func (c *Controller) trigger(ctx context.Context) {
	if !c.running.CompareAndSwap(false, true) {
		c.logger.Warn("[Scheduler] previous cycle still running, tick dropped")

		return
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer c.running.Store(false)

		c.runCycle(ctx)
	}()
}

func (c *Controller) runCycle(ctx context.Context) {
	start := time.Now()
	runID := uuid.NewString()
	logger := c.logger.With(slog.String("run_id", runID))

	ctx = deliverycontext.WithJob(ctx, c.name)
	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("[Scheduler] cycle panicked",
				slog.String("panic", fmt.Sprint(r)),
				slog.Duration("elapsed", time.Since(start)),
			)
		}
	}()

	report, err := c.run(ctx)
	if err != nil {
		logger.Error("[Scheduler] cycle failed, waiting for next tick",
			slog.Any("error", err),
			slog.Duration("elapsed", time.Since(start)),
		)

		return
	}

	logger.Info("[Scheduler] cycle finished",
		slog.Any("report", report),
		slog.Duration("elapsed", time.Since(start)),
	)
}
