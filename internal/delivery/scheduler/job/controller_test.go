package job

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	deliverycontext "gasradar/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestController_RunsImmediatelyThenOnTicks(t *testing.T) {
	var calls atomic.Int32
	ran := make(chan struct{}, 16)

	c := NewController("sync", 10*time.Millisecond, func(ctx context.Context) (any, error) {
		calls.Add(1)
		ran <- struct{}{}

		return nil, nil
	}, discardLogger())

	require.True(t, c.Start(context.Background()))
	assert.Equal(t, Scheduled, c.State())

	for range 3 {
		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatal("cycle did not run")
		}
	}

	c.Stop()
	require.NoError(t, c.Wait(context.Background()))
	assert.Equal(t, Stopped, c.State())
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestController_FirstCycleDoesNotWaitForInterval(t *testing.T) {
	ran := make(chan struct{}, 1)

	c := NewController("record", time.Hour, func(ctx context.Context) (any, error) {
		ran <- struct{}{}

		return nil, nil
	}, discardLogger())

	c.Start(context.Background())
	defer c.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("first cycle did not run on start")
	}
}

func TestController_NeverOverlaps(t *testing.T) {
	var (
		calls      atomic.Int32
		concurrent atomic.Int32
		maxSeen    atomic.Int32
	)
	started := make(chan struct{})
	release := make(chan struct{})

	c := NewController("notify", 2*time.Millisecond, func(ctx context.Context) (any, error) {
		n := concurrent.Add(1)
		defer concurrent.Add(-1)
		if n > maxSeen.Load() {
			maxSeen.Store(n)
		}
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}

		return nil, nil
	}, discardLogger())

	c.Start(context.Background())
	<-started

	// Several ticks fire while the first cycle is blocked.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	close(release)
	c.Stop()
	require.NoError(t, c.Wait(context.Background()))
	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestController_StopOnlyCancelsFutureTicks(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	ctxErr := make(chan error, 1)

	c := NewController("sync", 5*time.Millisecond, func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			ctxErr <- ctx.Err()
		}

		return nil, nil
	}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	<-started

	cancel()
	c.Stop()
	assert.Equal(t, Stopped, c.State())

	close(release)
	require.NoError(t, c.Wait(context.Background()))
	require.NoError(t, <-ctxErr, "in-flight cycle must not be cancelled")

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestController_StartTwice(t *testing.T) {
	c := NewController("sync", time.Hour, func(ctx context.Context) (any, error) { return nil, nil }, discardLogger())

	assert.True(t, c.Start(context.Background()))
	assert.False(t, c.Start(context.Background()))

	c.Stop()
	c.Stop()
	assert.Equal(t, Stopped, c.State())

	assert.True(t, c.Start(context.Background()))
	c.Stop()
}

func TestController_FailedCycleKeepsSchedule(t *testing.T) {
	var calls atomic.Int32
	ran := make(chan struct{}, 16)

	c := NewController("sync", 5*time.Millisecond, func(ctx context.Context) (any, error) {
		calls.Add(1)
		ran <- struct{}{}

		return nil, errors.New("feed unavailable")
	}, discardLogger())

	c.Start(context.Background())
	<-ran
	<-ran
	c.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestController_PanicIsContained(t *testing.T) {
	ran := make(chan struct{}, 16)

	c := NewController("notify", 5*time.Millisecond, func(ctx context.Context) (any, error) {
		ran <- struct{}{}
		panic("boom")
	}, discardLogger())

	c.Start(context.Background())
	<-ran
	<-ran
	c.Stop()
	require.NoError(t, c.Wait(context.Background()))
}

func TestController_WaitHonoursDeadline(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	c := NewController("record", time.Hour, func(ctx context.Context) (any, error) {
		close(started)
		<-release

		return nil, nil
	}, discardLogger())

	c.Start(context.Background())
	<-started
	c.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.Wait(ctx), context.DeadlineExceeded)
}

func TestController_CycleContextIsTagged(t *testing.T) {
	type tags struct{ job, runID string }
	seen := make(chan tags, 1)

	c := NewController("record", time.Hour, func(ctx context.Context) (any, error) {
		seen <- tags{
			job:   deliverycontext.JobFromContext(ctx),
			runID: deliverycontext.RequestIDFromContext(ctx),
		}

		return nil, nil
	}, discardLogger())

	require.True(t, c.Start(context.Background()))
	defer c.Stop()

	select {
	case got := <-seen:
		assert.Equal(t, "record", got.job)
		assert.NotEmpty(t, got.runID)
	case <-time.After(time.Second):
		t.Fatal("cycle did not run")
	}
}

func TestController_CycleLogsCarryRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	runIDs := make(chan string, 1)

	c := NewController("sync", time.Hour, func(ctx context.Context) (any, error) {
		runIDs <- deliverycontext.RequestIDFromContext(ctx)
		deliverycontext.Logger(ctx, discardLogger()).Info("inside cycle")

		return "ok", nil
	}, logger)

	require.True(t, c.Start(context.Background()))

	var runID string
	select {
	case runID = <-runIDs:
	case <-time.After(time.Second):
		t.Fatal("cycle did not run")
	}
	c.Stop()
	require.NoError(t, c.Wait(context.Background()))

	var cycleLines int
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == "inside cycle" || entry["msg"] == "[Scheduler] cycle finished" {
			cycleLines++
			assert.Equal(t, runID, entry["run_id"])
		}
	}
	assert.Equal(t, 2, cycleLines)
}
