package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wibowo/kurir/internal/pkg/models"
)

func TestPoller_FiresImmediatelyThenOnInterval(t *testing.T) {
	var fetches atomic.Int32
	var applies atomic.Int32

	p := newPoller(10*time.Millisecond,
		func(ctx context.Context) (*models.ActiveTrip, error) {
			fetches.Add(1)
			return nil, nil
		},
		func(*models.ActiveTrip) { applies.Add(1) })

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return fetches.Load() >= 3 },
		500*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, fetches.Load(), applies.Load())
}

func TestPoller_StopHaltsPolling(t *testing.T) {
	var fetches atomic.Int32

	p := newPoller(10*time.Millisecond,
		func(ctx context.Context) (*models.ActiveTrip, error) {
			fetches.Add(1)
			return nil, nil
		},
		func(*models.ActiveTrip) {})

	p.Start(context.Background())
	assert.Eventually(t, func() bool { return fetches.Load() >= 2 },
		500*time.Millisecond, 5*time.Millisecond)

	p.Stop()
	after := fetches.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, fetches.Load(), "no polls may run after Stop returns")
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	p := newPoller(10*time.Millisecond,
		func(ctx context.Context) (*models.ActiveTrip, error) { return nil, nil },
		func(*models.ActiveTrip) {})

	p.Start(context.Background())
	p.Stop()
	p.Stop()

	// A poller that never started is also safe to stop.
	idle := newPoller(10*time.Millisecond,
		func(ctx context.Context) (*models.ActiveTrip, error) { return nil, nil },
		func(*models.ActiveTrip) {})
	idle.Stop()
}

func TestPoller_FetchErrorSkipsApply(t *testing.T) {
	var applies atomic.Int32
	var fetches atomic.Int32

	p := newPoller(10*time.Millisecond,
		func(ctx context.Context) (*models.ActiveTrip, error) {
			fetches.Add(1)
			return nil, errors.New("backend unavailable")
		},
		func(*models.ActiveTrip) { applies.Add(1) })

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return fetches.Load() >= 2 },
		500*time.Millisecond, 5*time.Millisecond)
	assert.Zero(t, applies.Load(), "failed polls must not overwrite session state")
}

func TestPoller_ParentCancelStopsLoop(t *testing.T) {
	var fetches atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	p := newPoller(10*time.Millisecond,
		func(ctx context.Context) (*models.ActiveTrip, error) {
			fetches.Add(1)
			return nil, nil
		},
		func(*models.ActiveTrip) {})

	p.Start(ctx)
	assert.Eventually(t, func() bool { return fetches.Load() >= 1 },
		500*time.Millisecond, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)
	after := fetches.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, fetches.Load())
}
