package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wibowo/kurir/internal/pkg/logger"
	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/services/trip"
)

// tracker follows the driver's position for the duration of one trip. It
// holds only the most recent fix; consumers read a point-in-time snapshot.
// A failed or absent subscription is not fatal: the snapshot stays nil and
// completion proceeds without location evidence.
type tracker struct {
	driverID uuid.UUID
	source   trip.LocationSource
	opts     trip.WatchOptions

	mu      sync.Mutex
	latest  *models.GpsSnapshot
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

func newTracker(driverID uuid.UUID, source trip.LocationSource, opts trip.WatchOptions) *tracker {
	return &tracker{
		driverID: driverID,
		source:   source,
		opts:     opts,
	}
}

// Start opens the location subscription under parent. Starting a running
// tracker is a no-op.
func (t *tracker) Start(parent context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started || t.source == nil {
		return
	}

	ctx, cancel := context.WithCancel(parent)
	fixes, err := t.source.Watch(ctx, t.opts)
	if err != nil {
		cancel()
		logger.Warn("location watch unavailable, trip proceeds without GPS",
			logger.String("driver_id", t.driverID.String()),
			logger.Err(err))
		return
	}

	t.cancel = cancel
	t.done = make(chan struct{})
	t.started = true

	go t.consume(fixes)
}

func (t *tracker) consume(fixes <-chan models.GpsSnapshot) {
	defer close(t.done)

	for fix := range fixes {
		t.mu.Lock()
		f := fix
		t.latest = &f
		t.mu.Unlock()
	}
}

// Snapshot returns the most recent fix observed during this trip, or nil
// when none arrived.
func (t *tracker) Snapshot() *models.GpsSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest
}

// Stop closes the subscription and waits for the consumer to drain.
// Idempotent.
func (t *tracker) Stop() {
	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return
	}
	t.started = false
	cancel := t.cancel
	done := t.done
	t.mu.Unlock()

	cancel()
	<-done
}
