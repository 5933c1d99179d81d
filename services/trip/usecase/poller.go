package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/wibowo/kurir/internal/pkg/logger"
	"github.com/wibowo/kurir/internal/pkg/models"
)

// poller refreshes the active trip on a fixed cadence. One poller runs per
// session; it fires immediately on start, then once per interval, and every
// cycle hands the result to apply. A failed fetch keeps the previous trip
// in place so transient backend errors never blank the driver's screen.
type poller struct {
	interval time.Duration
	fetch    func(ctx context.Context) (*models.ActiveTrip, error)
	apply    func(trip *models.ActiveTrip)

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

func newPoller(interval time.Duration, fetch func(ctx context.Context) (*models.ActiveTrip, error), apply func(trip *models.ActiveTrip)) *poller {
	return &poller{
		interval: interval,
		fetch:    fetch,
		apply:    apply,
	}
}

// Start launches the poll loop under parent. Starting a running poller is
// a no-op.
func (p *poller) Start(parent context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	ctx, cancel := context.WithCancel(parent)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.started = true

	go p.loop(ctx)
}

func (p *poller) loop(ctx context.Context) {
	defer close(p.done)

	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *poller) poll(ctx context.Context) {
	trip, err := p.fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Warn("active trip poll failed, retaining previous state",
			logger.Err(err))
		return
	}
	p.apply(trip)
}

// Stop cancels the loop and waits for it to drain. Safe to call more than
// once and safe to call on a poller that never started.
func (p *poller) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	cancel := p.cancel
	done := p.done
	p.mu.Unlock()

	cancel()
	<-done
}
