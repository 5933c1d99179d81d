package trip

import (
	"context"
	"sync"

	"github.com/wibowo/kurir/internal/pkg/models"
)

// LocationFeed is a LocationSource backed by fixes pushed over the HTTP
// API. The device reports positions to the service; each session watches
// the feed for its driver.
type LocationFeed struct {
	mu     sync.Mutex
	subs   map[chan models.GpsSnapshot]struct{}
	closed bool
}

// NewLocationFeed creates an empty feed.
func NewLocationFeed() *LocationFeed {
	return &LocationFeed{subs: make(map[chan models.GpsSnapshot]struct{})}
}

// Watch subscribes to fixes pushed after the call. The subscription is
// removed when ctx is cancelled.
func (f *LocationFeed) Watch(ctx context.Context, _ WatchOptions) (<-chan models.GpsSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrNoSession
	}

	// Buffered so a slow consumer drops fixes instead of blocking Push.
	ch := make(chan models.GpsSnapshot, 1)
	f.subs[ch] = struct{}{}

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		if _, ok := f.subs[ch]; ok {
			delete(f.subs, ch)
			close(ch)
		}
		f.mu.Unlock()
	}()

	return ch, nil
}

// Push fans a fix out to all watchers. Stale buffered fixes are replaced
// so watchers always observe the most recent position.
func (f *LocationFeed) Push(fix models.GpsSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subs {
		select {
		case ch <- fix:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- fix:
			default:
			}
		}
	}
}

// Close ends the feed and closes all subscriptions.
func (f *LocationFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for ch := range f.subs {
		delete(f.subs, ch)
		close(ch)
	}
}
