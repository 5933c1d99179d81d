package trip

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wibowo/kurir/internal/pkg/models"
)

func TestLocationFeed_DeliversPushedFixes(t *testing.T) {
	feed := NewLocationFeed()
	defer feed.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixes, err := feed.Watch(ctx, WatchOptions{})
	require.NoError(t, err)

	pushed := models.GpsSnapshot{Latitude: -6.2, Longitude: 106.8, Timestamp: time.Now()}
	feed.Push(pushed)

	select {
	case got := <-fixes:
		assert.Equal(t, pushed.Latitude, got.Latitude)
		assert.Equal(t, pushed.Longitude, got.Longitude)
	case <-time.After(time.Second):
		t.Fatal("fix was not delivered")
	}
}

func TestLocationFeed_SlowWatcherSeesLatestFix(t *testing.T) {
	feed := NewLocationFeed()
	defer feed.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixes, err := feed.Watch(ctx, WatchOptions{})
	require.NoError(t, err)

	// Nobody reads between pushes; the stale buffered fix is replaced.
	feed.Push(models.GpsSnapshot{Latitude: 1})
	feed.Push(models.GpsSnapshot{Latitude: 2})
	feed.Push(models.GpsSnapshot{Latitude: 3})

	got := <-fixes
	assert.Equal(t, 3.0, got.Latitude)
}

func TestLocationFeed_CancelClosesSubscription(t *testing.T) {
	feed := NewLocationFeed()
	defer feed.Close()

	ctx, cancel := context.WithCancel(context.Background())
	fixes, err := feed.Watch(ctx, WatchOptions{})
	require.NoError(t, err)

	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, open := <-fixes:
			return !open
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	// Pushing after cancellation must not panic.
	feed.Push(models.GpsSnapshot{Latitude: 9})
}

func TestLocationFeed_CloseEndsAllWatchers(t *testing.T) {
	feed := NewLocationFeed()

	ctx := context.Background()
	a, err := feed.Watch(ctx, WatchOptions{})
	require.NoError(t, err)
	b, err := feed.Watch(ctx, WatchOptions{})
	require.NoError(t, err)

	feed.Close()

	_, openA := <-a
	_, openB := <-b
	assert.False(t, openA)
	assert.False(t, openB)

	_, err = feed.Watch(ctx, WatchOptions{})
	assert.Error(t, err)
}
