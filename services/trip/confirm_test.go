package trip

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wibowo/kurir/internal/pkg/models"
)

func TestDeferredConfirm_ResolveAnswersPending(t *testing.T) {
	d := NewDeferredConfirm()

	result := make(chan bool, 1)
	go func() {
		ok, err := d.Confirm(context.Background(), models.CompletionPrompt{Summary: "Complete trip?"})
		require.NoError(t, err)
		result <- ok
	}()

	require.Eventually(t, func() bool { return d.Pending() != nil },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, "Complete trip?", d.Pending().Summary)

	require.NoError(t, d.Resolve(true))

	select {
	case ok := <-result:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("confirm did not resolve")
	}

	assert.Nil(t, d.Pending())
}

func TestDeferredConfirm_ResolveWithoutPending(t *testing.T) {
	d := NewDeferredConfirm()
	assert.ErrorIs(t, d.Resolve(true), ErrNoPendingConfirmation)
}

func TestDeferredConfirm_SecondConfirmRejected(t *testing.T) {
	d := NewDeferredConfirm()

	go func() {
		_, _ = d.Confirm(context.Background(), models.CompletionPrompt{Summary: "first"})
	}()
	require.Eventually(t, func() bool { return d.Pending() != nil },
		time.Second, 5*time.Millisecond)

	_, err := d.Confirm(context.Background(), models.CompletionPrompt{Summary: "second"})
	assert.ErrorIs(t, err, ErrConfirmationPending)

	require.NoError(t, d.Resolve(false))
}

func TestDeferredConfirm_ContextCancelUnblocks(t *testing.T) {
	d := NewDeferredConfirm()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := d.Confirm(ctx, models.CompletionPrompt{Summary: "hanging"})
		errCh <- err
	}()

	require.Eventually(t, func() bool { return d.Pending() != nil },
		time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("confirm did not unblock on cancel")
	}

	// The slot frees up for the next attempt.
	assert.Eventually(t, func() bool { return d.Pending() == nil },
		time.Second, 5*time.Millisecond)
}

func TestFeedbackQueue_DrainEmptiesInOrder(t *testing.T) {
	q := NewFeedbackQueue()

	q.Pulse(HapticLight)
	q.Success("Trip started")
	q.Error("Failed to update status. Please try again.")
	q.LeaveTripScreen()

	events := q.Drain()
	require.Len(t, events, 4)
	assert.Equal(t, models.FeedbackKindHaptic, events[0].Kind)
	assert.Equal(t, string(HapticLight), events[0].Strength)
	assert.Equal(t, models.FeedbackKindNotice, events[1].Kind)
	assert.Equal(t, models.FeedbackKindError, events[2].Kind)
	assert.Equal(t, models.FeedbackKindNavigate, events[3].Kind)

	assert.Empty(t, q.Drain())
}

func TestFeedbackQueue_BoundedBacklog(t *testing.T) {
	q := NewFeedbackQueue()

	for i := 0; i < maxQueuedFeedback+10; i++ {
		q.Pulse(HapticLight)
	}
	q.Success("latest")

	events := q.Drain()
	assert.Len(t, events, maxQueuedFeedback)
	assert.Equal(t, "latest", events[len(events)-1].Message)
}
