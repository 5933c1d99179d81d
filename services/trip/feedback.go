package trip

import (
	"sync"
	"time"

	"github.com/wibowo/kurir/internal/pkg/models"
)

const maxQueuedFeedback = 32

// FeedbackQueue implements Haptics, Notifier and Navigator by queuing
// events for the device to drain on its next session read.
type FeedbackQueue struct {
	mu     sync.Mutex
	events []models.FeedbackEvent
}

// NewFeedbackQueue creates an empty queue.
func NewFeedbackQueue() *FeedbackQueue {
	return &FeedbackQueue{}
}

func (q *FeedbackQueue) push(ev models.FeedbackEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) >= maxQueuedFeedback {
		q.events = q.events[1:]
	}
	ev.At = time.Now()
	q.events = append(q.events, ev)
}

func (q *FeedbackQueue) Pulse(strength HapticStrength) {
	q.push(models.FeedbackEvent{Kind: models.FeedbackKindHaptic, Strength: string(strength)})
}

func (q *FeedbackQueue) Success(message string) {
	q.push(models.FeedbackEvent{Kind: models.FeedbackKindNotice, Message: message})
}

func (q *FeedbackQueue) Error(message string) {
	q.push(models.FeedbackEvent{Kind: models.FeedbackKindError, Message: message})
}

func (q *FeedbackQueue) LeaveTripScreen() {
	q.push(models.FeedbackEvent{Kind: models.FeedbackKindNavigate})
}

// Drain returns all queued events and empties the queue.
func (q *FeedbackQueue) Drain() []models.FeedbackEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}
