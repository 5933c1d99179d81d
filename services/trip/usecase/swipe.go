package usecase

import (
	"sync"
	"time"

	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/services/trip"
)

// swipeConfirmer guards the terminal transition behind a swipe gesture.
// Progress is a fraction of the track width. Crossing the register
// threshold pulses once per drag so the driver feels the gesture take;
// releasing past the commit threshold locks input and fires the commit
// callback after a short settle delay, giving the UI time to finish the
// fill animation before the submission begins.
type swipeConfirmer struct {
	registerAt float64
	commitAt   float64
	settle     time.Duration
	haptics    trip.Haptics
	commit     func()

	mu         sync.Mutex
	progress   float64
	registered bool
	committing bool
	timer      *time.Timer
}

func newSwipeConfirmer(cfg models.TripConfig, haptics trip.Haptics, commit func()) *swipeConfirmer {
	return &swipeConfirmer{
		registerAt: cfg.SwipeRegisterThreshold,
		commitAt:   cfg.SwipeCommitThreshold,
		settle:     cfg.SwipeSettleDelay,
		haptics:    haptics,
		commit:     commit,
	}
}

// Drag updates the gesture position. Values are clamped to [0,1]. Input
// is ignored once a commit is settling.
func (s *swipeConfirmer) Drag(progress float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.committing {
		return
	}

	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	s.progress = progress

	if progress >= s.registerAt && !s.registered {
		s.registered = true
		s.haptics.Pulse(trip.HapticLight)
	}
	if progress < s.registerAt {
		s.registered = false
	}
}

// Release ends the drag. Past the commit threshold the gesture locks and
// the commit callback fires after the settle delay; otherwise the knob
// springs back to zero.
func (s *swipeConfirmer) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.committing {
		return
	}

	if s.progress < s.commitAt {
		s.progress = 0
		s.registered = false
		return
	}

	s.committing = true
	s.progress = 1
	s.haptics.Pulse(trip.HapticHeavy)
	s.timer = time.AfterFunc(s.settle, s.commit)
}

// Reset unlocks the gesture, cancelling a settling commit that has not
// fired yet. Called after a submission resolves or the trip changes.
func (s *swipeConfirmer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.progress = 0
	s.registered = false
	s.committing = false
}

// State returns the gesture state for the session snapshot.
func (s *swipeConfirmer) State() models.SwipeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SwipeState{
		Progress:   s.progress,
		Committing: s.committing,
		Locked:     s.committing,
	}
}
