package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wibowo/kurir/internal/pkg/logger"
	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/services/trip"
	"github.com/wibowo/kurir/services/trip/lifecycle"
)

// session is the per-driver trip lifecycle engine. It owns every
// concurrent activity spawned for the driver: the poll loop, the GPS
// watch, the swipe settle timer and the post-completion navigation timer
// all hang off one session context, so Close tears the whole set down in
// one stroke and nothing outlives the session.
type session struct {
	driverID uuid.UUID
	cfg      models.TripConfig
	gateway  trip.TripGW
	repo     trip.SessionRepo
	ports    trip.Ports

	ctx    context.Context
	cancel context.CancelFunc

	poller    *poller
	submitter *submitter

	mu       sync.Mutex
	active   *models.ActiveTrip
	tracker  *tracker
	swipe    *swipeConfirmer
	finished bool
	navTimer *time.Timer
}

func newSession(driverID uuid.UUID, cfg models.TripConfig, gateway trip.TripGW, repo trip.SessionRepo, ports trip.Ports) *session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &session{
		driverID:  driverID,
		cfg:       cfg,
		gateway:   gateway,
		repo:      repo,
		ports:     ports,
		ctx:       ctx,
		cancel:    cancel,
		submitter: newSubmitter(gateway, ports.Haptics, ports.Notifier),
	}
	s.swipe = newSwipeConfirmer(cfg, ports.Haptics, s.onSwipeCommit)
	s.poller = newPoller(cfg.PollInterval, s.fetchTrip, s.applyTrip)
	return s
}

// Start begins polling for the driver's assignment.
func (s *session) Start() {
	s.poller.Start(s.ctx)
}

// Close cancels every activity the session owns and waits for the poll
// loop to drain. Idempotent.
func (s *session) Close() {
	s.cancel()
	s.poller.Stop()

	s.mu.Lock()
	tr := s.tracker
	s.tracker = nil
	if s.navTimer != nil {
		s.navTimer.Stop()
		s.navTimer = nil
	}
	s.mu.Unlock()

	if tr != nil {
		tr.Stop()
	}
	s.swipe.Reset()
}

func (s *session) fetchTrip(ctx context.Context) (*models.ActiveTrip, error) {
	return s.gateway.FetchActiveTrip(ctx, s.driverID)
}

// applyTrip reconciles the polled assignment with session state. It runs
// on the poll goroutine and also on the submit path after an accepted
// transition.
func (s *session) applyTrip(polled *models.ActiveTrip) {
	s.mu.Lock()

	switch {
	case polled == nil:
		if s.active != nil {
			logger.Info("active trip gone, clearing session state",
				logger.String("driver_id", s.driverID.String()))
			s.clearTripLocked()
		}
		s.mu.Unlock()
		return

	case s.active == nil || s.active.TripID != polled.TripID:
		// Fresh assignment. Any tracker from a previous trip dies with it.
		old := s.tracker
		s.tracker = newTracker(s.driverID, s.ports.Source, trip.WatchOptions{
			HighAccuracy: true,
			MaxFixAge:    s.cfg.GPSMaxFixAge,
			Timeout:      s.cfg.GPSTimeout,
		})
		s.active = polled
		s.finished = false
		s.swipe.Reset()
		tr := s.tracker
		s.mu.Unlock()

		if old != nil {
			old.Stop()
		}
		tr.Start(s.ctx)
		s.cacheTrip(polled)

		if polled.Status.IsTerminal() {
			s.finish(polled.Status)
		}
		return

	default:
		// A poll started before a terminal transition resolved may still
		// carry the old status; never let it regress a finished trip.
		if s.finished && !polled.Status.IsTerminal() {
			s.mu.Unlock()
			return
		}
		prev := s.active.Status
		s.active = polled
		s.mu.Unlock()

		s.cacheTrip(polled)
		if polled.Status.IsTerminal() && !prev.IsTerminal() {
			s.finish(polled.Status)
		}
	}
}

func (s *session) clearTripLocked() {
	s.active = nil
	s.finished = false
	tr := s.tracker
	s.tracker = nil
	s.swipe.Reset()
	if tr != nil {
		// Stop off the poll goroutine; clearTripLocked runs from applyTrip
		// and stopping inline would deadlock on the poller join.
		go tr.Stop()
	}
	go func() {
		ctx, cancelFn := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelFn()
		if err := s.repo.ClearTrip(ctx, s.driverID); err != nil {
			logger.Warn("failed to clear cached trip", logger.Err(err))
		}
	}()
}

func (s *session) cacheTrip(t *models.ActiveTrip) {
	ctx, cancelFn := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancelFn()
	if err := s.repo.CacheTrip(ctx, s.driverID, t); err != nil {
		logger.Warn("failed to cache active trip",
			logger.String("driver_id", s.driverID.String()),
			logger.Err(err))
	}
}

// finish runs once per trip when a terminal status is reached: polling
// and tracking stop, and after a short delay the device is told to leave
// the trip screen. The delay exists so the driver sees the completion
// confirmation before the screen changes.
func (s *session) finish(status models.TripStatus) {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	s.finished = true
	tr := s.tracker
	s.tracker = nil
	s.navTimer = time.AfterFunc(s.cfg.NavigateDelay, s.ports.Navigator.LeaveTripScreen)
	s.mu.Unlock()

	logger.Info("trip reached terminal status",
		logger.String("driver_id", s.driverID.String()),
		logger.String("status", string(status)))

	// Stop is called off the poll goroutine; stopping inline would
	// deadlock when finish is reached from applyTrip.
	go s.poller.Stop()
	if tr != nil {
		go tr.Stop()
	}
}

// Snapshot assembles the device view of the session.
func (s *session) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := models.SessionSnapshot{Swipe: s.swipe.State()}
	if s.active == nil {
		return snap
	}

	snap.Trip = s.active
	snap.HasActiveTrip = true
	if action, ok := lifecycle.NextAction(s.active.ServiceType, s.active.Status); ok {
		a := action
		snap.NextAction = &a
	}
	if s.active.Status == models.TripStatusArrived {
		// The wait counter runs from the trip's creation time, so it holds
		// up across session restarts and late mounts.
		if wait := int(time.Since(s.active.CreatedAt).Seconds()); wait > 0 {
			snap.WaitSeconds = wait
		}
	}
	return snap
}

// Advance performs the next non-swipe transition for the trip.
func (s *session) Advance(ctx context.Context, tripID uuid.UUID) error {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active == nil {
		return trip.ErrNoActiveTrip
	}
	if active.TripID != tripID {
		return trip.ErrTripMismatch
	}
	action, ok := lifecycle.NextAction(active.ServiceType, active.Status)
	if !ok {
		return trip.ErrNoNextAction
	}
	if action.RequiresSwipe {
		return trip.ErrSwipeRequired
	}

	if err := s.submitter.Submit(ctx, s.driverID, tripID, action.NextStatus, nil); err != nil {
		return err
	}
	s.adoptStatus(tripID, action.NextStatus)
	return nil
}

// adoptStatus advances the local copy after an accepted submission so the
// next snapshot reflects the new stage without waiting a poll cycle.
func (s *session) adoptStatus(tripID uuid.UUID, status models.TripStatus) {
	s.mu.Lock()
	if s.active == nil || s.active.TripID != tripID {
		s.mu.Unlock()
		return
	}
	updated := *s.active
	updated.Status = status
	s.active = &updated
	s.mu.Unlock()

	s.cacheTrip(&updated)
	if status.IsTerminal() {
		s.finish(status)
		return
	}

	// The backend may adjust status or fare on acknowledgement; pull the
	// authoritative state rather than trusting the local adoption.
	go s.refresh()
}

func (s *session) refresh() {
	ctx, cancelFn := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancelFn()

	polled, err := s.gateway.FetchActiveTrip(ctx, s.driverID)
	if err != nil {
		return
	}
	s.applyTrip(polled)
}

// Drag feeds a swipe position for the terminal transition.
func (s *session) Drag(tripID uuid.UUID, progress float64) error {
	if err := s.requireSwipeStage(tripID); err != nil {
		return err
	}
	s.swipe.Drag(progress)
	return nil
}

// ReleaseSwipe ends the drag; a commit past the threshold kicks off the
// completion flow asynchronously.
func (s *session) ReleaseSwipe(tripID uuid.UUID) error {
	if err := s.requireSwipeStage(tripID); err != nil {
		return err
	}
	s.swipe.Release()
	return nil
}

func (s *session) requireSwipeStage(tripID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return trip.ErrNoActiveTrip
	}
	if s.active.TripID != tripID {
		return trip.ErrTripMismatch
	}
	action, ok := lifecycle.NextAction(s.active.ServiceType, s.active.Status)
	if !ok {
		return trip.ErrNoNextAction
	}
	if !action.RequiresSwipe {
		return trip.ErrSwipeNotApplicable
	}
	return nil
}

// SwipeState returns the current gesture state.
func (s *session) SwipeState() models.SwipeState {
	return s.swipe.State()
}

// Holds reports whether the session's active trip matches tripID.
func (s *session) Holds(tripID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil && s.active.TripID == tripID
}

// onSwipeCommit fires once the swipe settles. It runs on the timer
// goroutine and drives the full completion flow.
func (s *session) onSwipeCommit() {
	go s.completeTrip()
}

func (s *session) completeTrip() {
	s.mu.Lock()
	active := s.active
	tr := s.tracker
	s.mu.Unlock()

	if active == nil {
		s.swipe.Reset()
		return
	}
	action, ok := lifecycle.NextAction(active.ServiceType, active.Status)
	if !ok || !action.RequiresSwipe {
		s.swipe.Reset()
		return
	}

	var fix *models.GpsSnapshot
	if tr != nil {
		fix = tr.Snapshot()
	}
	if fix == nil {
		fix = s.recentStoredFix()
	}

	prompt := models.CompletionPrompt{Summary: completionSummary(active)}
	if fix == nil {
		prompt.Warnings = append(prompt.Warnings,
			"Current location unavailable. The trip will complete without a drop-off position.")
	}

	accepted, err := s.ports.Prompt.Confirm(s.ctx, prompt)
	if err != nil || !accepted {
		if err != nil && s.ctx.Err() == nil {
			logger.Warn("completion confirmation failed",
				logger.String("driver_id", s.driverID.String()),
				logger.Err(err))
		}
		s.swipe.Reset()
		return
	}

	if err := s.submitter.Submit(s.ctx, s.driverID, active.TripID, action.NextStatus, fix); err != nil {
		s.swipe.Reset()
		return
	}
	s.swipe.Reset()
	s.adoptStatus(active.TripID, action.NextStatus)
}

// recentStoredFix falls back to the last persisted fix when the live
// watch produced nothing, provided it is fresh enough to stand as
// drop-off evidence.
func (s *session) recentStoredFix() *models.GpsSnapshot {
	ctx, cancelFn := context.WithTimeout(s.ctx, 3*time.Second)
	defer cancelFn()

	fix, err := s.repo.LastFix(ctx, s.driverID)
	if err != nil || fix == nil {
		return nil
	}
	if time.Since(fix.Timestamp) > s.cfg.GPSMaxFixAge {
		return nil
	}
	return fix
}

func completionSummary(t *models.ActiveTrip) string {
	kind := "trip"
	switch t.ServiceType {
	case models.ServiceTypeFood:
		kind = "delivery"
	case models.ServiceTypeParcel:
		kind = "parcel drop-off"
	}
	return fmt.Sprintf("Complete %s for %s? The Rp%.0f %s fare will be finalized.",
		kind, t.CustomerName, t.FareAmount, t.PaymentMethod)
}
