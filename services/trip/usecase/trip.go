package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wibowo/kurir/internal/pkg/logger"
	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/services/trip"
	"github.com/wibowo/kurir/services/trip/lifecycle"
)

// driverSession pairs the lifecycle engine with the concrete device ports
// it is wired to. The HTTP layer reaches the ports only through the
// manager; the engine sees them as interfaces.
type driverSession struct {
	engine  *session
	feed    *trip.LocationFeed
	confirm *trip.DeferredConfirm
	queue   *trip.FeedbackQueue
}

// TripUC implements trip.TripUC. It owns one session per driver and the
// preference and telemetry operations that live outside any session.
type TripUC struct {
	cfg         models.TripConfig
	gateway     trip.TripGW
	sessionRepo trip.SessionRepo
	prefRepo    trip.PreferenceRepo

	mu       sync.Mutex
	sessions map[uuid.UUID]*driverSession
}

// NewTripUC creates a new trip usecase.
func NewTripUC(cfg models.TripConfig, gateway trip.TripGW, sessionRepo trip.SessionRepo, prefRepo trip.PreferenceRepo) *TripUC {
	return &TripUC{
		cfg:         cfg,
		gateway:     gateway,
		sessionRepo: sessionRepo,
		prefRepo:    prefRepo,
		sessions:    make(map[uuid.UUID]*driverSession),
	}
}

// StartSession mounts a trip session for the driver and begins polling.
// Starting an already mounted session is a no-op, matching a device that
// re-opens the trip screen.
func (uc *TripUC) StartSession(_ context.Context, driverID uuid.UUID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.sessions[driverID]; ok {
		return nil
	}

	feed := trip.NewLocationFeed()
	confirm := trip.NewDeferredConfirm()
	queue := trip.NewFeedbackQueue()
	engine := newSession(driverID, uc.cfg, uc.gateway, uc.sessionRepo, trip.Ports{
		Source:    feed,
		Haptics:   queue,
		Notifier:  queue,
		Navigator: queue,
		Prompt:    confirm,
	})

	uc.sessions[driverID] = &driverSession{
		engine:  engine,
		feed:    feed,
		confirm: confirm,
		queue:   queue,
	}
	engine.Start()

	logger.Info("trip session started", logger.String("driver_id", driverID.String()))
	return nil
}

// EndSession unmounts the driver's session, cancelling every activity it
// owns.
func (uc *TripUC) EndSession(_ context.Context, driverID uuid.UUID) error {
	uc.mu.Lock()
	ds, ok := uc.sessions[driverID]
	delete(uc.sessions, driverID)
	uc.mu.Unlock()

	if !ok {
		return trip.ErrNoSession
	}

	ds.engine.Close()
	ds.feed.Close()

	logger.Info("trip session ended", logger.String("driver_id", driverID.String()))
	return nil
}

func (uc *TripUC) session(driverID uuid.UUID) (*driverSession, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	ds, ok := uc.sessions[driverID]
	if !ok {
		return nil, trip.ErrNoSession
	}
	return ds, nil
}

// SessionSnapshot returns the device view of the session, draining any
// feedback queued since the previous read. When the first poll has not
// landed yet the cached trip from a previous instance fills the gap.
func (uc *TripUC) SessionSnapshot(ctx context.Context, driverID uuid.UUID) (*models.SessionSnapshot, error) {
	ds, err := uc.session(driverID)
	if err != nil {
		return nil, err
	}

	snap := ds.engine.Snapshot()
	if !snap.HasActiveTrip {
		if cached, err := uc.sessionRepo.CachedTrip(ctx, driverID); err == nil && cached != nil {
			snap.Trip = cached
			snap.HasActiveTrip = true
			if action, ok := lifecycle.NextAction(cached.ServiceType, cached.Status); ok {
				a := action
				snap.NextAction = &a
			}
		}
	}
	snap.PendingConfirmation = ds.confirm.Pending()
	snap.Feedback = ds.queue.Drain()
	return &snap, nil
}

// Advance performs the next button transition for the trip.
func (uc *TripUC) Advance(ctx context.Context, driverID, tripID uuid.UUID) error {
	ds, err := uc.session(driverID)
	if err != nil {
		return err
	}
	return ds.engine.Advance(ctx, tripID)
}

// SwipeProgress feeds a drag position and returns the resulting gesture
// state.
func (uc *TripUC) SwipeProgress(_ context.Context, driverID, tripID uuid.UUID, progress float64) (models.SwipeState, error) {
	ds, err := uc.session(driverID)
	if err != nil {
		return models.SwipeState{}, err
	}
	if err := ds.engine.Drag(tripID, progress); err != nil {
		return models.SwipeState{}, err
	}
	return ds.engine.SwipeState(), nil
}

// SwipeRelease ends the drag at the given position. Past the commit
// threshold this kicks off the confirmation and submission flow.
func (uc *TripUC) SwipeRelease(_ context.Context, driverID, tripID uuid.UUID, progress float64) (models.SwipeState, error) {
	ds, err := uc.session(driverID)
	if err != nil {
		return models.SwipeState{}, err
	}
	if err := ds.engine.Drag(tripID, progress); err != nil {
		return models.SwipeState{}, err
	}
	if err := ds.engine.ReleaseSwipe(tripID); err != nil {
		return models.SwipeState{}, err
	}
	return ds.engine.SwipeState(), nil
}

// ResolveCompletion answers the pending completion confirmation.
func (uc *TripUC) ResolveCompletion(_ context.Context, driverID, tripID uuid.UUID, accepted bool) error {
	ds, err := uc.session(driverID)
	if err != nil {
		return err
	}
	if !ds.engine.Holds(tripID) {
		return trip.ErrTripMismatch
	}
	return ds.confirm.Resolve(accepted)
}

// PushLocation records a device fix: it persists the fix for the live
// geo index and fans it out to the session's location watch.
func (uc *TripUC) PushLocation(ctx context.Context, driverID uuid.UUID, fix models.GpsSnapshot) error {
	ds, err := uc.session(driverID)
	if err != nil {
		return err
	}

	if fix.Timestamp.IsZero() {
		fix.Timestamp = time.Now()
	}
	if err := uc.sessionRepo.SaveFix(ctx, driverID, fix); err != nil {
		return err
	}
	ds.feed.Push(fix)
	return nil
}

// NavigationPreference returns the driver's navigation app preference.
func (uc *TripUC) NavigationPreference(ctx context.Context, driverID uuid.UUID) (*models.NavPreference, error) {
	return uc.prefRepo.GetNavigationPreference(ctx, driverID)
}

// UpdateNavigationPreference stores a new navigation app preference.
func (uc *TripUC) UpdateNavigationPreference(ctx context.Context, driverID uuid.UUID, app models.NavApp) error {
	if !app.Valid() {
		return trip.ErrInvalidNavApp
	}
	return uc.prefRepo.UpsertNavigationPreference(ctx, driverID, app)
}

// RecordNavigationChoice stores which app the driver launched for a trip
// and forwards it to platform telemetry. The forward is best effort.
func (uc *TripUC) RecordNavigationChoice(ctx context.Context, driverID, tripID uuid.UUID, app models.NavApp) error {
	if !app.Valid() {
		return trip.ErrInvalidNavApp
	}

	event := &models.NavEvent{
		EventID:   uuid.New(),
		DriverID:  driverID,
		TripID:    tripID,
		App:       app,
		CreatedAt: time.Now(),
	}
	// Non-critical telemetry: neither a failed local write nor a failed
	// forward may surface to the driver.
	if err := uc.prefRepo.InsertNavigationEvent(ctx, event); err != nil {
		logger.Warn("failed to record navigation choice",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}

	if err := uc.gateway.PublishNavigationChoice(ctx, event); err != nil {
		logger.Warn("failed to publish navigation choice",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
	return nil
}

// Shutdown closes every mounted session. Called on server shutdown.
func (uc *TripUC) Shutdown() {
	uc.mu.Lock()
	sessions := uc.sessions
	uc.sessions = make(map[uuid.UUID]*driverSession)
	uc.mu.Unlock()

	for _, ds := range sessions {
		ds.engine.Close()
		ds.feed.Close()
	}
}
