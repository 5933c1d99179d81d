package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wibowo/kurir/internal/pkg/database"
	"github.com/wibowo/kurir/internal/pkg/models"
)

const (
	driverFixKeyPrefix  = "driver:fix:"
	driverTripKeyPrefix = "driver:trip:"
	liveDriversGeoKey   = "drivers:live"
)

// SessionRepo implements trip.SessionRepo on Redis. Fixes and cached trips
// carry a TTL so stale state ages out on its own when a driver goes dark.
type SessionRepo struct {
	redis  *database.RedisClient
	fixTTL time.Duration
}

// NewSessionRepo creates a new Redis-backed session repository.
func NewSessionRepo(redisClient *database.RedisClient, fixTTL time.Duration) *SessionRepo {
	return &SessionRepo{
		redis:  redisClient,
		fixTTL: fixTTL,
	}
}

// SaveFix stores the driver's latest fix and refreshes the live-driver geo
// index. Last write wins.
func (r *SessionRepo) SaveFix(ctx context.Context, driverID uuid.UUID, fix models.GpsSnapshot) error {
	payload, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("failed to marshal GPS fix: %w", err)
	}

	if err := r.redis.Set(ctx, driverFixKeyPrefix+driverID.String(), payload, r.fixTTL); err != nil {
		return fmt.Errorf("failed to store GPS fix: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, liveDriversGeoKey, fix.Longitude, fix.Latitude, driverID.String()); err != nil {
		return fmt.Errorf("failed to update live driver index: %w", err)
	}
	return nil
}

// LastFix returns the driver's most recent fix, or nil when none is stored
// or the stored one has expired.
func (r *SessionRepo) LastFix(ctx context.Context, driverID uuid.UUID) (*models.GpsSnapshot, error) {
	raw, err := r.redis.Get(ctx, driverFixKeyPrefix+driverID.String())
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read GPS fix: %w", err)
	}

	var fix models.GpsSnapshot
	if err := json.Unmarshal([]byte(raw), &fix); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GPS fix: %w", err)
	}
	return &fix, nil
}

// CacheTrip keeps the last polled trip readable between poll cycles and
// across instance restarts.
func (r *SessionRepo) CacheTrip(ctx context.Context, driverID uuid.UUID, trip *models.ActiveTrip) error {
	payload, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to marshal trip: %w", err)
	}
	if err := r.redis.Set(ctx, driverTripKeyPrefix+driverID.String(), payload, r.fixTTL); err != nil {
		return fmt.Errorf("failed to cache trip: %w", err)
	}
	return nil
}

// CachedTrip returns the cached trip, or nil when none is stored.
func (r *SessionRepo) CachedTrip(ctx context.Context, driverID uuid.UUID) (*models.ActiveTrip, error) {
	raw, err := r.redis.Get(ctx, driverTripKeyPrefix+driverID.String())
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached trip: %w", err)
	}

	var trip models.ActiveTrip
	if err := json.Unmarshal([]byte(raw), &trip); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached trip: %w", err)
	}
	return &trip, nil
}

// ClearTrip drops the cached trip.
func (r *SessionRepo) ClearTrip(ctx context.Context, driverID uuid.UUID) error {
	if err := r.redis.Delete(ctx, driverTripKeyPrefix+driverID.String()); err != nil {
		return fmt.Errorf("failed to clear cached trip: %w", err)
	}
	return nil
}
