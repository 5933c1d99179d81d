package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wibowo/kurir/internal/pkg/circuitbreaker"
	httpclient "github.com/wibowo/kurir/internal/pkg/http"
	"github.com/wibowo/kurir/internal/pkg/logger"
	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/internal/pkg/retry"
)

// BackendGW implements trip.TripGW against the platform trip API. Reads
// are retried with backoff since the poll loop tolerates latency;
// transitions go through a circuit breaker instead, because retrying a
// state change the backend may have already applied is worse than
// surfacing the failure.
type BackendGW struct {
	client  *httpclient.Client
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
	logger  *logger.ZapLogger
}

// NewBackendGW creates a gateway for the platform trip API.
func NewBackendGW(client *httpclient.Client, l *logger.ZapLogger) *BackendGW {
	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = retry.NetworkRetryableFunc()

	return &BackendGW{
		client:  client,
		retrier: retry.New(retryCfg, l),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("trip-transition"), l),
		logger:  l,
	}
}

// FetchActiveTrip returns the driver's current assignment, or (nil, nil)
// when the driver holds none. Backend status synonyms are normalized here
// so nothing downstream ever sees a raw vertical-specific status.
func (g *BackendGW) FetchActiveTrip(ctx context.Context, driverID uuid.UUID) (*models.ActiveTrip, error) {
	var resp models.ActiveTripResponse

	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.Do(ctx, http.MethodGet,
			fmt.Sprintf("/internal/v1/drivers/%s/active-trip", driverID), nil, &resp)
	})
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch active trip: %w", err)
	}

	if !resp.HasActiveTrip || resp.ActiveTrip == nil {
		return nil, nil
	}

	t := resp.ActiveTrip
	t.Status = models.NormalizeTripStatus(string(t.Status))
	return t, nil
}

// SubmitTransition submits a status change for the trip.
func (g *BackendGW) SubmitTransition(ctx context.Context, driverID, tripID uuid.UUID, req models.TransitionRequest) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.Do(ctx, http.MethodPost,
			fmt.Sprintf("/internal/v1/drivers/%s/trips/%s/status", driverID, tripID), req, nil)
	})
	if err != nil {
		return fmt.Errorf("failed to submit status transition: %w", err)
	}
	return nil
}

// PublishNavigationChoice forwards a navigation-app choice to the platform
// telemetry endpoint.
func (g *BackendGW) PublishNavigationChoice(ctx context.Context, event *models.NavEvent) error {
	err := g.client.Do(ctx, http.MethodPost, "/internal/v1/telemetry/navigation", event, nil)
	if err != nil {
		return fmt.Errorf("failed to publish navigation choice: %w", err)
	}
	return nil
}
