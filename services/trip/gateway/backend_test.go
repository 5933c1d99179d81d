package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httpclient "github.com/wibowo/kurir/internal/pkg/http"
	"github.com/wibowo/kurir/internal/pkg/logger"
	"github.com/wibowo/kurir/internal/pkg/models"
)

func newTestGW(t *testing.T, handler http.Handler) (*BackendGW, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	zapLogger, err := logger.NewZapLogger(logger.Config{Level: "error"})
	require.NoError(t, err)

	client := httpclient.NewClient(server.URL, "test-key", 2*time.Second)
	return NewBackendGW(client, zapLogger), server
}

func TestBackendGW_FetchActiveTrip(t *testing.T) {
	driverID := uuid.New()
	tripID := uuid.New()

	gw, _ := newTestGW(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, fmt.Sprintf("/internal/v1/drivers/%s/active-trip", driverID), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"hasActiveTrip": true,
			"activeTrip": map[string]interface{}{
				"trip_id":      tripID.String(),
				"trip_code":    "TR-1204",
				"service_type": "FOOD",
				"status":       "picked_up",
				"customer_name": "Budi",
			},
		})
	}))

	trip, err := gw.FetchActiveTrip(context.Background(), driverID)

	require.NoError(t, err)
	require.NotNil(t, trip)
	assert.Equal(t, tripID, trip.TripID)
	assert.Equal(t, models.ServiceTypeFood, trip.ServiceType)
	// Vertical-specific synonyms are folded into the canonical set at the
	// boundary.
	assert.Equal(t, models.TripStatusArriving, trip.Status)
}

func TestBackendGW_FetchActiveTrip_NoAssignment(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "empty payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]interface{}{"hasActiveTrip": false})
			},
		},
		{
			name: "404 response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"error":"no active trip"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, _ := newTestGW(t, tt.handler)

			trip, err := gw.FetchActiveTrip(context.Background(), uuid.New())

			// "No assignment" is a valid state, never an error.
			assert.NoError(t, err)
			assert.Nil(t, trip)
		})
	}
}

func TestBackendGW_FetchActiveTrip_RetriesServerErrors(t *testing.T) {
	driverID := uuid.New()
	tripID := uuid.New()
	attempts := 0

	gw, _ := newTestGW(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(models.ActiveTripResponse{
			HasActiveTrip: true,
			ActiveTrip: &models.ActiveTrip{
				TripID:      tripID,
				ServiceType: models.ServiceTypeRide,
				Status:      models.TripStatusAccepted,
			},
		})
	}))

	trip, err := gw.FetchActiveTrip(context.Background(), driverID)

	require.NoError(t, err)
	require.NotNil(t, trip)
	assert.Equal(t, 2, attempts)
}

func TestBackendGW_SubmitTransition(t *testing.T) {
	driverID := uuid.New()
	tripID := uuid.New()
	fix := &models.GpsSnapshot{Latitude: -6.17, Longitude: 106.82, Accuracy: 6, Timestamp: time.Now()}

	var body map[string]interface{}
	gw, _ := newTestGW(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, fmt.Sprintf("/internal/v1/drivers/%s/trips/%s/status", driverID, tripID), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))

	err := gw.SubmitTransition(context.Background(), driverID, tripID, models.TransitionRequest{
		Status:             models.TripStatusCompleted,
		CompletionLocation: fix,
	})

	require.NoError(t, err)
	assert.Equal(t, "completed", body["status"])
	loc, ok := body["completionLocation"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, fix.Latitude, loc["lat"], 1e-9)
	assert.InDelta(t, fix.Longitude, loc["lng"], 1e-9)
}

func TestBackendGW_SubmitTransition_OmitsLocationWhenAbsent(t *testing.T) {
	var body map[string]interface{}
	gw, _ := newTestGW(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))

	err := gw.SubmitTransition(context.Background(), uuid.New(), uuid.New(), models.TransitionRequest{
		Status: models.TripStatusArrived,
	})

	require.NoError(t, err)
	assert.Equal(t, "arrived", body["status"])
	_, present := body["completionLocation"]
	assert.False(t, present, "absent evidence must be omitted, not null")
}

func TestBackendGW_SubmitTransition_SurfacesBackendError(t *testing.T) {
	gw, _ := newTestGW(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"trip already completed"}`))
	}))

	err := gw.SubmitTransition(context.Background(), uuid.New(), uuid.New(), models.TransitionRequest{
		Status: models.TripStatusCompleted,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trip already completed")
}

func TestBackendGW_PublishNavigationChoice(t *testing.T) {
	var body map[string]interface{}
	gw, _ := newTestGW(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/v1/telemetry/navigation", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusAccepted)
	}))

	event := &models.NavEvent{
		EventID:   uuid.New(),
		DriverID:  uuid.New(),
		TripID:    uuid.New(),
		App:       models.NavAppWaze,
		CreatedAt: time.Now(),
	}

	require.NoError(t, gw.PublishNavigationChoice(context.Background(), event))
	assert.Equal(t, "waze", body["app"])
}
