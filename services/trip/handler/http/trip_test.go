package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/services/trip"
	"github.com/wibowo/kurir/services/trip/mocks"
)

func newTestContext(t *testing.T, method, target, body string, driverID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("driver_id", driverID)
	return c, rec
}

func TestTripHandler_GetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tripID := uuid.New()

	uc := mocks.NewMockTripUC(ctrl)
	uc.EXPECT().
		SessionSnapshot(gomock.Any(), driverID).
		Return(&models.SessionSnapshot{
			Trip:          &models.ActiveTrip{TripID: tripID, Status: models.TripStatusAccepted},
			HasActiveTrip: true,
		}, nil)

	h := NewTripHandler(uc)
	c, rec := newTestContext(t, http.MethodGet, "/v1/trip/active", "", driverID)

	require.NoError(t, h.GetActive(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    models.SessionSnapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.HasActiveTrip)
	assert.Equal(t, tripID, resp.Data.Trip.TripID)
}

func TestTripHandler_GetActive_MountsSessionOnDemand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()

	uc := mocks.NewMockTripUC(ctrl)
	gomock.InOrder(
		uc.EXPECT().SessionSnapshot(gomock.Any(), driverID).Return(nil, trip.ErrNoSession),
		uc.EXPECT().StartSession(gomock.Any(), driverID).Return(nil),
		uc.EXPECT().SessionSnapshot(gomock.Any(), driverID).Return(&models.SessionSnapshot{}, nil),
	)

	h := NewTripHandler(uc)
	c, rec := newTestContext(t, http.MethodGet, "/v1/trip/active", "", driverID)

	require.NoError(t, h.GetActive(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTripHandler_Advance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tripID := uuid.New()

	tests := []struct {
		name     string
		ucErr    error
		wantCode int
	}{
		{"accepted", nil, http.StatusOK},
		{"no next action", trip.ErrNoNextAction, http.StatusBadRequest},
		{"swipe required", trip.ErrSwipeRequired, http.StatusBadRequest},
		{"trip mismatch", trip.ErrTripMismatch, http.StatusConflict},
		{"submission in flight", trip.ErrSubmissionInFlight, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mocks.NewMockTripUC(ctrl)
			uc.EXPECT().Advance(gomock.Any(), driverID, tripID).Return(tt.ucErr)

			h := NewTripHandler(uc)
			c, rec := newTestContext(t, http.MethodPost, "/v1/trip/"+tripID.String()+"/advance", "", driverID)
			c.SetParamNames("id")
			c.SetParamValues(tripID.String())

			require.NoError(t, h.Advance(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestTripHandler_Advance_InvalidTripID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTripHandler(mocks.NewMockTripUC(ctrl))
	c, rec := newTestContext(t, http.MethodPost, "/v1/trip/not-a-uuid/advance", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Advance(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTripHandler_Swipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tripID := uuid.New()

	t.Run("progress event", func(t *testing.T) {
		uc := mocks.NewMockTripUC(ctrl)
		uc.EXPECT().
			SwipeProgress(gomock.Any(), driverID, tripID, 0.4).
			Return(models.SwipeState{Progress: 0.4}, nil)

		h := NewTripHandler(uc)
		c, rec := newTestContext(t, http.MethodPost, "/v1/trip/"+tripID.String()+"/swipe",
			`{"progress":0.4}`, driverID)
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())

		require.NoError(t, h.Swipe(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("release event", func(t *testing.T) {
		uc := mocks.NewMockTripUC(ctrl)
		uc.EXPECT().
			SwipeRelease(gomock.Any(), driverID, tripID, 0.9).
			Return(models.SwipeState{Progress: 1, Committing: true, Locked: true}, nil)

		h := NewTripHandler(uc)
		c, rec := newTestContext(t, http.MethodPost, "/v1/trip/"+tripID.String()+"/swipe",
			`{"progress":0.9,"released":true}`, driverID)
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())

		require.NoError(t, h.Swipe(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data models.SwipeState `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Data.Committing)
	})
}

func TestTripHandler_ConfirmCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tripID := uuid.New()

	uc := mocks.NewMockTripUC(ctrl)
	uc.EXPECT().
		ResolveCompletion(gomock.Any(), driverID, tripID, true).
		Return(nil)

	h := NewTripHandler(uc)
	c, rec := newTestContext(t, http.MethodPost, "/v1/trip/"+tripID.String()+"/complete/confirm",
		`{"accepted":true}`, driverID)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	require.NoError(t, h.ConfirmCompletion(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTripHandler_PushLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()

	t.Run("valid fix", func(t *testing.T) {
		uc := mocks.NewMockTripUC(ctrl)
		uc.EXPECT().
			PushLocation(gomock.Any(), driverID, gomock.Any()).
			Return(nil)

		h := NewTripHandler(uc)
		c, rec := newTestContext(t, http.MethodPost, "/v1/trip/location",
			`{"lat":-6.2,"lng":106.8,"accuracy":8}`, driverID)

		require.NoError(t, h.PushLocation(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		h := NewTripHandler(mocks.NewMockTripUC(ctrl))
		c, rec := newTestContext(t, http.MethodPost, "/v1/trip/location",
			`{"lat":-96.2,"lng":106.8}`, driverID)

		require.NoError(t, h.PushLocation(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTripHandler_NavigationPreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()

	t.Run("get", func(t *testing.T) {
		uc := mocks.NewMockTripUC(ctrl)
		uc.EXPECT().
			NavigationPreference(gomock.Any(), driverID).
			Return(&models.NavPreference{DriverID: driverID, App: models.NavAppWaze}, nil)

		h := NewTripHandler(uc)
		c, rec := newTestContext(t, http.MethodGet, "/v1/preferences/navigation", "", driverID)

		require.NoError(t, h.GetNavigationPreference(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data models.NavPreference `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, models.NavAppWaze, resp.Data.App)
	})

	t.Run("update", func(t *testing.T) {
		uc := mocks.NewMockTripUC(ctrl)
		uc.EXPECT().
			UpdateNavigationPreference(gomock.Any(), driverID, models.NavAppGoogleMaps).
			Return(nil)

		h := NewTripHandler(uc)
		c, rec := newTestContext(t, http.MethodPut, "/v1/preferences/navigation",
			`{"app":"google_maps"}`, driverID)

		require.NoError(t, h.UpdateNavigationPreference(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update rejects unknown app", func(t *testing.T) {
		uc := mocks.NewMockTripUC(ctrl)
		uc.EXPECT().
			UpdateNavigationPreference(gomock.Any(), driverID, models.NavApp("here_maps")).
			Return(trip.ErrInvalidNavApp)

		h := NewTripHandler(uc)
		c, rec := newTestContext(t, http.MethodPut, "/v1/preferences/navigation",
			`{"app":"here_maps"}`, driverID)

		require.NoError(t, h.UpdateNavigationPreference(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("telemetry", func(t *testing.T) {
		tripID := uuid.New()
		uc := mocks.NewMockTripUC(ctrl)
		uc.EXPECT().
			RecordNavigationChoice(gomock.Any(), driverID, tripID, models.NavAppWaze).
			Return(nil)

		h := NewTripHandler(uc)
		c, rec := newTestContext(t, http.MethodPost, "/v1/telemetry/navigation",
			`{"trip_id":"`+tripID.String()+`","app":"waze"}`, driverID)

		require.NoError(t, h.RecordNavigationChoice(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTripHandler_MissingAuthContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTripHandler(mocks.NewMockTripUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/trip/active", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetActive(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
