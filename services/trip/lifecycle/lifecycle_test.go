package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wibowo/kurir/internal/pkg/models"
)

func TestNextAction_RideForwardPath(t *testing.T) {
	tests := []struct {
		name       string
		status     models.TripStatus
		wantLabel  string
		wantNext   models.TripStatus
		wantSwipe  bool
		wantAction bool
	}{
		{
			name:       "accepted advances to arriving",
			status:     models.TripStatusAccepted,
			wantLabel:  "I'm On My Way",
			wantNext:   models.TripStatusArriving,
			wantAction: true,
		},
		{
			name:       "arriving advances to arrived",
			status:     models.TripStatusArriving,
			wantLabel:  "I've Arrived",
			wantNext:   models.TripStatusArrived,
			wantAction: true,
		},
		{
			name:       "arrived advances to started",
			status:     models.TripStatusArrived,
			wantLabel:  "Start Trip",
			wantNext:   models.TripStatusStarted,
			wantAction: true,
		},
		{
			name:       "started completes with swipe",
			status:     models.TripStatusStarted,
			wantLabel:  "Complete Trip",
			wantNext:   models.TripStatusCompleted,
			wantSwipe:  true,
			wantAction: true,
		},
		{
			name:   "completed is terminal",
			status: models.TripStatusCompleted,
		},
		{
			name:   "cancelled is terminal",
			status: models.TripStatusCancelled,
		},
		{
			name:   "unknown status yields no action",
			status: models.TripStatus("driver_abducted"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			action, ok := NextAction(models.ServiceTypeRide, tt.status)

			// Assert
			assert.Equal(t, tt.wantAction, ok)
			if tt.wantAction {
				assert.Equal(t, tt.wantLabel, action.Label)
				assert.Equal(t, tt.wantNext, action.NextStatus)
				assert.Equal(t, tt.wantSwipe, action.RequiresSwipe)
			}
		})
	}
}

func TestNextAction_DeliveryLabels(t *testing.T) {
	tests := []struct {
		name      string
		service   models.ServiceType
		status    models.TripStatus
		wantLabel string
	}{
		{"food pickup", models.ServiceTypeFood, models.TripStatusArriving, "Picked Up Order"},
		{"food start", models.ServiceTypeFood, models.TripStatusArrived, "Start Delivery"},
		{"food complete", models.ServiceTypeFood, models.TripStatusStarted, "Complete Delivery"},
		{"parcel pickup", models.ServiceTypeParcel, models.TripStatusArriving, "Picked Up Parcel"},
		{"parcel complete", models.ServiceTypeParcel, models.TripStatusStarted, "Complete Delivery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := NextAction(tt.service, tt.status)

			assert.True(t, ok)
			assert.Equal(t, tt.wantLabel, action.Label)
		})
	}
}

func TestNextAction_EveryStatusTotal(t *testing.T) {
	// Every (service, status) pair resolves to either an action or a clean
	// "no action": NextAction never panics, and terminal statuses never
	// produce an action for any vertical.
	services := []models.ServiceType{
		models.ServiceTypeRide,
		models.ServiceTypeFood,
		models.ServiceTypeParcel,
		models.ServiceType("HELICOPTER"),
	}
	statuses := []models.TripStatus{
		models.TripStatusAccepted,
		models.TripStatusArriving,
		models.TripStatusArrived,
		models.TripStatusStarted,
		models.TripStatusCompleted,
		models.TripStatusCancelled,
		models.TripStatus(""),
		models.TripStatus("mystery"),
	}

	for _, service := range services {
		for _, status := range statuses {
			action, ok := NextAction(service, status)
			if status.IsTerminal() {
				assert.False(t, ok, "terminal status %s must yield no action", status)
			}
			if ok {
				assert.NotEmpty(t, action.Label)
				assert.NotEqual(t, status, action.NextStatus, "actions must advance the status")
			}
		}
	}
}

func TestNextAction_SwipeOnlyOnTerminalTransition(t *testing.T) {
	for key, action := range actions {
		if action.NextStatus == models.TripStatusCompleted {
			assert.True(t, action.RequiresSwipe, "%v must require swipe", key)
		} else {
			assert.False(t, action.RequiresSwipe, "%v must not require swipe", key)
		}
	}
}

func TestTransitionMessage(t *testing.T) {
	assert.Equal(t, "Arrived at pickup location", TransitionMessage(models.TripStatusArrived))
	assert.Equal(t, "Trip completed! Earnings added.", TransitionMessage(models.TripStatusCompleted))
	assert.Equal(t, "Status updated", TransitionMessage(models.TripStatus("mystery")))
}
