package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTripStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want TripStatus
	}{
		{"picked_up", TripStatusArriving},
		{"in_transit", TripStatusStarted},
		{"in_progress", TripStatusStarted},
		{"accepted", TripStatusAccepted},
		{"arrived", TripStatusArrived},
		{"completed", TripStatusCompleted},
		{"something_new", TripStatus("something_new")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTripStatus(tt.raw))
		})
	}
}

func TestTripStatusIsTerminal(t *testing.T) {
	assert.True(t, TripStatusCompleted.IsTerminal())
	assert.True(t, TripStatusCancelled.IsTerminal())
	assert.False(t, TripStatusAccepted.IsTerminal())
	assert.False(t, TripStatusStarted.IsTerminal())
	assert.False(t, TripStatus("unknown").IsTerminal())
}
