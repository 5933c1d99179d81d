package trip

import (
	"context"
	"time"

	"github.com/wibowo/kurir/internal/pkg/models"
)

// Device capabilities are modeled as injectable ports so the session
// engine can be exercised without a real device, and so platforms lacking
// a capability degrade to a no-op rather than scattering branches through
// the core.

// WatchOptions tunes a location subscription.
type WatchOptions struct {
	HighAccuracy bool
	MaxFixAge    time.Duration
	Timeout      time.Duration
}

// LocationSource provides a continuous stream of device GPS fixes. Watch
// returns an error when the subscription cannot be established (permission
// denied, no provider); the channel is closed when the source ends.
type LocationSource interface {
	Watch(ctx context.Context, opts WatchOptions) (<-chan models.GpsSnapshot, error)
}

// HapticStrength grades a haptic pulse.
type HapticStrength string

const (
	HapticLight  HapticStrength = "light"
	HapticMedium HapticStrength = "medium"
	HapticHeavy  HapticStrength = "heavy"
)

// Haptics delivers vibration feedback to the device.
type Haptics interface {
	Pulse(strength HapticStrength)
}

// Notifier surfaces short human-readable confirmations and errors.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator moves the device UI off the trip screen once a terminal
// transition has settled.
type Navigator interface {
	LeaveTripScreen()
}

// ConfirmPrompt interposes an explicit user confirmation before the
// terminal transition is submitted.
type ConfirmPrompt interface {
	Confirm(ctx context.Context, prompt models.CompletionPrompt) (bool, error)
}

// Ports bundles the device capabilities bound to one session.
type Ports struct {
	Source    LocationSource
	Haptics   Haptics
	Notifier  Notifier
	Navigator Navigator
	Prompt    ConfirmPrompt
}

// No-op implementations for platforms lacking a capability.

// NoopHaptics ignores all pulses.
type NoopHaptics struct{}

func (NoopHaptics) Pulse(HapticStrength) {}

// NoopNotifier drops all messages.
type NoopNotifier struct{}

func (NoopNotifier) Success(string) {}
func (NoopNotifier) Error(string)   {}

// NoopNavigator ignores navigation requests.
type NoopNavigator struct{}

func (NoopNavigator) LeaveTripScreen() {}

// AutoConfirm answers every confirmation without user involvement.
type AutoConfirm struct {
	Accept bool
}

func (a AutoConfirm) Confirm(context.Context, models.CompletionPrompt) (bool, error) {
	return a.Accept, nil
}
