package models

import (
	"time"

	"github.com/google/uuid"
)

// NavApp identifies a navigation application the driver can hand off to.
type NavApp string

const (
	NavAppInApp      NavApp = "in_app"
	NavAppGoogleMaps NavApp = "google_maps"
	NavAppWaze       NavApp = "waze"
	NavAppAppleMaps  NavApp = "apple_maps"
)

// Valid reports whether the value is one of the known navigation apps.
func (a NavApp) Valid() bool {
	switch a {
	case NavAppInApp, NavAppGoogleMaps, NavAppWaze, NavAppAppleMaps:
		return true
	}
	return false
}

// NavPreference is the driver's preferred navigation app, used only to
// choose the default highlight in the navigation menu.
type NavPreference struct {
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	App       NavApp    `json:"app" db:"app"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NavEvent records which navigation app a driver chose for a trip.
// Non-critical telemetry: write failures are swallowed.
type NavEvent struct {
	EventID   uuid.UUID `json:"event_id" db:"event_id"`
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	TripID    uuid.UUID `json:"trip_id" db:"trip_id"`
	App       NavApp    `json:"app" db:"app"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
