package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType classifies the kind of assignment a driver can hold.
type ServiceType string

const (
	ServiceTypeRide   ServiceType = "RIDE"
	ServiceTypeFood   ServiceType = "FOOD"
	ServiceTypeParcel ServiceType = "PARCEL"
)

// TripStatus represents the canonical status of an active trip
type TripStatus string

const (
	TripStatusAccepted  TripStatus = "accepted"
	TripStatusArriving  TripStatus = "arriving"
	TripStatusArrived   TripStatus = "arrived"
	TripStatusStarted   TripStatus = "started"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// IsTerminal reports whether no further transitions apply to the status.
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// NormalizeTripStatus maps backend status synonyms onto the canonical set.
// FOOD and PARCEL trips report "picked_up" for the arriving leg and
// "in_transit"/"in_progress" for the started leg; everything else passes
// through unchanged so unknown values degrade to "no action" downstream.
func NormalizeTripStatus(raw string) TripStatus {
	switch raw {
	case "picked_up":
		return TripStatusArriving
	case "in_transit", "in_progress":
		return TripStatusStarted
	default:
		return TripStatus(raw)
	}
}

// PaymentMethod identifies how the customer pays for the trip.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// GeoPoint is a trip waypoint with an optional human-readable address.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// ActiveTrip is the single assignment currently held by a driver. It is
// only ever observed through the backend; the service never constructs one
// locally and never mutates one except by acknowledged status transitions.
type ActiveTrip struct {
	TripID           uuid.UUID     `json:"trip_id"`
	TripCode         string        `json:"trip_code"`
	ServiceType      ServiceType   `json:"service_type"`
	RideSubtype      string        `json:"ride_subtype,omitempty"`
	Status           TripStatus    `json:"status"`
	Pickup           *GeoPoint     `json:"pickup,omitempty"`
	Dropoff          *GeoPoint     `json:"dropoff,omitempty"`
	DriverPoint      *Location     `json:"driver_point,omitempty"`
	PickupETAMinutes int           `json:"pickup_eta_minutes"`
	TripETAMinutes   int           `json:"trip_eta_minutes"`
	CreatedAt        time.Time     `json:"created_at"`
	FareAmount       float64       `json:"fare_amount"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	CustomerName     string        `json:"customer_name"`
	CustomerPhone    string        `json:"customer_phone,omitempty"`
	CustomerRating   *float64      `json:"customer_rating,omitempty"`
	RestaurantName   string        `json:"restaurant_name,omitempty"`
}

// ActiveTripResponse is the backend payload for the polled active-trip read.
type ActiveTripResponse struct {
	ActiveTrip    *ActiveTrip `json:"activeTrip"`
	HasActiveTrip bool        `json:"hasActiveTrip"`
}

// TripAction is the single next action derivable from (service type, status).
type TripAction struct {
	Label         string     `json:"label"`
	NextStatus    TripStatus `json:"next_status"`
	RequiresSwipe bool       `json:"requires_swipe"`
}

// TransitionRequest is the payload submitted to the status transition
// endpoint. CompletionLocation is attached only for the completed status
// and only when a GPS snapshot is held.
type TransitionRequest struct {
	Status             TripStatus   `json:"status"`
	CompletionLocation *GpsSnapshot `json:"completionLocation,omitempty"`
}

// SwipeState mirrors the gesture confirmer state for the device UI.
type SwipeState struct {
	Progress   float64 `json:"progress"`
	Committing bool    `json:"committing"`
	Locked     bool    `json:"locked"`
}

// CompletionPrompt describes the pending terminal-transition confirmation.
type CompletionPrompt struct {
	Summary  string   `json:"summary"`
	Warnings []string `json:"warnings,omitempty"`
}

// SessionSnapshot is the view of an active-trip session served to the
// device UI on every read.
type SessionSnapshot struct {
	Trip                *ActiveTrip       `json:"trip,omitempty"`
	HasActiveTrip       bool              `json:"has_active_trip"`
	NextAction          *TripAction       `json:"next_action,omitempty"`
	WaitSeconds         int               `json:"wait_seconds"`
	Swipe               SwipeState        `json:"swipe"`
	PendingConfirmation *CompletionPrompt `json:"pending_confirmation,omitempty"`
	Feedback            []FeedbackEvent   `json:"feedback,omitempty"`
}
