package models

import "time"

// Location represents a geographic coordinate
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// GpsSnapshot is the most recent device position held while a trip is
// active. It is last-write-wins: no history is retained, and it is read
// once as completion evidence when the driver confirms the terminal
// transition.
type GpsSnapshot struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}
