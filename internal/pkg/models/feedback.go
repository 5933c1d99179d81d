package models

import "time"

// FeedbackKind categorizes a device feedback event.
type FeedbackKind string

const (
	FeedbackKindHaptic   FeedbackKind = "haptic"
	FeedbackKindNotice   FeedbackKind = "notice"
	FeedbackKindError    FeedbackKind = "error"
	FeedbackKindNavigate FeedbackKind = "navigate"
)

// FeedbackEvent is a queued cue for the device UI: a haptic pulse, a
// toast message, or an instruction to leave the trip screen. Events are
// drained on the next session read.
type FeedbackEvent struct {
	Kind     FeedbackKind `json:"kind"`
	Strength string       `json:"strength,omitempty"`
	Message  string       `json:"message,omitempty"`
	At       time.Time    `json:"at"`
}
