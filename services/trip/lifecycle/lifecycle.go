// Package lifecycle holds the trip status machine: the single next action
// for every (service type, status) pair, and the copy shown to the driver
// when a transition is acknowledged.
package lifecycle

import "github.com/wibowo/kurir/internal/pkg/models"

type stageKey struct {
	service models.ServiceType
	status  models.TripStatus
}

// The forward path is identical across service types; only the labels and
// the canonical status names differ per vertical. The terminal transition
// always requires the swipe gesture.
var actions = map[stageKey]models.TripAction{
	{models.ServiceTypeRide, models.TripStatusAccepted}: {Label: "I'm On My Way", NextStatus: models.TripStatusArriving},
	{models.ServiceTypeRide, models.TripStatusArriving}: {Label: "I've Arrived", NextStatus: models.TripStatusArrived},
	{models.ServiceTypeRide, models.TripStatusArrived}:  {Label: "Start Trip", NextStatus: models.TripStatusStarted},
	{models.ServiceTypeRide, models.TripStatusStarted}:  {Label: "Complete Trip", NextStatus: models.TripStatusCompleted, RequiresSwipe: true},

	{models.ServiceTypeFood, models.TripStatusAccepted}: {Label: "I'm On My Way", NextStatus: models.TripStatusArriving},
	{models.ServiceTypeFood, models.TripStatusArriving}: {Label: "Picked Up Order", NextStatus: models.TripStatusArrived},
	{models.ServiceTypeFood, models.TripStatusArrived}:  {Label: "Start Delivery", NextStatus: models.TripStatusStarted},
	{models.ServiceTypeFood, models.TripStatusStarted}:  {Label: "Complete Delivery", NextStatus: models.TripStatusCompleted, RequiresSwipe: true},

	{models.ServiceTypeParcel, models.TripStatusAccepted}: {Label: "I'm On My Way", NextStatus: models.TripStatusArriving},
	{models.ServiceTypeParcel, models.TripStatusArriving}: {Label: "Picked Up Parcel", NextStatus: models.TripStatusArrived},
	{models.ServiceTypeParcel, models.TripStatusArrived}:  {Label: "Start Delivery", NextStatus: models.TripStatusStarted},
	{models.ServiceTypeParcel, models.TripStatusStarted}:  {Label: "Complete Delivery", NextStatus: models.TripStatusCompleted, RequiresSwipe: true},
}

// NextAction returns the single action available for the trip's current
// stage. Terminal and unrecognized statuses yield no action; callers must
// treat the false return as "render nothing", never as an error.
func NextAction(service models.ServiceType, status models.TripStatus) (models.TripAction, bool) {
	action, ok := actions[stageKey{service, status}]
	return action, ok
}

var transitionMessages = map[models.TripStatus]string{
	models.TripStatusArriving:  "Heading to pickup",
	models.TripStatusArrived:   "Arrived at pickup location",
	models.TripStatusStarted:   "Trip started",
	models.TripStatusCompleted: "Trip completed! Earnings added.",
}

// TransitionMessage returns the confirmation copy shown after the given
// status has been acknowledged by the backend.
func TransitionMessage(status models.TripStatus) string {
	if msg, ok := transitionMessages[status]; ok {
		return msg
	}
	return "Status updated"
}
