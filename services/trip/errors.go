package trip

import "errors"

var (
	// ErrNoSession is returned when no trip session is mounted for the driver.
	ErrNoSession = errors.New("no active trip session for driver")

	// ErrNoActiveTrip is returned when the driver holds no assignment.
	ErrNoActiveTrip = errors.New("no active trip")

	// ErrTripMismatch is returned when a request names a trip other than
	// the one the session currently holds.
	ErrTripMismatch = errors.New("trip id does not match the active trip")

	// ErrNoNextAction is returned when the current status is terminal or
	// unrecognized and no further transition applies.
	ErrNoNextAction = errors.New("no further action for current trip status")

	// ErrSwipeRequired is returned when the terminal transition is
	// attempted through the plain button path.
	ErrSwipeRequired = errors.New("transition requires the swipe gesture")

	// ErrSwipeNotApplicable is returned when swipe input arrives at a
	// stage whose transition is a plain button press.
	ErrSwipeNotApplicable = errors.New("current transition does not use the swipe gesture")

	// ErrSubmissionInFlight guards against duplicate status submissions.
	ErrSubmissionInFlight = errors.New("a status submission is already in flight")

	// ErrConfirmationPending is returned when a second completion
	// confirmation is requested before the first resolves.
	ErrConfirmationPending = errors.New("a completion confirmation is already pending")

	// ErrNoPendingConfirmation is returned when a confirmation answer
	// arrives with nothing awaiting one.
	ErrNoPendingConfirmation = errors.New("no completion confirmation is pending")

	// ErrInvalidNavApp is returned for navigation apps outside the known set.
	ErrInvalidNavApp = errors.New("unknown navigation app")
)
