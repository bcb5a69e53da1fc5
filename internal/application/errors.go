package application

import "fmt"

// Action names reported to the operator when a request fails.
const (
	ActionLoad          = "load data"
	ActionCreateBooking = "create booking"
	ActionCheckInGuests = "check in guests"
	ActionEditBooking   = "edit booking"
	ActionUpdateBooking = "update booking"
	ActionCheckIn       = "check in"
	ActionCheckOut      = "check out"
	ActionCancel        = "cancel booking"
	ActionCreateGuest   = "create guest"
	ActionUpdateGuest   = "update guest"
	ActionDeleteGuest   = "delete guest"
	ActionCreateRoom    = "create room"
	ActionUpdateRoom    = "update room"
	ActionDeleteRoom    = "delete room"
)

// ActionError names the operator action that failed. Err keeps the
// underlying message untouched.
type ActionError struct {
	Action string
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Action, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// ActionName returns the failed action.
func (e *ActionError) ActionName() string { return e.Action }

func actionErr(action string, err error) error {
	if err == nil {
		return nil
	}
	return &ActionError{Action: action, Err: err}
}
