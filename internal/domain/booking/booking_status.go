package booking

import "fmt"

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
)

// validTransitions defines the state machine for booking status transitions.
// Cancellation is not a status: a cancelled booking is deleted.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusConfirmed:  {StatusCheckedIn},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// IsActive reports whether a booking in this status holds its room.
func (s BookingStatus) IsActive() bool {
	return s != StatusCheckedOut
}

// CanBeCancelled returns true if a booking in this status may still be deleted.
func (s BookingStatus) CanBeCancelled() bool {
	return s.IsValid() && !s.IsTerminal()
}

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts a string to a BookingStatus, returning an error if invalid.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// Action is what the front desk asked for when creating a booking.
type Action string

const (
	// ActionBooking reserves the room for later arrival.
	ActionBooking Action = "booking"
	// ActionCheckIn settles walk-in guests immediately.
	ActionCheckIn Action = "checkin"
)

// InitialStatus returns the status a new booking starts in for this action.
func (a Action) InitialStatus() (BookingStatus, error) {
	switch a {
	case ActionBooking:
		return StatusConfirmed, nil
	case ActionCheckIn:
		return StatusCheckedIn, nil
	default:
		return "", fmt.Errorf("invalid booking action: %s", a)
	}
}
