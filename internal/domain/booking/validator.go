package booking

import (
	"fmt"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/field"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// StayDates is the requested stay as ISO calendar dates.
type StayDates struct {
	CheckIn  string `json:"check_in_date"`
	CheckOut string `json:"check_out_date"`
}

// Validate checks a booking request. Every rule is evaluated, so the result
// lists all failing fields at once. today is an ISO calendar date.
func Validate(dates StayDates, guestIDs []int64, r room.Room, today string) field.Errors {
	errs := field.Errors{}

	switch {
	case dates.CheckIn == "":
		errs.Add(field.CheckInDate, "check-in date is required")
	case dates.CheckIn < today:
		errs.Add(field.CheckInDate, "check-in date cannot be in the past")
	}

	switch {
	case dates.CheckOut == "":
		errs.Add(field.CheckOutDate, "check-out date is required")
	case dates.CheckIn != "" && dates.CheckOut <= dates.CheckIn:
		errs.Add(field.CheckOutDate, "check-out date must be after check-in date")
	}

	switch {
	case len(guestIDs) == 0:
		errs.Add(field.Guests, "select at least one guest")
	case len(guestIDs) > r.Capacity:
		errs.Add(field.Guests, fmt.Sprintf("room capacity is %d guests", r.Capacity))
	}

	return errs
}
