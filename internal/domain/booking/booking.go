package booking

import (
	"fmt"
	"time"
)

// Booking is a stay of one or more guests in one room.
type Booking struct {
	ID           int64         `json:"id"`
	RoomID       int64         `json:"room_id"`
	MainGuestID  int64         `json:"main_guest_id"`
	GuestIDs     []int64       `json:"guest_ids,omitempty"`
	CheckInDate  string        `json:"check_in_date"`
	CheckOutDate string        `json:"check_out_date"`
	Status       BookingStatus `json:"status"`
	Price        int64         `json:"price"`
}

// IsActive reports whether the booking still holds its room.
func (b Booking) IsActive() bool {
	return b.Status.IsActive()
}

// Occupants returns the guests staying under this booking. When the guest
// list was never recorded the main guest stands in for it.
func (b Booking) Occupants() []int64 {
	if b.GuestIDs == nil {
		return []int64{b.MainGuestID}
	}
	return b.GuestIDs
}

// NewBooking is the body of a create request sent to the store.
type NewBooking struct {
	RoomID       int64         `json:"room_id" binding:"required,gt=0"`
	MainGuestID  int64         `json:"main_guest_id" binding:"required,gt=0"`
	GuestIDs     []int64       `json:"guest_ids,omitempty"`
	CheckInDate  string        `json:"check_in_date" binding:"required,isodate"`
	CheckOutDate string        `json:"check_out_date" binding:"required,isodate"`
	Status       BookingStatus `json:"status"`
	Price        *int64        `json:"price,omitempty"`
}

// Patch carries the fields of an update. Nil fields are left unchanged,
// so a status transition sends nothing but the status.
type Patch struct {
	RoomID       *int64         `json:"room_id,omitempty"`
	MainGuestID  *int64         `json:"main_guest_id,omitempty"`
	GuestIDs     []int64        `json:"guest_ids,omitempty"`
	CheckInDate  *string        `json:"check_in_date,omitempty"`
	CheckOutDate *string        `json:"check_out_date,omitempty"`
	Status       *BookingStatus `json:"status,omitempty"`
	Price        *int64         `json:"price,omitempty"`
}

// StatusPatch builds a patch that changes only the status.
func StatusPatch(status BookingStatus) Patch {
	return Patch{Status: &status}
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.RoomID == nil && p.MainGuestID == nil && p.GuestIDs == nil &&
		p.CheckInDate == nil && p.CheckOutDate == nil && p.Status == nil && p.Price == nil
}

// Apply returns b with the patch applied.
func (p Patch) Apply(b Booking) Booking {
	if p.RoomID != nil {
		b.RoomID = *p.RoomID
	}
	if p.MainGuestID != nil {
		b.MainGuestID = *p.MainGuestID
	}
	if p.GuestIDs != nil {
		b.GuestIDs = p.GuestIDs
	}
	if p.CheckInDate != nil {
		b.CheckInDate = *p.CheckInDate
	}
	if p.CheckOutDate != nil {
		b.CheckOutDate = *p.CheckOutDate
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	return b
}

// FindByID returns the booking with the given id.
func FindByID(bookings []Booking, id int64) (Booking, bool) {
	for _, b := range bookings {
		if b.ID == id {
			return b, true
		}
	}
	return Booking{}, false
}

// ParseDate parses an ISO calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// NormalizeDate strips any time-of-day from an ISO date or RFC 3339 timestamp
// and returns the UTC calendar date.
func NormalizeDate(s string) (string, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format(time.DateOnly), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q", s)
	}
	return t.UTC().Format(time.DateOnly), nil
}

// Today returns the UTC calendar date of now.
func Today(now time.Time) string {
	return now.UTC().Format(time.DateOnly)
}
