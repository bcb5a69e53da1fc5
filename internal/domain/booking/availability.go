package booking

import (
	"fmt"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// UnknownGuestName stands in for guest ids missing from the guest list.
const UnknownGuestName = "Unknown guest"

// Availability is the display status of a room.
type Availability string

const (
	Available Availability = "available"
	Booked    Availability = "booked"
	Occupied  Availability = "occupied"
)

// RoomStatus is the resolved state of one room.
type RoomStatus struct {
	Room        room.Room    `json:"room"`
	Status      Availability `json:"status"`
	Booking     *Booking     `json:"booking,omitempty"`
	GuestNames  []string     `json:"guest_names,omitempty"`
	Conflicting []int64      `json:"conflicting,omitempty"`
}

// StatusOf resolves a room against the booking list. The first active
// booking for the room wins; later active ones are listed as conflicting.
func StatusOf(r room.Room, bookings []Booking, guests []guest.Guest) RoomStatus {
	return statusOf(r, bookings, guest.NameIndex(guests))
}

func statusOf(r room.Room, bookings []Booking, names map[int64]string) RoomStatus {
	rs := RoomStatus{Room: r, Status: Available}
	for i := range bookings {
		b := bookings[i]
		if b.RoomID != r.ID || !b.IsActive() {
			continue
		}
		if rs.Booking != nil {
			rs.Conflicting = append(rs.Conflicting, b.ID)
			continue
		}
		rs.Booking = &b
		if b.Status == StatusConfirmed {
			rs.Status = Booked
		} else {
			rs.Status = Occupied
		}
		rs.GuestNames = resolveNames(b.Occupants(), names)
	}
	return rs
}

func resolveNames(ids []int64, names map[int64]string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			name = UnknownGuestName
		}
		out = append(out, name)
	}
	return out
}

// Board resolves every room in order.
func Board(rooms []room.Room, bookings []Booking, guests []guest.Guest) []RoomStatus {
	names := guest.NameIndex(guests)
	out := make([]RoomStatus, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, statusOf(r, bookings, names))
	}
	return out
}

// CheckSingleActive returns a conflict error when a room holds more than one active booking.
func CheckSingleActive(roomID int64, bookings []Booking) error {
	var ids []int64
	for _, b := range bookings {
		if b.RoomID == roomID && b.IsActive() {
			ids = append(ids, b.ID)
		}
	}
	if len(ids) > 1 {
		return domain.NewConflictError(fmt.Sprintf("room %d has %d active bookings: %v", roomID, len(ids), ids))
	}
	return nil
}
