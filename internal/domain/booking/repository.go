package booking

import "context"

// Store defines the persistence contract for bookings as seen by the front desk.
type Store interface {
	// ListBookings retrieves every booking.
	ListBookings(ctx context.Context) ([]Booking, error)

	// CreateBooking persists a new booking and returns it with its id.
	CreateBooking(ctx context.Context, b NewBooking) (Booking, error)

	// UpdateBooking applies a partial update.
	UpdateBooking(ctx context.Context, id int64, patch Patch) (Booking, error)

	// DeleteBooking removes a booking.
	DeleteBooking(ctx context.Context, id int64) error
}
