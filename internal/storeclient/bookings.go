package storeclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
)

// ListBookings returns every booking.
func (c *Client) ListBookings(ctx context.Context) ([]booking.Booking, error) {
	var out []booking.Booking
	if err := c.do(ctx, "load bookings", http.MethodGet, "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking posts a new booking. Dates are sent as plain calendar dates.
func (c *Client) CreateBooking(ctx context.Context, nb booking.NewBooking) (booking.Booking, error) {
	var err error
	if nb.CheckInDate, err = booking.NormalizeDate(nb.CheckInDate); err != nil {
		return booking.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	if nb.CheckOutDate, err = booking.NormalizeDate(nb.CheckOutDate); err != nil {
		return booking.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	var out booking.Booking
	err = c.do(ctx, "create booking", http.MethodPost, "/bookings", nb, &out)
	return out, err
}

// UpdateBooking sends only the fields set in patch.
func (c *Client) UpdateBooking(ctx context.Context, id int64, patch booking.Patch) (booking.Booking, error) {
	var err error
	if patch.CheckInDate, err = normalizePtr(patch.CheckInDate); err != nil {
		return booking.Booking{}, fmt.Errorf("failed to update booking: %w", err)
	}
	if patch.CheckOutDate, err = normalizePtr(patch.CheckOutDate); err != nil {
		return booking.Booking{}, fmt.Errorf("failed to update booking: %w", err)
	}

	var out booking.Booking
	err = c.do(ctx, "update booking", http.MethodPut, fmt.Sprintf("/bookings/%d", id), patch, &out)
	return out, err
}

// DeleteBooking removes a booking.
func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	return c.do(ctx, "delete booking", http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil)
}

func normalizePtr(d *string) (*string, error) {
	if d == nil {
		return nil, nil
	}
	norm, err := booking.NormalizeDate(*d)
	if err != nil {
		return nil, err
	}
	return &norm, nil
}
