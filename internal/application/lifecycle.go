package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// Clock returns the current instant.
type Clock func() time.Time

// BookingController drives bookings through their lifecycle. Every
// operation validates locally first and then delegates to the store.
type BookingController struct {
	store   bookingDomain.Store
	pricing bookingDomain.PricingStrategy
	now     Clock
	logger  *zap.Logger
}

// NewBookingController creates a new BookingController.
func NewBookingController(
	store bookingDomain.Store,
	pricing bookingDomain.PricingStrategy,
	now Clock,
	logger *zap.Logger,
) *BookingController {
	if now == nil {
		now = time.Now
	}
	return &BookingController{
		store:   store,
		pricing: pricing,
		now:     now,
		logger:  logger,
	}
}

// Today returns the current UTC calendar date.
func (c *BookingController) Today() string {
	return bookingDomain.Today(c.now())
}

// Quote prices a stay in r for the given dates.
func (c *BookingController) Quote(r room.Room, dates bookingDomain.StayDates) (int64, int, error) {
	in, err := bookingDomain.ParseDate(dates.CheckIn)
	if err != nil {
		return 0, 0, domain.NewValidationError(err.Error())
	}
	out, err := bookingDomain.ParseDate(dates.CheckOut)
	if err != nil {
		return 0, 0, domain.NewValidationError(err.Error())
	}

	rate := c.pricing.PriceFor(r.Category)
	if rate == 0 {
		c.logger.Warn("no nightly rate for room category, pricing at zero",
			zap.Int64("room_id", r.ID),
			zap.String("category", r.Category),
		)
	}
	nights := bookingDomain.NightsBetween(in, out)
	return rate * int64(nights), nights, nil
}

// Create validates and books r for guestIDs. The first guest becomes the
// main guest. ActionCheckIn settles the guests immediately.
func (c *BookingController) Create(
	ctx context.Context,
	r room.Room,
	guestIDs []int64,
	dates bookingDomain.StayDates,
	action bookingDomain.Action,
) (bookingDomain.Booking, error) {
	name := ActionCreateBooking
	if action == bookingDomain.ActionCheckIn {
		name = ActionCheckInGuests
	}

	status, err := action.InitialStatus()
	if err != nil {
		return bookingDomain.Booking{}, actionErr(name, domain.NewValidationError(err.Error()))
	}
	if err := bookingDomain.Validate(dates, guestIDs, r, c.Today()).Err("invalid booking"); err != nil {
		return bookingDomain.Booking{}, actionErr(name, err)
	}
	price, _, err := c.Quote(r, dates)
	if err != nil {
		return bookingDomain.Booking{}, actionErr(name, err)
	}

	created, err := c.store.CreateBooking(ctx, bookingDomain.NewBooking{
		RoomID:       r.ID,
		MainGuestID:  guestIDs[0],
		GuestIDs:     guestIDs,
		CheckInDate:  dates.CheckIn,
		CheckOutDate: dates.CheckOut,
		Status:       status,
		Price:        &price,
	})
	if err != nil {
		return bookingDomain.Booking{}, actionErr(name, err)
	}

	c.logger.Info("booking created",
		zap.Int64("booking_id", created.ID),
		zap.Int64("room_id", r.ID),
		zap.String("status", string(status)),
		zap.Int64("price", price),
	)
	return created, nil
}

// Edit re-validates and re-prices an existing booking, keeping its status.
func (c *BookingController) Edit(
	ctx context.Context,
	r room.Room,
	b bookingDomain.Booking,
	guestIDs []int64,
	dates bookingDomain.StayDates,
) (bookingDomain.Booking, error) {
	if !b.IsActive() {
		return bookingDomain.Booking{}, actionErr(ActionEditBooking,
			domain.NewInvalidStateError(string(b.Status), "edited"))
	}
	if err := bookingDomain.Validate(dates, guestIDs, r, c.Today()).Err("invalid booking"); err != nil {
		return bookingDomain.Booking{}, actionErr(ActionEditBooking, err)
	}
	price, _, err := c.Quote(r, dates)
	if err != nil {
		return bookingDomain.Booking{}, actionErr(ActionEditBooking, err)
	}

	patch := bookingDomain.Patch{
		RoomID:       &r.ID,
		MainGuestID:  &guestIDs[0],
		GuestIDs:     guestIDs,
		CheckInDate:  &dates.CheckIn,
		CheckOutDate: &dates.CheckOut,
		Price:        &price,
	}
	updated, err := c.store.UpdateBooking(ctx, b.ID, patch)
	if err != nil {
		return bookingDomain.Booking{}, actionErr(ActionEditBooking, err)
	}

	c.logger.Info("booking edited", zap.Int64("booking_id", b.ID), zap.Int64("price", price))
	return updated, nil
}

// Update sends a partial update as is.
func (c *BookingController) Update(ctx context.Context, id int64, patch bookingDomain.Patch) (bookingDomain.Booking, error) {
	if patch.IsEmpty() {
		return bookingDomain.Booking{}, actionErr(ActionUpdateBooking, domain.NewValidationError("nothing to update"))
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return bookingDomain.Booking{}, actionErr(ActionUpdateBooking,
			domain.NewValidationError(fmt.Sprintf("invalid booking status: %s", *patch.Status)))
	}
	updated, err := c.store.UpdateBooking(ctx, id, patch)
	if err != nil {
		return bookingDomain.Booking{}, actionErr(ActionUpdateBooking, err)
	}
	return updated, nil
}

// CheckIn settles the guests of a confirmed booking.
func (c *BookingController) CheckIn(ctx context.Context, b bookingDomain.Booking) (bookingDomain.Booking, error) {
	return c.transition(ctx, ActionCheckIn, b, bookingDomain.StatusCheckedIn)
}

// CheckOut releases the room of a checked-in booking. The record is kept.
func (c *BookingController) CheckOut(ctx context.Context, b bookingDomain.Booking) (bookingDomain.Booking, error) {
	return c.transition(ctx, ActionCheckOut, b, bookingDomain.StatusCheckedOut)
}

func (c *BookingController) transition(
	ctx context.Context,
	action string,
	b bookingDomain.Booking,
	target bookingDomain.BookingStatus,
) (bookingDomain.Booking, error) {
	if !b.Status.CanTransitionTo(target) {
		return bookingDomain.Booking{}, actionErr(action,
			domain.NewInvalidStateError(string(b.Status), string(target)))
	}

	updated, err := c.store.UpdateBooking(ctx, b.ID, bookingDomain.StatusPatch(target))
	if err != nil {
		return bookingDomain.Booking{}, actionErr(action, err)
	}

	c.logger.Info("booking status changed",
		zap.Int64("booking_id", b.ID),
		zap.String("from", string(b.Status)),
		zap.String("to", string(target)),
	)
	return updated, nil
}

// Cancel deletes a booking that has not been checked out.
func (c *BookingController) Cancel(ctx context.Context, b bookingDomain.Booking) error {
	if !b.Status.CanBeCancelled() {
		return actionErr(ActionCancel, domain.NewInvalidStateError(string(b.Status), "cancelled"))
	}
	if err := c.store.DeleteBooking(ctx, b.ID); err != nil {
		return actionErr(ActionCancel, err)
	}
	c.logger.Info("booking cancelled", zap.Int64("booking_id", b.ID))
	return nil
}
