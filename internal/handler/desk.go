package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotel-frontdesk/service-frontdesk/internal/application"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/response"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// Desk is the front-desk application state the handlers drive.
type Desk interface {
	Board(ctx context.Context) ([]application.BoardEntry, error)
	RateCard() map[string]int64
	Prices(ctx context.Context) ([]room.Price, error)
	Quote(ctx context.Context, roomID int64, dates bookingDomain.StayDates) (application.QuoteResult, error)

	ListGuests(ctx context.Context) ([]guest.Guest, error)
	CreateGuest(ctx context.Context, in guest.Input) (guest.Guest, error)
	UpdateGuest(ctx context.Context, id int64, in guest.Input) (guest.Guest, error)
	DeleteGuest(ctx context.Context, id int64) error

	ListRooms(ctx context.Context) ([]room.Room, error)
	CreateRoom(ctx context.Context, in room.Input) (room.Room, error)
	UpdateRoom(ctx context.Context, id int64, in room.Input) (room.Room, error)
	DeleteRoom(ctx context.Context, id int64) error

	ListBookings(ctx context.Context) ([]bookingDomain.Booking, error)
	CreateBooking(ctx context.Context, in application.BookingInput) (bookingDomain.Booking, error)
	EditBooking(ctx context.Context, id int64, in application.BookingInput) (bookingDomain.Booking, error)
	UpdateBooking(ctx context.Context, id int64, patch bookingDomain.Patch) (bookingDomain.Booking, error)
	CheckIn(ctx context.Context, id int64) (bookingDomain.Booking, error)
	CheckOut(ctx context.Context, id int64) (bookingDomain.Booking, error)
	CancelBooking(ctx context.Context, id int64) error
}

// parseID reads the :id path parameter, writing a 400 when it is not a positive integer.
func parseID(c *gin.Context, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+entity+" ID")
		return 0, false
	}
	return id, true
}
