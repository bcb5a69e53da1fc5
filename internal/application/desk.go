package application

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// Store is everything the desk needs from the data store.
type Store interface {
	guest.Store
	room.Store
	bookingDomain.Store
	ListPrices(ctx context.Context) ([]room.Price, error)
}

// Snapshot is the last loaded view of the data store.
type Snapshot struct {
	Rooms    []room.Room             `json:"rooms"`
	Guests   []guest.Guest           `json:"guests"`
	Bookings []bookingDomain.Booking `json:"bookings"`
	LoadedAt time.Time               `json:"loaded_at"`
}

// BoardEntry is one row of the room board.
type BoardEntry struct {
	bookingDomain.RoomStatus
	NightlyRate int64 `json:"nightly_rate"`
}

// QuoteResult is a price preview for a stay.
type QuoteResult struct {
	RoomID      int64  `json:"room_id"`
	Category    string `json:"category"`
	Nights      int    `json:"nights"`
	NightlyRate int64  `json:"nightly_rate"`
	Total       int64  `json:"total"`
}

// BookingInput is a create or edit request coming from the operator.
type BookingInput struct {
	RoomID       int64                `json:"room_id"`
	GuestIDs     []int64              `json:"guest_ids"`
	CheckInDate  string               `json:"check_in_date"`
	CheckOutDate string               `json:"check_out_date"`
	Action       bookingDomain.Action `json:"action"`
}

func (in BookingInput) dates() bookingDomain.StayDates {
	return bookingDomain.StayDates{CheckIn: in.CheckInDate, CheckOut: in.CheckOutDate}
}

// Desk holds the front-desk session state: the last snapshot of the store
// and the operations an operator performs on it. Operations are serialized,
// and every successful mutation is followed by a reload.
type Desk struct {
	mu         sync.Mutex
	snapshot   Snapshot
	store      Store
	controller *BookingController
	pricing    bookingDomain.PricingStrategy
	logger     *zap.Logger
}

// NewDesk creates a new Desk with an empty snapshot.
func NewDesk(store Store, controller *BookingController, pricing bookingDomain.PricingStrategy, logger *zap.Logger) *Desk {
	return &Desk{
		store:      store,
		controller: controller,
		pricing:    pricing,
		logger:     logger,
	}
}

// Load refreshes the snapshot from the store.
func (d *Desk) Load(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load(ctx)
}

// load issues the three list requests concurrently. On any failure the
// previous snapshot is kept.
func (d *Desk) load(ctx context.Context) error {
	var next Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rooms, err := d.store.ListRooms(gctx)
		next.Rooms = rooms
		return err
	})
	g.Go(func() error {
		guests, err := d.store.ListGuests(gctx)
		next.Guests = guests
		return err
	})
	g.Go(func() error {
		bookings, err := d.store.ListBookings(gctx)
		next.Bookings = bookings
		return err
	})
	if err := g.Wait(); err != nil {
		return actionErr(ActionLoad, err)
	}

	next.LoadedAt = time.Now().UTC()
	d.snapshot = next
	return nil
}

// reload refreshes after a successful mutation. The mutation has already
// happened, so a failed refresh is only logged.
func (d *Desk) reload(ctx context.Context, action string) {
	if err := d.load(ctx); err != nil {
		d.logger.Error("failed to reload after mutation", zap.String("action", action), zap.Error(err))
	}
}

// Snapshot returns the last loaded snapshot.
func (d *Desk) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot
}

// Board loads fresh data and resolves the status of every room.
func (d *Desk) Board(ctx context.Context) ([]BoardEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(ctx); err != nil {
		return nil, err
	}

	statuses := bookingDomain.Board(d.snapshot.Rooms, d.snapshot.Bookings, d.snapshot.Guests)
	out := make([]BoardEntry, 0, len(statuses))
	for _, rs := range statuses {
		if err := bookingDomain.CheckSingleActive(rs.Room.ID, d.snapshot.Bookings); err != nil {
			d.logger.Warn("room has more than one active booking",
				zap.Error(err),
				zap.Int64("room_id", rs.Room.ID),
				zap.Int64("shown_booking_id", rs.Booking.ID),
				zap.Int64s("conflicting_booking_ids", rs.Conflicting),
			)
		}
		out = append(out, BoardEntry{RoomStatus: rs, NightlyRate: d.pricing.PriceFor(rs.Room.Category)})
	}
	return out, nil
}

// RateCard returns the nightly rate per category.
func (d *Desk) RateCard() map[string]int64 {
	return d.pricing.RateCard()
}

// Prices returns the per-weekday price rows kept by the store.
func (d *Desk) Prices(ctx context.Context) ([]room.Price, error) {
	prices, err := d.store.ListPrices(ctx)
	if err != nil {
		return nil, actionErr(ActionLoad, err)
	}
	return prices, nil
}

// Quote previews the price of a stay in a room.
func (d *Desk) Quote(ctx context.Context, roomID int64, dates bookingDomain.StayDates) (QuoteResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(ctx); err != nil {
		return QuoteResult{}, err
	}
	r, err := d.room(roomID)
	if err != nil {
		return QuoteResult{}, err
	}
	total, nights, err := d.controller.Quote(r, dates)
	if err != nil {
		return QuoteResult{}, err
	}
	return QuoteResult{
		RoomID:      r.ID,
		Category:    r.Category,
		Nights:      nights,
		NightlyRate: d.pricing.PriceFor(r.Category),
		Total:       total,
	}, nil
}

func (d *Desk) room(id int64) (room.Room, error) {
	r, ok := room.FindByID(d.snapshot.Rooms, id)
	if !ok {
		return room.Room{}, domain.NewNotFoundError("room", strconv.FormatInt(id, 10))
	}
	return r, nil
}

func (d *Desk) requireAvailable(r room.Room, action string) error {
	status := bookingDomain.StatusOf(r, d.snapshot.Bookings, d.snapshot.Guests)
	if status.Status != bookingDomain.Available {
		return actionErr(action, domain.NewConflictError(fmt.Sprintf("room %s is %s", r.RoomNumber, status.Status)))
	}
	return nil
}

func (d *Desk) booking(id int64) (bookingDomain.Booking, error) {
	b, ok := bookingDomain.FindByID(d.snapshot.Bookings, id)
	if !ok {
		return bookingDomain.Booking{}, domain.NewNotFoundError("booking", strconv.FormatInt(id, 10))
	}
	return b, nil
}

// ListGuests loads fresh data and returns the guests.
func (d *Desk) ListGuests(ctx context.Context) ([]guest.Guest, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.load(ctx); err != nil {
		return nil, err
	}
	return d.snapshot.Guests, nil
}

// ListRooms loads fresh data and returns the rooms.
func (d *Desk) ListRooms(ctx context.Context) ([]room.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.load(ctx); err != nil {
		return nil, err
	}
	return d.snapshot.Rooms, nil
}

// ListBookings loads fresh data and returns the bookings.
func (d *Desk) ListBookings(ctx context.Context) ([]bookingDomain.Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.load(ctx); err != nil {
		return nil, err
	}
	return d.snapshot.Bookings, nil
}

// CreateBooking books or checks guests into an available room.
func (d *Desk) CreateBooking(ctx context.Context, in BookingInput) (bookingDomain.Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	action := ActionCreateBooking
	if in.Action == bookingDomain.ActionCheckIn {
		action = ActionCheckInGuests
	}

	if err := d.load(ctx); err != nil {
		return bookingDomain.Booking{}, err
	}
	r, err := d.room(in.RoomID)
	if err != nil {
		return bookingDomain.Booking{}, actionErr(action, err)
	}
	if err := d.requireAvailable(r, action); err != nil {
		return bookingDomain.Booking{}, err
	}

	created, err := d.controller.Create(ctx, r, in.GuestIDs, in.dates(), in.Action)
	if err != nil {
		return bookingDomain.Booking{}, err
	}
	d.reload(ctx, action)
	return created, nil
}

// EditBooking re-validates and re-prices a booking, optionally moving it to another room.
func (d *Desk) EditBooking(ctx context.Context, id int64, in BookingInput) (bookingDomain.Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(ctx); err != nil {
		return bookingDomain.Booking{}, err
	}
	b, err := d.booking(id)
	if err != nil {
		return bookingDomain.Booking{}, actionErr(ActionEditBooking, err)
	}
	roomID := in.RoomID
	if roomID == 0 {
		roomID = b.RoomID
	}
	r, err := d.room(roomID)
	if err != nil {
		return bookingDomain.Booking{}, actionErr(ActionEditBooking, err)
	}
	if r.ID != b.RoomID {
		if err := d.requireAvailable(r, ActionEditBooking); err != nil {
			return bookingDomain.Booking{}, err
		}
	}

	updated, err := d.controller.Edit(ctx, r, b, in.GuestIDs, in.dates())
	if err != nil {
		return bookingDomain.Booking{}, err
	}
	d.reload(ctx, ActionEditBooking)
	return updated, nil
}

// UpdateBooking sends a raw partial update. A status change must follow the
// lifecycle, and an active booking may only move to an available room.
func (d *Desk) UpdateBooking(ctx context.Context, id int64, patch bookingDomain.Patch) (bookingDomain.Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(ctx); err != nil {
		return bookingDomain.Booking{}, err
	}
	b, err := d.booking(id)
	if err != nil {
		return bookingDomain.Booking{}, actionErr(ActionUpdateBooking, err)
	}

	next := b.Status
	if patch.Status != nil && *patch.Status != b.Status && patch.Status.IsValid() {
		if !b.Status.CanTransitionTo(*patch.Status) {
			return bookingDomain.Booking{}, actionErr(ActionUpdateBooking,
				domain.NewInvalidStateError(b.Status.String(), patch.Status.String()))
		}
		next = *patch.Status
	}
	if patch.RoomID != nil && *patch.RoomID != b.RoomID && next.IsActive() {
		r, err := d.room(*patch.RoomID)
		if err != nil {
			return bookingDomain.Booking{}, actionErr(ActionUpdateBooking, err)
		}
		if err := d.requireAvailable(r, ActionUpdateBooking); err != nil {
			return bookingDomain.Booking{}, err
		}
	}

	updated, err := d.controller.Update(ctx, id, patch)
	if err != nil {
		return bookingDomain.Booking{}, err
	}
	d.reload(ctx, ActionUpdateBooking)
	return updated, nil
}

// CheckIn settles the guests of a confirmed booking.
func (d *Desk) CheckIn(ctx context.Context, id int64) (bookingDomain.Booking, error) {
	return d.transition(ctx, id, ActionCheckIn, d.controller.CheckIn)
}

// CheckOut releases the room of a checked-in booking.
func (d *Desk) CheckOut(ctx context.Context, id int64) (bookingDomain.Booking, error) {
	return d.transition(ctx, id, ActionCheckOut, d.controller.CheckOut)
}

func (d *Desk) transition(
	ctx context.Context,
	id int64,
	action string,
	apply func(context.Context, bookingDomain.Booking) (bookingDomain.Booking, error),
) (bookingDomain.Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(ctx); err != nil {
		return bookingDomain.Booking{}, err
	}
	b, err := d.booking(id)
	if err != nil {
		return bookingDomain.Booking{}, actionErr(action, err)
	}
	updated, err := apply(ctx, b)
	if err != nil {
		return bookingDomain.Booking{}, err
	}
	d.reload(ctx, action)
	return updated, nil
}

// CancelBooking deletes a booking that has not been checked out.
func (d *Desk) CancelBooking(ctx context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(ctx); err != nil {
		return err
	}
	b, err := d.booking(id)
	if err != nil {
		return actionErr(ActionCancel, err)
	}
	if err := d.controller.Cancel(ctx, b); err != nil {
		return err
	}
	d.reload(ctx, ActionCancel)
	return nil
}
