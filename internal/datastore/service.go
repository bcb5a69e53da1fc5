// Package datastore implements the hotel data store: plain REST resources
// over PostgreSQL with booking lifecycle events.
package datastore

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
	"github.com/hotel-frontdesk/service-frontdesk/internal/events"
)

// GuestRepository persists guests.
type GuestRepository interface {
	List(ctx context.Context) ([]guest.Guest, error)
	FindByID(ctx context.Context, id int64) (guest.Guest, error)
	PassportTaken(ctx context.Context, series, number string, excludeID int64) (bool, error)
	Create(ctx context.Context, g guest.Guest) (guest.Guest, error)
	Update(ctx context.Context, g guest.Guest) error
	Delete(ctx context.Context, id int64) error
}

// RoomRepository persists rooms.
type RoomRepository interface {
	List(ctx context.Context) ([]room.Room, error)
	FindByID(ctx context.Context, id int64) (room.Room, error)
	NumberTaken(ctx context.Context, number string, excludeID int64) (bool, error)
	Create(ctx context.Context, r room.Room) (room.Room, error)
	Update(ctx context.Context, r room.Room) error
	// Delete removes the room with its bookings and returns the removed booking ids.
	Delete(ctx context.Context, id int64) ([]int64, error)
}

// BookingRepository persists bookings.
type BookingRepository interface {
	List(ctx context.Context) ([]bookingDomain.Booking, error)
	FindByID(ctx context.Context, id int64) (bookingDomain.Booking, error)
	Create(ctx context.Context, b bookingDomain.Booking) (bookingDomain.Booking, error)
	Update(ctx context.Context, id int64, patch bookingDomain.Patch) (before, after bookingDomain.Booking, err error)
	Delete(ctx context.Context, id int64) (bookingDomain.Booking, error)
}

// PriceRepository persists per-weekday prices.
type PriceRepository interface {
	List(ctx context.Context) ([]room.Price, error)
	FindByID(ctx context.Context, id int64) (room.Price, error)
	Create(ctx context.Context, in room.PriceInput) (room.Price, error)
	Update(ctx context.Context, id int64, in room.PriceInput) (room.Price, error)
	Delete(ctx context.Context, id int64) error
}

// Service holds the store's rules. Room capacity and stay dates are not
// checked here.
type Service struct {
	guests    GuestRepository
	rooms     RoomRepository
	bookings  BookingRepository
	prices    PriceRepository
	publisher events.Publisher
	logger    *zap.Logger
}

// NewService creates a new Service.
func NewService(
	guests GuestRepository,
	rooms RoomRepository,
	bookings BookingRepository,
	prices PriceRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{
		guests:    guests,
		rooms:     rooms,
		bookings:  bookings,
		prices:    prices,
		publisher: publisher,
		logger:    logger,
	}
}

// --- Guests ---

// GuestPatch carries the guest fields present in an update.
type GuestPatch struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	PassportSeries *string `json:"passport_series"`
	PassportNumber *string `json:"passport_number"`
}

func (p GuestPatch) apply(g guest.Guest) guest.Guest {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Phone != nil {
		g.Phone = *p.Phone
	}
	if p.Email != nil {
		g.Email = *p.Email
	}
	if p.PassportSeries != nil {
		g.PassportSeries = *p.PassportSeries
	}
	if p.PassportNumber != nil {
		g.PassportNumber = *p.PassportNumber
	}
	return g
}

const passportTakenMessage = "a guest with this passport already exists"

func (s *Service) ListGuests(ctx context.Context) ([]guest.Guest, error) {
	return s.guests.List(ctx)
}

func (s *Service) GetGuest(ctx context.Context, id int64) (guest.Guest, error) {
	return s.guests.FindByID(ctx, id)
}

// CreateGuest registers a guest. The passport series and number pair must be unique.
func (s *Service) CreateGuest(ctx context.Context, in guest.Input) (guest.Guest, error) {
	g := guest.Guest{}.Apply(in)
	if err := s.checkPassport(ctx, g, 0); err != nil {
		return guest.Guest{}, err
	}
	created, err := s.guests.Create(ctx, g)
	if err != nil {
		return guest.Guest{}, err
	}
	s.logger.Info("guest created", zap.Int64("guest_id", created.ID))
	return created, nil
}

// UpdateGuest applies the fields present in patch.
func (s *Service) UpdateGuest(ctx context.Context, id int64, patch GuestPatch) (guest.Guest, error) {
	current, err := s.guests.FindByID(ctx, id)
	if err != nil {
		return guest.Guest{}, err
	}
	updated := patch.apply(current)
	if patch.PassportSeries != nil || patch.PassportNumber != nil {
		if err := s.checkPassport(ctx, updated, id); err != nil {
			return guest.Guest{}, err
		}
	}
	if err := s.guests.Update(ctx, updated); err != nil {
		return guest.Guest{}, err
	}
	return updated, nil
}

func (s *Service) checkPassport(ctx context.Context, g guest.Guest, excludeID int64) error {
	if g.PassportSeries == "" && g.PassportNumber == "" {
		return nil
	}
	taken, err := s.guests.PassportTaken(ctx, g.PassportSeries, g.PassportNumber, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewValidationError(passportTakenMessage)
	}
	return nil
}

func (s *Service) DeleteGuest(ctx context.Context, id int64) error {
	if err := s.guests.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("guest deleted", zap.Int64("guest_id", id))
	return nil
}

// --- Rooms ---

// RoomPatch carries the room fields present in an update.
type RoomPatch struct {
	RoomNumber  *string `json:"room_number"`
	Category    *string `json:"category"`
	Capacity    *int    `json:"capacity"`
	HasChildBed *bool   `json:"has_child_bed"`
}

func (p RoomPatch) apply(r room.Room) room.Room {
	if p.RoomNumber != nil {
		r.RoomNumber = strings.TrimSpace(*p.RoomNumber)
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	if p.HasChildBed != nil {
		r.HasChildBed = *p.HasChildBed
	}
	return r
}

func (s *Service) ListRooms(ctx context.Context) ([]room.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (room.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

// CreateRoom adds a room. Room numbers are unique ignoring case.
func (s *Service) CreateRoom(ctx context.Context, in room.Input) (room.Room, error) {
	r := room.Room{}.Apply(in)
	if err := s.checkRoomNumber(ctx, r.RoomNumber, 0); err != nil {
		return room.Room{}, err
	}
	created, err := s.rooms.Create(ctx, r)
	if err != nil {
		return room.Room{}, err
	}
	s.logger.Info("room created", zap.Int64("room_id", created.ID), zap.String("room_number", created.RoomNumber))
	return created, nil
}

// UpdateRoom applies the fields present in patch.
func (s *Service) UpdateRoom(ctx context.Context, id int64, patch RoomPatch) (room.Room, error) {
	current, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return room.Room{}, err
	}
	updated := patch.apply(current)
	if patch.RoomNumber != nil {
		if err := s.checkRoomNumber(ctx, updated.RoomNumber, id); err != nil {
			return room.Room{}, err
		}
	}
	if err := s.rooms.Update(ctx, updated); err != nil {
		return room.Room{}, err
	}
	return updated, nil
}

func (s *Service) checkRoomNumber(ctx context.Context, number string, excludeID int64) error {
	if number == "" {
		return domain.NewValidationError("room number is required")
	}
	taken, err := s.rooms.NumberTaken(ctx, number, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewValidationError("room number already exists")
	}
	return nil
}

// DeleteRoom removes a room and every booking made for it.
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	bookingIDs, err := s.rooms.Delete(ctx, id)
	if err != nil {
		return err
	}
	for _, bid := range bookingIDs {
		s.publisher.Publish(ctx, events.BookingDeleted, events.BookingEvent{Booking: bookingDomain.Booking{ID: bid, RoomID: id}})
	}
	s.logger.Info("room deleted", zap.Int64("room_id", id), zap.Int("bookings_deleted", len(bookingIDs)))
	return nil
}

// --- Bookings ---

func (s *Service) ListBookings(ctx context.Context) ([]bookingDomain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *Service) GetBooking(ctx context.Context, id int64) (bookingDomain.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

// CreateBooking stores a booking. The price defaults to 0 and the status to confirmed.
func (s *Service) CreateBooking(ctx context.Context, nb bookingDomain.NewBooking) (bookingDomain.Booking, error) {
	status := nb.Status
	if status == "" {
		status = bookingDomain.StatusConfirmed
	}
	if !status.IsValid() {
		return bookingDomain.Booking{}, domain.NewValidationError(fmt.Sprintf("invalid booking status: %s", status))
	}
	if _, err := s.guests.FindByID(ctx, nb.MainGuestID); err != nil {
		return bookingDomain.Booking{}, err
	}

	var price int64
	if nb.Price != nil {
		price = *nb.Price
	}

	created, err := s.bookings.Create(ctx, bookingDomain.Booking{
		RoomID:       nb.RoomID,
		MainGuestID:  nb.MainGuestID,
		GuestIDs:     nb.GuestIDs,
		CheckInDate:  nb.CheckInDate,
		CheckOutDate: nb.CheckOutDate,
		Status:       status,
		Price:        price,
	})
	if err != nil {
		return bookingDomain.Booking{}, err
	}

	s.logger.Info("booking created",
		zap.Int64("booking_id", created.ID),
		zap.Int64("room_id", created.RoomID),
		zap.String("status", string(created.Status)),
	)
	s.publisher.Publish(ctx, events.BookingCreated, events.Created(created))
	return created, nil
}

// UpdateBooking applies the fields present in patch. The store records
// whatever status it is given; the front desk owns the lifecycle.
func (s *Service) UpdateBooking(ctx context.Context, id int64, patch bookingDomain.Patch) (bookingDomain.Booking, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return bookingDomain.Booking{}, domain.NewValidationError(fmt.Sprintf("invalid booking status: %s", *patch.Status))
	}
	for _, d := range []*string{patch.CheckInDate, patch.CheckOutDate} {
		if d != nil {
			if _, err := bookingDomain.ParseDate(*d); err != nil {
				return bookingDomain.Booking{}, domain.NewValidationError(err.Error())
			}
		}
	}

	before, after, err := s.bookings.Update(ctx, id, patch)
	if err != nil {
		return bookingDomain.Booking{}, err
	}

	s.logger.Info("booking updated",
		zap.Int64("booking_id", id),
		zap.String("from", string(before.Status)),
		zap.String("to", string(after.Status)),
	)
	s.publisher.Publish(ctx, events.BookingUpdated, events.Updated(after, before.Status))
	return after, nil
}

func (s *Service) DeleteBooking(ctx context.Context, id int64) error {
	removed, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Info("booking deleted", zap.Int64("booking_id", id))
	s.publisher.Publish(ctx, events.BookingDeleted, events.BookingEvent{Booking: removed})
	return nil
}

// --- Prices ---

func (s *Service) ListPrices(ctx context.Context) ([]room.Price, error) {
	return s.prices.List(ctx)
}

func (s *Service) GetPrice(ctx context.Context, id int64) (room.Price, error) {
	return s.prices.FindByID(ctx, id)
}

// CreatePrice records a weekday price for an existing room.
func (s *Service) CreatePrice(ctx context.Context, in room.PriceInput) (room.Price, error) {
	if _, err := s.rooms.FindByID(ctx, in.RoomID); err != nil {
		return room.Price{}, err
	}
	return s.prices.Create(ctx, in)
}

func (s *Service) UpdatePrice(ctx context.Context, id int64, in room.PriceInput) (room.Price, error) {
	if _, err := s.rooms.FindByID(ctx, in.RoomID); err != nil {
		return room.Price{}, err
	}
	return s.prices.Update(ctx, id, in)
}

func (s *Service) DeletePrice(ctx context.Context, id int64) error {
	return s.prices.Delete(ctx, id)
}
