package application

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
	"github.com/hotel-frontdesk/service-frontdesk/internal/storeclient"
)

// fakeStore is an in-memory data store.
type fakeStore struct {
	mu       sync.Mutex
	nextID   int64
	guests   []guest.Guest
	rooms    []room.Room
	bookings []bookingDomain.Booking
	prices   []room.Price

	failLists   error
	failMutates error
	updates     []bookingDomain.Patch
	calls       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 100}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func notFound(what string) error {
	return &storeclient.StoreError{StatusCode: http.StatusNotFound, Message: what + " not found"}
}

func (s *fakeStore) ListGuests(ctx context.Context) ([]guest.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failLists != nil {
		return nil, s.failLists
	}
	return append([]guest.Guest(nil), s.guests...), nil
}

func (s *fakeStore) CreateGuest(ctx context.Context, in guest.Input) (guest.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMutates != nil {
		return guest.Guest{}, s.failMutates
	}
	g := guest.Guest{ID: s.id()}.Apply(in)
	s.guests = append(s.guests, g)
	return g, nil
}

func (s *fakeStore) UpdateGuest(ctx context.Context, id int64, in guest.Input) (guest.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.guests {
		if g.ID == id {
			s.guests[i] = g.Apply(in)
			return s.guests[i], nil
		}
	}
	return guest.Guest{}, notFound("guest")
}

func (s *fakeStore) DeleteGuest(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.guests {
		if g.ID == id {
			s.guests = append(s.guests[:i], s.guests[i+1:]...)
			return nil
		}
	}
	return notFound("guest")
}

func (s *fakeStore) ListRooms(ctx context.Context) ([]room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failLists != nil {
		return nil, s.failLists
	}
	return append([]room.Room(nil), s.rooms...), nil
}

func (s *fakeStore) CreateRoom(ctx context.Context, in room.Input) (room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := room.Room{ID: s.id()}.Apply(in)
	s.rooms = append(s.rooms, r)
	return r, nil
}

func (s *fakeStore) UpdateRoom(ctx context.Context, id int64, in room.Input) (room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms[i] = r.Apply(in)
			return s.rooms[i], nil
		}
	}
	return room.Room{}, notFound("room")
}

func (s *fakeStore) DeleteRoom(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			kept := s.bookings[:0]
			for _, b := range s.bookings {
				if b.RoomID != id {
					kept = append(kept, b)
				}
			}
			s.bookings = kept
			return nil
		}
	}
	return notFound("room")
}

func (s *fakeStore) ListPrices(ctx context.Context) ([]room.Price, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prices, nil
}

func (s *fakeStore) ListBookings(ctx context.Context) ([]bookingDomain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failLists != nil {
		return nil, s.failLists
	}
	return append([]bookingDomain.Booking(nil), s.bookings...), nil
}

func (s *fakeStore) CreateBooking(ctx context.Context, nb bookingDomain.NewBooking) (bookingDomain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMutates != nil {
		return bookingDomain.Booking{}, s.failMutates
	}
	b := bookingDomain.Booking{
		ID:           s.id(),
		RoomID:       nb.RoomID,
		MainGuestID:  nb.MainGuestID,
		GuestIDs:     nb.GuestIDs,
		CheckInDate:  nb.CheckInDate,
		CheckOutDate: nb.CheckOutDate,
		Status:       nb.Status,
	}
	if nb.Price != nil {
		b.Price = *nb.Price
	}
	s.bookings = append(s.bookings, b)
	return b, nil
}

func (s *fakeStore) UpdateBooking(ctx context.Context, id int64, patch bookingDomain.Patch) (bookingDomain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMutates != nil {
		return bookingDomain.Booking{}, s.failMutates
	}
	s.updates = append(s.updates, patch)
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings[i] = patch.Apply(b)
			return s.bookings[i], nil
		}
	}
	return bookingDomain.Booking{}, notFound("booking")
}

func (s *fakeStore) DeleteBooking(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMutates != nil {
		return s.failMutates
	}
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return notFound(fmt.Sprintf("booking %d", id))
}
