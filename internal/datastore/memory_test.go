package datastore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
	"github.com/hotel-frontdesk/service-frontdesk/internal/events"
)

// memory implements every repository in memory.
type memory struct {
	mu       sync.Mutex
	seq      int64
	guests   []guest.Guest
	rooms    []room.Room
	bookings []bookingDomain.Booking
	prices   []room.Price
}

func (m *memory) next() int64 {
	m.seq++
	return m.seq
}

func missing(entity string, id int64) error {
	return domain.NewNotFoundError(entity, strconv.FormatInt(id, 10))
}

type memGuests struct{ *memory }

func (r memGuests) List(ctx context.Context) ([]guest.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]guest.Guest{}, r.guests...), nil
}

func (r memGuests) FindByID(ctx context.Context, id int64) (guest.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.guests {
		if g.ID == id {
			return g, nil
		}
	}
	return guest.Guest{}, missing("guest", id)
}

func (r memGuests) PassportTaken(ctx context.Context, series, number string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.guests {
		if g.ID != excludeID && g.PassportSeries == series && g.PassportNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r memGuests) Create(ctx context.Context, g guest.Guest) (guest.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.ID = r.next()
	r.guests = append(r.guests, g)
	return g, nil
}

func (r memGuests) Update(ctx context.Context, g guest.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.guests {
		if r.guests[i].ID == g.ID {
			r.guests[i] = g
			return nil
		}
	}
	return missing("guest", g.ID)
}

func (r memGuests) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.guests {
		if r.guests[i].ID == id {
			r.guests = append(r.guests[:i], r.guests[i+1:]...)
			return nil
		}
	}
	return missing("guest", id)
}

type memRooms struct{ *memory }

func (r memRooms) List(ctx context.Context) ([]room.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]room.Room{}, r.rooms...), nil
}

func (r memRooms) FindByID(ctx context.Context, id int64) (room.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rm, ok := room.FindByID(r.rooms, id); ok {
		return rm, nil
	}
	return room.Room{}, missing("room", id)
}

func (r memRooms) NumberTaken(ctx context.Context, number string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rm := range r.rooms {
		if rm.ID != excludeID && strings.EqualFold(rm.RoomNumber, number) {
			return true, nil
		}
	}
	return false, nil
}

func (r memRooms) Create(ctx context.Context, rm room.Room) (room.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm.ID = r.next()
	r.rooms = append(r.rooms, rm)
	return rm, nil
}

func (r memRooms) Update(ctx context.Context, rm room.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rooms {
		if r.rooms[i].ID == rm.ID {
			r.rooms[i] = rm
			return nil
		}
	}
	return missing("room", rm.ID)
}

func (r memRooms) Delete(ctx context.Context, id int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rooms {
		if r.rooms[i].ID != id {
			continue
		}
		r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
		var removed []int64
		kept := []bookingDomain.Booking{}
		for _, b := range r.bookings {
			if b.RoomID == id {
				removed = append(removed, b.ID)
				continue
			}
			kept = append(kept, b)
		}
		r.bookings = kept
		return removed, nil
	}
	return nil, missing("room", id)
}

type memBookings struct{ *memory }

func (r memBookings) List(ctx context.Context) ([]bookingDomain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bookingDomain.Booking{}, r.bookings...), nil
}

func (r memBookings) FindByID(ctx context.Context, id int64) (bookingDomain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := bookingDomain.FindByID(r.bookings, id); ok {
		return b, nil
	}
	return bookingDomain.Booking{}, missing("booking", id)
}

func (r memBookings) Create(ctx context.Context, b bookingDomain.Booking) (bookingDomain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := room.FindByID(r.rooms, b.RoomID); !ok {
		return bookingDomain.Booking{}, missing("room", b.RoomID)
	}
	for _, other := range r.bookings {
		if other.RoomID == b.RoomID && other.IsActive() && b.IsActive() {
			return bookingDomain.Booking{}, domain.NewConflictError(fmt.Sprintf("room %d already has an active booking", b.RoomID))
		}
	}
	b.ID = r.next()
	r.bookings = append(r.bookings, b)
	return b, nil
}

func (r memBookings) Update(ctx context.Context, id int64, patch bookingDomain.Patch) (bookingDomain.Booking, bookingDomain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			before := r.bookings[i]
			r.bookings[i] = patch.Apply(before)
			return before, r.bookings[i], nil
		}
	}
	return bookingDomain.Booking{}, bookingDomain.Booking{}, missing("booking", id)
}

func (r memBookings) Delete(ctx context.Context, id int64) (bookingDomain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return b, nil
		}
	}
	return bookingDomain.Booking{}, missing("booking", id)
}

type memPrices struct{ *memory }

func (r memPrices) List(ctx context.Context) ([]room.Price, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]room.Price{}, r.prices...), nil
}

func (r memPrices) FindByID(ctx context.Context, id int64) (room.Price, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.prices {
		if p.ID == id {
			return p, nil
		}
	}
	return room.Price{}, missing("price", id)
}

func (r memPrices) Create(ctx context.Context, in room.PriceInput) (room.Price, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := room.Price{ID: r.next(), RoomID: in.RoomID, DayOfWeek: in.DayOfWeek, Price: in.Price}
	r.prices = append(r.prices, p)
	return p, nil
}

func (r memPrices) Update(ctx context.Context, id int64, in room.PriceInput) (room.Price, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.prices {
		if r.prices[i].ID == id {
			r.prices[i] = room.Price{ID: id, RoomID: in.RoomID, DayOfWeek: in.DayOfWeek, Price: in.Price}
			return r.prices[i], nil
		}
	}
	return room.Price{}, missing("price", id)
}

func (r memPrices) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.prices {
		if r.prices[i].ID == id {
			r.prices = append(r.prices[:i], r.prices[i+1:]...)
			return nil
		}
	}
	return missing("price", id)
}

// recordingPublisher keeps published event types.
type recordingPublisher struct {
	mu    sync.Mutex
	types []string
	last  events.BookingEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, eventType string, evt events.BookingEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.types = append(p.types, eventType)
	p.last = evt
}
