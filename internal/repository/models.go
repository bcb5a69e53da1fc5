package repository

import (
	"time"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// GuestModel is the GORM model for the guests table.
type GuestModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"size:100;not null"`
	Phone          string  `gorm:"size:15;not null"`
	Email          string  `gorm:"size:100"`
	PassportSeries *string `gorm:"size:4;uniqueIndex:idx_guests_passport"`
	PassportNumber *string `gorm:"size:6;uniqueIndex:idx_guests_passport"`
}

// TableName returns the table name for the GORM model.
func (GuestModel) TableName() string {
	return "guests"
}

// RoomModel is the GORM model for the rooms table.
type RoomModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	RoomNumber  string `gorm:"size:10;not null;uniqueIndex"`
	Category    string `gorm:"size:50;not null"`
	Capacity    int    `gorm:"not null"`
	HasChildBed bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for the GORM model.
func (RoomModel) TableName() string {
	return "rooms"
}

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	RoomID       int64     `gorm:"not null;index"`
	MainGuestID  int64     `gorm:"not null;index"`
	CheckInDate  time.Time `gorm:"type:date;not null"`
	CheckOutDate time.Time `gorm:"type:date;not null"`
	Status       string    `gorm:"size:20;not null;index"`
	Price        int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// BookingGuestModel links a booking to each of its guests.
type BookingGuestModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	BookingID int64 `gorm:"not null;index"`
	GuestID   int64 `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (BookingGuestModel) TableName() string {
	return "booking_guests"
}

// PriceModel is the GORM model for the prices table.
type PriceModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	RoomID    int64  `gorm:"not null;index"`
	DayOfWeek string `gorm:"size:15;not null"`
	Price     int64  `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (PriceModel) TableName() string {
	return "prices"
}

// Models lists every model for AutoMigrate.
func Models() []interface{} {
	return []interface{}{&GuestModel{}, &RoomModel{}, &BookingModel{}, &BookingGuestModel{}, &PriceModel{}}
}

// --- Mapping helpers ---

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toDomainGuest(m *GuestModel) guest.Guest {
	return guest.Guest{
		ID:             m.ID,
		Name:           m.Name,
		Phone:          m.Phone,
		Email:          m.Email,
		PassportSeries: deref(m.PassportSeries),
		PassportNumber: deref(m.PassportNumber),
	}
}

func toGuestModel(g guest.Guest) *GuestModel {
	return &GuestModel{
		ID:             g.ID,
		Name:           g.Name,
		Phone:          g.Phone,
		Email:          g.Email,
		PassportSeries: nullable(g.PassportSeries),
		PassportNumber: nullable(g.PassportNumber),
	}
}

func toDomainRoom(m *RoomModel) room.Room {
	return room.Room{
		ID:          m.ID,
		RoomNumber:  m.RoomNumber,
		Category:    m.Category,
		Capacity:    m.Capacity,
		HasChildBed: m.HasChildBed,
	}
}

func toRoomModel(r room.Room) *RoomModel {
	return &RoomModel{
		ID:          r.ID,
		RoomNumber:  r.RoomNumber,
		Category:    r.Category,
		Capacity:    r.Capacity,
		HasChildBed: r.HasChildBed,
	}
}

func toDomainBooking(m *BookingModel, guestIDs []int64) booking.Booking {
	return booking.Booking{
		ID:           m.ID,
		RoomID:       m.RoomID,
		MainGuestID:  m.MainGuestID,
		GuestIDs:     guestIDs,
		CheckInDate:  m.CheckInDate.Format(time.DateOnly),
		CheckOutDate: m.CheckOutDate.Format(time.DateOnly),
		Status:       booking.BookingStatus(m.Status),
		Price:        m.Price,
	}
}

func toBookingModel(b booking.Booking) (*BookingModel, error) {
	in, err := booking.ParseDate(b.CheckInDate)
	if err != nil {
		return nil, err
	}
	out, err := booking.ParseDate(b.CheckOutDate)
	if err != nil {
		return nil, err
	}
	return &BookingModel{
		ID:           b.ID,
		RoomID:       b.RoomID,
		MainGuestID:  b.MainGuestID,
		CheckInDate:  in,
		CheckOutDate: out,
		Status:       string(b.Status),
		Price:        b.Price,
	}, nil
}

func toDomainPrice(m *PriceModel) room.Price {
	return room.Price{ID: m.ID, RoomID: m.RoomID, DayOfWeek: m.DayOfWeek, Price: m.Price}
}
