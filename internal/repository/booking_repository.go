package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
)

// GormBookingRepository persists bookings and their guest links with GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// List retrieves every booking ordered by id.
func (r *GormBookingRepository) List(ctx context.Context) ([]bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if len(models) == 0 {
		return []bookingDomain.Booking{}, nil
	}

	ids := make([]int64, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	guests, err := r.guestIDs(r.db.WithContext(ctx), ids)
	if err != nil {
		return nil, err
	}

	out := make([]bookingDomain.Booking, len(models))
	for i := range models {
		out[i] = toDomainBooking(&models[i], guests[models[i].ID])
	}
	return out, nil
}

// FindByID retrieves a booking by id.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (bookingDomain.Booking, error) {
	return r.findByID(r.db.WithContext(ctx), id, false)
}

// findByID loads one booking. With lock set the booking row is locked for
// the rest of the transaction db belongs to.
func (r *GormBookingRepository) findByID(db *gorm.DB, id int64, lock bool) (bookingDomain.Booking, error) {
	q := db
	if lock {
		q = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var model BookingModel
	if err := q.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bookingDomain.Booking{}, domain.NewNotFoundError("booking", strconv.FormatInt(id, 10))
		}
		return bookingDomain.Booking{}, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	guests, err := r.guestIDs(db, []int64{id})
	if err != nil {
		return bookingDomain.Booking{}, err
	}
	return toDomainBooking(&model, guests[id]), nil
}

// guestIDs loads the guest links of the given bookings. Bookings without
// links are absent from the map.
func (r *GormBookingRepository) guestIDs(db *gorm.DB, bookingIDs []int64) (map[int64][]int64, error) {
	var links []BookingGuestModel
	if err := db.Where("booking_id IN ?", bookingIDs).Order("id").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to load booking guests: %w", err)
	}
	out := make(map[int64][]int64)
	for _, l := range links {
		out[l.BookingID] = append(out[l.BookingID], l.GuestID)
	}
	return out, nil
}

func replaceGuestLinks(tx *gorm.DB, bookingID int64, guestIDs []int64) error {
	if err := tx.Where("booking_id = ?", bookingID).Delete(&BookingGuestModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear booking guests: %w", err)
	}
	if len(guestIDs) == 0 {
		return nil
	}
	links := make([]BookingGuestModel, len(guestIDs))
	for i, g := range guestIDs {
		links[i] = BookingGuestModel{BookingID: bookingID, GuestID: g}
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to save booking guests: %w", err)
	}
	return nil
}

// Create persists a new booking. The room row is locked and a room that
// already holds an active booking is refused with a conflict.
func (r *GormBookingRepository) Create(ctx context.Context, b bookingDomain.Booking) (bookingDomain.Booking, error) {
	model, err := toBookingModel(b)
	if err != nil {
		return bookingDomain.Booking{}, domain.NewValidationError(err.Error())
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rm RoomModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", b.RoomID).First(&rm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("room", strconv.FormatInt(b.RoomID, 10))
			}
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if model.Status != string(bookingDomain.StatusCheckedOut) {
			var active int64
			if err := tx.Model(&BookingModel{}).
				Where("room_id = ? AND status <> ?", b.RoomID, bookingDomain.StatusCheckedOut).
				Count(&active).Error; err != nil {
				return fmt.Errorf("failed to count active bookings: %w", err)
			}
			if active > 0 {
				return domain.NewConflictError(fmt.Sprintf("room %s already has an active booking", rm.RoomNumber))
			}
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save booking: %w", err)
		}
		return replaceGuestLinks(tx, model.ID, b.GuestIDs)
	})
	if err != nil {
		return bookingDomain.Booking{}, err
	}
	return toDomainBooking(model, b.GuestIDs), nil
}

// Update applies patch to a booking and returns the stored result. Absent
// fields, the price included, keep their current values.
func (r *GormBookingRepository) Update(ctx context.Context, id int64, patch bookingDomain.Patch) (bookingDomain.Booking, bookingDomain.Booking, error) {
	var before, after bookingDomain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		before, err = r.findByID(tx, id, true)
		if err != nil {
			return err
		}

		after = patch.Apply(before)
		model, err := toBookingModel(after)
		if err != nil {
			return domain.NewValidationError(err.Error())
		}

		if err := tx.Model(&BookingModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"room_id":        model.RoomID,
				"main_guest_id":  model.MainGuestID,
				"check_in_date":  model.CheckInDate,
				"check_out_date": model.CheckOutDate,
				"status":         model.Status,
				"price":          model.Price,
			}).Error; err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if patch.GuestIDs != nil {
			return replaceGuestLinks(tx, id, patch.GuestIDs)
		}
		return nil
	})
	if err != nil {
		return bookingDomain.Booking{}, bookingDomain.Booking{}, err
	}
	return before, after, nil
}

// Delete removes a booking and its guest links, returning what was removed.
func (r *GormBookingRepository) Delete(ctx context.Context, id int64) (bookingDomain.Booking, error) {
	var removed bookingDomain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		removed, err = r.findByID(tx, id, false)
		if err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", id).Delete(&BookingGuestModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete booking guests: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&BookingModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return bookingDomain.Booking{}, err
	}
	return removed, nil
}
