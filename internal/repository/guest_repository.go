package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
)

const guestHasBookingsMessage = "guest has bookings and cannot be deleted"

// GormGuestRepository persists guests with GORM.
type GormGuestRepository struct {
	db *gorm.DB
}

// NewGormGuestRepository creates a new GormGuestRepository.
func NewGormGuestRepository(db *gorm.DB) *GormGuestRepository {
	return &GormGuestRepository{db: db}
}

// List retrieves every guest ordered by id.
func (r *GormGuestRepository) List(ctx context.Context) ([]guest.Guest, error) {
	var models []GuestModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	out := make([]guest.Guest, len(models))
	for i := range models {
		out[i] = toDomainGuest(&models[i])
	}
	return out, nil
}

// FindByID retrieves a guest by id.
func (r *GormGuestRepository) FindByID(ctx context.Context, id int64) (guest.Guest, error) {
	var model GuestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return guest.Guest{}, domain.NewNotFoundError("guest", strconv.FormatInt(id, 10))
		}
		return guest.Guest{}, fmt.Errorf("failed to find guest by ID: %w", err)
	}
	return toDomainGuest(&model), nil
}

// PassportTaken reports whether another guest already holds the passport
// series and number pair. excludeID is skipped; pass 0 for a new guest.
func (r *GormGuestRepository) PassportTaken(ctx context.Context, series, number string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&GuestModel{})
	if series == "" {
		q = q.Where("passport_series IS NULL")
	} else {
		q = q.Where("passport_series = ?", series)
	}
	if number == "" {
		q = q.Where("passport_number IS NULL")
	} else {
		q = q.Where("passport_number = ?", number)
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check passport uniqueness: %w", err)
	}
	return count > 0, nil
}

// Create persists a new guest and returns it with its id.
func (r *GormGuestRepository) Create(ctx context.Context, g guest.Guest) (guest.Guest, error) {
	model := toGuestModel(g)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return guest.Guest{}, fmt.Errorf("failed to save guest: %w", err)
	}
	return toDomainGuest(model), nil
}

// Update persists every field of an existing guest.
func (r *GormGuestRepository) Update(ctx context.Context, g guest.Guest) error {
	model := toGuestModel(g)
	result := r.db.WithContext(ctx).
		Model(&GuestModel{}).
		Where("id = ?", g.ID).
		Updates(map[string]interface{}{
			"name":            model.Name,
			"phone":           model.Phone,
			"email":           model.Email,
			"passport_series": model.PassportSeries,
			"passport_number": model.PassportNumber,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update guest: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("guest", strconv.FormatInt(g.ID, 10))
	}
	return nil
}

// Delete removes a guest.
func (r *GormGuestRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		err := tx.Model(&BookingModel{}).
			Where("main_guest_id = ? OR id IN (?)", id,
				tx.Model(&BookingGuestModel{}).Select("booking_id").Where("guest_id = ?", id)).
			Count(&refs).Error
		if err != nil {
			return fmt.Errorf("failed to check guest bookings: %w", err)
		}
		if refs > 0 {
			return domain.NewConflictError(guestHasBookingsMessage)
		}

		result := tx.Where("id = ?", id).Delete(&GuestModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete guest: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NewNotFoundError("guest", strconv.FormatInt(id, 10))
		}
		return nil
	})
}
