package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// GormRoomRepository persists rooms with GORM.
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository.
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// List retrieves every room ordered by id.
func (r *GormRoomRepository) List(ctx context.Context) ([]room.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	out := make([]room.Room, len(models))
	for i := range models {
		out[i] = toDomainRoom(&models[i])
	}
	return out, nil
}

// FindByID retrieves a room by id.
func (r *GormRoomRepository) FindByID(ctx context.Context, id int64) (room.Room, error) {
	var model RoomModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room.Room{}, domain.NewNotFoundError("room", strconv.FormatInt(id, 10))
		}
		return room.Room{}, fmt.Errorf("failed to find room by ID: %w", err)
	}
	return toDomainRoom(&model), nil
}

// NumberTaken reports whether another room already uses number, ignoring case.
func (r *GormRoomRepository) NumberTaken(ctx context.Context, number string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&RoomModel{}).Where("LOWER(room_number) = LOWER(?)", number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check room number: %w", err)
	}
	return count > 0, nil
}

// Create persists a new room and returns it with its id.
func (r *GormRoomRepository) Create(ctx context.Context, rm room.Room) (room.Room, error) {
	model := toRoomModel(rm)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return room.Room{}, fmt.Errorf("failed to save room: %w", err)
	}
	return toDomainRoom(model), nil
}

// Update persists every field of an existing room.
func (r *GormRoomRepository) Update(ctx context.Context, rm room.Room) error {
	result := r.db.WithContext(ctx).
		Model(&RoomModel{}).
		Where("id = ?", rm.ID).
		Updates(map[string]interface{}{
			"room_number":   rm.RoomNumber,
			"category":      rm.Category,
			"capacity":      rm.Capacity,
			"has_child_bed": rm.HasChildBed,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("room", strconv.FormatInt(rm.ID, 10))
	}
	return nil
}

// Delete removes a room together with its bookings, their guest links and its prices.
func (r *GormRoomRepository) Delete(ctx context.Context, id int64) ([]int64, error) {
	var bookingIDs []int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&BookingModel{}).Where("room_id = ?", id).Pluck("id", &bookingIDs).Error; err != nil {
			return fmt.Errorf("failed to find room bookings: %w", err)
		}
		if len(bookingIDs) > 0 {
			if err := tx.Where("booking_id IN ?", bookingIDs).Delete(&BookingGuestModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete booking guests: %w", err)
			}
			if err := tx.Where("room_id = ?", id).Delete(&BookingModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete room bookings: %w", err)
			}
		}
		if err := tx.Where("room_id = ?", id).Delete(&PriceModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete room prices: %w", err)
		}
		result := tx.Where("id = ?", id).Delete(&RoomModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete room: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NewNotFoundError("room", strconv.FormatInt(id, 10))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bookingIDs, nil
}
