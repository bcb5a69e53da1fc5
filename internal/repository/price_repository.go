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

// GormPriceRepository persists per-weekday room prices with GORM.
type GormPriceRepository struct {
	db *gorm.DB
}

// NewGormPriceRepository creates a new GormPriceRepository.
func NewGormPriceRepository(db *gorm.DB) *GormPriceRepository {
	return &GormPriceRepository{db: db}
}

// List retrieves every price row ordered by id.
func (r *GormPriceRepository) List(ctx context.Context) ([]room.Price, error) {
	var models []PriceModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	out := make([]room.Price, len(models))
	for i := range models {
		out[i] = toDomainPrice(&models[i])
	}
	return out, nil
}

// FindByID retrieves a price row by id.
func (r *GormPriceRepository) FindByID(ctx context.Context, id int64) (room.Price, error) {
	var model PriceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room.Price{}, domain.NewNotFoundError("price", strconv.FormatInt(id, 10))
		}
		return room.Price{}, fmt.Errorf("failed to find price by ID: %w", err)
	}
	return toDomainPrice(&model), nil
}

// Create persists a new price row.
func (r *GormPriceRepository) Create(ctx context.Context, in room.PriceInput) (room.Price, error) {
	model := &PriceModel{RoomID: in.RoomID, DayOfWeek: in.DayOfWeek, Price: in.Price}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return room.Price{}, fmt.Errorf("failed to save price: %w", err)
	}
	return toDomainPrice(model), nil
}

// Update replaces a price row.
func (r *GormPriceRepository) Update(ctx context.Context, id int64, in room.PriceInput) (room.Price, error) {
	result := r.db.WithContext(ctx).
		Model(&PriceModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"room_id":     in.RoomID,
			"day_of_week": in.DayOfWeek,
			"price":       in.Price,
		})
	if result.Error != nil {
		return room.Price{}, fmt.Errorf("failed to update price: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return room.Price{}, domain.NewNotFoundError("price", strconv.FormatInt(id, 10))
	}
	return room.Price{ID: id, RoomID: in.RoomID, DayOfWeek: in.DayOfWeek, Price: in.Price}, nil
}

// Delete removes a price row.
func (r *GormPriceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PriceModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete price: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("price", strconv.FormatInt(id, 10))
	}
	return nil
}
