package persistence

import (
	"context"
	"errors"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccessoryRepository implements AccessoryRepository using GORM
type GormAccessoryRepository struct {
	db *gorm.DB
}

// NewGormAccessoryRepository creates a new GormAccessoryRepository
func NewGormAccessoryRepository(db *gorm.DB) *GormAccessoryRepository {
	return &GormAccessoryRepository{db: db}
}

// FindByID finds an accessory by its ID
func (r *GormAccessoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*garage.Accessory, error) {
	var a garage.Accessory
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByVehicleID finds all accessories owned by a vehicle
func (r *GormAccessoryRepository) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]garage.Accessory, error) {
	var accessories []garage.Accessory
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("name ASC").
		Find(&accessories).Error; err != nil {
		return nil, err
	}
	return accessories, nil
}

// Save creates or updates an accessory
func (r *GormAccessoryRepository) Save(ctx context.Context, a *garage.Accessory) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete deletes an accessory. Deleting a missing accessory is a no-op.
func (r *GormAccessoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&garage.Accessory{}, "id = ?", id).Error
}

// Ensure GormAccessoryRepository implements AccessoryRepository
var _ garage.AccessoryRepository = (*GormAccessoryRepository)(nil)
