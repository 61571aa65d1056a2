package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGarageRepository implements GarageRepository using GORM
type GormGarageRepository struct {
	db *gorm.DB
}

// NewGormGarageRepository creates a new GormGarageRepository
func NewGormGarageRepository(db *gorm.DB) *GormGarageRepository {
	return &GormGarageRepository{db: db}
}

// FindByID finds a garage by its ID, with opening times loaded
func (r *GormGarageRepository) FindByID(ctx context.Context, id uuid.UUID) (*garage.Garage, error) {
	var g garage.Garage
	if err := r.db.WithContext(ctx).
		Preload("OpeningTimes").
		First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

// FindAll finds all garages matching the filter
func (r *GormGarageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]garage.Garage, error) {
	var garages []garage.Garage
	query := r.applyFilter(r.db.WithContext(ctx).Model(&garage.Garage{}).Preload("OpeningTimes"), filter)

	if err := query.Find(&garages).Error; err != nil {
		return nil, err
	}
	return garages, nil
}

// Count counts all garages
func (r *GormGarageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&garage.Garage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a garage and replaces its opening times with the
// entity's current set. The vehicle count column is owned by the vehicle
// write paths and is never written here; a contact update carrying a stale
// count must not clobber a concurrent vehicle insert or delete. On insert
// the column falls back to its schema default of 0.
func (r *GormGarageRepository) Save(ctx context.Context, g *garage.Garage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("OpeningTimes", "VehicleCount").Save(g).Error; err != nil {
			return err
		}
		if err := tx.Where("garage_id = ?", g.ID).Delete(&garage.OpeningTime{}).Error; err != nil {
			return err
		}
		if len(g.OpeningTimes) > 0 {
			if err := tx.Create(&g.OpeningTimes).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a garage and cascades to its vehicles, their accessories,
// and its opening times
func (r *GormGarageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vehicleIDs := tx.Model(&garage.Vehicle{}).Select("id").Where("garage_id = ?", id)
		if err := tx.Where("vehicle_id IN (?)", vehicleIDs).Delete(&garage.Accessory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("garage_id = ?", id).Delete(&garage.Vehicle{}).Error; err != nil {
			return err
		}
		if err := tx.Where("garage_id = ?", id).Delete(&garage.OpeningTime{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&garage.Garage{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByNameContaining finds garages whose name contains the given fragment,
// case-insensitively
func (r *GormGarageRepository) FindByNameContaining(ctx context.Context, name string) ([]garage.Garage, error) {
	var garages []garage.Garage
	pattern := "%" + name + "%"
	if err := r.db.WithContext(ctx).
		Preload("OpeningTimes").
		Where("LOWER(name) LIKE LOWER(?)", pattern).
		Order("name ASC").
		Find(&garages).Error; err != nil {
		return nil, err
	}
	return garages, nil
}

// FindByVehicleModel finds garages having at least one vehicle of the given
// model
func (r *GormGarageRepository) FindByVehicleModel(ctx context.Context, model string) ([]garage.Garage, error) {
	var garages []garage.Garage
	vehicleGarages := r.db.Model(&garage.Vehicle{}).Select("garage_id").Where("model = ?", model)
	if err := r.db.WithContext(ctx).
		Preload("OpeningTimes").
		Where("id IN (?)", vehicleGarages).
		Order("name ASC").
		Find(&garages).Error; err != nil {
		return nil, err
	}
	return garages, nil
}

// FindByVehicleFuelType finds garages having at least one vehicle with the
// given fuel type
func (r *GormGarageRepository) FindByVehicleFuelType(ctx context.Context, fuelType garage.FuelType) ([]garage.Garage, error) {
	var garages []garage.Garage
	vehicleGarages := r.db.Model(&garage.Vehicle{}).Select("garage_id").Where("fuel_type = ?", fuelType)
	if err := r.db.WithContext(ctx).
		Preload("OpeningTimes").
		Where("id IN (?)", vehicleGarages).
		Order("name ASC").
		Find(&garages).Error; err != nil {
		return nil, err
	}
	return garages, nil
}

// FindByAccessoryName finds garages having at least one vehicle that carries
// an accessory with the given name
func (r *GormGarageRepository) FindByAccessoryName(ctx context.Context, accessoryName string) ([]garage.Garage, error) {
	var garages []garage.Garage
	accessoryVehicles := r.db.Model(&garage.Accessory{}).Select("vehicle_id").Where("name = ?", accessoryName)
	vehicleGarages := r.db.Model(&garage.Vehicle{}).Select("garage_id").Where("id IN (?)", accessoryVehicles)
	if err := r.db.WithContext(ctx).
		Preload("OpeningTimes").
		Where("id IN (?)", vehicleGarages).
		Order("name ASC").
		Find(&garages).Error; err != nil {
		return nil, err
	}
	return garages, nil
}

// applyFilter applies pagination and ordering to the query
func (r *GormGarageRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("name ASC")
	}

	return query
}

// Ensure GormGarageRepository implements GarageRepository
var _ garage.GarageRepository = (*GormGarageRepository)(nil)
