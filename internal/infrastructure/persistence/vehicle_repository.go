package persistence

import (
	"context"
	"errors"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVehicleRepository implements VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// FindByID finds a vehicle by its ID
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*garage.Vehicle, error) {
	var v garage.Vehicle
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// FindByGarageID finds all vehicles owned by a garage
func (r *GormVehicleRepository) FindByGarageID(ctx context.Context, garageID uuid.UUID) ([]garage.Vehicle, error) {
	var vehicles []garage.Vehicle
	if err := r.db.WithContext(ctx).
		Where("garage_id = ?", garageID).
		Order("created_at ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindByModel finds all vehicles with the given model
func (r *GormVehicleRepository) FindByModel(ctx context.Context, model string) ([]garage.Vehicle, error) {
	var vehicles []garage.Vehicle
	if err := r.db.WithContext(ctx).
		Where("model = ?", model).
		Order("created_at ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CreateInGarage inserts the vehicle and increments the owning garage's
// vehicle count in one transaction. The garage row is locked so concurrent
// adds cannot jointly exceed the capacity.
func (r *GormVehicleRepository) CreateInGarage(ctx context.Context, v *garage.Vehicle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g garage.Garage
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&g, "id = ?", v.GarageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if err := g.RegisterVehicleAdded(); err != nil {
			return err
		}

		if err := tx.Create(v).Error; err != nil {
			return err
		}

		return tx.Model(&garage.Garage{}).
			Where("id = ?", g.ID).
			Update("vehicle_count", g.VehicleCount).Error
	})
}

// Save updates an existing vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, v *garage.Vehicle) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// DeleteWithAccessories deletes the vehicle and its accessories and
// decrements the owning garage's vehicle count in one transaction
func (r *GormVehicleRepository) DeleteWithAccessories(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v garage.Vehicle
		if err := tx.First(&v, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		var g garage.Garage
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&g, "id = ?", v.GarageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if err := tx.Where("vehicle_id = ?", id).Delete(&garage.Accessory{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&garage.Vehicle{}, "id = ?", id).Error; err != nil {
			return err
		}

		g.RegisterVehicleRemoved()
		return tx.Model(&garage.Garage{}).
			Where("id = ?", g.ID).
			Update("vehicle_count", g.VehicleCount).Error
	})
}

// Ensure GormVehicleRepository implements VehicleRepository
var _ garage.VehicleRepository = (*GormVehicleRepository)(nil)
