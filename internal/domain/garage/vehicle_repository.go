package garage

import (
	"context"

	"github.com/google/uuid"
)

// VehicleRepository defines the interface for vehicle persistence.
//
// CreateInGarage and DeleteWithAccessories are transactional: the vehicle
// write and the owning garage's count adjustment happen atomically, with the
// garage row locked so concurrent adds cannot jointly exceed the capacity.
type VehicleRepository interface {
	// FindByID finds a vehicle by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)

	// FindByGarageID finds all vehicles owned by a garage
	FindByGarageID(ctx context.Context, garageID uuid.UUID) ([]Vehicle, error)

	// FindByModel finds all vehicles with the given model (exact match)
	FindByModel(ctx context.Context, model string) ([]Vehicle, error)

	// CreateInGarage inserts the vehicle and increments the owning garage's
	// vehicle count in one transaction. Returns shared.ErrNotFound if the
	// garage does not exist and a CAPACITY_EXCEEDED error if it is full.
	CreateInGarage(ctx context.Context, v *Vehicle) error

	// Save updates an existing vehicle
	Save(ctx context.Context, v *Vehicle) error

	// DeleteWithAccessories deletes the vehicle and its accessories and
	// decrements the owning garage's vehicle count in one transaction.
	// Returns shared.ErrNotFound if the vehicle does not exist.
	DeleteWithAccessories(ctx context.Context, id uuid.UUID) error
}
