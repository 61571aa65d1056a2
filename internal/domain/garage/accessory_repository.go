package garage

import (
	"context"

	"github.com/google/uuid"
)

// AccessoryRepository defines the interface for accessory persistence
type AccessoryRepository interface {
	// FindByID finds an accessory by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Accessory, error)

	// FindByVehicleID finds all accessories owned by a vehicle
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]Accessory, error)

	// Save creates or updates an accessory
	Save(ctx context.Context, a *Accessory) error

	// Delete deletes an accessory. Deleting a missing accessory is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
