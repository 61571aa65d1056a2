package garage

import (
	"context"

	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// GarageRepository defines the interface for garage persistence
type GarageRepository interface {
	// FindByID finds a garage by its ID, with opening times loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Garage, error)

	// FindAll finds garages matching the filter (paginated)
	FindAll(ctx context.Context, filter shared.Filter) ([]Garage, error)

	// Count counts all garages
	Count(ctx context.Context) (int64, error)

	// Save creates or updates a garage together with its opening times
	Save(ctx context.Context, g *Garage) error

	// Delete deletes a garage and cascades to its vehicles, their
	// accessories, and its opening times
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByNameContaining finds garages whose name contains the given
	// fragment, case-insensitively
	FindByNameContaining(ctx context.Context, name string) ([]Garage, error)

	// FindByVehicleModel finds garages having at least one vehicle of the
	// given model (exact match)
	FindByVehicleModel(ctx context.Context, model string) ([]Garage, error)

	// FindByVehicleFuelType finds garages having at least one vehicle with
	// the given fuel type
	FindByVehicleFuelType(ctx context.Context, fuelType FuelType) ([]Garage, error)

	// FindByAccessoryName finds garages having at least one vehicle that
	// carries an accessory with the given name (exact match)
	FindByAccessoryName(ctx context.Context, accessoryName string) ([]Garage, error)
}
