package garage

import (
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeGarage  = "Garage"
	AggregateTypeVehicle = "Vehicle"
)

// Event type constants
const (
	EventTypeGarageCreated  = "GarageCreated"
	EventTypeVehicleCreated = "VehicleCreated"
)

// GarageCreatedEvent is published when a new garage is created
type GarageCreatedEvent struct {
	shared.BaseDomainEvent
	GarageID uuid.UUID `json:"garage_id"`
	Name     string    `json:"name"`
}

// NewGarageCreatedEvent creates a new GarageCreatedEvent
func NewGarageCreatedEvent(g *Garage) *GarageCreatedEvent {
	return &GarageCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeGarageCreated, AggregateTypeGarage, g.ID),
		GarageID:        g.ID,
		Name:            g.Name,
	}
}

// VehicleCreatedEvent is published after a vehicle has been added to a
// garage. Delivery is best-effort and never fails the triggering request.
type VehicleCreatedEvent struct {
	shared.BaseDomainEvent
	VehicleID         uuid.UUID `json:"vehicle_id"`
	Brand             string    `json:"brand"`
	Model             string    `json:"model"`
	FuelType          FuelType  `json:"fuel_type"`
	ManufacturingYear int       `json:"manufacturing_year"`
	GarageID          uuid.UUID `json:"garage_id"`
}

// NewVehicleCreatedEvent creates a new VehicleCreatedEvent
func NewVehicleCreatedEvent(v *Vehicle) *VehicleCreatedEvent {
	return &VehicleCreatedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeVehicleCreated, AggregateTypeVehicle, v.ID),
		VehicleID:         v.ID,
		Brand:             v.Brand,
		Model:             v.Model,
		FuelType:          v.FuelType,
		ManufacturingYear: v.ManufacturingYear,
		GarageID:          v.GarageID,
	}
}
