package garage

import (
	"context"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// VehicleCreatedHandler reacts to VehicleCreated events. It currently only
// records the addition; failures never propagate back to the request that
// created the vehicle.
type VehicleCreatedHandler struct {
	logger *zap.Logger
}

// NewVehicleCreatedHandler creates a new VehicleCreatedHandler
func NewVehicleCreatedHandler(logger *zap.Logger) *VehicleCreatedHandler {
	return &VehicleCreatedHandler{logger: logger}
}

// EventTypes returns the event types this handler subscribes to
func (h *VehicleCreatedHandler) EventTypes() []string {
	return []string{garage.EventTypeVehicleCreated}
}

// Handle processes a VehicleCreated event
func (h *VehicleCreatedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*garage.VehicleCreatedEvent)
	if !ok {
		return nil
	}

	h.logger.Info("vehicle added to garage",
		zap.String("vehicle_id", created.VehicleID.String()),
		zap.String("garage_id", created.GarageID.String()),
		zap.String("brand", created.Brand),
		zap.String("model", created.Model),
		zap.String("fuel_type", string(created.FuelType)),
		zap.Int("manufacturing_year", created.ManufacturingYear),
	)
	return nil
}
