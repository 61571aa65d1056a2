package garage

import (
	"context"
	"errors"
	"fmt"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VehicleService handles vehicle-related business operations
type VehicleService struct {
	vehicleRepo garage.VehicleRepository
	garageRepo  garage.GarageRepository
	eventBus    shared.EventPublisher
	logger      *zap.Logger
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(
	vehicleRepo garage.VehicleRepository,
	garageRepo garage.GarageRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		garageRepo:  garageRepo,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Add adds a vehicle to a garage, denying the addition when the garage is at
// capacity. The insert and the garage's count adjustment are atomic; the
// capacity check here is a fast path that produces the full error message
// before the transactional check in the repository repeats it under lock.
func (s *VehicleService) Add(ctx context.Context, garageID uuid.UUID, req CreateVehicleRequest) (*VehicleResponse, error) {
	g, err := s.garageRepo.FindByID(ctx, garageID)
	if err != nil {
		return nil, wrapGarageNotFound(err, garageID)
	}

	if !g.CanAddVehicle() {
		return nil, shared.NewDomainError("CAPACITY_EXCEEDED",
			fmt.Sprintf("Garage %s has reached the maximum limit of %d vehicles", garageID, garage.MaxVehicles))
	}

	v, err := garage.NewVehicle(garageID, req.Brand, req.Model, garage.FuelType(req.FuelType), req.ManufacturingYear)
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.CreateInGarage(ctx, v); err != nil {
		return nil, wrapGarageNotFound(err, garageID)
	}

	s.publishEvents(ctx, v.GetDomainEvents())
	v.ClearDomainEvents()

	response := ToVehicleResponse(v)
	return &response, nil
}

// GetByID retrieves a vehicle by ID
func (s *VehicleService) GetByID(ctx context.Context, vehicleID uuid.UUID) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, wrapVehicleNotFound(err, vehicleID)
	}

	response := ToVehicleResponse(v)
	return &response, nil
}

// ListByGarage retrieves all vehicles of a garage. A garage without vehicles,
// or an unknown garage, yields an empty list.
func (s *VehicleService) ListByGarage(ctx context.Context, garageID uuid.UUID) ([]VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.FindByGarageID(ctx, garageID)
	if err != nil {
		return nil, err
	}
	return ToVehicleResponses(vehicles), nil
}

// ListByModel retrieves all vehicles of a given model across garages
func (s *VehicleService) ListByModel(ctx context.Context, model string) ([]VehicleResponse, error) {
	if model == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Model must not be empty")
	}
	vehicles, err := s.vehicleRepo.FindByModel(ctx, model)
	if err != nil {
		return nil, err
	}
	return ToVehicleResponses(vehicles), nil
}

// Update updates a vehicle's descriptive fields. The owning garage never
// changes through this operation.
func (s *VehicleService) Update(ctx context.Context, vehicleID uuid.UUID, req UpdateVehicleRequest) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, wrapVehicleNotFound(err, vehicleID)
	}

	if err := v.Update(req.Brand, req.Model, garage.FuelType(req.FuelType), req.ManufacturingYear); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Save(ctx, v); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(v)
	return &response, nil
}

// Delete deletes a vehicle and its accessories, releasing capacity in the
// owning garage
func (s *VehicleService) Delete(ctx context.Context, vehicleID uuid.UUID) error {
	if err := s.vehicleRepo.DeleteWithAccessories(ctx, vehicleID); err != nil {
		return wrapVehicleNotFound(err, vehicleID)
	}
	return nil
}

func (s *VehicleService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventBus == nil || len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish domain events", zap.Error(err))
	}
}

func wrapVehicleNotFound(err error, vehicleID uuid.UUID) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Vehicle not found with ID: %s", vehicleID))
	}
	return err
}
