package garage

import (
	"context"
	"errors"
	"fmt"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccessoryService handles accessory-related business operations
type AccessoryService struct {
	accessoryRepo garage.AccessoryRepository
	vehicleRepo   garage.VehicleRepository
}

// NewAccessoryService creates a new AccessoryService
func NewAccessoryService(accessoryRepo garage.AccessoryRepository, vehicleRepo garage.VehicleRepository) *AccessoryService {
	return &AccessoryService{
		accessoryRepo: accessoryRepo,
		vehicleRepo:   vehicleRepo,
	}
}

// Add adds an accessory to a vehicle
func (s *AccessoryService) Add(ctx context.Context, vehicleID uuid.UUID, req CreateAccessoryRequest) (*AccessoryResponse, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		return nil, wrapVehicleNotFound(err, vehicleID)
	}

	a, err := garage.NewAccessory(vehicleID, req.Name, req.Description, req.Price, req.Type)
	if err != nil {
		return nil, err
	}

	if err := s.accessoryRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	response := ToAccessoryResponse(a)
	return &response, nil
}

// GetByID retrieves an accessory by ID
func (s *AccessoryService) GetByID(ctx context.Context, accessoryID uuid.UUID) (*AccessoryResponse, error) {
	a, err := s.accessoryRepo.FindByID(ctx, accessoryID)
	if err != nil {
		return nil, wrapAccessoryNotFound(err, accessoryID)
	}

	response := ToAccessoryResponse(a)
	return &response, nil
}

// ListByVehicle retrieves all accessories of a vehicle. An unknown vehicle
// yields an empty list.
func (s *AccessoryService) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]AccessoryResponse, error) {
	accessories, err := s.accessoryRepo.FindByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return ToAccessoryResponses(accessories), nil
}

// Update updates an accessory's fields. The owning vehicle never changes
// through this operation.
func (s *AccessoryService) Update(ctx context.Context, accessoryID uuid.UUID, req UpdateAccessoryRequest) (*AccessoryResponse, error) {
	a, err := s.accessoryRepo.FindByID(ctx, accessoryID)
	if err != nil {
		return nil, wrapAccessoryNotFound(err, accessoryID)
	}

	if err := a.Update(req.Name, req.Description, req.Price, req.Type); err != nil {
		return nil, err
	}

	if err := s.accessoryRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	response := ToAccessoryResponse(a)
	return &response, nil
}

// Delete deletes an accessory. Deleting an accessory that does not exist
// succeeds without effect.
func (s *AccessoryService) Delete(ctx context.Context, accessoryID uuid.UUID) error {
	return s.accessoryRepo.Delete(ctx, accessoryID)
}

func wrapAccessoryNotFound(err error, accessoryID uuid.UUID) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Accessory not found with ID: %s", accessoryID))
	}
	return err
}
