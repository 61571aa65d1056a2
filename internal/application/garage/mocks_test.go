package garage

import (
	"context"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockGarageRepository is a mock implementation of GarageRepository
type MockGarageRepository struct {
	mock.Mock
}

func (m *MockGarageRepository) FindByID(ctx context.Context, id uuid.UUID) (*garage.Garage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*garage.Garage), args.Error(1)
}

func (m *MockGarageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]garage.Garage, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]garage.Garage), args.Error(1)
}

func (m *MockGarageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGarageRepository) Save(ctx context.Context, g *garage.Garage) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGarageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGarageRepository) FindByNameContaining(ctx context.Context, name string) ([]garage.Garage, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]garage.Garage), args.Error(1)
}

func (m *MockGarageRepository) FindByVehicleModel(ctx context.Context, model string) ([]garage.Garage, error) {
	args := m.Called(ctx, model)
	return args.Get(0).([]garage.Garage), args.Error(1)
}

func (m *MockGarageRepository) FindByVehicleFuelType(ctx context.Context, fuelType garage.FuelType) ([]garage.Garage, error) {
	args := m.Called(ctx, fuelType)
	return args.Get(0).([]garage.Garage), args.Error(1)
}

func (m *MockGarageRepository) FindByAccessoryName(ctx context.Context, accessoryName string) ([]garage.Garage, error) {
	args := m.Called(ctx, accessoryName)
	return args.Get(0).([]garage.Garage), args.Error(1)
}

// MockVehicleRepository is a mock implementation of VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*garage.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*garage.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByGarageID(ctx context.Context, garageID uuid.UUID) ([]garage.Vehicle, error) {
	args := m.Called(ctx, garageID)
	return args.Get(0).([]garage.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByModel(ctx context.Context, model string) ([]garage.Vehicle, error) {
	args := m.Called(ctx, model)
	return args.Get(0).([]garage.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) CreateInGarage(ctx context.Context, v *garage.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Save(ctx context.Context, v *garage.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) DeleteWithAccessories(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccessoryRepository is a mock implementation of AccessoryRepository
type MockAccessoryRepository struct {
	mock.Mock
}

func (m *MockAccessoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*garage.Accessory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*garage.Accessory), args.Error(1)
}

func (m *MockAccessoryRepository) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]garage.Accessory, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]garage.Accessory), args.Error(1)
}

func (m *MockAccessoryRepository) Save(ctx context.Context, a *garage.Accessory) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccessoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventBus is a mock implementation of shared.EventPublisher
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
