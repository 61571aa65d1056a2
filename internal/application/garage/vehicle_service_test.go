package garage

import (
	"context"
	"testing"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVehicleService_Add(t *testing.T) {
	ctx := context.Background()
	req := CreateVehicleRequest{Brand: "Renault", Model: "Clio", FuelType: "diesel", ManufacturingYear: 2021}

	t.Run("adds vehicle and publishes event", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		garageRepo := new(MockGarageRepository)
		bus := new(MockEventBus)
		service := NewVehicleService(vehicleRepo, garageRepo, bus, zap.NewNop())

		g := newTestGarage(t, "Garage")
		garageRepo.On("FindByID", ctx, g.ID).Return(g, nil)
		vehicleRepo.On("CreateInGarage", ctx, mock.AnythingOfType("*garage.Vehicle")).Return(nil)
		bus.On("Publish", ctx, mock.Anything).Return(nil)

		resp, err := service.Add(ctx, g.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "Clio", resp.Model)
		assert.Equal(t, "DIESEL", resp.FuelType)
		assert.Equal(t, g.ID, resp.GarageID)
		vehicleRepo.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("denies addition to a full garage", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		garageRepo := new(MockGarageRepository)
		service := NewVehicleService(vehicleRepo, garageRepo, nil, zap.NewNop())

		g := newTestGarage(t, "Garage")
		for i := 0; i < garage.MaxVehicles; i++ {
			require.NoError(t, g.RegisterVehicleAdded())
		}
		garageRepo.On("FindByID", ctx, g.ID).Return(g, nil)

		resp, err := service.Add(ctx, g.ID, req)
		assert.Nil(t, resp)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CAPACITY_EXCEEDED", domainErr.Code)
		assert.Contains(t, domainErr.Message, "maximum limit of 50 vehicles")
		vehicleRepo.AssertNotCalled(t, "CreateInGarage")
	})

	t.Run("returns not found for unknown garage", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		garageRepo := new(MockGarageRepository)
		service := NewVehicleService(vehicleRepo, garageRepo, nil, zap.NewNop())

		missingID := uuid.New()
		garageRepo.On("FindByID", ctx, missingID).Return(nil, shared.ErrNotFound)

		resp, err := service.Add(ctx, missingID, req)
		assert.Nil(t, resp)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.Contains(t, domainErr.Message, missingID.String())
	})

	t.Run("rejects unknown fuel type", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		garageRepo := new(MockGarageRepository)
		service := NewVehicleService(vehicleRepo, garageRepo, nil, zap.NewNop())

		g := newTestGarage(t, "Garage")
		garageRepo.On("FindByID", ctx, g.ID).Return(g, nil)

		resp, err := service.Add(ctx, g.ID, CreateVehicleRequest{
			Brand: "Renault", Model: "Clio", FuelType: "STEAM", ManufacturingYear: 2021,
		})
		assert.Nil(t, resp)
		assert.Error(t, err)
		vehicleRepo.AssertNotCalled(t, "CreateInGarage")
	})

	t.Run("a failing event bus does not fail the addition", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		garageRepo := new(MockGarageRepository)
		bus := new(MockEventBus)
		service := NewVehicleService(vehicleRepo, garageRepo, bus, zap.NewNop())

		g := newTestGarage(t, "Garage")
		garageRepo.On("FindByID", ctx, g.ID).Return(g, nil)
		vehicleRepo.On("CreateInGarage", ctx, mock.AnythingOfType("*garage.Vehicle")).Return(nil)
		bus.On("Publish", ctx, mock.Anything).Return(assert.AnError)

		resp, err := service.Add(ctx, g.ID, req)
		require.NoError(t, err)
		require.NotNil(t, resp)
	})
}

func TestVehicleService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates descriptive fields", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		service := NewVehicleService(vehicleRepo, nil, nil, zap.NewNop())

		garageID := uuid.New()
		v, err := garage.NewVehicle(garageID, "Renault", "Clio", garage.FuelTypeDiesel, 2020)
		require.NoError(t, err)
		v.ClearDomainEvents()

		vehicleRepo.On("FindByID", ctx, v.ID).Return(v, nil)
		vehicleRepo.On("Save", ctx, v).Return(nil)

		resp, err := service.Update(ctx, v.ID, UpdateVehicleRequest{
			Brand: "Renault", Model: "Captur", FuelType: "petrol", ManufacturingYear: 2022,
		})
		require.NoError(t, err)
		assert.Equal(t, "Captur", resp.Model)
		assert.Equal(t, "PETROL", resp.FuelType)
		assert.Equal(t, garageID, resp.GarageID)
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("returns not found for unknown vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		service := NewVehicleService(vehicleRepo, nil, nil, zap.NewNop())

		missingID := uuid.New()
		vehicleRepo.On("FindByID", ctx, missingID).Return(nil, shared.ErrNotFound)

		resp, err := service.Update(ctx, missingID, UpdateVehicleRequest{
			Brand: "Renault", Model: "Clio", FuelType: "DIESEL", ManufacturingYear: 2021,
		})
		assert.Nil(t, resp)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		vehicleRepo.AssertNotCalled(t, "Save")
	})
}

func TestVehicleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes vehicle with accessories", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		service := NewVehicleService(vehicleRepo, nil, nil, zap.NewNop())

		vehicleID := uuid.New()
		vehicleRepo.On("DeleteWithAccessories", ctx, vehicleID).Return(nil)

		assert.NoError(t, service.Delete(ctx, vehicleID))
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("returns not found for unknown vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		service := NewVehicleService(vehicleRepo, nil, nil, zap.NewNop())

		missingID := uuid.New()
		vehicleRepo.On("DeleteWithAccessories", ctx, missingID).Return(shared.ErrNotFound)

		err := service.Delete(ctx, missingID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.Contains(t, domainErr.Message, missingID.String())
	})
}

func TestVehicleService_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("lists vehicles of a garage", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		service := NewVehicleService(vehicleRepo, nil, nil, zap.NewNop())

		garageID := uuid.New()
		v, err := garage.NewVehicle(garageID, "Renault", "Zoe", garage.FuelTypeElectric, 2023)
		require.NoError(t, err)
		vehicleRepo.On("FindByGarageID", ctx, garageID).Return([]garage.Vehicle{*v}, nil)

		resp, err := service.ListByGarage(ctx, garageID)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Zoe", resp[0].Model)
	})

	t.Run("unknown garage yields an empty list", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		service := NewVehicleService(vehicleRepo, nil, nil, zap.NewNop())

		garageID := uuid.New()
		vehicleRepo.On("FindByGarageID", ctx, garageID).Return([]garage.Vehicle{}, nil)

		resp, err := service.ListByGarage(ctx, garageID)
		require.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("lists vehicles by model across garages", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		service := NewVehicleService(vehicleRepo, nil, nil, zap.NewNop())

		v1, err := garage.NewVehicle(uuid.New(), "Renault", "Clio", garage.FuelTypeDiesel, 2020)
		require.NoError(t, err)
		v2, err := garage.NewVehicle(uuid.New(), "Renault", "Clio", garage.FuelTypePetrol, 2022)
		require.NoError(t, err)
		vehicleRepo.On("FindByModel", ctx, "Clio").Return([]garage.Vehicle{*v1, *v2}, nil)

		resp, err := service.ListByModel(ctx, "Clio")
		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("rejects an empty model", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		service := NewVehicleService(vehicleRepo, nil, nil, zap.NewNop())

		resp, err := service.ListByModel(ctx, "")
		assert.Nil(t, resp)
		assert.Error(t, err)
		vehicleRepo.AssertNotCalled(t, "FindByModel")
	})
}
