package persistence

import (
	"context"
	"testing"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory database with the full schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&garage.Garage{},
		&garage.OpeningTime{},
		&garage.Vehicle{},
		&garage.Accessory{},
	))
	return db
}

func seedGarage(t *testing.T, repo *GormGarageRepository, name string) *garage.Garage {
	t.Helper()
	g, err := garage.NewGarage(name, "1 Test Street", "0123456789", "test@garagehub.fr")
	require.NoError(t, err)
	g.ClearDomainEvents()
	require.NoError(t, repo.Save(context.Background(), g))
	return g
}

func seedVehicle(t *testing.T, repo *GormVehicleRepository, garageID uuid.UUID, model string, fuelType garage.FuelType) *garage.Vehicle {
	t.Helper()
	v, err := garage.NewVehicle(garageID, "Renault", model, fuelType, 2021)
	require.NoError(t, err)
	v.ClearDomainEvents()
	require.NoError(t, repo.CreateInGarage(context.Background(), v))
	return v
}

func TestGarageAggregate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	garageRepo := NewGormGarageRepository(db)

	g, err := garage.NewGarage("Garage Central Paris", "12 Rue de Rivoli", "+33 1 42 00 00 00", "paris@garagehub.fr")
	require.NoError(t, err)
	g.ClearDomainEvents()
	morning, err := garage.NewOpeningTime(garage.Monday, "08:00", "12:00")
	require.NoError(t, err)
	require.NoError(t, g.ReplaceOpeningTimes([]garage.OpeningTime{*morning}))
	require.NoError(t, garageRepo.Save(ctx, g))

	loaded, err := garageRepo.FindByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Garage Central Paris", loaded.Name)
	require.Len(t, loaded.OpeningTimes, 1)
	assert.Equal(t, garage.Monday, loaded.OpeningTimes[0].DayOfWeek)

	t.Run("save replaces the opening time set", func(t *testing.T) {
		saturday, err := garage.NewOpeningTime(garage.Saturday, "09:00", "13:00")
		require.NoError(t, err)
		sunday, err := garage.NewOpeningTime(garage.Sunday, "10:00", "12:00")
		require.NoError(t, err)
		require.NoError(t, loaded.ReplaceOpeningTimes([]garage.OpeningTime{*saturday, *sunday}))
		require.NoError(t, garageRepo.Save(ctx, loaded))

		reloaded, err := garageRepo.FindByID(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.OpeningTimes, 2)
		for _, ot := range reloaded.OpeningTimes {
			assert.NotEqual(t, garage.Monday, ot.DayOfWeek)
		}
	})
}

func TestVehicleLifecycle_CountInvariant(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	garageRepo := NewGormGarageRepository(db)
	vehicleRepo := NewGormVehicleRepository(db)
	accessoryRepo := NewGormAccessoryRepository(db)

	g := seedGarage(t, garageRepo, "Garage Lyon")

	t.Run("adding a vehicle increments the stored count", func(t *testing.T) {
		seedVehicle(t, vehicleRepo, g.ID, "Clio", garage.FuelTypeDiesel)

		loaded, err := garageRepo.FindByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.VehicleCount)
	})

	t.Run("the garage refuses vehicles beyond its capacity", func(t *testing.T) {
		for i := 1; i < garage.MaxVehicles; i++ {
			seedVehicle(t, vehicleRepo, g.ID, "Megane", garage.FuelTypePetrol)
		}

		v, err := garage.NewVehicle(g.ID, "Renault", "Twingo", garage.FuelTypePetrol, 2021)
		require.NoError(t, err)
		err = vehicleRepo.CreateInGarage(ctx, v)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CAPACITY_EXCEEDED", domainErr.Code)

		loaded, err := garageRepo.FindByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, garage.MaxVehicles, loaded.VehicleCount)
	})

	t.Run("deleting a vehicle removes its accessories and frees capacity", func(t *testing.T) {
		vehicles, err := vehicleRepo.FindByGarageID(ctx, g.ID)
		require.NoError(t, err)
		victim := vehicles[0]

		a, err := garage.NewAccessory(victim.ID, "Spare Tire", "", decimal.NewFromInt(80), "SAFETY")
		require.NoError(t, err)
		require.NoError(t, accessoryRepo.Save(ctx, a))

		require.NoError(t, vehicleRepo.DeleteWithAccessories(ctx, victim.ID))

		_, err = vehicleRepo.FindByID(ctx, victim.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		orphans, err := accessoryRepo.FindByVehicleID(ctx, victim.ID)
		require.NoError(t, err)
		assert.Empty(t, orphans)

		loaded, err := garageRepo.FindByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, garage.MaxVehicles-1, loaded.VehicleCount)

		replacement, err := garage.NewVehicle(g.ID, "Renault", "Twingo", garage.FuelTypePetrol, 2021)
		require.NoError(t, err)
		assert.NoError(t, vehicleRepo.CreateInGarage(ctx, replacement))
	})
}

func TestGarageSave_PreservesVehicleCount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	garageRepo := NewGormGarageRepository(db)
	vehicleRepo := NewGormVehicleRepository(db)

	g := seedGarage(t, garageRepo, "Garage Nantes")

	stale, err := garageRepo.FindByID(ctx, g.ID)
	require.NoError(t, err)

	// A vehicle arrives between the read and the contact update
	seedVehicle(t, vehicleRepo, g.ID, "Captur", garage.FuelTypeHybrid)

	require.NoError(t, stale.Update("Garage Nantes Atlantique", "3 Quai de la Fosse", "0240000000", "nantes@garagehub.fr"))
	require.NoError(t, garageRepo.Save(ctx, stale))

	reloaded, err := garageRepo.FindByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Garage Nantes Atlantique", reloaded.Name)
	assert.Equal(t, 1, reloaded.VehicleCount)
}

func TestGarageDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	garageRepo := NewGormGarageRepository(db)
	vehicleRepo := NewGormVehicleRepository(db)
	accessoryRepo := NewGormAccessoryRepository(db)

	g := seedGarage(t, garageRepo, "Garage Marseille")
	v := seedVehicle(t, vehicleRepo, g.ID, "Zoe", garage.FuelTypeElectric)
	a, err := garage.NewAccessory(v.ID, "Charging Cable", "Type 2", decimal.NewFromInt(200), "CHARGING")
	require.NoError(t, err)
	require.NoError(t, accessoryRepo.Save(ctx, a))

	require.NoError(t, garageRepo.Delete(ctx, g.ID))

	_, err = garageRepo.FindByID(ctx, g.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	vehicles, err := vehicleRepo.FindByGarageID(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, vehicles)

	accessories, err := accessoryRepo.FindByVehicleID(ctx, v.ID)
	require.NoError(t, err)
	assert.Empty(t, accessories)

	t.Run("deleting twice reports not found", func(t *testing.T) {
		assert.ErrorIs(t, garageRepo.Delete(ctx, g.ID), shared.ErrNotFound)
	})
}

func TestGarageSearchQueries(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	garageRepo := NewGormGarageRepository(db)
	vehicleRepo := NewGormVehicleRepository(db)
	accessoryRepo := NewGormAccessoryRepository(db)

	garageA := seedGarage(t, garageRepo, "Garage Central Paris")
	garageB := seedGarage(t, garageRepo, "Atelier Bordeaux")

	clio := seedVehicle(t, vehicleRepo, garageA.ID, "Clio", garage.FuelTypeDiesel)
	seedVehicle(t, vehicleRepo, garageB.ID, "Zoe", garage.FuelTypeElectric)

	rack, err := garage.NewAccessory(clio.ID, "Roof Rack", "", decimal.NewFromInt(120), "TRANSPORT")
	require.NoError(t, err)
	require.NoError(t, accessoryRepo.Save(ctx, rack))

	t.Run("name search is a case-insensitive substring match", func(t *testing.T) {
		garages, err := garageRepo.FindByNameContaining(ctx, "central")
		require.NoError(t, err)
		require.Len(t, garages, 1)
		assert.Equal(t, garageA.ID, garages[0].ID)
	})

	t.Run("model search is an exact match", func(t *testing.T) {
		garages, err := garageRepo.FindByVehicleModel(ctx, "Clio")
		require.NoError(t, err)
		require.Len(t, garages, 1)
		assert.Equal(t, garageA.ID, garages[0].ID)

		garages, err = garageRepo.FindByVehicleModel(ctx, "Cli")
		require.NoError(t, err)
		assert.Empty(t, garages)
	})

	t.Run("fuel type search matches the normalized value", func(t *testing.T) {
		garages, err := garageRepo.FindByVehicleFuelType(ctx, garage.FuelTypeElectric)
		require.NoError(t, err)
		require.Len(t, garages, 1)
		assert.Equal(t, garageB.ID, garages[0].ID)
	})

	t.Run("accessory search finds the owning garage", func(t *testing.T) {
		garages, err := garageRepo.FindByAccessoryName(ctx, "Roof Rack")
		require.NoError(t, err)
		require.Len(t, garages, 1)
		assert.Equal(t, garageA.ID, garages[0].ID)
	})

	t.Run("a garage matching no criterion is absent", func(t *testing.T) {
		garages, err := garageRepo.FindByVehicleFuelType(ctx, garage.FuelTypeHybrid)
		require.NoError(t, err)
		assert.Empty(t, garages)
	})
}
