package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	garageapp "github.com/garagehub/backend/internal/application/garage"
	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/garagehub/backend/internal/interfaces/http/dto"
	"github.com/garagehub/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockGarageRepository struct {
	mock.Mock
}

func (m *mockGarageRepository) FindByID(ctx context.Context, id uuid.UUID) (*garage.Garage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*garage.Garage), args.Error(1)
}

func (m *mockGarageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]garage.Garage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]garage.Garage), args.Error(1)
}

func (m *mockGarageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGarageRepository) Save(ctx context.Context, g *garage.Garage) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *mockGarageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockGarageRepository) FindByNameContaining(ctx context.Context, name string) ([]garage.Garage, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]garage.Garage), args.Error(1)
}

func (m *mockGarageRepository) FindByVehicleModel(ctx context.Context, model string) ([]garage.Garage, error) {
	args := m.Called(ctx, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]garage.Garage), args.Error(1)
}

func (m *mockGarageRepository) FindByVehicleFuelType(ctx context.Context, fuelType garage.FuelType) ([]garage.Garage, error) {
	args := m.Called(ctx, fuelType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]garage.Garage), args.Error(1)
}

func (m *mockGarageRepository) FindByAccessoryName(ctx context.Context, accessoryName string) ([]garage.Garage, error) {
	args := m.Called(ctx, accessoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]garage.Garage), args.Error(1)
}

type mockVehicleRepository struct {
	mock.Mock
}

func (m *mockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*garage.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*garage.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) FindByGarageID(ctx context.Context, garageID uuid.UUID) ([]garage.Vehicle, error) {
	args := m.Called(ctx, garageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]garage.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) FindByModel(ctx context.Context, model string) ([]garage.Vehicle, error) {
	args := m.Called(ctx, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]garage.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) CreateInGarage(ctx context.Context, v *garage.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVehicleRepository) Save(ctx context.Context, v *garage.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVehicleRepository) DeleteWithAccessories(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAccessoryRepository struct {
	mock.Mock
}

func (m *mockAccessoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*garage.Accessory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*garage.Accessory), args.Error(1)
}

func (m *mockAccessoryRepository) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]garage.Accessory, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]garage.Accessory), args.Error(1)
}

func (m *mockAccessoryRepository) Save(ctx context.Context, a *garage.Accessory) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAccessoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// noopEventBus satisfies the publisher without delivering anything
type noopEventBus struct{}

func (noopEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	return nil
}

// testEnv bundles the mocks behind a fully wired test server
type testEnv struct {
	garageRepo    *mockGarageRepository
	vehicleRepo   *mockVehicleRepository
	accessoryRepo *mockAccessoryRepository
	engine        *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		garageRepo:    new(mockGarageRepository),
		vehicleRepo:   new(mockVehicleRepository),
		accessoryRepo: new(mockAccessoryRepository),
	}

	logger := zap.NewNop()
	garageService := garageapp.NewGarageService(env.garageRepo, noopEventBus{}, logger)
	vehicleService := garageapp.NewVehicleService(env.vehicleRepo, env.garageRepo, noopEventBus{}, logger)
	accessoryService := garageapp.NewAccessoryService(env.accessoryRepo, env.vehicleRepo)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	api := engine.Group("/api")
	NewGarageHandler(garageService).RegisterRoutes(api)
	NewVehicleHandler(vehicleService).RegisterRoutes(api)
	NewAccessoryHandler(accessoryService).RegisterRoutes(api)

	env.engine = engine
	return env
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// apiResponse mirrors the response envelope with raw data for assertions
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func newStoredGarage(t *testing.T, name string) *garage.Garage {
	t.Helper()
	g, err := garage.NewGarage(name, "12 Rue de Rivoli", "+33 1 42 00 00 00", "paris@garagehub.fr")
	require.NoError(t, err)
	g.ClearDomainEvents()
	return g
}

func newStoredVehicle(t *testing.T, garageID uuid.UUID) *garage.Vehicle {
	t.Helper()
	v, err := garage.NewVehicle(garageID, "Renault", "Clio", garage.FuelTypeDiesel, 2021)
	require.NoError(t, err)
	v.ClearDomainEvents()
	return v
}
