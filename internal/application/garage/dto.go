package garage

import (
	"time"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Garage DTOs
// =============================================================================

// OpeningTimeInput represents an opening time in create/update requests
type OpeningTimeInput struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// CreateGarageRequest represents a request to create a new garage
type CreateGarageRequest struct {
	Name         string             `json:"name" binding:"required,min=1,max=100"`
	Address      string             `json:"address" binding:"required,min=1,max=255"`
	Telephone    string             `json:"telephone" binding:"required,min=1,max=50"`
	Email        string             `json:"email" binding:"required,email,max=200"`
	OpeningTimes []OpeningTimeInput `json:"opening_times" binding:"omitempty,dive"`
}

// UpdateGarageRequest represents a request to update a garage. A nil
// OpeningTimes leaves the existing set untouched; a non-nil slice replaces it.
type UpdateGarageRequest struct {
	Name         string              `json:"name" binding:"required,min=1,max=100"`
	Address      string              `json:"address" binding:"required,min=1,max=255"`
	Telephone    string              `json:"telephone" binding:"required,min=1,max=50"`
	Email        string              `json:"email" binding:"required,email,max=200"`
	OpeningTimes *[]OpeningTimeInput `json:"opening_times" binding:"omitempty,dive"`
}

// OpeningTimeResponse represents an opening time in API responses
type OpeningTimeResponse struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek string    `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

// GarageResponse represents a garage in API responses
type GarageResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Address      string                `json:"address"`
	Telephone    string                `json:"telephone"`
	Email        string                `json:"email"`
	VehicleCount int                   `json:"vehicle_count"`
	OpeningTimes []OpeningTimeResponse `json:"opening_times"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// GarageListFilter represents filter options for the garage list
type GarageListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=name created_at vehicle_count"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SearchCriteria represents the optional filters of a garage search.
// Empty fields are not applied; the set fields are combined with OR.
type SearchCriteria struct {
	Name          string `form:"name" binding:"omitempty,min=1,max=100"`
	Model         string `form:"model" binding:"omitempty,min=1,max=50"`
	FuelType      string `form:"fuel_type" binding:"omitempty,min=1,max=50"`
	AccessoryName string `form:"accessory" binding:"omitempty,min=1,max=100"`
}

// IsEmpty reports whether no criterion is set
func (c SearchCriteria) IsEmpty() bool {
	return c.Name == "" && c.Model == "" && c.FuelType == "" && c.AccessoryName == ""
}

// =============================================================================
// Vehicle DTOs
// =============================================================================

// CreateVehicleRequest represents a request to add a vehicle to a garage
type CreateVehicleRequest struct {
	Brand             string `json:"brand" binding:"required,min=1,max=100"`
	Model             string `json:"model" binding:"required,min=1,max=100"`
	FuelType          string `json:"fuel_type" binding:"required,min=1,max=20"`
	ManufacturingYear int    `json:"manufacturing_year" binding:"required,min=1886"`
}

// UpdateVehicleRequest represents a request to update a vehicle
type UpdateVehicleRequest struct {
	Brand             string `json:"brand" binding:"required,min=1,max=100"`
	Model             string `json:"model" binding:"required,min=1,max=100"`
	FuelType          string `json:"fuel_type" binding:"required,min=1,max=20"`
	ManufacturingYear int    `json:"manufacturing_year" binding:"required,min=1886"`
}

// VehicleResponse represents a vehicle in API responses
type VehicleResponse struct {
	ID                uuid.UUID `json:"id"`
	Brand             string    `json:"brand"`
	Model             string    `json:"model"`
	FuelType          string    `json:"fuel_type"`
	ManufacturingYear int       `json:"manufacturing_year"`
	GarageID          uuid.UUID `json:"garage_id"`
	CreatedAt         time.Time `json:"created_at"`
}

// =============================================================================
// Accessory DTOs
// =============================================================================

// CreateAccessoryRequest represents a request to add an accessory to a vehicle
type CreateAccessoryRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Type        string          `json:"type" binding:"required,min=1,max=50"`
}

// UpdateAccessoryRequest represents a request to update an accessory
type UpdateAccessoryRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Type        string          `json:"type" binding:"required,min=1,max=50"`
}

// AccessoryResponse represents an accessory in API responses
type AccessoryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Type        string          `json:"type"`
	VehicleID   uuid.UUID       `json:"vehicle_id"`
}

// =============================================================================
// Mappers
// =============================================================================

// ToGarageResponse maps a garage entity to its API representation
func ToGarageResponse(g *garage.Garage) GarageResponse {
	times := make([]OpeningTimeResponse, len(g.OpeningTimes))
	for i, ot := range g.OpeningTimes {
		times[i] = OpeningTimeResponse{
			ID:        ot.ID,
			DayOfWeek: string(ot.DayOfWeek),
			StartTime: ot.StartTime,
			EndTime:   ot.EndTime,
		}
	}
	return GarageResponse{
		ID:           g.ID,
		Name:         g.Name,
		Address:      g.Address,
		Telephone:    g.Telephone,
		Email:        g.Email,
		VehicleCount: g.VehicleCount,
		OpeningTimes: times,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// ToGarageResponses maps a slice of garages
func ToGarageResponses(garages []garage.Garage) []GarageResponse {
	responses := make([]GarageResponse, len(garages))
	for i := range garages {
		responses[i] = ToGarageResponse(&garages[i])
	}
	return responses
}

// ToVehicleResponse maps a vehicle entity to its API representation
func ToVehicleResponse(v *garage.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                v.ID,
		Brand:             v.Brand,
		Model:             v.Model,
		FuelType:          string(v.FuelType),
		ManufacturingYear: v.ManufacturingYear,
		GarageID:          v.GarageID,
		CreatedAt:         v.CreatedAt,
	}
}

// ToVehicleResponses maps a slice of vehicles
func ToVehicleResponses(vehicles []garage.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = ToVehicleResponse(&vehicles[i])
	}
	return responses
}

// ToAccessoryResponse maps an accessory entity to its API representation
func ToAccessoryResponse(a *garage.Accessory) AccessoryResponse {
	return AccessoryResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price,
		Type:        a.Type,
		VehicleID:   a.VehicleID,
	}
}

// ToAccessoryResponses maps a slice of accessories
func ToAccessoryResponses(accessories []garage.Accessory) []AccessoryResponse {
	responses := make([]AccessoryResponse, len(accessories))
	for i := range accessories {
		responses[i] = ToAccessoryResponse(&accessories[i])
	}
	return responses
}

func toOpeningTimes(inputs []OpeningTimeInput) ([]garage.OpeningTime, error) {
	times := make([]garage.OpeningTime, 0, len(inputs))
	for _, in := range inputs {
		ot, err := garage.NewOpeningTime(garage.DayOfWeek(in.DayOfWeek), in.StartTime, in.EndTime)
		if err != nil {
			return nil, err
		}
		times = append(times, *ot)
	}
	return times, nil
}
