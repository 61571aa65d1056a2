package garage

import (
	"fmt"
	"strings"
	"time"

	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FuelType represents a vehicle's fuel type
type FuelType string

const (
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypePetrol   FuelType = "PETROL"
	FuelTypeElectric FuelType = "ELECTRIC"
	FuelTypeHybrid   FuelType = "HYBRID"
)

// firstVehicleYear is the manufacturing year of the earliest automobile
const firstVehicleYear = 1886

// Vehicle is owned by exactly one garage. The owning garage and the creation
// timestamp are immutable after creation.
type Vehicle struct {
	shared.BaseAggregateRoot
	Brand             string    `gorm:"type:varchar(100);not null"`
	Model             string    `gorm:"type:varchar(100);not null;index"`
	FuelType          FuelType  `gorm:"type:varchar(20);not null;index"`
	ManufacturingYear int       `gorm:"not null"`
	GarageID          uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// NewVehicle creates a vehicle bound to a garage. Fuel type is normalized to
// its canonical uppercase form.
func NewVehicle(garageID uuid.UUID, brand, model string, fuelType FuelType, manufacturingYear int) (*Vehicle, error) {
	if garageID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_GARAGE", "Vehicle requires an owning garage")
	}
	normalized, err := NormalizeFuelType(fuelType)
	if err != nil {
		return nil, err
	}
	if err := validateVehicleFields(brand, model, manufacturingYear); err != nil {
		return nil, err
	}

	v := &Vehicle{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Brand:             brand,
		Model:             model,
		FuelType:          normalized,
		ManufacturingYear: manufacturingYear,
		GarageID:          garageID,
	}

	v.AddDomainEvent(NewVehicleCreatedEvent(v))

	return v, nil
}

// Update overwrites brand, model, fuel type and manufacturing year. The
// owning garage and creation timestamp are never touched.
func (v *Vehicle) Update(brand, model string, fuelType FuelType, manufacturingYear int) error {
	normalized, err := NormalizeFuelType(fuelType)
	if err != nil {
		return err
	}
	if err := validateVehicleFields(brand, model, manufacturingYear); err != nil {
		return err
	}

	v.Brand = brand
	v.Model = model
	v.FuelType = normalized
	v.ManufacturingYear = manufacturingYear
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// NormalizeFuelType maps a fuel type to its canonical uppercase value
func NormalizeFuelType(ft FuelType) (FuelType, error) {
	normalized := FuelType(strings.ToUpper(string(ft)))
	switch normalized {
	case FuelTypeDiesel, FuelTypePetrol, FuelTypeElectric, FuelTypeHybrid:
		return normalized, nil
	default:
		return "", shared.NewDomainError("INVALID_FUEL_TYPE",
			fmt.Sprintf("Invalid fuel type: %q", ft))
	}
}

func validateVehicleFields(brand, model string, manufacturingYear int) error {
	if brand == "" {
		return shared.NewDomainError("INVALID_BRAND", "Vehicle brand cannot be empty")
	}
	if len(brand) > 100 {
		return shared.NewDomainError("INVALID_BRAND", "Vehicle brand cannot exceed 100 characters")
	}
	if model == "" {
		return shared.NewDomainError("INVALID_MODEL", "Vehicle model cannot be empty")
	}
	if len(model) > 100 {
		return shared.NewDomainError("INVALID_MODEL", "Vehicle model cannot exceed 100 characters")
	}
	if manufacturingYear < firstVehicleYear || manufacturingYear > time.Now().Year()+1 {
		return shared.NewDomainError("INVALID_YEAR",
			fmt.Sprintf("Manufacturing year %d is out of range", manufacturingYear))
	}
	return nil
}
