package garage

import (
	"time"

	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Accessory is a priced, typed item owned by exactly one vehicle
type Accessory struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Type        string          `gorm:"type:varchar(50);not null"`
	VehicleID   uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Accessory) TableName() string {
	return "accessories"
}

// NewAccessory creates an accessory bound to a vehicle. Price must be
// strictly positive even when transport-level validation is bypassed.
func NewAccessory(vehicleID uuid.UUID, name, description string, price decimal.Decimal, accessoryType string) (*Accessory, error) {
	if vehicleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VEHICLE", "Accessory requires an owning vehicle")
	}
	if err := validateAccessoryFields(name, price, accessoryType); err != nil {
		return nil, err
	}

	return &Accessory{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
		Type:        accessoryType,
		VehicleID:   vehicleID,
	}, nil
}

// Update overwrites name, description, price and type
func (a *Accessory) Update(name, description string, price decimal.Decimal, accessoryType string) error {
	if err := validateAccessoryFields(name, price, accessoryType); err != nil {
		return err
	}

	a.Name = name
	a.Description = description
	a.Price = price
	a.Type = accessoryType
	a.UpdatedAt = time.Now()

	return nil
}

func validateAccessoryFields(name string, price decimal.Decimal, accessoryType string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Accessory name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Accessory name cannot exceed 100 characters")
	}
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Accessory price must be greater than zero")
	}
	if accessoryType == "" {
		return shared.NewDomainError("INVALID_TYPE", "Accessory type cannot be empty")
	}
	if len(accessoryType) > 50 {
		return shared.NewDomainError("INVALID_TYPE", "Accessory type cannot exceed 50 characters")
	}
	return nil
}
