package garage

import (
	"fmt"
	"strings"
	"time"

	"github.com/garagehub/backend/internal/domain/shared"
)

// MaxVehicles is the maximum number of vehicles a garage can hold
const MaxVehicles = 50

// Garage is the aggregate root of the garage/vehicle/accessory hierarchy.
// VehicleCount mirrors the number of owned vehicle rows and is maintained
// together with vehicle inserts and deletes in the same transaction.
type Garage struct {
	shared.BaseAggregateRoot
	Name         string        `gorm:"type:varchar(100);not null;index"`
	Address      string        `gorm:"type:varchar(255);not null"`
	Telephone    string        `gorm:"type:varchar(50);not null"`
	Email        string        `gorm:"type:varchar(200);not null"`
	VehicleCount int           `gorm:"not null;default:0"`
	OpeningTimes []OpeningTime `gorm:"foreignKey:GarageID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Garage) TableName() string {
	return "garages"
}

// NewGarage creates a new garage with no vehicles
func NewGarage(name, address, telephone, email string) (*Garage, error) {
	if err := validateGarageFields(name, address, telephone, email); err != nil {
		return nil, err
	}

	g := &Garage{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Address:           address,
		Telephone:         telephone,
		Email:             email,
		VehicleCount:      0,
		OpeningTimes:      make([]OpeningTime, 0),
	}

	g.AddDomainEvent(NewGarageCreatedEvent(g))

	return g, nil
}

// Update updates the garage's contact information
func (g *Garage) Update(name, address, telephone, email string) error {
	if err := validateGarageFields(name, address, telephone, email); err != nil {
		return err
	}

	g.Name = name
	g.Address = address
	g.Telephone = telephone
	g.Email = email
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	return nil
}

// CanAddVehicle reports whether the garage has room for one more vehicle
func (g *Garage) CanAddVehicle() bool {
	return g.VehicleCount < MaxVehicles
}

// RegisterVehicleAdded increments the vehicle count, enforcing the capacity
// invariant. Must run in the same transaction as the vehicle insert.
func (g *Garage) RegisterVehicleAdded() error {
	if !g.CanAddVehicle() {
		return shared.NewDomainError("CAPACITY_EXCEEDED",
			fmt.Sprintf("Garage %s has reached the maximum limit of %d vehicles", g.ID, MaxVehicles))
	}
	g.VehicleCount++
	g.UpdatedAt = time.Now()
	return nil
}

// RegisterVehicleRemoved decrements the vehicle count, never below zero.
// Removal on a zero count is a no-op to tolerate out-of-band cleanup.
func (g *Garage) RegisterVehicleRemoved() {
	if g.VehicleCount > 0 {
		g.VehicleCount--
		g.UpdatedAt = time.Now()
	}
}

// ReplaceOpeningTimes replaces the garage's opening times. Multiple entries
// per day are allowed.
func (g *Garage) ReplaceOpeningTimes(times []OpeningTime) error {
	for i := range times {
		if err := times[i].validate(); err != nil {
			return err
		}
		times[i].GarageID = g.ID
	}
	g.OpeningTimes = times
	g.UpdatedAt = time.Now()
	return nil
}

// AddOpeningTime appends an opening time to the garage
func (g *Garage) AddOpeningTime(ot OpeningTime) error {
	if err := ot.validate(); err != nil {
		return err
	}
	ot.GarageID = g.ID
	g.OpeningTimes = append(g.OpeningTimes, ot)
	g.UpdatedAt = time.Now()
	return nil
}

func validateGarageFields(name, address, telephone, email string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Garage name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Garage name cannot exceed 100 characters")
	}
	if address == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Garage address cannot be empty")
	}
	if len(address) > 255 {
		return shared.NewDomainError("INVALID_ADDRESS", "Garage address cannot exceed 255 characters")
	}
	if telephone == "" {
		return shared.NewDomainError("INVALID_TELEPHONE", "Garage telephone cannot be empty")
	}
	if len(telephone) > 50 {
		return shared.NewDomainError("INVALID_TELEPHONE", "Garage telephone cannot exceed 50 characters")
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Garage email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Garage email cannot exceed 200 characters")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return shared.NewDomainError("INVALID_EMAIL", "Garage email format is invalid")
	}
	return nil
}
