package garage

import (
	"fmt"
	"time"

	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DayOfWeek identifies the weekday an opening time applies to
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// timeLayout is the wall-clock format used for opening hours
const timeLayout = "15:04"

// OpeningTime is a day-of-week plus time-range record owned by one garage.
// A garage may carry several entries for the same day.
type OpeningTime struct {
	shared.BaseEntity
	GarageID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DayOfWeek DayOfWeek `gorm:"type:varchar(10);not null"`
	StartTime string    `gorm:"type:varchar(5);not null"`
	EndTime   string    `gorm:"type:varchar(5);not null"`
}

// TableName returns the table name for GORM
func (OpeningTime) TableName() string {
	return "opening_times"
}

// NewOpeningTime creates an opening time record. Times use "HH:MM" and the
// range must be non-empty.
func NewOpeningTime(day DayOfWeek, startTime, endTime string) (*OpeningTime, error) {
	ot := &OpeningTime{
		BaseEntity: shared.NewBaseEntity(),
		DayOfWeek:  day,
		StartTime:  startTime,
		EndTime:    endTime,
	}
	if err := ot.validate(); err != nil {
		return nil, err
	}
	return ot, nil
}

func (ot *OpeningTime) validate() error {
	switch ot.DayOfWeek {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
	default:
		return shared.NewDomainError("INVALID_DAY_OF_WEEK",
			fmt.Sprintf("Invalid day of week: %q", ot.DayOfWeek))
	}

	start, err := time.Parse(timeLayout, ot.StartTime)
	if err != nil {
		return shared.NewDomainError("INVALID_TIME",
			fmt.Sprintf("Invalid start time %q, expected HH:MM", ot.StartTime))
	}
	end, err := time.Parse(timeLayout, ot.EndTime)
	if err != nil {
		return shared.NewDomainError("INVALID_TIME",
			fmt.Sprintf("Invalid end time %q, expected HH:MM", ot.EndTime))
	}
	if !start.Before(end) {
		return shared.NewDomainError("INVALID_TIME_RANGE",
			fmt.Sprintf("Start time %s must be before end time %s", ot.StartTime, ot.EndTime))
	}
	return nil
}
