package model

import (
	"time"

	"github.com/google/uuid"
)

// TransportMode is the fixed set of transport choices a user can log.
type TransportMode string

const (
	ModeCar     TransportMode = "Car"
	ModeBike    TransportMode = "Bike" // motorcycle
	ModeBus     TransportMode = "Bus"
	ModeWalking TransportMode = "Walking"
	ModeBicycle TransportMode = "Bicycle"
	ModeEV      TransportMode = "EV"
)

var TransportModes = []TransportMode{ModeCar, ModeBike, ModeBus, ModeWalking, ModeBicycle, ModeEV}

func (m TransportMode) Valid() bool {
	switch m {
	case ModeCar, ModeBike, ModeBus, ModeWalking, ModeBicycle, ModeEV:
		return true
	}
	return false
}

var Departments = []string{
	"Computer Science",
	"Business",
	"Arts & Humanities",
	"Engineering",
	"Medicine",
}

var Campuses = []string{
	"Main Campus",
	"South Campus",
	"Online",
	"North Campus",
}

// TravelLog is one user's transport record for a single calendar date.
// Re-logging the same date replaces the row wholesale; emissions and points
// are always derived from (mode, distance, trips), never edited directly.
type TravelLog struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID     `gorm:"type:uuid;uniqueIndex:idx_user_date,priority:1;not null" json:"user_id"`
	User       User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Date       string        `gorm:"size:10;uniqueIndex:idx_user_date,priority:2;not null" json:"date"` // YYYY-MM-DD
	Mode       TransportMode `gorm:"size:20;not null" json:"mode"`
	DistanceKm float64       `gorm:"not null" json:"distance_km"`
	Trips      int           `gorm:"not null" json:"trips"`

	EmissionsKg float64 `gorm:"not null" json:"emissions_kg"`
	Points      int     `gorm:"not null" json:"points"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
