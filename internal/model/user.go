package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Department   string    `gorm:"size:100;index;not null" json:"department"`
	Campus       string    `gorm:"size:100;not null" json:"campus"`
	IsAdmin      bool      `gorm:"default:false" json:"-"`
	AvatarURL    *string   `gorm:"type:text" json:"avatar_url,omitempty"`

	// Running totals. Mutated only by the travel service inside
	// CommitDailyLog, always by the diff of a replaced daily entry.
	TotalPoints    int     `gorm:"default:0" json:"total_points"`
	TotalEmissions float64 `gorm:"default:0" json:"total_emissions"`
	DailyPoints    int     `gorm:"default:0" json:"daily_points"`
	DailyEmissions float64 `gorm:"default:0" json:"daily_emissions"`
	TodayMode      *string `gorm:"size:20" json:"today_mode,omitempty"`

	Streak      int     `gorm:"default:0" json:"streak"`
	WalkedKm    float64 `gorm:"default:0" json:"walked_km"`
	CycledKm    float64 `gorm:"default:0" json:"cycled_km"`
	LastLogDate *string `gorm:"size:10" json:"last_log_date,omitempty"` // YYYY-MM-DD

	// Commute baseline collected at signup, used to prefill the daily
	// travel dialog. Never produces emissions on its own.
	DefaultMode       string  `gorm:"size:20" json:"default_mode"`
	DefaultDistanceKm float64 `gorm:"default:0" json:"default_distance_km"`
	DefaultTrips      int     `gorm:"default:1" json:"default_trips"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
