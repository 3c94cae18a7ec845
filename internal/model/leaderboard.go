package model

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is a denormalized projection of one user's standing.
// It is derived state: it must always be reconcilable by recomputing from
// the users table, and it is only written inside the same transaction that
// commits a daily log.
type LeaderboardEntry struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User          User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Department    string    `gorm:"size:100;index;not null" json:"department"`
	Campus        string    `gorm:"size:100;not null" json:"campus"`
	TotalPoints   int       `gorm:"default:0" json:"total_points"`
	DailyPoints   int       `gorm:"default:0" json:"daily_points"`
	LastUpdatedAt time.Time `gorm:"autoUpdateTime" json:"last_updated_at"`
}
