package dto

import (
	"io"

	"github.com/greensteps/greensteps-api/internal/model"
)

// AvatarFile is an avatar image uploaded with a profile update.
type AvatarFile struct {
	Reader   io.Reader
	FileName string
}

type UpdateProfileInput struct {
	Name     *string `json:"name" form:"name"`
	Password *string `json:"password" form:"password"`

	DefaultMode       *string  `json:"default_mode" form:"default_mode"`
	DefaultDistanceKm *float64 `json:"default_distance_km" form:"default_distance_km"`
	DefaultTrips      *int     `json:"default_trips" form:"default_trips"`
}

// LevelStatus mirrors the eco-level progression computed by the service
// layer for API responses.
type LevelStatus struct {
	LevelName     string  `json:"level_name"`
	NextLevel     string  `json:"next_level"`
	CurrentPoints int     `json:"current_points"`
	TargetPoints  int     `json:"target_points"`
	Progress      float64 `json:"progress"`
}

type ProfileResponse struct {
	User  *model.User `json:"user"`
	Level LevelStatus `json:"level"`
}
