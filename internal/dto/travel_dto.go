package dto

import "github.com/greensteps/greensteps-api/internal/model"

// LogTravelInput is today's transport log submission. DistanceKm is the
// distance of a single trip; Trips is the number of such trips taken today.
type LogTravelInput struct {
	Mode       string  `json:"mode" binding:"required"`
	DistanceKm float64 `json:"distance_km" binding:"gte=0"`
	Trips      int     `json:"trips" binding:"required,min=1"`
}

type TravelLogResponse struct {
	Entry *model.TravelLog `json:"entry"`
	User  *model.User      `json:"user"`
	Level LevelStatus      `json:"level"`
}

// DailyData is one point on the history charts.
type DailyData struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Emissions float64 `json:"emissions"`
	Points    int     `json:"points"`
}

type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}
