package service

import "math"

// LevelStatus describes where a user sits in the eco-level progression.
// Levels are based on all-time points and never demote.
type LevelStatus struct {
	LevelName     string  `json:"level_name"` // Seedling, Sprout, Sapling, Grove, Forest Guardian
	NextLevel     string  `json:"next_level"` // next level to reach, or "Max Level"
	CurrentPoints int     `json:"current_points"`
	TargetPoints  int     `json:"target_points"` // points needed for the next level
	Progress      float64 `json:"progress"`      // 0-100
}

// Level thresholds (all-time points).
const (
	PointsForestGuardian = 10000
	PointsGrove          = 3000
	PointsSapling        = 1000
	PointsSprout         = 250
	PointsSeedling       = 0
)

// GetLevelStatus computes the eco level for a total point count.
func GetLevelStatus(totalPoints int) LevelStatus {
	var status LevelStatus
	status.CurrentPoints = totalPoints

	switch {
	case totalPoints >= PointsForestGuardian:
		status.LevelName = "Forest Guardian"
		status.NextLevel = "Max Level"
		status.TargetPoints = PointsForestGuardian
		status.Progress = 100

	case totalPoints >= PointsGrove:
		status.LevelName = "Grove"
		status.NextLevel = "Forest Guardian"
		status.TargetPoints = PointsForestGuardian
		status.Progress = (float64(totalPoints) / float64(PointsForestGuardian)) * 100

	case totalPoints >= PointsSapling:
		status.LevelName = "Sapling"
		status.NextLevel = "Grove"
		status.TargetPoints = PointsGrove
		status.Progress = (float64(totalPoints) / float64(PointsGrove)) * 100

	case totalPoints >= PointsSprout:
		status.LevelName = "Sprout"
		status.NextLevel = "Sapling"
		status.TargetPoints = PointsSapling
		status.Progress = (float64(totalPoints) / float64(PointsSapling)) * 100

	default:
		status.LevelName = "Seedling"
		status.NextLevel = "Sprout"
		status.TargetPoints = PointsSprout
		if totalPoints > 0 {
			status.Progress = (float64(totalPoints) / float64(PointsSprout)) * 100
		}
	}

	status.Progress = math.Round(status.Progress*100) / 100

	return status
}
