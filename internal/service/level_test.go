package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLevelStatus(t *testing.T) {
	tests := []struct {
		name         string
		totalPoints  int
		wantLevel    string
		wantNext     string
		wantTarget   int
		wantProgress float64
	}{
		{"fresh account", 0, "Seedling", "Sprout", 250, 0},
		{"halfway to sprout", 125, "Seedling", "Sprout", 250, 50},
		{"sprout threshold", 250, "Sprout", "Sapling", 1000, 25},
		{"sapling threshold", 1000, "Sapling", "Grove", 3000, 33.33},
		{"grove threshold", 3000, "Grove", "Forest Guardian", 10000, 30},
		{"forest guardian threshold", 10000, "Forest Guardian", "Max Level", 10000, 100},
		{"beyond max stays max", 25000, "Forest Guardian", "Max Level", 10000, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status := GetLevelStatus(tc.totalPoints)
			assert.Equal(t, tc.wantLevel, status.LevelName)
			assert.Equal(t, tc.wantNext, status.NextLevel)
			assert.Equal(t, tc.wantTarget, status.TargetPoints)
			assert.Equal(t, tc.totalPoints, status.CurrentPoints)
			assert.InDelta(t, tc.wantProgress, status.Progress, 0.01)
		})
	}
}
