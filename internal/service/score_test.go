package service

import (
	"testing"

	"github.com/greensteps/greensteps-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name          string
		mode          model.TransportMode
		distanceKm    float64
		trips         int
		wantEmissions float64
		wantPoints    int
	}{
		{"walking is emission free", model.ModeWalking, 5, 2, 0.00, 500},
		{"bicycle is emission free", model.ModeBicycle, 12.5, 1, 0.00, 500},
		{"car commute", model.ModeCar, 10, 1, 2.30, 21},
		{"bus commute", model.ModeBus, 10, 1, 0.50, 83},
		{"motorbike commute", model.ModeBike, 10, 1, 1.10, 42},
		{"ev matches bus factor", model.ModeEV, 10, 1, 0.50, 83},
		{"zero distance scores maximum", model.ModeCar, 0, 1, 0.00, 500},
		{"multiple trips multiply emissions", model.ModeEV, 12, 2, 1.20, 38},
		{"long car trip floors near zero", model.ModeCar, 100, 3, 69.00, 1},
		{"extreme emissions clamp at zero", model.ModeCar, 1000, 1, 230.00, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			emissions, points := ComputeScore(tc.mode, tc.distanceKm, tc.trips)
			assert.InDelta(t, tc.wantEmissions, emissions, 1e-9)
			assert.Equal(t, tc.wantPoints, points)
		})
	}
}

func TestComputeScorePointsFromUnroundedEmissions(t *testing.T) {
	// 0.023 kg raw rounds to 0.02 for storage, but points use the raw value:
	// round(50/0.123) = 407, not round(50/0.12) = 417.
	emissions, points := ComputeScore(model.ModeCar, 0.1, 1)
	assert.InDelta(t, 0.02, emissions, 1e-9)
	assert.Equal(t, 407, points)
}

func TestEmissionFactorsCoverAllModes(t *testing.T) {
	for _, mode := range model.TransportModes {
		_, ok := EmissionFactors[mode]
		assert.True(t, ok, "missing emission factor for %s", mode)
	}
}
