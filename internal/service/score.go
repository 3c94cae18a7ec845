package service

import (
	"math"

	"github.com/greensteps/greensteps-api/internal/model"
)

// Emission factors in kg CO2 per kilometer traveled.
var EmissionFactors = map[model.TransportMode]float64{
	model.ModeCar:     0.23,
	model.ModeBike:    0.11, // motorcycle
	model.ModeBus:     0.05,
	model.ModeEV:      0.05,
	model.ModeWalking: 0,
	model.ModeBicycle: 0,
}

// ComputeScore maps a day's transport choice to emissions and points.
//
// Emissions are distance * factor * trips, returned rounded to 2 decimal
// places (the stored/displayed value). Points use the inverse-decay reward
// max(0, round((1/(emissions+0.1))*50)), computed from the unrounded
// emissions: a zero-emission day is worth 500 points and the reward decays
// toward 0 as emissions grow. The +0.1 offset bounds the curve and avoids
// division by zero; there is no other clamp. The exact formula is
// user-visible game balance, so keep it exact.
//
// The function is total over its domain: distanceKm >= 0 and trips >= 1 are
// guaranteed by request validation.
func ComputeScore(mode model.TransportMode, distanceKm float64, trips int) (emissionsKg float64, points int) {
	raw := distanceKm * EmissionFactors[mode] * float64(trips)
	points = int(math.Max(0, math.Round((1/(raw+0.1))*50)))
	return round2(raw), points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
