package risk

import (
	"math"

	"github.com/diatrack/diatrack-v2/backend/internal/models"
)

// Derive computes the metrics derived from a profile and an observation.
// The validator rejects non-positive heights upstream, but the division is
// guarded here as well so a miswired caller gets a *DerivationError instead
// of an Inf BMI.
func Derive(profile models.HealthProfile, obs models.DailyObservation) (models.DerivedMetrics, error) {
	if profile.HeightCm <= 0 {
		return models.DerivedMetrics{}, &DerivationError{Reason: "height must be positive to compute BMI"}
	}

	heightM := profile.HeightCm / 100
	bmi := profile.WeightKg / (heightM * heightM)

	return models.DerivedMetrics{
		BMI:           bmi,
		BMIDisplay:    math.Round(bmi*10) / 10,
		BMICategory:   BMICategoryFor(bmi),
		ActivityLevel: ActivityLevelFor(obs.PhysicalActivityMinutes),
	}, nil
}

// BMICategoryFor buckets a BMI value. Boundary values (18.5, 25, 30) belong
// to the higher category.
func BMICategoryFor(bmi float64) models.BMICategory {
	switch {
	case bmi < 18.5:
		return models.BMIUnderweight
	case bmi < 25:
		return models.BMINormal
	case bmi < 30:
		return models.BMIOverweight
	default:
		return models.BMIObese
	}
}

// ActivityLevelFor buckets daily activity minutes. Boundary values (30, 60)
// belong to the higher tier.
func ActivityLevelFor(minutes int) models.ActivityLevel {
	switch {
	case minutes < 30:
		return models.ActivityLow
	case minutes < 60:
		return models.ActivityModerate
	default:
		return models.ActivityHigh
	}
}
