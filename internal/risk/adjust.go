package risk

import "github.com/diatrack/diatrack-v2/backend/internal/models"

// Penalty names as they appear in the adjustment breakdown.
const (
	PenaltyHighBloodGlucose = "high_blood_glucose"
	PenaltyLowActivity      = "low_activity"
	PenaltyPoorMedication   = "poor_medication"
	PenaltyPoorSleep        = "poor_sleep"
	PenaltyHighStress       = "high_stress"
	PenaltyPoorHydration    = "poor_hydration"
)

// Adjust applies the deterministic penalty table to the base score. Each
// rule is evaluated independently against the raw observation values (not
// the scaled features), and the penalties are purely additive. No ceiling
// or floor is applied: the adjusted score can exceed 100 or go negative
// when the base score is very low.
//
// The breakdown always contains all six penalty names; untriggered rules
// contribute zero.
func Adjust(base float64, obs models.DailyObservation) (float64, map[string]float64) {
	breakdown := map[string]float64{
		PenaltyHighBloodGlucose: 0,
		PenaltyLowActivity:      0,
		PenaltyPoorMedication:   0,
		PenaltyPoorSleep:        0,
		PenaltyHighStress:       0,
		PenaltyPoorHydration:    0,
	}

	if obs.BloodGlucose > 180 {
		breakdown[PenaltyHighBloodGlucose] = 15
	}
	if obs.PhysicalActivityMinutes < 30 {
		breakdown[PenaltyLowActivity] = 10
	}
	if obs.MedicationAdherence == models.MedicationPoor {
		breakdown[PenaltyPoorMedication] = 10
	}
	if obs.SleepHours < 6 {
		breakdown[PenaltyPoorSleep] = 8
	}
	if obs.StressLevel == models.StressHigh {
		breakdown[PenaltyHighStress] = 7
	}
	if obs.Hydration == models.HydrationNo {
		breakdown[PenaltyPoorHydration] = 5
	}

	adjusted := base
	for _, points := range breakdown {
		adjusted += points
	}
	return adjusted, breakdown
}
