package risk

import "github.com/diatrack/diatrack-v2/backend/internal/models"

// BuildFeatures encodes a validated observation, its derived metrics and the
// static profile fields into the predictor's fixed-order schema. The
// categorical mappings are total over the closed types produced by the
// validator; any other value returns an *InvariantViolation.
func BuildFeatures(profile models.HealthProfile, obs models.DailyObservation, derived models.DerivedMetrics) (models.FeatureVector, error) {
	var v models.FeatureVector

	diet, err := dietValue(obs.Diet)
	if err != nil {
		return v, err
	}
	medication, err := medicationValue(obs.MedicationAdherence)
	if err != nil {
		return v, err
	}
	stress, err := stressValue(obs.StressLevel)
	if err != nil {
		return v, err
	}
	hydration, err := hydrationValue(obs.Hydration)
	if err != nil {
		return v, err
	}

	v[models.FeatureWeight] = profile.WeightKg
	v[models.FeatureHeight] = profile.HeightCm
	v[models.FeatureBMI] = derived.BMI
	v[models.FeatureBloodGlucose] = float64(obs.BloodGlucose)
	v[models.FeaturePhysicalActivity] = float64(obs.PhysicalActivityMinutes)
	v[models.FeatureDiet] = diet
	v[models.FeatureMedicationAdherence] = medication
	v[models.FeatureStressLevel] = stress
	v[models.FeatureSleepHours] = obs.SleepHours
	v[models.FeatureHydration] = hydration

	return v, nil
}

func dietValue(d models.Diet) (float64, error) {
	switch d {
	case models.DietHealthy:
		return 1, nil
	case models.DietUnhealthy:
		return 0, nil
	default:
		return 0, &InvariantViolation{Field: "diet", Value: string(d)}
	}
}

func medicationValue(m models.MedicationAdherence) (float64, error) {
	switch m {
	case models.MedicationGood:
		return 1, nil
	case models.MedicationPoor:
		return 0, nil
	default:
		return 0, &InvariantViolation{Field: "medication_adherence", Value: string(m)}
	}
}

func stressValue(s models.StressLevel) (float64, error) {
	switch s {
	case models.StressLow:
		return 0, nil
	case models.StressMedium:
		return 1, nil
	case models.StressHigh:
		return 2, nil
	default:
		return 0, &InvariantViolation{Field: "stress_level", Value: string(s)}
	}
}

func hydrationValue(h models.Hydration) (float64, error) {
	switch h {
	case models.HydrationYes:
		return 1, nil
	case models.HydrationNo:
		return 0, nil
	default:
		return 0, &InvariantViolation{Field: "hydration_level", Value: string(h)}
	}
}
