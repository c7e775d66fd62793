package risk

import (
	"strconv"
	"strings"

	"github.com/diatrack/diatrack-v2/backend/internal/models"
)

// ProfileInput carries the raw user-info form fields before validation.
type ProfileInput struct {
	UserID   string
	Name     string
	Age      string
	WeightKg string
	HeightCm string
}

// ObservationInput carries the raw daily-data form fields before validation.
type ObservationInput struct {
	BloodGlucose        string
	Diet                string
	PhysicalActivity    string
	MedicationAdherence string
	StressLevel         string
	SleepHours          string
	HydrationLevel      string
}

// ValidateProfile checks the raw profile fields and returns the typed
// profile. Validation is fail-fast: the first violated rule is returned as
// a *ValidationError and the remaining fields are not inspected.
func ValidateProfile(in ProfileInput) (models.HealthProfile, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return models.HealthProfile{}, &ValidationError{Field: "user_id", Constraint: "must not be empty"}
	}
	if strings.TrimSpace(in.Name) == "" {
		return models.HealthProfile{}, &ValidationError{Field: "name", Constraint: "must not be empty"}
	}
	age, err := strconv.Atoi(strings.TrimSpace(in.Age))
	if err != nil || age <= 0 {
		return models.HealthProfile{}, &ValidationError{Field: "age", Constraint: "must be a positive integer"}
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(in.WeightKg), 64)
	if err != nil || weight <= 0 {
		return models.HealthProfile{}, &ValidationError{Field: "weight_kg", Constraint: "must be a positive number"}
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(in.HeightCm), 64)
	if err != nil || height <= 0 {
		return models.HealthProfile{}, &ValidationError{Field: "height_cm", Constraint: "must be a positive number"}
	}

	return models.HealthProfile{
		UserID:   strings.TrimSpace(in.UserID),
		Name:     strings.TrimSpace(in.Name),
		Age:      age,
		WeightKg: weight,
		HeightCm: height,
	}, nil
}

// ValidateObservation checks the raw daily readings and returns the typed
// observation. Categorical fields are compared case-insensitively and
// parsed into their closed types exactly once, here; nothing downstream
// re-parses raw strings.
func ValidateObservation(in ObservationInput) (models.DailyObservation, error) {
	glucose, err := strconv.Atoi(strings.TrimSpace(in.BloodGlucose))
	if err != nil || glucose <= 0 {
		return models.DailyObservation{}, &ValidationError{Field: "blood_glucose", Constraint: "must be a positive integer"}
	}

	diet, err := parseDiet(in.Diet)
	if err != nil {
		return models.DailyObservation{}, err
	}

	activity, err := strconv.Atoi(strings.TrimSpace(in.PhysicalActivity))
	if err != nil || activity < 0 {
		return models.DailyObservation{}, &ValidationError{Field: "physical_activity", Constraint: "must be a non-negative integer"}
	}

	medication, err := parseMedication(in.MedicationAdherence)
	if err != nil {
		return models.DailyObservation{}, err
	}

	stress, err := parseStress(in.StressLevel)
	if err != nil {
		return models.DailyObservation{}, err
	}

	sleep, err := strconv.ParseFloat(strings.TrimSpace(in.SleepHours), 64)
	if err != nil || sleep < 0 {
		return models.DailyObservation{}, &ValidationError{Field: "sleep_hours", Constraint: "must be a non-negative number"}
	}

	hydration, err := parseHydration(in.HydrationLevel)
	if err != nil {
		return models.DailyObservation{}, err
	}

	return models.DailyObservation{
		BloodGlucose:            glucose,
		Diet:                    diet,
		PhysicalActivityMinutes: activity,
		MedicationAdherence:     medication,
		StressLevel:             stress,
		SleepHours:              sleep,
		Hydration:               hydration,
	}, nil
}

func parseDiet(raw string) (models.Diet, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "healthy":
		return models.DietHealthy, nil
	case "unhealthy":
		return models.DietUnhealthy, nil
	default:
		return "", &ValidationError{Field: "diet", Constraint: "must be 'healthy' or 'unhealthy'"}
	}
}

func parseMedication(raw string) (models.MedicationAdherence, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "good":
		return models.MedicationGood, nil
	case "poor":
		return models.MedicationPoor, nil
	default:
		return "", &ValidationError{Field: "medication_adherence", Constraint: "must be 'good' or 'poor'"}
	}
}

func parseStress(raw string) (models.StressLevel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return models.StressLow, nil
	case "medium":
		return models.StressMedium, nil
	case "high":
		return models.StressHigh, nil
	default:
		return "", &ValidationError{Field: "stress_level", Constraint: "must be 'low', 'medium' or 'high'"}
	}
}

func parseHydration(raw string) (models.Hydration, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return models.HydrationYes, nil
	case "no":
		return models.HydrationNo, nil
	default:
		return "", &ValidationError{Field: "hydration_level", Constraint: "must be 'yes' or 'no'"}
	}
}
