package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diatrack/diatrack-v2/backend/internal/models"
)

func validProfileInput() ProfileInput {
	return ProfileInput{
		UserID:   "user-1",
		Name:     "Alex",
		Age:      "45",
		WeightKg: "80",
		HeightCm: "170",
	}
}

func validObservationInput() ObservationInput {
	return ObservationInput{
		BloodGlucose:        "120",
		Diet:                "healthy",
		PhysicalActivity:    "45",
		MedicationAdherence: "good",
		StressLevel:         "low",
		SleepHours:          "7.5",
		HydrationLevel:      "yes",
	}
}

func TestValidateProfile(t *testing.T) {
	profile, err := ValidateProfile(validProfileInput())
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, "Alex", profile.Name)
	assert.Equal(t, 45, profile.Age)
	assert.Equal(t, 80.0, profile.WeightKg)
	assert.Equal(t, 170.0, profile.HeightCm)
}

func TestValidateProfileRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProfileInput)
		field  string
	}{
		{"empty user id", func(in *ProfileInput) { in.UserID = "  " }, "user_id"},
		{"empty name", func(in *ProfileInput) { in.Name = "" }, "name"},
		{"non-numeric age", func(in *ProfileInput) { in.Age = "forty" }, "age"},
		{"zero age", func(in *ProfileInput) { in.Age = "0" }, "age"},
		{"negative age", func(in *ProfileInput) { in.Age = "-3" }, "age"},
		{"non-numeric weight", func(in *ProfileInput) { in.WeightKg = "heavy" }, "weight_kg"},
		{"zero weight", func(in *ProfileInput) { in.WeightKg = "0" }, "weight_kg"},
		{"non-numeric height", func(in *ProfileInput) { in.HeightCm = "tall" }, "height_cm"},
		{"zero height", func(in *ProfileInput) { in.HeightCm = "0" }, "height_cm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProfileInput()
			tt.mutate(&in)

			_, err := ValidateProfile(in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateObservation(t *testing.T) {
	obs, err := ValidateObservation(validObservationInput())
	require.NoError(t, err)
	assert.Equal(t, 120, obs.BloodGlucose)
	assert.Equal(t, models.DietHealthy, obs.Diet)
	assert.Equal(t, 45, obs.PhysicalActivityMinutes)
	assert.Equal(t, models.MedicationGood, obs.MedicationAdherence)
	assert.Equal(t, models.StressLow, obs.StressLevel)
	assert.Equal(t, 7.5, obs.SleepHours)
	assert.Equal(t, models.HydrationYes, obs.Hydration)
}

func TestValidateObservationCaseInsensitive(t *testing.T) {
	in := validObservationInput()
	in.Diet = "Healthy"
	in.MedicationAdherence = "GOOD"
	in.StressLevel = "High"
	in.HydrationLevel = "No"

	obs, err := ValidateObservation(in)
	require.NoError(t, err)
	assert.Equal(t, models.DietHealthy, obs.Diet)
	assert.Equal(t, models.MedicationGood, obs.MedicationAdherence)
	assert.Equal(t, models.StressHigh, obs.StressLevel)
	assert.Equal(t, models.HydrationNo, obs.Hydration)
}

func TestValidateObservationRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ObservationInput)
		field  string
	}{
		{"negative blood glucose", func(in *ObservationInput) { in.BloodGlucose = "-5" }, "blood_glucose"},
		{"non-numeric blood glucose", func(in *ObservationInput) { in.BloodGlucose = "abc" }, "blood_glucose"},
		{"zero blood glucose", func(in *ObservationInput) { in.BloodGlucose = "0" }, "blood_glucose"},
		{"unknown diet", func(in *ObservationInput) { in.Diet = "unknown" }, "diet"},
		{"negative activity", func(in *ObservationInput) { in.PhysicalActivity = "-10" }, "physical_activity"},
		{"non-numeric activity", func(in *ObservationInput) { in.PhysicalActivity = "lots" }, "physical_activity"},
		{"unknown medication", func(in *ObservationInput) { in.MedicationAdherence = "sometimes" }, "medication_adherence"},
		{"unknown stress", func(in *ObservationInput) { in.StressLevel = "extreme" }, "stress_level"},
		{"negative sleep", func(in *ObservationInput) { in.SleepHours = "-1" }, "sleep_hours"},
		{"non-numeric sleep", func(in *ObservationInput) { in.SleepHours = "plenty" }, "sleep_hours"},
		{"unknown hydration", func(in *ObservationInput) { in.HydrationLevel = "maybe" }, "hydration_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validObservationInput()
			tt.mutate(&in)

			_, err := ValidateObservation(in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
