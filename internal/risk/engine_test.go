package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diatrack/diatrack-v2/backend/internal/models"
)

// stubPredictor returns a fixed base score and passes vectors through
// unscaled.
type stubPredictor struct {
	base float64
}

func (s stubPredictor) Scale(v models.FeatureVector) (models.FeatureVector, error) {
	return v, nil
}

func (s stubPredictor) PredictBase(models.FeatureVector) (float64, error) {
	return s.base, nil
}

func TestNewEngineRequiresPredictor(t *testing.T) {
	_, err := NewEngine(nil)
	assert.Error(t, err)
}

// End-to-end scenario from the clinical review: overweight profile, every
// penalty triggered, base around 10 lands the adjusted score in High.
func TestEngineAssessEndToEnd(t *testing.T) {
	engine, err := NewEngine(stubPredictor{base: 10})
	require.NoError(t, err)

	profile := models.HealthProfile{UserID: "user-1", Name: "Alex", Age: 50, WeightKg: 80, HeightCm: 170}
	obs := models.DailyObservation{
		BloodGlucose:            190,
		Diet:                    models.DietUnhealthy,
		PhysicalActivityMinutes: 15,
		MedicationAdherence:     models.MedicationPoor,
		StressLevel:             models.StressHigh,
		SleepHours:              5,
		Hydration:               models.HydrationNo,
	}

	a, err := engine.Assess(profile, obs)
	require.NoError(t, err)

	assert.InDelta(t, 27.7, a.BMI, 0.05)
	assert.Equal(t, models.BMIOverweight, a.BMICategory)
	assert.Equal(t, models.ActivityLow, a.ActivityLevel)

	assert.Equal(t, 10.0, a.BaseScore)
	sum := 0.0
	for _, points := range a.Adjustments {
		sum += points
	}
	assert.Equal(t, 55.0, sum)
	assert.Equal(t, 65.0, a.AdjustedScore)
	assert.Equal(t, models.RiskHigh, a.RiskTier)

	assert.Equal(t, "user-1", a.UserID)
	assert.Equal(t, "Alex", a.Name)
	assert.Equal(t, 50, a.Age)
	assert.NotZero(t, a.ID)
	assert.False(t, a.Timestamp.IsZero())
	assert.Len(t, a.Advice, 8)
}

// Two runs over identical inputs with an unchanged predictor produce
// identical scoring output; only the record identity differs.
func TestEngineAssessDeterminism(t *testing.T) {
	engine, err := NewEngine(stubPredictor{base: 22.5})
	require.NoError(t, err)

	profile := models.HealthProfile{UserID: "user-1", Name: "Alex", Age: 50, WeightKg: 70, HeightCm: 175}
	obs := models.DailyObservation{
		BloodGlucose:            120,
		Diet:                    models.DietHealthy,
		PhysicalActivityMinutes: 45,
		MedicationAdherence:     models.MedicationGood,
		StressLevel:             models.StressMedium,
		SleepHours:              7.5,
		Hydration:               models.HydrationYes,
	}

	first, err := engine.Assess(profile, obs)
	require.NoError(t, err)
	second, err := engine.Assess(profile, obs)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	first.ID = second.ID
	first.Timestamp = second.Timestamp
	assert.Equal(t, first, second)
}

func TestEngineAssessLowRisk(t *testing.T) {
	engine, err := NewEngine(stubPredictor{base: 5})
	require.NoError(t, err)

	profile := models.HealthProfile{UserID: "user-1", Name: "Alex", Age: 35, WeightKg: 65, HeightCm: 172}
	obs := models.DailyObservation{
		BloodGlucose:            100,
		Diet:                    models.DietHealthy,
		PhysicalActivityMinutes: 60,
		MedicationAdherence:     models.MedicationGood,
		StressLevel:             models.StressLow,
		SleepHours:              8,
		Hydration:               models.HydrationYes,
	}

	a, err := engine.Assess(profile, obs)
	require.NoError(t, err)
	assert.Equal(t, 5.0, a.AdjustedScore)
	assert.Equal(t, models.RiskLow, a.RiskTier)
}

func TestEngineAssessZeroHeight(t *testing.T) {
	engine, err := NewEngine(stubPredictor{})
	require.NoError(t, err)

	profile := models.HealthProfile{UserID: "u", Name: "n", Age: 40, WeightKg: 70}
	_, err = engine.Assess(profile, models.DailyObservation{BloodGlucose: 100})
	var derr *DerivationError
	assert.ErrorAs(t, err, &derr)
}
