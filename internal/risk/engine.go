package risk

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diatrack/diatrack-v2/backend/internal/models"
)

// Predictor is the fitted scaler and regression model the engine scores
// with. Both methods must be safe for concurrent use after construction.
// The engine assumes nothing about the output beyond it being a finite
// number: no monotonicity, no bounds.
type Predictor interface {
	Scale(v models.FeatureVector) (models.FeatureVector, error)
	PredictBase(scaled models.FeatureVector) (float64, error)
}

// Engine runs the assessment pipeline: derivation, feature encoding,
// prediction, adjustment, classification and advice lookup. It holds no
// mutable state, so a single engine serves concurrent assessments.
type Engine struct {
	predictor Predictor
}

// NewEngine builds an engine around the given predictor and verifies the
// advice table covers every status the pipeline can produce.
func NewEngine(p Predictor) (*Engine, error) {
	if p == nil {
		return nil, errors.New("predictor is required")
	}
	if err := ValidateAdviceTable(); err != nil {
		return nil, fmt.Errorf("advice table: %w", err)
	}
	return &Engine{predictor: p}, nil
}

// Assess scores one validated observation against the profile. The run is
// a single synchronous sequence with no suspension points; for fixed inputs
// and an unchanged predictor the scoring fields of the result are
// deterministic (only ID and Timestamp differ between runs).
func (e *Engine) Assess(profile models.HealthProfile, obs models.DailyObservation) (*models.RiskAssessment, error) {
	derived, err := Derive(profile, obs)
	if err != nil {
		return nil, err
	}

	features, err := BuildFeatures(profile, obs, derived)
	if err != nil {
		return nil, err
	}

	scaled, err := e.predictor.Scale(features)
	if err != nil {
		return nil, fmt.Errorf("scaling features: %w", err)
	}
	base, err := e.predictor.PredictBase(scaled)
	if err != nil {
		return nil, fmt.Errorf("predicting base score: %w", err)
	}

	adjusted, breakdown := Adjust(base, obs)
	tier := Classify(adjusted)

	advice, err := BuildAdvice(obs, derived)
	if err != nil {
		return nil, err
	}

	return &models.RiskAssessment{
		ID:        uuid.New(),
		UserID:    profile.UserID,
		Name:      profile.Name,
		Age:       profile.Age,
		Timestamp: time.Now().UTC(),

		BloodGlucose:            obs.BloodGlucose,
		Diet:                    obs.Diet,
		PhysicalActivityMinutes: obs.PhysicalActivityMinutes,
		MedicationAdherence:     obs.MedicationAdherence,
		StressLevel:             obs.StressLevel,
		SleepHours:              obs.SleepHours,
		Hydration:               obs.Hydration,

		BMI:           derived.BMIDisplay,
		BMICategory:   derived.BMICategory,
		ActivityLevel: derived.ActivityLevel,

		BaseScore:     base,
		Adjustments:   breakdown,
		AdjustedScore: adjusted,
		RiskTier:      tier,

		Advice: advice,
	}, nil
}
