// Package predictor loads the scaler and regression artifacts fitted by the
// offline training pipeline and exposes them to the risk engine. The
// artifacts are opaque to the rest of the system beyond the Scale and
// PredictBase contract; after a successful load the model is read-only and
// safe for concurrent use.
package predictor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/diatrack/diatrack-v2/backend/internal/models"
)

// ErrUnavailable marks any failure to load or parse the predictor
// artifacts. Callers treat it as fatal: no assessment can run without a
// predictor.
var ErrUnavailable = errors.New("predictor artifacts unavailable")

// scalerArtifact mirrors scaler.json: per-feature standardization
// parameters, in feature order.
type scalerArtifact struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// modelArtifact mirrors model.json: a linear regression fitted on scaled
// features.
type modelArtifact struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Model is the loaded scaler + regression pair.
type Model struct {
	mean      models.FeatureVector
	scale     models.FeatureVector
	coef      models.FeatureVector
	intercept float64
}

// Load reads and validates the scaler and model artifacts. Any failure is
// wrapped in ErrUnavailable.
func Load(scalerPath, modelPath string) (*Model, error) {
	var scaler scalerArtifact
	if err := readArtifact(scalerPath, &scaler); err != nil {
		return nil, err
	}
	var model modelArtifact
	if err := readArtifact(modelPath, &model); err != nil {
		return nil, err
	}

	m := &Model{intercept: model.Intercept}
	if err := fill(&m.mean, scaler.Mean, scalerPath, "mean"); err != nil {
		return nil, err
	}
	if err := fill(&m.scale, scaler.Scale, scalerPath, "scale"); err != nil {
		return nil, err
	}
	if err := fill(&m.coef, model.Coefficients, modelPath, "coefficients"); err != nil {
		return nil, err
	}

	for i, s := range m.scale {
		if s == 0 {
			return nil, fmt.Errorf("%w: %s: scale[%d] is zero", ErrUnavailable, scalerPath, i)
		}
	}

	return m, nil
}

func readArtifact(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrUnavailable, path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrUnavailable, path, err)
	}
	return nil
}

func fill(dst *models.FeatureVector, src []float64, path, field string) error {
	if len(src) != models.FeatureCount {
		return fmt.Errorf("%w: %s: %s has %d values, want %d", ErrUnavailable, path, field, len(src), models.FeatureCount)
	}
	copy(dst[:], src)
	return nil
}

// Scale standardizes a raw feature vector with the fitted scaler
// parameters.
func (m *Model) Scale(v models.FeatureVector) (models.FeatureVector, error) {
	var scaled models.FeatureVector
	for i := range v {
		scaled[i] = (v[i] - m.mean[i]) / m.scale[i]
	}
	return scaled, nil
}

// PredictBase evaluates the fitted regression on a scaled feature vector.
func (m *Model) PredictBase(scaled models.FeatureVector) (float64, error) {
	score := m.intercept
	for i := range scaled {
		score += m.coef[i] * scaled[i]
	}
	return score, nil
}
