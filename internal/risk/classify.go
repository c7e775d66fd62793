package risk

import "github.com/diatrack/diatrack-v2/backend/internal/models"

// Classify maps an adjusted score to a risk tier. Boundary values belong to
// the higher tier. Classification does not clamp the score; it only bands
// it.
func Classify(adjusted float64) models.RiskTier {
	switch {
	case adjusted < 30:
		return models.RiskLow
	case adjusted < 60:
		return models.RiskModerate
	default:
		return models.RiskHigh
	}
}
