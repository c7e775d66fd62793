package service

import (
	"context"

	"github.com/diatrack/diatrack-v2/backend/internal/models"
	"github.com/diatrack/diatrack-v2/backend/internal/types"
)

// IAssessmentService defines the assessment operations exposed to the API
// layer.
type IAssessmentService interface {
	// Assess validates the raw request, scores it and, when share is set,
	// exports the resulting record to the clinical record system.
	Assess(ctx context.Context, req types.AssessmentRequest, share bool) (*models.RiskAssessment, error)
}
