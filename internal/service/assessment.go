package service

import (
	"context"
	"log"

	"github.com/diatrack/diatrack-v2/backend/internal/export"
	"github.com/diatrack/diatrack-v2/backend/internal/models"
	"github.com/diatrack/diatrack-v2/backend/internal/risk"
	"github.com/diatrack/diatrack-v2/backend/internal/types"
)

// AssessmentService runs the risk engine on validated input and hands the
// result to the record exporter.
type AssessmentService struct {
	engine    *risk.Engine
	publisher export.Publisher
	logger    *log.Logger
}

// Ensure AssessmentService implements IAssessmentService
var _ IAssessmentService = (*AssessmentService)(nil)

// NewAssessmentService creates a new AssessmentService instance. The
// publisher may be nil, in which case share requests are skipped.
func NewAssessmentService(engine *risk.Engine, publisher export.Publisher, logger *log.Logger) *AssessmentService {
	if logger == nil {
		logger = log.Default()
	}
	return &AssessmentService{
		engine:    engine,
		publisher: publisher,
		logger:    logger,
	}
}

// Assess validates the raw request fields, scores the observation and
// optionally exports the record. Export failures are logged but do not fail
// the assessment: the score is already computed and correct.
func (s *AssessmentService) Assess(ctx context.Context, req types.AssessmentRequest, share bool) (*models.RiskAssessment, error) {
	profile, err := risk.ValidateProfile(risk.ProfileInput{
		UserID:   req.UserID,
		Name:     req.Name,
		Age:      req.Age,
		WeightKg: req.WeightKg,
		HeightCm: req.HeightCm,
	})
	if err != nil {
		return nil, err
	}

	obs, err := risk.ValidateObservation(risk.ObservationInput{
		BloodGlucose:        req.BloodGlucose,
		Diet:                req.Diet,
		PhysicalActivity:    req.PhysicalActivity,
		MedicationAdherence: req.MedicationAdherence,
		StressLevel:         req.StressLevel,
		SleepHours:          req.SleepHours,
		HydrationLevel:      req.HydrationLevel,
	})
	if err != nil {
		return nil, err
	}

	assessment, err := s.engine.Assess(profile, obs)
	if err != nil {
		return nil, err
	}

	if share && s.publisher != nil {
		record := export.NewClinicalRecord(assessment)
		if err := s.publisher.Publish(ctx, record); err != nil {
			s.logger.Printf("failed to export clinical record for user %s: %v", assessment.UserID, err)
		}
	}

	return assessment, nil
}
