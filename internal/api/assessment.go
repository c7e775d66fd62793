package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diatrack/diatrack-v2/backend/internal/risk"
	"github.com/diatrack/diatrack-v2/backend/internal/service"
	"github.com/diatrack/diatrack-v2/backend/internal/types"
)

// AssessmentHandler exposes the risk assessment operations over HTTP.
type AssessmentHandler struct {
	assessmentService service.IAssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler instance.
func NewAssessmentHandler(assessmentService service.IAssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
	}
}

// RegisterRoutes registers the assessment routes on the given group.
func (h *AssessmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/assessments", h.CreateAssessment)
}

// CreateAssessment accepts one profile + daily observation, scores it and
// returns the full assessment record. Pass ?share=true to also export the
// record to the clinical record system.
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req types.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	share := c.Query("share") == "true"

	assessment, err := h.assessmentService.Assess(c.Request.Context(), req, share)
	if err != nil {
		var verr *risk.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		// Everything else means a broken invariant or an unusable
		// predictor; surface it as a server error and let the error
		// middleware log it.
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assessment failed"})
		return
	}

	c.JSON(http.StatusOK, assessment)
}
