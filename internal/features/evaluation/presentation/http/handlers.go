package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-optimizer/backend/internal/apperr"
	"prompt-optimizer/backend/internal/features/evaluation/application"
	"prompt-optimizer/backend/internal/features/evaluation/domain"
)

// EvaluationHandler holds the evaluation service.
type EvaluationHandler struct {
	evaluationService application.EvaluationService
}

// NewEvaluationHandler creates a new EvaluationHandler.
func NewEvaluationHandler(evaluationService application.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

// EvaluatePromptHandler scores a prompt.
func (h *EvaluationHandler) EvaluatePromptHandler(c *gin.Context) {
	var req domain.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.evaluationService.Evaluate(req.Prompt, req.Criteria)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"scores":        result.Scores,
		"overall_score": result.OverallScore,
		"suggestions":   result.Suggestions,
	})
}
