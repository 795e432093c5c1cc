package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-optimizer/backend/internal/apperr"
	"prompt-optimizer/backend/internal/features/optimization/application"
	"prompt-optimizer/backend/internal/features/optimization/domain"
)

// OptimizationHandler holds the optimizer service.
type OptimizationHandler struct {
	optimizerService application.OptimizerService
}

// NewOptimizationHandler creates a new OptimizationHandler.
func NewOptimizationHandler(optimizerService application.OptimizerService) *OptimizationHandler {
	return &OptimizationHandler{optimizerService: optimizerService}
}

// OptimizePromptHandler rewrites an existing prompt at the requested level.
func (h *OptimizationHandler) OptimizePromptHandler(c *gin.Context) {
	var req domain.RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.optimizerService.Optimize(c.Request.Context(), &req)
	if err != nil {
		status := apperr.HTTPStatus(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			msg = "Error optimizing prompt: " + msg
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"optimized_prompt": result.OptimizedPrompt,
		"level":            result.Level,
		"target_model":     result.TargetModel,
		"matched_template": result.MatchedTemplate,
		"degraded":         result.Degraded,
	})
}
