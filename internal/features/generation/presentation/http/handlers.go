package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-optimizer/backend/internal/apperr"
	"prompt-optimizer/backend/internal/features/generation/application"
	"prompt-optimizer/backend/internal/features/generation/domain"
)

// GenerationHandler holds the generation service.
type GenerationHandler struct {
	generationService application.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService application.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

// GeneratePromptHandler assembles a new prompt from a goal.
func (h *GenerationHandler) GeneratePromptHandler(c *gin.Context) {
	var req domain.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prompt, err := h.generationService.Generate(c.Request.Context(), &req)
	if err != nil {
		status := apperr.HTTPStatus(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			msg = "Error generating prompt: " + msg
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "prompt": prompt})
}
