package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-optimizer/backend/internal/apperr"
	"prompt-optimizer/backend/internal/features/modelgateway/application"
	"prompt-optimizer/backend/internal/features/modelgateway/domain"
)

// TestPromptRequest is the body of POST /api/test.
type TestPromptRequest struct {
	Prompt      string `json:"prompt" form:"prompt"`
	TargetModel string `json:"target_model" form:"target_model"`
}

// GatewayHandler holds the tester service and the model mapping.
type GatewayHandler struct {
	testerService application.TesterService
	mapping       domain.ModelMapping
	provider      string
}

// NewGatewayHandler creates a new GatewayHandler.
func NewGatewayHandler(testerService application.TesterService, mapping domain.ModelMapping, provider string) *GatewayHandler {
	return &GatewayHandler{
		testerService: testerService,
		mapping:       mapping,
		provider:      provider,
	}
}

// TestPromptHandler runs a prompt against the mapped backend model.
func (h *GatewayHandler) TestPromptHandler(c *gin.Context) {
	var req TestPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.testerService.TestPrompt(c.Request.Context(), req.Prompt, req.TargetModel)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"response":     result.Output,
		"target_model": result.TargetModel,
		"model":        result.Model,
		"degraded":     result.Degraded,
	})
}

// ListModelsHandler lists the target models and the backend model each maps to.
func (h *GatewayHandler) ListModelsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"provider": h.provider,
		"models":   h.mapping.Keys(),
		"mapping":  h.mapping,
	})
}
