package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-optimizer/backend/internal/features/templates/domain"
)

// TemplateHandler exposes the read-only template store.
type TemplateHandler struct {
	store *domain.Store
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(store *domain.Store) *TemplateHandler {
	return &TemplateHandler{store: store}
}

// ListTemplatesHandler lists known model keys and the template keys in table order.
func (h *TemplateHandler) ListTemplatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"models":        h.store.Models(),
		"template_keys": h.store.TemplateKeys(),
	})
}

// GetTemplateHandler resolves the template and best practices for one model key.
func (h *TemplateHandler) GetTemplateHandler(c *gin.Context) {
	model := c.Param("model")
	c.JSON(http.StatusOK, gin.H{
		"model":          domain.NormalizeModelKey(model),
		"fallback":       !h.store.HasModel(model),
		"template":       h.store.Template(model),
		"best_practices": h.store.Practices(model),
	})
}

// RegisterRoutes mounts the template routes on group.
func (h *TemplateHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.ListTemplatesHandler)
	group.GET("/:model", h.GetTemplateHandler)
}
