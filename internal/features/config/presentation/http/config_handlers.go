package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-optimizer/backend/internal/config"
	"prompt-optimizer/backend/internal/features/config/application"
	"prompt-optimizer/backend/internal/features/config/domain"
)

// AppConfigHandler holds the app config service.
type AppConfigHandler struct {
	appConfigService config.AppConfigService
	configService    application.ConfigService
	configPath       string
}

// NewAppConfigHandler creates a new AppConfigHandler.
func NewAppConfigHandler(appConfigService config.AppConfigService, configService application.ConfigService, configPath string) *AppConfigHandler {
	return &AppConfigHandler{
		appConfigService: appConfigService,
		configService:    configService,
		configPath:       configPath,
	}
}

// GetAppConfigHandler handles fetching the application configuration.
func (h *AppConfigHandler) GetAppConfigHandler(c *gin.Context) {
	appConfig, err := h.appConfigService.LoadAppConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load app config: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, appConfig)
}

// SaveAppConfigHandler handles saving the application configuration.
// Changes apply on the next start; the running template store and gateway are immutable.
func (h *AppConfigHandler) SaveAppConfigHandler(c *gin.Context) {
	var appConfig domain.AppConfig
	if err := c.ShouldBindJSON(&appConfig); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := appConfig.ModelMapping["default"]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model_mapping must contain a \"default\" entry"})
		return
	}

	if err := h.appConfigService.SaveAppConfig(&appConfig); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save app config: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "App config saved successfully"})
}

// InitWorkspaceHandler writes the default template tables (and config file) when missing.
func (h *AppConfigHandler) InitWorkspaceHandler(c *gin.Context) {
	overwrite := c.Query("overwrite") == "true"
	result, err := h.configService.InitWorkspace(h.configPath, overwrite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialise workspace: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
