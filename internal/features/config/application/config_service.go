package application

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"prompt-optimizer/backend/internal/config"
	templatesinfra "prompt-optimizer/backend/internal/features/templates/infrastructure"
)

// InitResult lists what a workspace initialisation created.
type InitResult struct {
	DataDir      string   `json:"data_dir"`
	WrittenFiles []string `json:"written_files"`
	ConfigSaved  bool     `json:"config_saved"`
}

// ConfigService defines the interface for workspace setup.
type ConfigService interface {
	InitWorkspace(configPath string, overwrite bool) (*InitResult, error)
}

// configService is the implementation of ConfigService.
type configService struct {
	appConfigService config.AppConfigService
}

// NewConfigService creates a new instance of configService.
func NewConfigService(appConfigService config.AppConfigService) ConfigService {
	return &configService{appConfigService: appConfigService}
}

// InitWorkspace creates the data directory with the default template tables and writes the
// app config file when it does not exist yet. Existing files are left alone unless overwrite is set.
func (s *configService) InitWorkspace(configPath string, overwrite bool) (*InitResult, error) {
	appConfig, err := s.appConfigService.LoadAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load app config: %w", err)
	}

	result := &InitResult{DataDir: appConfig.DataDir}

	if _, statErr := os.Stat(configPath); overwrite || errors.Is(statErr, os.ErrNotExist) {
		toSave := *appConfig
		toSave.Gateway.APIKey = ""
		if err := s.appConfigService.SaveAppConfig(&toSave); err != nil {
			return nil, fmt.Errorf("failed to save app config: %w", err)
		}
		result.ConfigSaved = true
	}

	written, err := templatesinfra.WriteTables(
		appConfig.DataDir,
		templatesinfra.DefaultTemplates(),
		templatesinfra.DefaultBestPractices(),
		overwrite,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to write template tables: %w", err)
	}
	result.WrittenFiles = written

	slog.Info("workspace initialised", "data_dir", appConfig.DataDir, "files", len(written), "config_saved", result.ConfigSaved)
	return result, nil
}
