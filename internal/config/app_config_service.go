package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"prompt-optimizer/backend/internal/features/config/domain"
)

// DefaultConfigPath is used when APP_CONFIG_PATH is not set.
const DefaultConfigPath = "config/app_config.yaml"

// AppConfigService defines the interface for application configuration management.
type AppConfigService interface {
	LoadAppConfig() (*domain.AppConfig, error)
	SaveAppConfig(config *domain.AppConfig) error
}

// appConfigService is the implementation of AppConfigService.
type appConfigService struct {
	configPath string
	getenv     func(string) string
}

// NewAppConfigService creates a new instance of appConfigService.
func NewAppConfigService(configPath string) AppConfigService {
	return &appConfigService{configPath: configPath, getenv: os.Getenv}
}

// ConfigPathFromEnv returns APP_CONFIG_PATH or the default path.
func ConfigPathFromEnv() string {
	if p := os.Getenv("APP_CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultConfigPath
}

// LoadAppConfig loads the configuration file, fills unset fields from defaults and applies
// environment overrides. A missing file yields the defaults.
func (s *appConfigService) LoadAppConfig() (*domain.AppConfig, error) {
	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	appConfig := domain.DefaultAppConfig()
	data, err := os.ReadFile(absPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Debug("app config file not found, using defaults", "path", absPath)
	case err != nil:
		return nil, fmt.Errorf("failed to read app config file %s: %w", absPath, err)
	default:
		if err := unmarshalConfig(absPath, data, appConfig); err != nil {
			return nil, fmt.Errorf("failed to unmarshal app config from %s: %w", absPath, err)
		}
	}

	s.applyEnv(appConfig)
	return appConfig, nil
}

// SaveAppConfig saves the application configuration to the configured file.
func (s *appConfigService) SaveAppConfig(appConfig *domain.AppConfig) error {
	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	data, err := marshalConfig(absPath, appConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal app config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory for %s: %w", absPath, err)
	}
	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write app config to file %s: %w", absPath, err)
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func unmarshalConfig(path string, data []byte, out *domain.AppConfig) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, out)
	}
	return json.Unmarshal(data, out)
}

func marshalConfig(path string, in *domain.AppConfig) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(in)
	}
	return json.MarshalIndent(in, "", "  ")
}

// applyEnv overrides file values with environment variables.
func (s *appConfigService) applyEnv(c *domain.AppConfig) {
	overrides := []struct {
		key    string
		target *string
	}{
		{"OPENAI_API_KEY", &c.Gateway.APIKey},
		{"GATEWAY_PROVIDER", &c.Gateway.Provider},
		{"GATEWAY_BASE_URL", &c.Gateway.BaseURL},
		{"GATEWAY_MODEL", &c.Gateway.Model},
		{"EMBEDDING_MODEL", &c.Gateway.EmbeddingModel},
		{"DATA_DIR", &c.DataDir},
		{"SERVER_ADDR", &c.Server.Addr},
		{"LOG_LEVEL", &c.Log.Level},
		{"LOG_FORMAT", &c.Log.Format},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(s.getenv(o.key)); v != "" {
			*o.target = v
		}
	}
}
