package domain

// AppConfig represents the application configuration.
type AppConfig struct {
	Server       ServerConfig      `json:"server" yaml:"server"`
	DataDir      string            `json:"data_dir" yaml:"data_dir"`
	Log          LogConfig         `json:"log" yaml:"log"`
	Gateway      GatewayConfig     `json:"gateway" yaml:"gateway"`
	ModelMapping map[string]string `json:"model_mapping" yaml:"model_mapping"`
	ModelParams  ModelParams       `json:"model_params" yaml:"model_params"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr        string   `json:"addr" yaml:"addr"`
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins"`
}

// LogConfig selects the slog level and handler format.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "text" or "json"
}

// GatewayConfig selects the OpenAI-compatible provider behind the model gateway.
type GatewayConfig struct {
	Provider       string `json:"provider" yaml:"provider"` // "openai", "ollama", "groq", "openrouter", "custom"
	BaseURL        string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	APIKey         string `json:"-" yaml:"-"`
	Model          string `json:"model,omitempty" yaml:"model,omitempty"`
	EmbeddingModel string `json:"embedding_model,omitempty" yaml:"embedding_model,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds"`
}

// ModelParams defines the parameters for the AI model.
type ModelParams struct {
	Temperature     float64 `json:"temperature" yaml:"temperature"`
	TopP            float64 `json:"top_p" yaml:"top_p"`
	MaxTokens       int     `json:"max_tokens" yaml:"max_tokens"`
	MaxOutputLength int     `json:"max_output_length" yaml:"max_output_length"`
}

// DefaultAppConfig returns the configuration used when no config file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		DataDir: "data",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Gateway: GatewayConfig{
			Provider:       "openai",
			TimeoutSeconds: 60,
		},
		ModelMapping: map[string]string{
			"default": "gpt-4o-mini",
			"chatgpt": "gpt-4o-mini",
			"claude":  "gpt-4o",
			"gemini":  "gpt-4o",
			"llama":   "llama3.1:8b",
			"mistral": "mistral:7b",
			"gemma":   "gemma3:4b",
			"thai":    "gpt-4o-mini",
		},
		ModelParams: ModelParams{
			Temperature:     0.7,
			TopP:            0.9,
			MaxTokens:       200,
			MaxOutputLength: 150,
		},
	}
}
