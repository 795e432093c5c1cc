package infrastructure

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"prompt-optimizer/backend/internal/apperr"
	configdomain "prompt-optimizer/backend/internal/features/config/domain"
	"prompt-optimizer/backend/internal/features/modelgateway/domain"
)

// Gateway bundles the generator and embedder built from one provider configuration.
type Gateway struct {
	Provider  string
	Generator domain.Generator
	Embedder  domain.Embedder
}

// NewGateway builds the gateway for cfg. A provider that needs an API key but has none
// gets an UnavailableGenerator; embeddings then fall back to the HashEmbedder.
func NewGateway(cfg configdomain.GatewayConfig) (*Gateway, error) {
	preset, ok := LookupProvider(cfg.Provider)
	if !ok {
		return nil, &apperr.ConfigurationError{
			Reason: fmt.Sprintf("unknown gateway provider %q (known: %s)", cfg.Provider, strings.Join(ProviderNames(), ", ")),
		}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = preset.BaseURL
	}
	if preset.Name == "custom" && baseURL == "" {
		return nil, &apperr.ConfigurationError{Reason: "gateway provider \"custom\" requires base_url"}
	}

	if preset.RequiresKey && cfg.APIKey == "" {
		slog.Warn("no API key configured, model calls are disabled", "provider", preset.Name)
		return &Gateway{
			Provider:  preset.Name,
			Generator: UnavailableGenerator{Reason: "no API key configured for provider " + preset.Name},
			Embedder:  NewHashEmbedder(),
		}, nil
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	embeddingModel := cfg.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = preset.EmbeddingModel
	}

	g := newOpenAIGateway(client, cfg.Model, embeddingModel, time.Duration(cfg.TimeoutSeconds)*time.Second)

	gw := &Gateway{Provider: preset.Name, Generator: g, Embedder: g}
	if embeddingModel == "" {
		gw.Embedder = NewHashEmbedder()
	}

	slog.Info("model gateway ready", "provider", preset.Name, "base_url", baseURL, "embedding_model", embeddingModel)
	return gw, nil
}
