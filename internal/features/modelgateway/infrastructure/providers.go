package infrastructure

import (
	"sort"
	"strings"
)

// Provider is a preset for an OpenAI-compatible endpoint.
type Provider struct {
	Name           string
	BaseURL        string
	RequiresKey    bool
	EmbeddingModel string // empty when the endpoint has no embeddings API worth using
}

var providers = map[string]Provider{
	"openai": {
		Name:           "openai",
		RequiresKey:    true,
		EmbeddingModel: "text-embedding-3-small",
	},
	"ollama": {
		Name:           "ollama",
		BaseURL:        "http://localhost:11434/v1",
		EmbeddingModel: "nomic-embed-text",
	},
	"groq": {
		Name:        "groq",
		BaseURL:     "https://api.groq.com/openai/v1",
		RequiresKey: true,
	},
	"openrouter": {
		Name:        "openrouter",
		BaseURL:     "https://openrouter.ai/api/v1",
		RequiresKey: true,
	},
	// custom takes its base URL from config.
	"custom": {
		Name: "custom",
	},
}

// LookupProvider returns the preset for name (case-insensitive).
func LookupProvider(name string) (Provider, bool) {
	p, ok := providers[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// ProviderNames lists the known presets, sorted.
func ProviderNames() []string {
	names := make([]string, 0, len(providers))
	for n := range providers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
