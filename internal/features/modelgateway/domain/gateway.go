// Package domain defines the narrow capability interfaces behind which text generation
// and embedding models are reached.
package domain

import (
	"context"
	"errors"
	"sort"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// DefaultMappingKey is the model mapping entry used for unknown target models.
const DefaultMappingKey = "default"

// ErrGatewayUnavailable is returned when no backend is configured to serve a call.
var ErrGatewayUnavailable = errors.New("model gateway unavailable")

// GenerateRequest is a single text-generation call. Zero values leave the provider defaults in place.
type GenerateRequest struct {
	Model           string
	Prompt          string
	MaxOutputLength int
	Temperature     float64
	TopP            float64
}

// Generator produces one completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Embedder maps texts to vectors. The result has one vector per input, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// GenerationParams are the sampling settings applied to prompt tests.
type GenerationParams struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// TestResult is the outcome of running a prompt against a backend model.
// Degraded is set when Output is a note rather than model text.
type TestResult struct {
	Output      string `json:"output"`
	TargetModel string `json:"target_model"`
	Model       string `json:"model"`
	Degraded    bool   `json:"degraded"`
}

// ModelMapping maps a target model key (as used by the template tables) to a backend model name.
type ModelMapping map[string]string

// Resolve returns the backend model for targetModel, falling back to the default entry.
func (m ModelMapping) Resolve(targetModel string) string {
	key := strings.ToLower(strings.TrimSpace(targetModel))
	if name, ok := m[key]; ok && name != "" {
		return name
	}
	return m[DefaultMappingKey]
}

// Keys returns the mapped target model keys, sorted.
func (m ModelMapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
