package application

import (
	"context"
	"log/slog"
	"strings"

	"prompt-optimizer/backend/internal/apperr"
	"prompt-optimizer/backend/internal/features/modelgateway/domain"
)

const (
	testErrorPrefix = "Error testing prompt: "
	emptyTestNote   = "The model didn't generate additional text beyond your prompt."
)

// TesterService runs a prompt against the backend model mapped from a target model.
type TesterService interface {
	TestPrompt(ctx context.Context, prompt, targetModel string) (*domain.TestResult, error)
}

type testerService struct {
	generator domain.Generator
	mapping   domain.ModelMapping
	params    domain.GenerationParams
}

// NewTesterService creates a new TesterService.
func NewTesterService(generator domain.Generator, mapping domain.ModelMapping, params domain.GenerationParams) TesterService {
	return &testerService{generator: generator, mapping: mapping, params: params}
}

// TestPrompt returns the model's continuation. Gateway failures and empty output come back as a
// degraded result carrying a note, never as an error; only an empty prompt is rejected.
func (s *testerService) TestPrompt(ctx context.Context, prompt, targetModel string) (*domain.TestResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, apperr.Required("prompt")
	}

	model := s.mapping.Resolve(targetModel)
	result := &domain.TestResult{TargetModel: targetModel, Model: model}

	out, err := s.generator.Generate(ctx, domain.GenerateRequest{
		Model:           model,
		Prompt:          prompt,
		MaxOutputLength: s.params.MaxTokens,
		Temperature:     s.params.Temperature,
		TopP:            s.params.TopP,
	})
	if err != nil {
		slog.Warn("prompt test failed", "target_model", targetModel, "model", model, "error", err)
		result.Output = testErrorPrefix + err.Error()
		result.Degraded = true
		return result, nil
	}

	// completion-style backends echo the prompt
	out = strings.TrimSpace(strings.TrimPrefix(out, prompt))
	if out == "" {
		result.Output = emptyTestNote
		result.Degraded = true
		return result, nil
	}

	slog.Info("prompt tested", "target_model", targetModel, "model", model, "output_chars", len(out))
	result.Output = out
	return result, nil
}
