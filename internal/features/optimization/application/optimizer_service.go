package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"prompt-optimizer/backend/internal/apperr"
	gatewaydomain "prompt-optimizer/backend/internal/features/modelgateway/domain"
	"prompt-optimizer/backend/internal/features/optimization/domain"
	templatesdomain "prompt-optimizer/backend/internal/features/templates/domain"
	"prompt-optimizer/backend/internal/textproc"
)

const (
	optimizedMarker    = "Optimized version:"
	rewriteErrorPrefix = "Error rewriting prompt: "
	emptyRewriteNote   = "The model didn't generate an optimized version of your prompt."

	defaultMaxOutputLength = 150
)

// a rewrite containing any of these already has structure of its own
var structureMarkers = []string{"step", "bullet", "1.", "i.", "•"}

// OptimizerService rewrites existing prompts.
type OptimizerService interface {
	Optimize(ctx context.Context, req *domain.RewriteRequest) (*domain.OptimizationResult, error)
}

// RewriteSettings configures the maximum-level rewrite.
type RewriteSettings struct {
	Mapping         gatewaydomain.ModelMapping
	MaxOutputLength int
}

type optimizerService struct {
	store     *templatesdomain.Store
	segmenter textproc.Segmenter
	generator gatewaydomain.Generator
	embedder  gatewaydomain.Embedder
	settings  RewriteSettings
}

// NewOptimizerService creates a new OptimizerService.
func NewOptimizerService(
	store *templatesdomain.Store,
	segmenter textproc.Segmenter,
	generator gatewaydomain.Generator,
	embedder gatewaydomain.Embedder,
	settings RewriteSettings,
) OptimizerService {
	if settings.MaxOutputLength <= 0 {
		settings.MaxOutputLength = defaultMaxOutputLength
	}
	return &optimizerService{
		store:     store,
		segmenter: segmenter,
		generator: generator,
		embedder:  embedder,
		settings:  settings,
	}
}

// Optimize dispatches on the optimization level. Gateway failures during a maximum rewrite
// produce a degraded result, not an error.
func (s *optimizerService) Optimize(ctx context.Context, req *domain.RewriteRequest) (*domain.OptimizationResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, apperr.Required("prompt")
	}
	level, err := domain.ParseLevel(req.OptimizationLevel)
	if err != nil {
		return nil, err
	}

	target := templatesdomain.NormalizeModelKey(req.TargetModel)
	practices := s.store.Practices(target)
	result := &domain.OptimizationResult{Level: level, TargetModel: target}

	switch level {
	case domain.LevelMinimal:
		result.OptimizedPrompt = Clean(req.Prompt)
	case domain.LevelBalanced:
		result.OptimizedPrompt, err = Enhance(req.Prompt, practices, s.segmenter)
		if err != nil {
			return nil, err
		}
	case domain.LevelMaximum:
		s.rewriteFull(ctx, req.Prompt, target, practices, result)
	}

	slog.InfoContext(ctx, "prompt optimized",
		"level", level,
		"target_model", target,
		"matched_template", result.MatchedTemplate,
		"degraded", result.Degraded,
	)
	return result, nil
}

func (s *optimizerService) rewriteFull(ctx context.Context, prompt, target string, practices templatesdomain.BestPracticeEntry, result *domain.OptimizationResult) {
	if concepts, err := textproc.ExtractConcepts(prompt); err != nil {
		slog.DebugContext(ctx, "concept extraction failed", "error", err)
	} else {
		slog.DebugContext(ctx, "prompt concepts", "noun_phrases", concepts.NounPhrases, "verbs", concepts.Verbs)
	}

	matched, err := MatchTemplate(ctx, s.embedder, prompt, s.store.TemplateKeys())
	if err != nil {
		slog.WarnContext(ctx, "template matching failed, using default", "error", err)
		matched = templatesdomain.DefaultKey
	}
	result.MatchedTemplate = matched

	model := s.settings.Mapping.Resolve(target)
	generated, err := s.generator.Generate(ctx, gatewaydomain.GenerateRequest{
		Model:           model,
		Prompt:          fmt.Sprintf("Rewrite this prompt for %s: %s\n\n%s", target, prompt, optimizedMarker),
		MaxOutputLength: s.settings.MaxOutputLength,
	})
	if err != nil {
		slog.WarnContext(ctx, "rewrite generation failed", "model", model, "error", err)
		result.OptimizedPrompt = rewriteErrorPrefix + err.Error()
		result.Degraded = true
		return
	}

	rewritten := generated
	if i := strings.LastIndex(generated, optimizedMarker); i >= 0 {
		rewritten = generated[i+len(optimizedMarker):]
	}
	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		result.OptimizedPrompt = emptyRewriteNote
		result.Degraded = true
		return
	}

	if !textproc.ContainsAny(strings.ToLower(rewritten), structureMarkers) {
		rewritten += "\n\n" + practices.DetailedFormat
	}
	result.OptimizedPrompt = rewritten
}
