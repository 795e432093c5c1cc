package application

import (
	"context"
	"log/slog"
	"strings"

	"prompt-optimizer/backend/internal/apperr"
	"prompt-optimizer/backend/internal/features/generation/domain"
	templatesdomain "prompt-optimizer/backend/internal/features/templates/domain"
	"prompt-optimizer/backend/internal/textproc"
)

// GenerationService assembles new prompts from a goal.
type GenerationService interface {
	Generate(ctx context.Context, req *domain.GenerationRequest) (string, error)
}

type generationService struct {
	store *templatesdomain.Store
}

// NewGenerationService creates a new GenerationService over the template store.
func NewGenerationService(store *templatesdomain.Store) GenerationService {
	return &generationService{store: store}
}

// Generate validates req and assembles the prompt. An empty style means detailed.
func (s *generationService) Generate(ctx context.Context, req *domain.GenerationRequest) (string, error) {
	if strings.TrimSpace(req.Goal) == "" {
		return "", apperr.Required("goal")
	}

	style := domain.Style(strings.ToLower(strings.TrimSpace(req.Style)))
	if style == "" {
		style = domain.StyleDetailed
	}

	formats, unknown := domain.ParseFormats(req.Formats)
	if len(unknown) > 0 {
		slog.DebugContext(ctx, "ignoring unknown format flags", "formats", unknown)
	}

	prompt := Assemble(s.store, req.Goal, req.TargetModel, req.Context, style, formats)
	slog.InfoContext(ctx, "prompt generated", "target_model", req.TargetModel, "style", style, "chars", len(prompt))
	return prompt, nil
}

// Assemble builds a prompt from the template and best-practice entries for targetModel.
//
// Section order is fixed: persona, goal, context and style hint on one line, then the
// constraints and examples hints, then the template suffix. Whitespace is normalised last.
func Assemble(store *templatesdomain.Store, goal, targetModel, context string, style domain.Style, formats domain.FormatSet) string {
	template := store.Template(targetModel)
	practices := store.Practices(targetModel)

	var components []string
	if formats.Has(domain.FormatPersona) {
		components = append(components, "As an expert "+textproc.ExtractDomain(goal)+",")
	}
	components = append(components, goal)
	if strings.TrimSpace(context) != "" {
		components = append(components, "Context: "+context)
	}
	if hint := styleHint(practices, style); hint != "" {
		components = append(components, hint)
	}

	var b strings.Builder
	b.WriteString(template.Prefix)
	b.WriteString(strings.Join(components, " "))
	if formats.Has(domain.FormatConstraints) {
		b.WriteString("\n\n" + practices.Constraints)
	}
	if formats.Has(domain.FormatExamples) {
		b.WriteString("\n\n" + practices.ExampleFormat)
	}
	b.WriteString(template.Suffix)

	return textproc.RemoveSpaceBefore(textproc.CollapseWhitespace(b.String()), ".,")
}

func styleHint(p templatesdomain.BestPracticeEntry, style domain.Style) string {
	switch style {
	case domain.StyleDetailed:
		return p.DetailedFormat
	case domain.StyleStepByStep:
		return p.StepInstructions
	case domain.StyleConcise:
		return p.ConciseFormat
	}
	return ""
}
