package application

import (
	"log/slog"
	"strings"

	"prompt-optimizer/backend/internal/features/evaluation/domain"
	"prompt-optimizer/backend/internal/textproc"
)

const maxMeanSentenceWords = 25

var (
	specificityWords = []string{"specific", "exactly", "precisely"}
	constraintWords  = []string{"limit", "constraint", "must", "should", "only", "don't"}
)

// EvaluationService scores prompts against lexical heuristics.
type EvaluationService interface {
	Evaluate(prompt string, criteria []string) (*domain.EvaluationResult, error)
}

type evaluationService struct{}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService() EvaluationService {
	return &evaluationService{}
}

// Evaluate validates the criteria names and scores prompt.
func (s *evaluationService) Evaluate(prompt string, criteria []string) (*domain.EvaluationResult, error) {
	active, err := domain.ParseCriteria(criteria)
	if err != nil {
		return nil, err
	}
	result := Evaluate(prompt, active)
	slog.Info("prompt evaluated", "criteria", len(active), "overall_score", result.OverallScore)
	return result, nil
}

// Evaluate scores prompt on each criterion independently. Suggestions follow criteria order.
func Evaluate(prompt string, criteria []domain.Criterion) *domain.EvaluationResult {
	result := &domain.EvaluationResult{
		Scores:      make(map[domain.Criterion]float64, len(criteria)),
		Suggestions: []string{},
	}
	lower := strings.ToLower(prompt)

	for _, c := range criteria {
		var score float64
		var suggestion string

		switch c {
		case domain.CriterionClarity:
			score, suggestion = 0.9, ""
			if strings.TrimSpace(prompt) == "" || meanSentenceWords(prompt) > maxMeanSentenceWords {
				score, suggestion = 0.5, "Consider using shorter sentences for clarity."
			}
		case domain.CriterionSpecificity:
			score, suggestion = 0.6, "Add more specific instructions or examples."
			if textproc.ContainsAny(lower, specificityWords) {
				score, suggestion = 0.9, ""
			}
		case domain.CriterionContext:
			score, suggestion = 0.4, "Add more context for better results."
			if strings.Contains(lower, "context") || len(strings.Fields(prompt)) > 30 {
				score, suggestion = 0.8, ""
			}
		case domain.CriterionConstraints:
			score, suggestion = 0.5, "Consider adding constraints or limitations."
			if textproc.ContainsAny(lower, constraintWords) {
				score, suggestion = 0.8, ""
			}
		}

		result.Scores[c] = score
		if suggestion != "" {
			result.Suggestions = append(result.Suggestions, suggestion)
		}
	}

	if len(criteria) > 0 {
		var sum float64
		for _, c := range criteria {
			sum += result.Scores[c]
		}
		result.OverallScore = sum / float64(len(criteria))
	}
	return result
}

// meanSentenceWords splits on "." and averages word counts, counting empty segments.
func meanSentenceWords(prompt string) float64 {
	segments := strings.Split(prompt, ".")
	words := 0
	for _, s := range segments {
		words += len(strings.Fields(s))
	}
	return float64(words) / float64(len(segments))
}
