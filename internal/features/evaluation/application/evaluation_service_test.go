package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-optimizer/backend/internal/apperr"
	"prompt-optimizer/backend/internal/features/evaluation/domain"
)

func TestEvaluateScenario(t *testing.T) {
	res, err := NewEvaluationService().Evaluate("You must write exactly 3 paragraphs about dogs.", nil)
	require.NoError(t, err)

	assert.Equal(t, 0.9, res.Scores[domain.CriterionClarity])
	assert.Equal(t, 0.9, res.Scores[domain.CriterionSpecificity])
	assert.Equal(t, 0.4, res.Scores[domain.CriterionContext])
	assert.Equal(t, 0.8, res.Scores[domain.CriterionConstraints])
	assert.InDelta(t, 0.75, res.OverallScore, 1e-9)
	assert.Equal(t, []string{"Add more context for better results."}, res.Suggestions)
}

func TestEvaluateLowScores(t *testing.T) {
	long := strings.Repeat("word ", 40) + "end"
	res := Evaluate(long, domain.DefaultCriteria)

	assert.Equal(t, 0.5, res.Scores[domain.CriterionClarity])
	assert.Equal(t, 0.6, res.Scores[domain.CriterionSpecificity])
	// over 30 words counts as context
	assert.Equal(t, 0.8, res.Scores[domain.CriterionContext])
	assert.Equal(t, 0.5, res.Scores[domain.CriterionConstraints])
	assert.Equal(t, []string{
		"Consider using shorter sentences for clarity.",
		"Add more specific instructions or examples.",
		"Consider adding constraints or limitations.",
	}, res.Suggestions)
}

func TestEvaluateEmptyPrompt(t *testing.T) {
	for _, prompt := range []string{"", "   \n\t"} {
		res := Evaluate(prompt, domain.DefaultCriteria)
		assert.Equal(t, 0.5, res.Scores[domain.CriterionClarity])
		assert.Len(t, res.Suggestions, 4)
	}
}

func TestEvaluateSubsetMean(t *testing.T) {
	res, err := NewEvaluationService().Evaluate("Give me context only.", []string{"context", "constraints"})
	require.NoError(t, err)

	assert.Len(t, res.Scores, 2)
	assert.InDelta(t, 0.8, res.OverallScore, 1e-9)
	assert.Empty(t, res.Suggestions)
}

func TestEvaluateUnknownCriterion(t *testing.T) {
	_, err := NewEvaluationService().Evaluate("hi", []string{"tone"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestEvaluateScoreBoundsAndDeterminism(t *testing.T) {
	prompts := []string{
		"", ".", "...", "hi", "Don't stop.", "Precisely list the context.",
		strings.Repeat("a very long sentence without any stop ", 20),
		"One. Two. Three. Four.",
	}
	subsets := [][]domain.Criterion{
		domain.DefaultCriteria,
		{domain.CriterionClarity},
		{domain.CriterionSpecificity, domain.CriterionConstraints},
		{},
	}
	for _, p := range prompts {
		for _, criteria := range subsets {
			res := Evaluate(p, criteria)
			for c, s := range res.Scores {
				assert.GreaterOrEqual(t, s, 0.0, "%s on %q", c, p)
				assert.LessOrEqual(t, s, 1.0, "%s on %q", c, p)
			}
			assert.GreaterOrEqual(t, res.OverallScore, 0.0)
			assert.LessOrEqual(t, res.OverallScore, 1.0)
			assert.Equal(t, res, Evaluate(p, criteria))
		}
	}
}
