package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-optimizer/backend/internal/apperr"
)

func TestEvaluateCommand_PrintsTable(t *testing.T) {
	out, _, err := run(t, "", "evaluate", "Tell me about dogs")
	require.NoError(t, err)

	for _, want := range []string{"Criterion", "clarity", "specificity", "context", "constraints", "overall", "Suggestions"} {
		assert.Contains(t, out, want)
	}
}

func TestEvaluateCommand_SelectedCriteria(t *testing.T) {
	out, _, err := run(t, "", "evaluate", "Tell me about dogs", "--criteria", "clarity")
	require.NoError(t, err)

	assert.Contains(t, out, "clarity")
	assert.NotContains(t, out, "specificity")
}

func TestEvaluateCommand_JSON(t *testing.T) {
	out, _, err := run(t, "", "evaluate", "Tell me about dogs", "--json")
	require.NoError(t, err)

	var got struct {
		Scores       map[string]float64 `json:"scores"`
		OverallScore float64            `json:"overall_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Scores, 4)
	assert.GreaterOrEqual(t, got.OverallScore, 0.0)
	assert.LessOrEqual(t, got.OverallScore, 1.0)
}

func TestEvaluateCommand_UnknownCriterion(t *testing.T) {
	_, _, err := run(t, "", "evaluate", "Tell me about dogs", "--criteria", "tone")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
	// wide runes count double
	assert.Equal(t, "日本 ", padRight("日本", 5))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0.75", formatScore(0.75))
	assert.Equal(t, "1.00", formatScore(1))
}
