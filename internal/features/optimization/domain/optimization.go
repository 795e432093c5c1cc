package domain

import (
	"strings"

	"prompt-optimizer/backend/internal/apperr"
)

// OptimizationLevel selects one of the rewrite strategies.
type OptimizationLevel string

const (
	LevelMinimal  OptimizationLevel = "minimal"
	LevelBalanced OptimizationLevel = "balanced"
	LevelMaximum  OptimizationLevel = "maximum"
)

// Levels lists the recognised levels.
var Levels = []OptimizationLevel{LevelMinimal, LevelBalanced, LevelMaximum}

// ParseLevel normalises s. Empty input means balanced.
func ParseLevel(s string) (OptimizationLevel, error) {
	level := OptimizationLevel(strings.ToLower(strings.TrimSpace(s)))
	switch level {
	case "":
		return LevelBalanced, nil
	case LevelMinimal, LevelBalanced, LevelMaximum:
		return level, nil
	}

	allowed := make([]string, len(Levels))
	for i, l := range Levels {
		allowed[i] = string(l)
	}
	return "", apperr.Invalid("optimization_level", s, allowed)
}

// RewriteRequest asks for an existing prompt to be optimised.
type RewriteRequest struct {
	Prompt            string `json:"prompt" form:"prompt"`
	TargetModel       string `json:"target_model" form:"target_model"`
	OptimizationLevel string `json:"optimization_level" form:"optimization_level"`
}

// OptimizationResult is a rewritten prompt. When Degraded is set, OptimizedPrompt holds a
// note explaining why the model could not produce a rewrite.
type OptimizationResult struct {
	OptimizedPrompt string            `json:"optimized_prompt"`
	Level           OptimizationLevel `json:"level"`
	TargetModel     string            `json:"target_model"`
	MatchedTemplate string            `json:"matched_template,omitempty"`
	Degraded        bool              `json:"degraded"`
}
