package domain

import (
	"strings"

	"prompt-optimizer/backend/internal/apperr"
)

// Criterion names one lexical heuristic.
type Criterion string

const (
	CriterionClarity     Criterion = "clarity"
	CriterionSpecificity Criterion = "specificity"
	CriterionContext     Criterion = "context"
	CriterionConstraints Criterion = "constraints"
)

// DefaultCriteria is the canonical evaluation order.
var DefaultCriteria = []Criterion{CriterionClarity, CriterionSpecificity, CriterionContext, CriterionConstraints}

// ParseCriteria normalises raw names into canonical order without duplicates.
// An empty list selects every criterion.
func ParseCriteria(raw []string) ([]Criterion, error) {
	if len(raw) == 0 {
		return DefaultCriteria, nil
	}

	want := make(map[Criterion]bool, len(raw))
	for _, r := range raw {
		c := Criterion(strings.ToLower(strings.TrimSpace(r)))
		if !isKnown(c) {
			allowed := make([]string, len(DefaultCriteria))
			for i, d := range DefaultCriteria {
				allowed[i] = string(d)
			}
			return nil, apperr.Invalid("criteria", r, allowed)
		}
		want[c] = true
	}

	criteria := make([]Criterion, 0, len(want))
	for _, c := range DefaultCriteria {
		if want[c] {
			criteria = append(criteria, c)
		}
	}
	return criteria, nil
}

func isKnown(c Criterion) bool {
	for _, d := range DefaultCriteria {
		if c == d {
			return true
		}
	}
	return false
}

// EvaluationRequest is the body of an evaluate call.
type EvaluationRequest struct {
	Prompt   string   `json:"prompt" form:"prompt"`
	Criteria []string `json:"criteria,omitempty" form:"criteria"`
}

// EvaluationResult holds one score in [0,1] per active criterion. OverallScore is their plain mean.
type EvaluationResult struct {
	Scores       map[Criterion]float64 `json:"scores"`
	OverallScore float64               `json:"overall_score"`
	Suggestions  []string              `json:"suggestions"`
}
