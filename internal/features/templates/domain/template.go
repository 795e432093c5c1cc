package domain

import (
	"fmt"
	"sort"
	"strings"

	"prompt-optimizer/backend/internal/apperr"
)

// DefaultKey is the entry every table must carry; unknown model keys resolve to it.
const DefaultKey = "default"

// TemplateEntry is the prefix/suffix wrapper applied when assembling a prompt for a model.
type TemplateEntry struct {
	ModelKey string `json:"model_key" mapstructure:"-"`
	Prefix   string `json:"prefix" mapstructure:"prefix"`
	Suffix   string `json:"suffix" mapstructure:"suffix"`
}

// BestPracticeEntry holds the canned hint strings for a model.
type BestPracticeEntry struct {
	ModelKey         string `json:"model_key" mapstructure:"-"`
	DetailedFormat   string `json:"detailed_format" mapstructure:"detailed_format"`
	StepInstructions string `json:"step_instructions" mapstructure:"step_instructions"`
	ConciseFormat    string `json:"concise_format" mapstructure:"concise_format"`
	Constraints      string `json:"constraints" mapstructure:"constraints"`
	ExampleFormat    string `json:"example_format" mapstructure:"example_format"`
	OutputFormat     string `json:"output_format" mapstructure:"output_format"`
	OptimizationHint string `json:"optimization_hint" mapstructure:"optimization_hint"`
}

// NormalizeModelKey trims and lowercases a model identifier.
func NormalizeModelKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Store is the read-only pair of template and best-practice tables.
// It is safe for concurrent use once built.
type Store struct {
	templates    map[string]TemplateEntry
	practices    map[string]BestPracticeEntry
	templateKeys []string
}

// NewStore builds a Store from entries in table order. Both tables must hold a default entry.
func NewStore(templates []TemplateEntry, practices []BestPracticeEntry) (*Store, error) {
	s := &Store{
		templates: make(map[string]TemplateEntry, len(templates)),
		practices: make(map[string]BestPracticeEntry, len(practices)),
	}

	for _, t := range templates {
		key := NormalizeModelKey(t.ModelKey)
		if _, dup := s.templates[key]; dup {
			return nil, &apperr.ConfigurationError{Reason: fmt.Sprintf("duplicate template key %q", key)}
		}
		t.ModelKey = key
		s.templates[key] = t
		s.templateKeys = append(s.templateKeys, key)
	}
	for _, p := range practices {
		key := NormalizeModelKey(p.ModelKey)
		if _, dup := s.practices[key]; dup {
			return nil, &apperr.ConfigurationError{Reason: fmt.Sprintf("duplicate best-practice key %q", key)}
		}
		p.ModelKey = key
		s.practices[key] = p
	}

	if _, ok := s.templates[DefaultKey]; !ok {
		return nil, &apperr.ConfigurationError{Reason: "template table has no \"default\" entry"}
	}
	if _, ok := s.practices[DefaultKey]; !ok {
		return nil, &apperr.ConfigurationError{Reason: "best-practice table has no \"default\" entry"}
	}
	return s, nil
}

// Template returns the template for modelKey, or the default entry on a miss.
func (s *Store) Template(modelKey string) TemplateEntry {
	if t, ok := s.templates[NormalizeModelKey(modelKey)]; ok {
		return t
	}
	return s.templates[DefaultKey]
}

// Practices returns the best practices for modelKey, or the default entry on a miss.
func (s *Store) Practices(modelKey string) BestPracticeEntry {
	if p, ok := s.practices[NormalizeModelKey(modelKey)]; ok {
		return p
	}
	return s.practices[DefaultKey]
}

// HasModel reports whether either table holds an entry of its own for modelKey.
func (s *Store) HasModel(modelKey string) bool {
	key := NormalizeModelKey(modelKey)
	_, t := s.templates[key]
	_, p := s.practices[key]
	return t || p
}

// TemplateKeys returns the template keys in table order.
func (s *Store) TemplateKeys() []string {
	keys := make([]string, len(s.templateKeys))
	copy(keys, s.templateKeys)
	return keys
}

// Models returns the sorted union of keys across both tables.
func (s *Store) Models() []string {
	seen := make(map[string]struct{}, len(s.templates)+len(s.practices))
	for k := range s.templates {
		seen[k] = struct{}{}
	}
	for k := range s.practices {
		seen[k] = struct{}{}
	}
	models := make([]string, 0, len(seen))
	for k := range seen {
		models = append(models, k)
	}
	sort.Strings(models)
	return models
}
