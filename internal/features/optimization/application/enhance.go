package application

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	templatesdomain "prompt-optimizer/backend/internal/features/templates/domain"
	"prompt-optimizer/backend/internal/textproc"
)

var (
	rolePattern   = regexp.MustCompile(`(?i)(you are|act as|as an?|assume the role)`)
	outputPattern = regexp.MustCompile(`(?i)(please provide|i need|output format|format your response)`)
)

// bullet conversion applies to body sentences longer than this (in characters)
const longSentence = 100

// Enhance restructures prompt around an intro, body and conclusion: it adds a role to the
// intro, turns long comma-separated body sentences into bullets, adds an output expectation
// to the conclusion and appends the optimization hint.
func Enhance(prompt string, practices templatesdomain.BestPracticeEntry, segmenter textproc.Segmenter) (string, error) {
	sentences, err := segmenter.Split(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to segment prompt: %w", err)
	}

	var intro, conclusion string
	var body []string
	switch n := len(sentences); {
	case n == 0:
		return practices.OptimizationHint, nil
	case n == 1:
		// the only sentence serves as both intro and conclusion
		intro = sentences[0]
	default:
		intro = sentences[0]
		body = sentences[1 : n-1]
		conclusion = sentences[n-1]
	}

	if !rolePattern.MatchString(intro) {
		intro = fmt.Sprintf("As a specialized %s expert, %s", textproc.ExtractDomain(intro), intro)
	}

	parts := []string{intro}
	for _, sentence := range body {
		parts = append(parts, bulletize(sentence))
	}

	last := &parts[0]
	if conclusion != "" {
		parts = append(parts, conclusion)
		last = &parts[len(parts)-1]
	}
	if !outputPattern.MatchString(*last) {
		*last = joinNonEmpty(*last, practices.OutputFormat)
	}

	return joinNonEmpty(parts...) + "\n\n" + practices.OptimizationHint, nil
}

func bulletize(sentence string) string {
	if utf8.RuneCountInString(sentence) <= longSentence || !strings.Contains(sentence, ",") {
		return sentence
	}
	subparts := strings.Split(sentence, ", ")
	if len(subparts) <= 2 {
		return sentence
	}

	lines := make([]string, 0, len(subparts)+1)
	lines = append(lines, "Key points:")
	for _, p := range subparts {
		lines = append(lines, "- "+strings.TrimSpace(p))
	}
	return strings.Join(lines, "\n")
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
