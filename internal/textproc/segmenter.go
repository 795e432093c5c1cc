package textproc

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Segmenter splits text into sentences.
type Segmenter interface {
	Split(text string) ([]string, error)
}

// proseSegmenter uses prose's punkt-based sentence boundary detection.
type proseSegmenter struct{}

// NewSegmenter returns the default language-aware sentence segmenter.
func NewSegmenter() Segmenter {
	return proseSegmenter{}
}

// Split returns the trimmed, non-empty sentences of text in order.
func (proseSegmenter) Split(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to segment text: %w", err)
	}

	var sentences []string
	for _, s := range doc.Sentences() {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences, nil
}
