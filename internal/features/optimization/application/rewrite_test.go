package application

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	templatesdomain "prompt-optimizer/backend/internal/features/templates/domain"
	"prompt-optimizer/backend/internal/textproc"
)

type segmenterFunc func(string) ([]string, error)

func (f segmenterFunc) Split(text string) ([]string, error) { return f(text) }

func fixedSentences(sentences ...string) textproc.Segmenter {
	return segmenterFunc(func(string) ([]string, error) { return sentences, nil })
}

var testPractices = templatesdomain.BestPracticeEntry{
	ModelKey:         "default",
	DetailedFormat:   "Use headings.",
	OutputFormat:     "Use sections.",
	OptimizationHint: "Be logical.",
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hi", "hi."},
		{"  Hello ,  world  !", "Hello, world!"},
		{"What is this ?", "What is this?"},
		{"List: a ; b", "List: a; b."},
		{"Already done.", "Already done."},
		{"", "."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	corpus := []string{
		"", " ", "hi", "hi .", "a , b , c", "\tTabs\tand\nnewlines\n", "Why ? Because !",
		"ends with colon :", "multiple   spaces . . .", "unicode — dash", "trailing ;", "?",
	}
	for _, x := range corpus {
		once := Clean(x)
		assert.Equal(t, once, Clean(once), "input %q", x)
	}
}

func TestEnhance(t *testing.T) {
	tests := []struct {
		name      string
		sentences []string
		want      string
	}{
		{
			name:      "zero sentences",
			sentences: nil,
			want:      "Be logical.",
		},
		{
			name:      "one sentence is intro and conclusion",
			sentences: []string{"Explain recursion."},
			want:      "As a specialized AI expert, Explain recursion. Use sections.\n\nBe logical.",
		},
		{
			name:      "adds role and output format",
			sentences: []string{"Write a poem about the sea.", "Keep it short."},
			want:      "As a specialized content creation expert, Write a poem about the sea. Keep it short. Use sections.\n\nBe logical.",
		},
		{
			name:      "keeps existing role and output expectation",
			sentences: []string{"You are a chef.", "Please provide a recipe."},
			want:      "You are a chef. Please provide a recipe.\n\nBe logical.",
		},
		{
			name: "long body sentence becomes bullets",
			sentences: []string{
				"You are a grocer.",
				"Cover pricing strategy for apples, seasonal availability of bananas, storage tips for cherries, and supplier contacts for dates.",
				"Format your response as a table.",
			},
			want: "You are a grocer. Key points:\n" +
				"- Cover pricing strategy for apples\n" +
				"- seasonal availability of bananas\n" +
				"- storage tips for cherries\n" +
				"- and supplier contacts for dates. Format your response as a table.\n\nBe logical.",
		},
		{
			name: "long body sentence with two parts is kept",
			sentences: []string{
				"Act as a reviewer.",
				"Read the following paragraph very carefully and thoroughly from the beginning to the very end, then summarise it.",
				"I need a summary.",
			},
			want: "Act as a reviewer. Read the following paragraph very carefully and thoroughly from the beginning to the very end, then summarise it. I need a summary.\n\nBe logical.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Enhance("ignored", testPractices, fixedSentences(tt.sentences...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnhanceEmptyPromptWithProse(t *testing.T) {
	got, err := Enhance("", testPractices, textproc.NewSegmenter())
	require.NoError(t, err)
	assert.Equal(t, "Be logical.", got)
}

func TestEnhanceWithProseSegmenter(t *testing.T) {
	got, err := Enhance("You are a helpful tutor. Explain fractions to a child.", testPractices, textproc.NewSegmenter())
	require.NoError(t, err)
	assert.Equal(t, "You are a helpful tutor. Explain fractions to a child. Use sections.\n\nBe logical.", got)
}

func TestEnhanceSegmenterError(t *testing.T) {
	seg := segmenterFunc(func(string) ([]string, error) { return nil, errors.New("tokenizer crashed") })
	_, err := Enhance("x", testPractices, seg)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "tokenizer crashed"))
}
