package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"prompt-optimizer/backend/internal/apperr"
	gatewaydomain "prompt-optimizer/backend/internal/features/modelgateway/domain"
	"prompt-optimizer/backend/internal/features/modelgateway/domain/mocks"
	"prompt-optimizer/backend/internal/features/optimization/domain"
	templatesdomain "prompt-optimizer/backend/internal/features/templates/domain"
)

var testKeys = []string{"default", "chatgpt", "claude"}

func newTestOptimizer(t *testing.T, gen gatewaydomain.Generator, emb gatewaydomain.Embedder) OptimizerService {
	t.Helper()
	store, err := templatesdomain.NewStore(
		[]templatesdomain.TemplateEntry{
			{ModelKey: "default"},
			{ModelKey: "chatgpt"},
			{ModelKey: "claude"},
		},
		[]templatesdomain.BestPracticeEntry{testPractices},
	)
	require.NoError(t, err)

	return NewOptimizerService(store, fixedSentences("Plan a trip."), gen, emb, RewriteSettings{
		Mapping: gatewaydomain.ModelMapping{"default": "gpt-4o-mini", "claude": "gpt-4o"},
	})
}

// expectEmbeddings makes the prompt closest to the key at index want.
func expectEmbeddings(emb *mocks.MockEmbedder, want int) {
	emb.EXPECT().Embed(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, texts []string) ([][]float32, error) {
			if len(texts) == 1 {
				return [][]float32{{1, 0, 0}}, nil
			}
			vecs := make([][]float32, len(texts))
			for i := range texts {
				vecs[i] = []float32{0, 1, 0}
				if i == want {
					vecs[i] = []float32{1, 0, 0}
				}
			}
			return vecs, nil
		})
}

func TestOptimizeMinimal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestOptimizer(t, mocks.NewMockGenerator(ctrl), mocks.NewMockEmbedder(ctrl))

	res, err := svc.Optimize(context.Background(), &domain.RewriteRequest{Prompt: "hi", TargetModel: "Claude", OptimizationLevel: "minimal"})
	require.NoError(t, err)
	assert.Equal(t, "hi.", res.OptimizedPrompt)
	assert.Equal(t, domain.LevelMinimal, res.Level)
	assert.Equal(t, "claude", res.TargetModel)
	assert.False(t, res.Degraded)
}

func TestOptimizeDefaultsToBalanced(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestOptimizer(t, mocks.NewMockGenerator(ctrl), mocks.NewMockEmbedder(ctrl))

	res, err := svc.Optimize(context.Background(), &domain.RewriteRequest{Prompt: "Plan a trip.", TargetModel: "unknown"})
	require.NoError(t, err)
	assert.Equal(t, domain.LevelBalanced, res.Level)
	assert.Equal(t, "As a specialized AI assistant expert, Plan a trip. Use sections.\n\nBe logical.", res.OptimizedPrompt)
}

func TestOptimizeMaximum(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	emb := mocks.NewMockEmbedder(ctrl)

	expectEmbeddings(emb, 2)
	gen.EXPECT().Generate(gomock.Any(), gatewaydomain.GenerateRequest{
		Model:           "gpt-4o",
		Prompt:          "Rewrite this prompt for claude: Plan a trip\n\nOptimized version:",
		MaxOutputLength: 150,
	}).Return("Rewrite this prompt for claude: Plan a trip\n\nOptimized version: Step 1: pick a destination.", nil)

	res, err := newTestOptimizer(t, gen, emb).Optimize(context.Background(), &domain.RewriteRequest{
		Prompt:            "Plan a trip",
		TargetModel:       " CLAUDE",
		OptimizationLevel: "maximum",
	})
	require.NoError(t, err)
	assert.Equal(t, "Step 1: pick a destination.", res.OptimizedPrompt)
	assert.Equal(t, "claude", res.MatchedTemplate)
	assert.False(t, res.Degraded)
}

func TestOptimizeMaximumAppendsDetailedFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	emb := mocks.NewMockEmbedder(ctrl)

	expectEmbeddings(emb, 1)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("Plan a relaxing week in Lisbon.", nil)

	res, err := newTestOptimizer(t, gen, emb).Optimize(context.Background(), &domain.RewriteRequest{
		Prompt:            "Plan a trip",
		TargetModel:       "chatgpt",
		OptimizationLevel: "maximum",
	})
	require.NoError(t, err)
	assert.Equal(t, "Plan a relaxing week in Lisbon.\n\nUse headings.", res.OptimizedPrompt)
	assert.Equal(t, "chatgpt", res.MatchedTemplate)
}

func TestOptimizeMaximumSoftFailures(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want string
	}{
		{name: "gateway error", err: errors.New("connection refused"), want: "Error rewriting prompt: connection refused"},
		{name: "empty output", out: "  ", want: "The model didn't generate an optimized version of your prompt."},
		{name: "nothing after marker", out: "Optimized version:   ", want: "The model didn't generate an optimized version of your prompt."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := mocks.NewMockGenerator(ctrl)
			emb := mocks.NewMockEmbedder(ctrl)

			expectEmbeddings(emb, 0)
			gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(tt.out, tt.err)

			res, err := newTestOptimizer(t, gen, emb).Optimize(context.Background(), &domain.RewriteRequest{
				Prompt:            "Plan a trip",
				OptimizationLevel: "maximum",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.OptimizedPrompt)
			assert.True(t, res.Degraded)
		})
	}
}

func TestOptimizeMaximumEmbeddingFailureFallsBackToDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	emb := mocks.NewMockEmbedder(ctrl)

	emb.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(nil, errors.New("no embeddings")).MinTimes(1).MaxTimes(2)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("1. Choose dates", nil)

	res, err := newTestOptimizer(t, gen, emb).Optimize(context.Background(), &domain.RewriteRequest{
		Prompt:            "Plan a trip",
		TargetModel:       "claude",
		OptimizationLevel: "maximum",
	})
	require.NoError(t, err)
	assert.Equal(t, templatesdomain.DefaultKey, res.MatchedTemplate)
	assert.Equal(t, "1. Choose dates", res.OptimizedPrompt)
	assert.False(t, res.Degraded)
}

func TestOptimizeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestOptimizer(t, mocks.NewMockGenerator(ctrl), mocks.NewMockEmbedder(ctrl))

	_, err := svc.Optimize(context.Background(), &domain.RewriteRequest{Prompt: " "})
	require.Error(t, err)
	assert.Equal(t, "prompt is required", err.Error())

	_, err = svc.Optimize(context.Background(), &domain.RewriteRequest{Prompt: "hi", OptimizationLevel: "ultra"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestMatchTemplate(t *testing.T) {
	t.Run("ties go to the first key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emb := mocks.NewMockEmbedder(ctrl)
		emb.EXPECT().Embed(gomock.Any(), []string{"prompt"}).Return([][]float32{{1, 0}}, nil)
		emb.EXPECT().Embed(gomock.Any(), testKeys).Return([][]float32{{0, 1}, {1, 0}, {2, 0}}, nil)

		got, err := MatchTemplate(context.Background(), emb, "prompt", testKeys)
		require.NoError(t, err)
		assert.Equal(t, "chatgpt", got)
	})

	t.Run("zero vectors pick the first key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emb := mocks.NewMockEmbedder(ctrl)
		emb.EXPECT().Embed(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, texts []string) ([][]float32, error) {
				return make([][]float32, len(texts)), nil
			})

		got, err := MatchTemplate(context.Background(), emb, "prompt", testKeys)
		require.NoError(t, err)
		assert.Equal(t, "default", got)
	})

	t.Run("no keys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		got, err := MatchTemplate(context.Background(), mocks.NewMockEmbedder(ctrl), "prompt", nil)
		require.NoError(t, err)
		assert.Equal(t, "default", got)
	})

	t.Run("short result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emb := mocks.NewMockEmbedder(ctrl)
		emb.EXPECT().Embed(gomock.Any(), gomock.Any()).Times(2).Return([][]float32{{1}}, nil)

		_, err := MatchTemplate(context.Background(), emb, "prompt", testKeys)
		require.Error(t, err)
	})
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Zero(t, cosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Zero(t, cosineSimilarity([]float32{0, 0}, []float32{1, 2}))
}
