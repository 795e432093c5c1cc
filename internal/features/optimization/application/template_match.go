package application

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	gatewaydomain "prompt-optimizer/backend/internal/features/modelgateway/domain"
	templatesdomain "prompt-optimizer/backend/internal/features/templates/domain"
)

// MatchTemplate returns the key whose embedding is closest to the prompt's by cosine
// similarity. Ties go to the earliest key. With no keys it returns the default key.
func MatchTemplate(ctx context.Context, embedder gatewaydomain.Embedder, prompt string, keys []string) (string, error) {
	if len(keys) == 0 {
		return templatesdomain.DefaultKey, nil
	}

	var promptVecs, keyVecs [][]float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		promptVecs, err = embedder.Embed(gctx, []string{prompt})
		return err
	})
	g.Go(func() error {
		var err error
		keyVecs, err = embedder.Embed(gctx, keys)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("failed to embed template keys: %w", err)
	}
	if len(promptVecs) != 1 || len(keyVecs) != len(keys) {
		return "", fmt.Errorf("embedder returned %d+%d vectors for %d+%d texts", len(promptVecs), len(keyVecs), 1, len(keys))
	}

	best, bestScore := 0, math.Inf(-1)
	for i, v := range keyVecs {
		if score := cosineSimilarity(promptVecs[0], v); score > bestScore {
			best, bestScore = i, score
		}
	}
	return keys[best], nil
}

// cosineSimilarity is 0 for mismatched lengths or zero vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
