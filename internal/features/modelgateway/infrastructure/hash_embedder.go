package infrastructure

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

const hashDimensions = 256

// HashEmbedder is a deterministic bag-of-words embedder using the hashing trick.
// It needs no model and is used when the provider has no embeddings endpoint.
type HashEmbedder struct {
	Dimensions int
}

// NewHashEmbedder returns a HashEmbedder with the default width.
func NewHashEmbedder() *HashEmbedder {
	return &HashEmbedder{Dimensions: hashDimensions}
}

// Embed returns one unit vector per text. Texts without any word map to the zero vector.
func (e *HashEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	dims := e.Dimensions
	if dims <= 0 {
		dims = hashDimensions
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vectors[i] = hashVector(text, dims)
	}
	return vectors, nil
}

func hashVector(text string, dims int) []float32 {
	vec := make([]float32, dims)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		h := fnv.New32a()
		_, _ = h.Write([]byte(w))
		sum := h.Sum32()
		// high bit picks the sign so collisions tend to cancel
		sign := float32(1)
		if sum&(1<<31) != 0 {
			sign = -1
		}
		vec[int(sum%uint32(dims))] += sign
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}
