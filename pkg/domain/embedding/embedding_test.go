package embedding_test

import (
	"math"
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/embedding"
	"github.com/stretchr/testify/assert"
)

func TestFloat32BlobRoundTrip(t *testing.T) {
	e := &embedding.Embedding{Value: []float64{0.5, -1, 0.25, 0}}
	blob := e.ToFloat32Blob()
	assert.Len(t, blob, 16)
	assert.Equal(t, e.Value, embedding.FromFloat32Blob(blob))
}

func TestNormalize(t *testing.T) {
	v := []float64{3, 4}
	embedding.Normalize(v)
	assert.InDelta(t, 0.6, v[0], 1e-9)
	assert.InDelta(t, 0.8, v[1], 1e-9)

	zero := []float64{0, 0}
	embedding.Normalize(zero)
	assert.Equal(t, []float64{0, 0}, zero)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, embedding.CosineSimilarity([]float64{1, 2}, []float64{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, embedding.CosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, embedding.CosineSimilarity([]float64{1, 0}, []float64{-1, 0}), 1e-9)
	assert.Equal(t, 0.0, embedding.CosineSimilarity([]float64{1}, []float64{1, 2}))
	assert.False(t, math.IsNaN(embedding.CosineSimilarity([]float64{0, 0}, []float64{1, 1})))
}
