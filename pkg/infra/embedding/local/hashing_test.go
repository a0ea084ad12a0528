package local_test

import (
	"context"
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/embedding"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/embedding/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingEmbedder_Deterministic(t *testing.T) {
	e := local.NewHashingEmbedder(256)
	a, err := e.Generate(context.Background(), "No profanity allowed")
	require.NoError(t, err)
	b, err := e.Generate(context.Background(), "no PROFANITY, allowed!")
	require.NoError(t, err)
	assert.Equal(t, a.Value, b.Value)
	assert.Len(t, a.Value, 256)
	assert.Equal(t, local.ModelName, a.Model)
}

func TestHashingEmbedder_SharedVocabularyIsCloser(t *testing.T) {
	e := local.NewHashingEmbedder(0)
	q, _ := e.Generate(context.Background(), "this message contains profanity")
	near, _ := e.Generate(context.Background(), "no profanity in messages")
	far, _ := e.Generate(context.Background(), "do not share phone numbers")

	assert.Len(t, q.Value, local.DefaultDimension)
	assert.Greater(t,
		embedding.CosineSimilarity(q.Value, near.Value),
		embedding.CosineSimilarity(q.Value, far.Value),
	)
}

func TestHashingEmbedder_EmptyText(t *testing.T) {
	e := local.NewHashingEmbedder(8)
	emb, err := e.Generate(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 8), emb.Value)
}
