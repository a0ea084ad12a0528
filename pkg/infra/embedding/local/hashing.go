package local

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/embedding"
	"github.com/cespare/xxhash/v2"
)

const (
	DefaultDimension = 1536
	ModelName        = "local-feature-hashing"
)

type hashingEmbedder struct {
	dimension int
}

// NewHashingEmbedder returns an offline embedder that projects word unigrams
// and bigrams into a fixed-size signed feature-hashing space. Texts sharing
// vocabulary land close in cosine distance, which is enough to run the
// service without an embeddings provider.
func NewHashingEmbedder(dimension int) embedding.Creator {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &hashingEmbedder{dimension: dimension}
}

func (h *hashingEmbedder) Generate(ctx context.Context, text string) (*embedding.Embedding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec := make([]float64, h.dimension)
	tokens := tokenize(text)
	for i, tok := range tokens {
		h.add(vec, tok, 1.0)
		if i > 0 {
			h.add(vec, tokens[i-1]+" "+tok, 0.5)
		}
	}
	embedding.Normalize(vec)
	return &embedding.Embedding{
		Value:     vec,
		Model:     ModelName,
		CreatedAt: time.Now(),
	}, nil
}

func (h *hashingEmbedder) add(vec []float64, feature string, weight float64) {
	sum := xxhash.Sum64String(feature)
	idx := int(sum % uint64(h.dimension))
	if sum>>63 == 1 {
		weight = -weight
	}
	vec[idx] += weight
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
