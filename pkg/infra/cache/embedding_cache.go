package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/embedding"
	"github.com/cespare/xxhash/v2"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	EmbeddingKeyPrefix   = "ruleguard:embedding:"
	DefaultEmbeddingTTL  = 24 * time.Hour
	DefaultLocalTTL      = 10 * time.Minute
	DefaultLocalCapacity = 4096
)

type embeddingCache struct {
	next   embedding.Creator
	redis  *redis.Client
	local  *TTLMap[*embedding.Embedding]
	logger *logrus.Logger
	model  string
	ttl    time.Duration
}

// NewEmbeddingCache wraps next with an in-process map in front of Redis.
// Cache faults are logged and fall through to next; they never fail a
// request. Embeddings for the same text under the same model are reused.
func NewEmbeddingCache(
	logger *logrus.Logger,
	next embedding.Creator,
	client *redis.Client,
	model string,
) embedding.Creator {
	return &embeddingCache{
		next:   next,
		redis:  client,
		local:  NewTTLMap[*embedding.Embedding](DefaultLocalTTL, DefaultLocalCapacity),
		logger: logger,
		model:  model,
		ttl:    DefaultEmbeddingTTL,
	}
}

func EmbeddingKey(model, text string) string {
	return EmbeddingKeyPrefix + model + ":" +
		strconv.FormatUint(xxhash.Sum64String(text), 16) + ":" + strconv.Itoa(len(text))
}

func (c *embeddingCache) Generate(ctx context.Context, text string) (*embedding.Embedding, error) {
	key := EmbeddingKey(c.model, text)

	if emb, ok := c.local.Get(key); ok {
		return emb, nil
	}

	if c.redis != nil {
		blob, err := c.redis.Get(ctx, key).Bytes()
		switch {
		case err == nil && len(blob) > 0:
			emb := &embedding.Embedding{
				Value:     embedding.FromFloat32Blob(blob),
				Model:     c.model,
				CreatedAt: time.Now().UTC(),
			}
			c.local.Set(key, emb)
			return emb, nil
		case err != nil && !errors.Is(err, redis.Nil):
			c.logger.WithError(err).Debug("embedding cache read failed")
		}
	}

	emb, err := c.next.Generate(ctx, text)
	if err != nil {
		return nil, err
	}

	c.local.Set(key, emb)
	if c.redis != nil {
		if err := c.redis.Set(ctx, key, string(emb.ToFloat32Blob()), c.ttl).Err(); err != nil {
			c.logger.WithError(err).Warn("embedding cache write failed")
		}
	}
	return emb, nil
}
