package cache_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/NeuralTrust/RuleGuard/mocks"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/embedding"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/cache"
	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestEmbeddingCache_Generate(t *testing.T) {
	const text = "buy cheap pills"
	key := cache.EmbeddingKey("test-model", text)
	emb := &embedding.Embedding{Value: []float64{0.5, -0.25, 1}, Model: "test-model"}
	blob := string(emb.ToFloat32Blob())

	t.Run("miss stores in redis and then serves locally", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		inner := mocks.NewCreator(t)
		inner.EXPECT().Generate(mock.Anything, text).Return(emb, nil).Once()

		redisMock.ExpectGet(key).RedisNil()
		redisMock.ExpectSet(key, blob, cache.DefaultEmbeddingTTL).SetVal("OK")

		c := cache.NewEmbeddingCache(quietLogger(), inner, client, "test-model")
		got, err := c.Generate(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, emb.Value, got.Value)

		got, err = c.Generate(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, emb.Value, got.Value)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("redis hit skips the provider", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		inner := mocks.NewCreator(t)
		redisMock.ExpectGet(key).SetVal(blob)

		got, err := cache.NewEmbeddingCache(quietLogger(), inner, client, "test-model").
			Generate(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, emb.Value, got.Value)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("redis faults fall through", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		inner := mocks.NewCreator(t)
		inner.EXPECT().Generate(mock.Anything, text).Return(emb, nil).Once()

		redisMock.ExpectGet(key).SetErr(errors.New("connection refused"))
		redisMock.ExpectSet(key, blob, cache.DefaultEmbeddingTTL).SetErr(errors.New("connection refused"))

		got, err := cache.NewEmbeddingCache(quietLogger(), inner, client, "test-model").
			Generate(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, emb.Value, got.Value)
	})

	t.Run("provider errors are returned", func(t *testing.T) {
		inner := mocks.NewCreator(t)
		inner.EXPECT().Generate(mock.Anything, text).Return(nil, embedding.ErrProviderNonOKResponse)

		_, err := cache.NewEmbeddingCache(quietLogger(), inner, nil, "test-model").
			Generate(context.Background(), text)
		assert.ErrorIs(t, err, embedding.ErrProviderNonOKResponse)
	})
}

func TestEmbeddingKey(t *testing.T) {
	assert.Equal(t, cache.EmbeddingKey("m", "a"), cache.EmbeddingKey("m", "a"))
	assert.NotEqual(t, cache.EmbeddingKey("m", "a"), cache.EmbeddingKey("m", "b"))
	assert.NotEqual(t, cache.EmbeddingKey("m1", "a"), cache.EmbeddingKey("m2", "a"))
}
