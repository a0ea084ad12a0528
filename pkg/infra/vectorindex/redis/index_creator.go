package redis

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

type (
	IndexCreator interface {
		CreateIndex(ctx context.Context, cfg Config) error
	}
	indexCreator struct {
		redis  *redis.Client
		logger *logrus.Logger
	}
)

func NewIndexCreator(redis *redis.Client, logger *logrus.Logger) IndexCreator {
	return &indexCreator{
		redis:  redis,
		logger: logger,
	}
}

// CreateIndex creates the RediSearch schema if it does not exist yet. Existing
// indexes are left untouched so stored rules survive restarts; pass
// cfg.Recreate to drop the index together with its documents first.
func (c *indexCreator) CreateIndex(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()

	if cfg.Recreate {
		dropArgs := []interface{}{"FT.DROPINDEX", cfg.IndexName, "DD"}
		err := c.redis.Do(ctx, dropArgs...).Err()
		if err != nil && !strings.Contains(err.Error(), "Unknown Index name") {
			c.logger.WithError(err).Warnf("failed to drop index %s", cfg.IndexName)
		}
	}

	err := c.redis.Do(ctx, createArgs(cfg)...).Err()
	if err != nil {
		if strings.Contains(err.Error(), "Index already exists") {
			c.logger.Debugf("vector index %s already exists", cfg.IndexName)
			return nil
		}
		c.logger.WithError(err).Errorf("failed to create vector index: %s", cfg.IndexName)
		return err
	}

	c.logger.Infof("vector index created successfully: %s", cfg.IndexName)
	return nil
}

func createArgs(cfg Config) []interface{} {
	args := []interface{}{
		"FT.CREATE", cfg.IndexName,
		"ON", "HASH",
		"PREFIX", "1", cfg.keyPrefix(),
		"SCHEMA",
	}
	for _, field := range cfg.TagFields {
		args = append(args, tagField(field), "TAG", "SEPARATOR", "|")
	}
	args = append(args,
		embeddingField, "VECTOR", "FLAT", "6",
		"TYPE", "FLOAT32",
		"DIM", strconv.Itoa(cfg.Dimension),
		"DISTANCE_METRIC", "COSINE",
	)
	return args
}
