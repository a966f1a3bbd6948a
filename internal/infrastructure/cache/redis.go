package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

const embeddingTTL = time.Hour

// NewRedisClient creates a Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// EmbeddingCache stores query embeddings keyed by a hash of the input text.
// All operations are best effort; a cache failure never fails the request.
type EmbeddingCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewEmbeddingCache creates a Redis-backed embedding cache
func NewEmbeddingCache(client *redis.Client, logger *zap.Logger) *EmbeddingCache {
	return &EmbeddingCache{client: client, logger: logger}
}

// Get returns the cached vector for the text, if present
func (c *EmbeddingCache) Get(ctx context.Context, text string) ([]float32, bool) {
	raw, err := c.client.Get(ctx, embeddingKey(text)).Bytes()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("embedding cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var vector []float32
	if err := json.Unmarshal(raw, &vector); err != nil {
		if c.logger != nil {
			c.logger.Warn("embedding cache entry corrupt", zap.Error(err))
		}
		return nil, false
	}
	return vector, true
}

// Set stores the vector for the text with a fixed TTL
func (c *EmbeddingCache) Set(ctx context.Context, text string, vector []float32) {
	raw, err := json.Marshal(vector)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, embeddingKey(text), raw, embeddingTTL).Err(); err != nil {
		if c.logger != nil {
			c.logger.Warn("embedding cache set failed", zap.Error(err))
		}
	}
}

func embeddingKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "embedding:" + hex.EncodeToString(sum[:])
}
