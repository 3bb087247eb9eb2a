package model

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"health-report/internal/domain"
)

type redisGetSetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedClient guarda en Redis las predicciones por request. Si Redis falla se consulta
// directamente al modelo.
type CachedClient struct {
	next   Client
	redis  redisGetSetter
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

// NewCachedClient devuelve next sin envolver cuando no hay cliente Redis.
func NewCachedClient(next Client, client *redis.Client, ttl time.Duration, logger *zap.Logger) Client {
	if client == nil {
		return next
	}
	return newCachedClient(next, client, ttl, logger)
}

func newCachedClient(next Client, rdb redisGetSetter, ttl time.Duration, logger *zap.Logger) *CachedClient {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedClient{
		next:   next,
		redis:  rdb,
		ttl:    ttl,
		prefix: "health:pred:",
		logger: logger,
	}
}

func (c *CachedClient) Predict(ctx context.Context, req domain.HealthRequest) ([]string, error) {
	key, err := c.cacheKey(req)
	if err != nil {
		return c.next.Predict(ctx, req)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	raw, err := c.redis.Get(lookupCtx, key).Result()
	cancel()
	switch {
	case err == nil:
		var cached []string
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("prediction cache get failed", zap.Error(err))
	}

	preds, err := c.next.Predict(ctx, req)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(preds)
	if err != nil {
		return preds, nil
	}
	storeCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	if err := c.redis.Set(storeCtx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("prediction cache set failed", zap.Error(err))
	}
	return preds, nil
}

func (c *CachedClient) cacheKey(req domain.HealthRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(body)
	return c.prefix + hex.EncodeToString(sum[:]), nil
}
