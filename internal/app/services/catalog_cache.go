package services

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/studentregistry/internal/pkg/cache"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// cachedList returns the value stored under key or loads and stores it. Cache failures
// are logged and never fail the request.
func cachedList[T any](ctx context.Context, c cache.Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var value T
	err := c.Get(ctx, key, &value)
	if err == nil {
		logger.Debug().Str("key", key).Msg("Catalog cache hit")
		return value, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn().Err(err).Str("key", key).Msg("Catalog cache read failed")
	}

	value, err = load()
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Catalog cache write failed")
	}
	return value, nil
}
