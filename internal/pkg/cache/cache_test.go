package cache

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestConfigAddr(t *testing.T) {
	assert.Equal(t, "redis:6380", Config{Host: "redis", Port: 6380}.Addr())
}

func TestRedisCache_RejectsBadInputBeforeNetwork(t *testing.T) {
	// nothing listens on this address; every case must fail before dialing
	c := NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	defer c.Close()
	ctx := context.Background()

	assert.ErrorIs(t, c.Set(ctx, "", "v", 0), ErrCacheKeyEmpty)

	var dest string
	assert.ErrorIs(t, c.Get(ctx, "", &dest), ErrCacheKeyEmpty)

	assert.ErrorIs(t, c.Set(ctx, "k", make(chan int), 0), ErrCacheSerialization)
	assert.NoError(t, c.Delete(ctx))
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", 1, 0))
	var dest int
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), ErrCacheMiss)
	assert.NoError(t, c.Delete(ctx, "k"))
}
