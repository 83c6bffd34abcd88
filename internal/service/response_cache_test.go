package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestResponseCacheGetSet(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisResponseCache(client, time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "/all")
	assert.False(t, ok)

	cache.Set(ctx, "/all", []byte(`{"cases":1}`))
	body, ok := cache.Get(ctx, "/all")
	require.True(t, ok)
	assert.Equal(t, `{"cases":1}`, string(body))
	assert.True(t, mr.Exists(responseCachePrefix+"/all"))

	mr.FastForward(time.Minute + time.Second)
	_, ok = cache.Get(ctx, "/all")
	assert.False(t, ok)
}

func TestResponseCacheDisabledTTL(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewRedisResponseCache(client, 0)
	ctx := context.Background()

	cache.Set(ctx, "/all", []byte(`{}`))
	_, ok := cache.Get(ctx, "/all")
	assert.False(t, ok)
}

func TestResponseCacheRedisDown(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisResponseCache(client, time.Minute)
	mr.Close()

	ctx := context.Background()
	cache.Set(ctx, "/all", []byte(`{}`))
	_, ok := cache.Get(ctx, "/all")
	assert.False(t, ok)
}

func TestResponseCacheClear(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisResponseCache(client, time.Minute)
	ctx := context.Background()

	for i := 0; i < 1500; i++ {
		cache.Set(ctx, fmt.Sprintf("/countries/%d", i), []byte(`{}`))
	}
	require.NoError(t, mr.Set("unrelated", "keep me"))

	count, err := cache.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1500, count)
	assert.Equal(t, []string{"unrelated"}, mr.Keys())
}
