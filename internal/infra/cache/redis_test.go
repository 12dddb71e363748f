package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the three commands RedisCache uses.
type fakeRedis struct {
	redis.Cmdable
	data map[string]string
	ttl  map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttl[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type row struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestRedisCacheRoundTrip(t *testing.T) {
	client := newFakeRedis()
	c := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	var got row
	ok, err := c.Get(ctx, "category:1", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "category:1", row{ID: "1", Title: "Hair"}))
	assert.Equal(t, time.Minute, client.ttl["booking-api:category:1"])

	ok, err = c.Get(ctx, "category:1", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, row{ID: "1", Title: "Hair"}, got)

	require.NoError(t, c.Delete(ctx, "category:1"))
	ok, err = c.Get(ctx, "category:1", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, c.Delete(ctx))
}

func TestRedisCacheCorruptEntry(t *testing.T) {
	client := newFakeRedis()
	client.data["booking-api:category:1"] = "{not json"

	var got row
	ok, err := NewRedisCache(client, time.Minute).Get(context.Background(), "category:1", &got)

	assert.Error(t, err)
	assert.False(t, ok)
}
