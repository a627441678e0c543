package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_NilClientIsNoop(t *testing.T) {
	c := New(nil, time.Minute)

	require.NoError(t, c.Set(context.Background(), "studio:lumen", map[string]string{"name": "Lumen"}))

	var dst map[string]string
	hit, err := c.Get(context.Background(), "studio:lumen", &dst)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Close())
}

func TestCache_UnreachableRedisReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	c := New(client, time.Minute)
	defer c.Close()

	var dst map[string]string
	hit, err := c.Get(context.Background(), "studio:lumen", &dst)
	assert.False(t, hit)
	assert.ErrorIs(t, err, ErrRedis)
}

func TestCache_MarshalError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	c := New(client, time.Minute)
	defer c.Close()

	err := c.Set(context.Background(), "bad", make(chan int))
	assert.ErrorIs(t, err, ErrMarshal)
}
