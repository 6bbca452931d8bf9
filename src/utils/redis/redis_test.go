package redis_utils_test

import (
	"context"
	"os"
	"testing"
	"time"

	"backoffice/src/config"
	redis "backoffice/src/utils/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SampleData struct {
	Name  string
	Age   int
	Email string
}

// These tests talk to a real server; set REDIS_HOST to run them.
func TestRedisHandler(t *testing.T) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		t.Skip("REDIS_HOST not set")
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	ctx := context.Background()
	handler, err := redis.NewRedisHandler(ctx, config.RedisConfig{Host: host, Port: port}, "test:")
	require.NoError(t, err)
	defer handler.Close()

	key := "redis_handler_key"
	expiration := 2 * time.Second

	t.Run("Set and Get with struct", func(t *testing.T) {
		value := SampleData{Name: "John Doe", Age: 30, Email: "john.doe@example.com"}
		require.NoError(t, handler.Set(ctx, key, value, expiration))

		var got SampleData
		require.NoError(t, handler.Get(ctx, key, &got))
		assert.Equal(t, value, got)
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := handler.Exists(ctx, key)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, handler.Delete(ctx, key))

		var got SampleData
		assert.ErrorIs(t, handler.Get(ctx, key, &got), redis.ErrKeyNotFound)
	})

	t.Run("Expiration", func(t *testing.T) {
		require.NoError(t, handler.Set(ctx, key, "short lived", expiration))
		time.Sleep(expiration + 500*time.Millisecond)

		exists, err := handler.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
