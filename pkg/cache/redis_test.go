package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// Set VENTRIGLISSE_TEST_REDIS to a reachable address to run these tests.
func redisCache(t *testing.T) *RedisCache {
	t.Helper()
	addr := os.Getenv("VENTRIGLISSE_TEST_REDIS")
	if addr == "" {
		t.Skip("VENTRIGLISSE_TEST_REDIS not set")
	}
	c, err := NewRedisCache(context.Background(), addr, "ventriglisse-test:"+t.Name()+":")
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Clear(context.Background())
		_ = c.Close()
	})
	return c
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	c := redisCache(t)

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("NSEN"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "NSEN" {
		t.Fatalf("Get = %q, hit %v, err %v", data, hit, err)
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("entry survived Clear")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if _, err := NewRedisCache(ctx, "127.0.0.1:1", ""); err == nil {
		t.Error("NewRedisCache() on a closed port should fail")
	}
}
