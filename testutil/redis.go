package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens a *redis.Client for the server named by TEST_REDIS_URL
// (e.g. redis://localhost:6379/15).
//
// The test is skipped when TEST_REDIS_URL is not set. The client is closed
// when the test finishes. Tests should use unique keys; nothing is flushed.
func NewRedis(t *testing.T) *redis.Client {
	t.Helper()

	raw := os.Getenv("TEST_REDIS_URL")
	if raw == "" {
		t.Skip("TEST_REDIS_URL not set; skipping integration test")
	}

	opts, err := redis.ParseURL(raw)
	if err != nil {
		t.Fatalf("testutil.NewRedis: parse url: %v", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		rdb.Close()
		t.Fatalf("testutil.NewRedis: ping: %v", err)
	}

	t.Cleanup(func() { rdb.Close() })
	return rdb
}
