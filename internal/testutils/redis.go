package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestRedisConfig holds configuration for test Redis containers
type TestRedisConfig struct {
	Image string
	DB    int
}

// DefaultTestRedisConfig returns the default test Redis configuration
func DefaultTestRedisConfig() *TestRedisConfig {
	return &TestRedisConfig{
		Image: "redis:7-alpine",
		DB:    15, // Use DB 15 for tests to avoid conflicts
	}
}

// StartRedisContainer starts a throwaway Redis and returns a client for it.
// The test is skipped when Docker is not available.
func StartRedisContainer(t *testing.T, cfg *TestRedisConfig) redis.UniversalClient {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Redis container in short mode")
	}
	if cfg == nil {
		cfg = DefaultTestRedisConfig()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        cfg.Image,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Redis container not available for testing: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err, "Failed to resolve Redis container endpoint")

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   cfg.DB,
	})
	require.NoError(t, client.Ping(ctx).Err(), "Failed to ping Redis container")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}
