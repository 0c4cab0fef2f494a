//go:build integration
// +build integration

package identifiers_test

import (
	"context"
	"testing"

	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/repositories/identifiers"
	"github.com/KirkDiggler/laddercast-metadata/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRegistry_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t, nil)

	reg := identifiers.NewRedis(&identifiers.RedisRepoConfig{Client: client})
	ctx := context.Background()

	t.Run("claim and count", func(t *testing.T) {
		require.NoError(t, reg.Claim(ctx, "run-a", "chest_1_1"))
		require.NoError(t, reg.Claim(ctx, "run-a", "chest_2_1"))

		n, err := reg.Count(ctx, "run-a")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("duplicate claim collides", func(t *testing.T) {
		err := reg.Claim(ctx, "run-a", "chest_1_1")
		require.Error(t, err)
		assert.True(t, generr.IsCollision(err))
	})

	t.Run("release clears the run", func(t *testing.T) {
		require.NoError(t, reg.Release(ctx, "run-a"))

		n, err := reg.Count(ctx, "run-a")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
