package identifiers

import (
	"context"
	"fmt"
	"time"

	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL keeps a run's identifier set around long enough to inspect it afterwards
const DefaultTTL = 24 * time.Hour

// RedisRepoConfig holds configuration for the Redis registry
type RedisRepoConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

// redisRegistry implements Registry with one Redis set per run
type redisRegistry struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedis creates a Redis-backed registry, shared by every process of a run
func NewRedis(cfg *RedisRepoConfig) Registry {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRegistry{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func runKey(runID string) string {
	return fmt.Sprintf("metadata:run:%s:ids", runID)
}

func (r *redisRegistry) Claim(ctx context.Context, runID, id string) error {
	if err := checkArgs(runID, id); err != nil {
		return err
	}

	key := runKey(runID)
	pipe := r.client.Pipeline()
	added := pipe.SAdd(ctx, key, id)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return generr.Wrapf(err, "failed to claim identifier %s", id)
	}

	if added.Val() == 0 {
		return generr.Collisionf("identifier %s claimed twice", id).
			WithMeta("id", id).
			WithMeta("run_id", runID)
	}
	return nil
}

func (r *redisRegistry) Count(ctx context.Context, runID string) (int64, error) {
	n, err := r.client.SCard(ctx, runKey(runID)).Result()
	if err != nil {
		return 0, generr.Wrapf(err, "failed to count identifiers of run %s", runID)
	}
	return n, nil
}

func (r *redisRegistry) Release(ctx context.Context, runID string) error {
	if err := r.client.Del(ctx, runKey(runID)).Err(); err != nil {
		return generr.Wrapf(err, "failed to release run %s", runID)
	}
	return nil
}
