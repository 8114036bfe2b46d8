// AngelaMos | 2026
// redis.go

package core

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/primebid/auction-api/internal/config"
)

type Redis struct {
	Client *redis.Client
}

func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.PoolTimeout = 30 * time.Second
	opts.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{Client: client}, nil
}

func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.Client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}

func (r *Redis) PoolStats() *redis.PoolStats {
	return r.Client.PoolStats()
}

const sessionDenyPrefix = "denylist:"

// DenySession revokes a session id until the token it came from expires.
// Keys carry their own TTL, so the denylist never needs sweeping.
func (r *Redis) DenySession(
	ctx context.Context,
	jti string,
	ttl time.Duration,
) error {
	if err := r.Client.Set(ctx, sessionDenyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("deny session: %w", err)
	}
	return nil
}

func (r *Redis) SessionDenied(ctx context.Context, jti string) (bool, error) {
	exists, err := r.Client.Exists(ctx, sessionDenyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check session denylist: %w", err)
	}
	return exists > 0, nil
}
