package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Browser-context state is ephemeral by nature; expire abandoned
// contexts rather than keeping them forever.
const redisTTL = 30 * 24 * time.Hour

// RedisStore keeps context state in Redis, for multi-instance
// deployments where a state file cannot be shared.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Get(ctx context.Context, contextID, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, redisKey(contextID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (r *RedisStore) Set(ctx context.Context, contextID, key string, value []byte) error {
	if err := r.client.Set(ctx, redisKey(contextID, key), value, redisTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, contextID, key string) error {
	if err := r.client.Del(ctx, redisKey(contextID, key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func redisKey(contextID, key string) string {
	return fmt.Sprintf("ctx:%s:%s", contextID, key)
}
