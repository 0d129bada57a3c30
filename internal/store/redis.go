package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV backs the store with Redis. This is the default substrate.
type RedisKV struct {
	client redis.Cmdable
}

// NewRedisKV wraps an already connected Redis client.
func NewRedisKV(client redis.Cmdable) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	// Blobs never expire; logout is the only thing that removes them.
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}
