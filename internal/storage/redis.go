package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores the document blob in a single Redis key. No TTL —
// the record lives until overwritten.
type RedisBackend struct {
	rdb *redis.Client
}

// NewRedisBackend connects to Redis and verifies the connection with a
// short ping before accepting writes.
func NewRedisBackend(redisURL string) (*RedisBackend, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisBackend{rdb: rdb}, nil
}

func (b *RedisBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := b.rdb.Get(ctx, DocumentKey).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	return data, err
}

func (b *RedisBackend) Write(ctx context.Context, data []byte) error {
	return b.rdb.Set(ctx, DocumentKey, data, 0).Err()
}

func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

func (b *RedisBackend) Close() error { return b.rdb.Close() }

func (b *RedisBackend) Name() string { return "redis" }
