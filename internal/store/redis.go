package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nibzard/kanban-go/internal/board"
)

// KeyPrefix namespaces every key the Redis backend touches.
const KeyPrefix = "kanban:"

// RedisStore keeps the snapshot as a plain string value in Redis.
// The client is safe for concurrent use.
type RedisStore struct {
	rdb *redis.Client
	key string
}

// NewRedisStore connects lazily to the server described by opts.
func NewRedisStore(opts *redis.Options, key string) (*RedisStore, error) {
	if opts == nil || opts.Addr == "" {
		return nil, fmt.Errorf("redis address is empty")
	}
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{rdb: redis.NewClient(opts), key: key}, nil
}

// RedisKey returns the fully qualified key for a store key.
func RedisKey(key string) string {
	return KeyPrefix + key
}

// Save writes the snapshot with no expiry.
func (r *RedisStore) Save(ctx context.Context, snapshot board.Snapshot) error {
	data, err := encode("redis", r.key, snapshot)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, RedisKey(r.key), data, 0).Err(); err != nil {
		return storageErr("redis", "save", r.key, err)
	}
	return nil
}

// Load returns ok=false when the key does not exist.
func (r *RedisStore) Load(ctx context.Context) (string, bool, error) {
	raw, err := r.rdb.Get(ctx, RedisKey(r.key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storageErr("redis", "load", r.key, err)
	}
	return raw, true, nil
}

// Clear deletes the key.
func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.rdb.Del(ctx, RedisKey(r.key)).Err(); err != nil {
		return storageErr("redis", "clear", r.key, err)
	}
	return nil
}

// Ping verifies Redis connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return storageErr("redis", "ping", r.key, err)
	}
	return nil
}

// Close closes the Redis connection. Implements io.Closer.
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
