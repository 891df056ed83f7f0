package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a key is absent.
var ErrMiss = errors.New("cache miss")

// Cache is a thin JSON cache. Implementations must be safe for concurrent
// use. Callers treat every cache error as a miss (fail-open).
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type redisCache struct {
	rdb *redis.Client
}

func NewRedis(addr, password string, db int) Cache {
	return &redisCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *redisCache) GetJSON(ctx context.Context, key string, dest any) error {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}

func (c *redisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// Noop is used when no Redis address is configured.
type Noop struct{}

func (Noop) GetJSON(ctx context.Context, key string, dest any) error { return ErrMiss }
func (Noop) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}
func (Noop) Delete(ctx context.Context, key string) error { return nil }
