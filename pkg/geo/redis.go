// SPDX-License-Identifier: GPL-3.0-or-later

package geo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "minerscan:geo:"

// entries go stale as addresses get reassigned
const defaultRedisTTL = time.Hour * 24 * 7

// RedisCache is a Cache shared between scanner processes via redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache returns a Cache backed by the redis instance at addr
func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	return &RedisCache{
		client: client,
		ttl:    defaultRedisTTL,
	}
}

// Lookup returns the cached location for an address if present
func (c *RedisCache) Lookup(ctx context.Context, addr string) (*Location, bool, error) {
	data, err := c.client.Get(ctx, redisKeyPrefix+addr).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	loc := &Location{}

	if err := json.Unmarshal(data, loc); err != nil {
		return nil, false, err
	}

	return loc, true, nil
}

// Store records the location for an address with a TTL
func (c *RedisCache) Store(ctx context.Context, addr string, loc *Location) error {
	data, err := json.Marshal(loc)

	if err != nil {
		return err
	}

	return c.client.Set(ctx, redisKeyPrefix+addr, data, c.ttl).Err()
}

// Close releases the underlying client
func (c *RedisCache) Close() error {
	return c.client.Close()
}
