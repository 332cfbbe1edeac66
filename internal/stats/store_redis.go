// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package stats

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDeduper implements [Deduper] on a shared Redis client.
//
// SETNX with a TTL is exactly the semantic needed: the first writer of a key
// wins the window, every later attempt sees the key and is a repeat.
type RedisDeduper struct {
	client *redis.Client
}

// NewRedisDeduper constructs a Redis-backed visit de-duplicator.
func NewRedisDeduper(client *redis.Client) *RedisDeduper {
	return &RedisDeduper{client: client}
}

// FirstSeen returns true exactly once per key per ttl window.
func (deduper *RedisDeduper) FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return deduper.client.SetNX(ctx, key, 1, ttl).Result()
}
