// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"time"
)

// Config holds configuration for cache creation.
type Config struct {
	// RedisURL selects the Redis backend when set, e.g. redis://localhost:6379/0
	RedisURL string

	// Prefix is the key prefix for Redis
	Prefix string

	DefaultTTL time.Duration

	// MaxSize is the maximum number of entries for memory cache (0 = unlimited)
	MaxSize int

	CleanupInterval time.Duration
}

// DefaultConfig returns default cache configuration.
func DefaultConfig() Config {
	return Config{
		Prefix:          "lafusta:",
		DefaultTTL:      time.Hour,
		MaxSize:         10000,
		CleanupInterval: time.Minute,
	}
}

// New creates a Redis cache when RedisURL is set and a memory cache otherwise.
func New(cfg Config) (Cache, error) {
	if cfg.RedisURL != "" {
		rc, err := NewRedisCache(RedisOptions{
			URL:        cfg.RedisURL,
			Namespace:  cfg.Prefix,
			DefaultTTL: cfg.DefaultTTL,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	}

	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      cfg.DefaultTTL,
		MaxSize:         cfg.MaxSize,
		CleanupInterval: cfg.CleanupInterval,
	}), nil
}

// GetOrSet returns the cached value for key, computing and storing it with
// fill on a miss. Backend errors other than a miss are ignored so that a
// failing cache degrades to computing every time.
func GetOrSet(ctx context.Context, c Cache, key string, ttl time.Duration, fill func() ([]byte, error)) ([]byte, bool, error) {
	if data, err := c.Get(ctx, key); err == nil {
		return data, true, nil
	}

	data, err := fill()
	if err != nil {
		return nil, false, err
	}
	_ = c.Set(ctx, key, data, ttl)
	return data, false, nil
}
