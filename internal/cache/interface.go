// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the byte cache used for rendered pages, the
// sitemap and robots.txt, with an in-memory backend and a Redis backend.
package cache

import (
	"context"
	"sync/atomic"
	"time"
)

// Cache stores rendered output. All implementations must be thread-safe.
type Cache interface {
	// Get returns ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A non-positive ttl uses the default TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteByPrefix removes every entry whose key starts with prefix and
	// returns how many were removed.
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	Stats() Stats

	Close() error
}

// Stats is a snapshot of cache activity since startup.
type Stats struct {
	Backend string  `json:"backend"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Sets    int64   `json:"sets"`
	Items   int     `json:"items,omitempty"`
	HitRate float64 `json:"hit_rate"`
	Size    int64   `json:"size_bytes,omitempty"`
}

// Error represents an error type for cache operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrCacheMiss indicates the key was not found in cache or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)

// Backend names reported in Stats.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// counters tracks lookups shared by both backends.
type counters struct {
	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

func (c *counters) snapshot(backend string) Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	s := Stats{Backend: backend, Hits: hits, Misses: misses, Sets: c.sets.Load()}
	if total := hits + misses; total > 0 {
		s.HitRate = float64(hits) / float64(total) * 100
	}
	return s
}
