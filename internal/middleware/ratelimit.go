// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/lafusta/lafusta-go/internal/metrics"
)

// APIError represents a JSON error response for the API.
type APIError struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// WriteAPIError writes a JSON error response.
func WriteAPIError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	apiErr := APIError{}
	apiErr.Error.Code = code
	apiErr.Error.Message = message
	apiErr.Error.Details = details

	_ = json.NewEncoder(w).Encode(apiErr)
}

// defaultMaxLimiters bounds the per-IP limiter map.
const defaultMaxLimiters = 10000

// limiterCache holds one token bucket per key with double-check locking.
// When it is full, buckets that have refilled completely are dropped, since
// they behave exactly like fresh ones. If every bucket is still in use, new
// keys share a single overflow bucket so a flood of new keys cannot reset
// the limits of existing clients.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	overflow *rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
	maxSize  int
}

func newLimiterCache[K comparable](rps float64, burst, maxSize int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		overflow: rate.NewLimiter(rate.Limit(rps), burst),
		rate:     rate.Limit(rps),
		burst:    burst,
		maxSize:  maxSize,
	}
}

// get returns the rate limiter for key, creating one if needed.
func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	if lc.maxSize > 0 && len(lc.limiters) >= lc.maxSize {
		lc.pruneIdle()
		if len(lc.limiters) >= lc.maxSize {
			return lc.overflow
		}
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// pruneIdle drops buckets that are full again. Callers hold the write lock.
func (lc *limiterCache[K]) pruneIdle() {
	now := time.Now()
	for key, l := range lc.limiters {
		if l.TokensAt(now) >= float64(lc.burst) {
			delete(lc.limiters, key)
		}
	}
}

func (lc *limiterCache[K]) len() int {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	return len(lc.limiters)
}

// RateLimiter limits requests per client IP.
type RateLimiter struct {
	cache *limiterCache[string]
}

// NewRateLimiter creates a per-IP limiter allowing rps requests per second
// with the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		cache: newLimiterCache[string](rps, burst, defaultMaxLimiters),
	}
}

// Middleware returns the rate limiting middleware for API routes (JSON errors).
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(r) {
				WriteAPIError(w, http.StatusTooManyRequests, "rate_limit_exceeded", "Rate limit exceeded. Please slow down.", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HTMLMiddleware returns the rate limiting middleware for pages (plain text errors).
func (rl *RateLimiter) HTMLMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(r) {
				http.Error(w, "Too many requests. Please wait a moment and try again.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(r *http.Request) bool {
	ip := clientIP(r)
	if rl.cache.get(ip).Allow() {
		return true
	}
	metrics.RateLimited.Inc()
	slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
	return false
}

// clientIP keys the limiter on the connection address. Forwarding headers
// are not read here: chi's RealIP middleware, which runs first, has already
// rewritten RemoteAddr from them.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
