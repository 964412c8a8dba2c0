// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/lafusta/lafusta-go/internal/cache"
	"github.com/lafusta/lafusta-go/internal/scheduler"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// JobLister reports the background jobs shown by /health.
type JobLister interface {
	List() []scheduler.JobInfo
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	cache          cache.Cache
	jobs           JobLister
	version        string
	contentVersion string
	startTime      time.Time
}

// NewHealthHandler creates a new health handler. c and jobs may be nil.
func NewHealthHandler(c cache.Cache, jobs JobLister, version, contentVersion string) *HealthHandler {
	return &HealthHandler{
		cache:          c,
		jobs:           jobs,
		version:        version,
		contentVersion: contentVersion,
		startTime:      time.Now(),
	}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status         string              `json:"status"`
	Uptime         string              `json:"uptime"`
	Version        string              `json:"version"`
	ContentVersion string              `json:"content_version"`
	Checks         map[string]Check    `json:"checks"`
	Jobs           []scheduler.JobInfo `json:"jobs,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Latency string       `json:"latency,omitempty"`
	Stats   *cache.Stats `json:"stats,omitempty"`
}

// Health handles GET /health. A failing cache backend degrades the status
// to 503 even though pages are still served by recomputing them. Job
// failures are reported but do not degrade the status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:         statusHealthy,
		Uptime:         time.Since(h.startTime).Round(time.Second).String(),
		Version:        h.version,
		ContentVersion: h.contentVersion,
		Checks:         map[string]Check{"cache": h.checkCache(r.Context())},
	}
	if h.jobs != nil {
		status.Jobs = h.jobs.List()
	}

	code := http.StatusOK
	for _, c := range status.Checks {
		if c.Status != statusHealthy {
			status.Status = statusDegraded
			code = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, code, status)
}

func (h *HealthHandler) checkCache(ctx context.Context) Check {
	if h.cache == nil {
		return Check{Status: statusHealthy, Message: "disabled"}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	stats := h.cache.Stats()
	start := time.Now()
	if err := h.cache.Ping(ctx); err != nil {
		return Check{Status: statusDegraded, Message: err.Error(), Stats: &stats}
	}
	return Check{
		Status:  statusHealthy,
		Message: stats.Backend,
		Latency: time.Since(start).String(),
		Stats:   &stats,
	}
}
