// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics exposes the Prometheus collectors of the site.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts served requests by chi route pattern and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lafusta_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration tracks request latency per route.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lafusta_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// PageViews counts rendered pages by locale.
	PageViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lafusta_page_views_total",
			Help: "Total number of rendered pages by locale and page",
		},
		[]string{"locale", "page"},
	)

	// LocaleRedirects counts requests for unsupported locale codes.
	LocaleRedirects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lafusta_locale_redirects_total",
			Help: "Total number of redirects from an unsupported locale",
		},
		[]string{"target"},
	)

	// CacheLookups counts rendered-output cache lookups by result.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lafusta_cache_lookups_total",
			Help: "Total number of cache lookups by kind and result",
		},
		[]string{"kind", "result"},
	)

	// LogEvents counts warning and error log records by category.
	LogEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lafusta_log_events_total",
			Help: "Total number of warning and error log records by level and category",
		},
		[]string{"level", "category"},
	)

	// RateLimited counts rejected requests.
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lafusta_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// CacheResult returns the label value for a cache lookup.
func CacheResult(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
