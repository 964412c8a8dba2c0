// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/metrics"
	"github.com/lafusta/lafusta-go/internal/middleware"
)

// RouterConfig holds everything NewRouter wires together.
type RouterConfig struct {
	Deps   Deps
	Logger *slog.Logger

	// StaticFS serves /static/*. Nil disables the route.
	StaticFS fs.FS

	Version       string
	IsDevelopment bool

	// RateLimitRPS and RateLimitBurst bound requests per client IP.
	// A zero rate disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	RequestTimeout time.Duration

	// Jobs lists background jobs on /health. Nil omits them.
	Jobs JobLister
}

// NewRouter builds the chi router of the site.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	frontend := NewFrontendHandler(cfg.Deps)
	api := NewAPIHandler(cfg.Deps)
	seoHandler := NewSEOHandler(cfg.Deps)
	health := NewHealthHandler(cfg.Deps.Cache, cfg.Jobs, cfg.Version, cfg.Deps.Store.Version())

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(timeout))
	r.Use(middleware.StripTrailingSlash)

	security := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment)
	security.ExcludePaths = []string{RouteMetrics}
	r.Use(middleware.SecurityHeaders(security))

	limiter := passThrough
	apiLimiter := passThrough
	if cfg.RateLimitRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		limiter = rl.HTMLMiddleware()
		apiLimiter = rl.Middleware()
	}

	r.NotFound(frontend.NotFound)

	r.With(middleware.NoStore).Get(RouteHealth, health.Health)
	r.With(middleware.NoStore).Handle(RouteMetrics, metrics.Handler())
	r.Get(RouteSitemap, seoHandler.Sitemap)
	r.Get(RouteRobots, seoHandler.Robots)

	if cfg.StaticFS != nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(cfg.StaticFS)))
		r.With(middleware.StaticCache(7*24*time.Hour)).Handle(RouteStatic, static)
	}

	r.With(apiLimiter).Get(RouteAPIPage, api.Page)
	r.With(apiLimiter).Get(RouteAPIMenu, api.Menu)

	resolver := cfg.Deps.resolver()
	r.With(limiter).Get(RouteRoot, frontend.Root)
	r.Route(RouteLocale, func(r chi.Router) {
		r.Use(limiter)
		r.Use(middleware.Locale(resolver))
		for _, page := range content.Pages {
			r.Get(pageRoute(page), frontend.Page(page))
		}
	})

	return r
}

func passThrough(next http.Handler) http.Handler {
	return next
}

// pageRoute is the route of page relative to /{locale}.
func pageRoute(page content.Page) string {
	if path := page.Path(); path != "" {
		return path
	}
	return RouteRoot
}
