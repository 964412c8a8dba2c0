// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/lafusta/lafusta-go/internal/cache"
	"github.com/lafusta/lafusta-go/internal/config"
	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/handler"
	"github.com/lafusta/lafusta-go/internal/locale"
	"github.com/lafusta/lafusta-go/internal/menu"
	"github.com/lafusta/lafusta-go/internal/render"
	"github.com/lafusta/lafusta-go/internal/scheduler"
	"github.com/lafusta/lafusta-go/internal/schema"
	"github.com/lafusta/lafusta-go/internal/seo"
	"github.com/lafusta/lafusta-go/internal/site"
	"github.com/lafusta/lafusta-go/web"
)

// siteContent holds the loaded content and the components built on top of it.
type siteContent struct {
	resolver *locale.Resolver
	table    *content.Table
	store    *content.Store
	catalog  *menu.Catalog
}

// loadContent loads and validates the embedded content tables.
func loadContent(cfg *config.Config) (*siteContent, error) {
	resolver, err := locale.NewResolver(cfg.Locale(), locale.All...)
	if err != nil {
		return nil, fmt.Errorf("creating locale resolver: %w", err)
	}

	table, err := content.LoadEmbedded(resolver.Supported())
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	catalog, err := menu.LoadEmbedded(resolver)
	if err != nil {
		return nil, fmt.Errorf("loading menu: %w", err)
	}

	return &siteContent{
		resolver: resolver,
		table:    table,
		store:    content.NewStore(table, resolver, cfg.Business.Name),
		catalog:  catalog,
	}, nil
}

// newDeps wires the generators, the renderer and the cache into handler
// dependencies. The returned cache is nil when caching is disabled.
func newDeps(cfg *config.Config, sc *siteContent) (handler.Deps, error) {
	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return handler.Deps{}, fmt.Errorf("opening templates: %w", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: templates, Store: sc.store})
	if err != nil {
		return handler.Deps{}, fmt.Errorf("parsing templates: %w", err)
	}

	meta := seo.NewGenerator(sc.store, seo.SiteConfig{
		SiteURL:        cfg.SiteURL,
		SiteName:       cfg.Business.Name,
		DefaultOGImage: cfg.Business.OGImage,
		TwitterHandle:  cfg.Business.TwitterHandle,
		NoIndex:        cfg.NoIndex,
	})
	builder := site.NewBuilder(
		cfg.SiteURL,
		sc.store,
		meta,
		schema.NewGenerator(cfg.Business, cfg.SiteURL, sc.store),
		sc.catalog,
	)

	deps := handler.Deps{
		SiteURL:  cfg.SiteURL,
		Builder:  builder,
		Store:    sc.store,
		Catalog:  sc.catalog,
		Renderer: renderer,
		Business: cfg.Business,
		CacheTTL: cfg.CacheDuration(),
		NoIndex:  cfg.NoIndex,
	}

	if cfg.CacheEnabled() {
		deps.Cache = newCache(cfg)
	}
	return deps, nil
}

// newCache connects to Redis when configured and falls back to the memory
// cache when Redis is unreachable.
func newCache(cfg *config.Config) cache.Cache {
	cacheCfg := cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      cfg.CacheDuration(),
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	}

	c, err := cache.New(cacheCfg)
	if err == nil {
		if cfg.UseRedisCache() {
			slog.Info("cache initialized", "backend", "redis", "prefix", cfg.CachePrefix)
		} else {
			slog.Info("cache initialized", "backend", "memory", "max_size", cfg.CacheMaxSize)
		}
		return c
	}

	slog.Warn("cache initialized", "backend", "memory", "note", "Redis unavailable, using fallback", "error", err)
	cacheCfg.RedisURL = ""
	c, _ = cache.New(cacheCfg)
	return c
}

// cacheWarmJob is the scheduler name of the cache warmer.
const cacheWarmJob = "cache-warm"

// startCacheWarmer fills the cache once and then on schedule.
func startCacheWarmer(deps handler.Deps, logger *slog.Logger, schedule string) (*scheduler.Scheduler, error) {
	warmer := handler.NewWarmer(deps)
	sched := scheduler.New(logger, time.Minute)

	err := sched.Register(cacheWarmJob, "render every page into the cache", schedule, func(ctx context.Context) error {
		_, err := warmer.Warm(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("registering cache warmer: %w", err)
	}

	if err := sched.TriggerNow(cacheWarmJob); err != nil {
		logger.Warn("initial cache warm failed", "error", err)
	}
	sched.Start()
	return sched, nil
}

// checkContent reports the loaded content for the -check flag.
func checkContent(sc *siteContent) []string {
	lines := []string{
		fmt.Sprintf("content version: %s", sc.table.Version()),
		fmt.Sprintf("default locale: %s", sc.resolver.Default()),
	}
	for _, loc := range sc.table.Locales() {
		lines = append(lines, fmt.Sprintf("locale %s: %d fields", loc, sc.table.FieldCount(loc)))
	}
	lines = append(lines,
		fmt.Sprintf("pages: %v", sc.table.Pages()),
		fmt.Sprintf("menu version: %s, %d items", sc.catalog.Version(), sc.catalog.Len()),
	)
	return lines
}
