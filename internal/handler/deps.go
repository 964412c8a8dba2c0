// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers and routes of the site.
package handler

import (
	"context"
	"time"

	"github.com/lafusta/lafusta-go/internal/business"
	"github.com/lafusta/lafusta-go/internal/cache"
	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/locale"
	"github.com/lafusta/lafusta-go/internal/menu"
	"github.com/lafusta/lafusta-go/internal/metrics"
	"github.com/lafusta/lafusta-go/internal/render"
	"github.com/lafusta/lafusta-go/internal/site"
)

// Deps are the read-only components the handlers serve from. Everything
// except Cache is immutable after startup.
type Deps struct {
	SiteURL  string
	Builder  *site.Builder
	Store    *content.Store
	Catalog  *menu.Catalog
	Renderer *render.Renderer
	Business business.Config

	// Cache holds rendered output. Nil disables caching.
	Cache    cache.Cache
	CacheTTL time.Duration

	// NoIndex keeps crawlers out of staging deployments.
	NoIndex bool

	// Now is the clock for the footer year. Nil uses time.Now.
	Now func() time.Time
}

func (d Deps) resolver() *locale.Resolver {
	return d.Store.Resolver()
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// versionPrefix scopes every cached entry to one content version.
func versionPrefix(version string) string {
	return version + ":"
}

func (d Deps) pageKey(loc locale.Locale, page content.Page) string {
	return versionPrefix(d.Store.Version()) + cacheKeyPage + string(loc) + ":" + string(page)
}

func (d Deps) sitemapKey() string {
	return versionPrefix(d.Store.Version()) + cacheKeySitemap
}

func (d Deps) robotsKey() string {
	return versionPrefix(d.Store.Version()) + cacheKeyRobots
}

// cached returns the output stored under key, computing it with fill on a
// miss. kind labels the lookup in metrics.
func (d Deps) cached(ctx context.Context, kind, key string, fill func() ([]byte, error)) ([]byte, error) {
	if d.Cache == nil {
		return fill()
	}

	data, hit, err := cache.GetOrSet(ctx, d.Cache, key, d.CacheTTL, fill)
	if err != nil {
		return nil, err
	}
	metrics.CacheLookups.WithLabelValues(kind, metrics.CacheResult(hit)).Inc()
	return data, nil
}
