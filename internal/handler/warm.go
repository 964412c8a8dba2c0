// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lafusta/lafusta-go/internal/content"
)

// Warmer pre-renders every cached response so visitors never pay for a
// miss after a deploy or TTL expiry.
type Warmer struct {
	deps     Deps
	frontend *FrontendHandler
	seo      *SEOHandler
}

// NewWarmer creates a cache warmer over deps.
func NewWarmer(deps Deps) *Warmer {
	return &Warmer{
		deps:     deps,
		frontend: NewFrontendHandler(deps),
		seo:      NewSEOHandler(deps),
	}
}

// Warm renders every page in every supported locale plus the sitemap and
// robots.txt and stores them, overwriting existing entries. Entries left by
// a previous content version are purged first. It returns the number of
// entries written. A nil cache is a no-op.
func (w *Warmer) Warm(ctx context.Context) (int, error) {
	if w.deps.Cache == nil {
		return 0, nil
	}

	var errs []error
	if err := w.purgeStale(ctx); err != nil {
		errs = append(errs, err)
	}

	type entry struct {
		key  string
		fill func() ([]byte, error)
	}
	var entries []entry
	for _, loc := range w.deps.resolver().Supported() {
		for _, page := range content.Pages {
			entries = append(entries, entry{
				key:  w.deps.pageKey(loc, page),
				fill: func() ([]byte, error) { return w.frontend.render(loc, page) },
			})
		}
	}
	entries = append(entries,
		entry{key: w.deps.sitemapKey(), fill: w.seo.buildSitemap},
		entry{key: w.deps.robotsKey(), fill: w.seo.buildRobots},
	)

	written := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		body, err := e.fill()
		if err != nil {
			errs = append(errs, fmt.Errorf("rendering %s: %w", e.key, err))
			continue
		}
		if err := w.deps.Cache.Set(ctx, e.key, body, w.deps.CacheTTL); err != nil {
			errs = append(errs, fmt.Errorf("storing %s: %w", e.key, err))
			continue
		}
		written++
	}

	slog.Info("cache warmed", "entries", written, "content_version", w.deps.Store.Version())
	return written, errors.Join(errs...)
}

// purgeStale drops every entry of the content version recorded by the
// previous warm pass when it differs from the current one, then records
// the current version.
func (w *Warmer) purgeStale(ctx context.Context) error {
	current := w.deps.Store.Version()

	prev, err := w.deps.Cache.Get(ctx, cacheKeyVersion)
	if err == nil && len(prev) > 0 && string(prev) != current {
		removed, err := w.deps.Cache.DeleteByPrefix(ctx, versionPrefix(string(prev)))
		if err != nil {
			return fmt.Errorf("purging content version %s: %w", prev, err)
		}
		slog.Info("purged stale cache entries", "content_version", string(prev), "entries", removed)
	}

	if err := w.deps.Cache.Set(ctx, cacheKeyVersion, []byte(current), w.deps.CacheTTL); err != nil {
		return fmt.Errorf("storing %s: %w", cacheKeyVersion, err)
	}
	return nil
}
