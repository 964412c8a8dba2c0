// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteLocale mounts the localized pages. Locale codes are two lowercase letters.
	RouteLocale = "/{locale:[a-z]{2}}"

	// RouteAPIPage serves the composed head of one page as JSON.
	RouteAPIPage = "/api/v1/pages/{locale}/{page}"
	// RouteAPIMenu serves the localized carta as JSON.
	RouteAPIMenu = "/api/v1/menu/{locale}"

	RouteSitemap = "/sitemap.xml"
	RouteRobots  = "/robots.txt"
	RouteHealth  = "/health"
	RouteMetrics = "/metrics"
	RouteStatic  = "/static/*"
)

// URL parameter names.
const (
	paramLocale = "locale"
	paramPage   = "page"
)

// Cache keys. Every key starts with the content version so a deploy with
// new content never serves stale output from a shared cache, and the
// previous version can be purged by prefix.
const (
	cacheKeyPage    = "page:"
	cacheKeySitemap = "sitemap"
	cacheKeyRobots  = "robots"

	// cacheKeyVersion records the content version of the last warm pass.
	cacheKeyVersion = "content-version"
)
