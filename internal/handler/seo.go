// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/seo"
)

// sitemapSettings holds the crawl hints of each page.
var sitemapSettings = map[content.Page]struct {
	freq     seo.ChangeFreq
	priority string
}{
	content.PageHome:     {seo.ChangeFreqWeekly, "1.0"},
	content.PageCarta:    {seo.ChangeFreqWeekly, "0.9"},
	content.PageContacto: {seo.ChangeFreqMonthly, "0.7"},
	content.PageHistoria: {seo.ChangeFreqYearly, "0.5"},
}

// SEOHandler serves sitemap.xml and robots.txt.
type SEOHandler struct {
	deps Deps
}

// NewSEOHandler creates a new SEO handler.
func NewSEOHandler(deps Deps) *SEOHandler {
	return &SEOHandler{deps: deps}
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := h.deps.cached(r.Context(), "sitemap", h.deps.sitemapKey(), h.buildSitemap)
	if err != nil {
		logAndInternalError(w, "failed to build sitemap", "error", err)
		return
	}
	writeBytes(w, "application/xml; charset=utf-8", body)
}

func (h *SEOHandler) buildSitemap() ([]byte, error) {
	builder := seo.NewSitemapBuilder(h.deps.SiteURL, h.deps.resolver())
	for _, page := range content.Pages {
		s := sitemapSettings[page]
		builder.AddPage(seo.SitemapPage{
			Path:       page.Path(),
			ChangeFreq: s.freq,
			Priority:   s.priority,
		})
	}
	return builder.Build()
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	body, err := h.deps.cached(r.Context(), "robots", h.deps.robotsKey(), h.buildRobots)
	if err != nil {
		logAndInternalError(w, "failed to build robots.txt", "error", err)
		return
	}
	writeBytes(w, "text/plain; charset=utf-8", body)
}

func (h *SEOHandler) buildRobots() ([]byte, error) {
	return []byte(seo.NewRobotsBuilder(seo.RobotsConfig{
		SiteURL:     h.deps.SiteURL,
		DisallowAll: h.deps.NoIndex,
	}).Build()), nil
}
