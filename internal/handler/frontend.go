// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/locale"
	"github.com/lafusta/lafusta-go/internal/metrics"
	"github.com/lafusta/lafusta-go/internal/middleware"
	"github.com/lafusta/lafusta-go/internal/render"
	"github.com/lafusta/lafusta-go/internal/schema"
	"github.com/lafusta/lafusta-go/internal/seo"
	"github.com/lafusta/lafusta-go/internal/site"
)

// FrontendHandler serves the localized HTML pages.
type FrontendHandler struct {
	deps Deps
}

// NewFrontendHandler creates a new frontend handler.
func NewFrontendHandler(deps Deps) *FrontendHandler {
	return &FrontendHandler{deps: deps}
}

// Root handles GET / by redirecting (302) to the visitor's preferred locale:
// ?lang, then cookie, then Accept-Language, then the default.
func (h *FrontendHandler) Root(w http.ResponseWriter, r *http.Request) {
	loc := middleware.PreferredLocale(r, h.deps.resolver())
	w.Header().Add("Vary", "Accept-Language, Cookie")
	http.Redirect(w, r, seo.LocalizedURL("", loc, ""), http.StatusFound)
}

// Page returns the handler for one page of the site, mounted under
// /{locale} behind middleware.Locale. An unsupported locale code redirects
// (301) to the same page under the default locale.
func (h *FrontendHandler) Page(page content.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc, ok := middleware.GetLocale(r)
		if !ok {
			h.redirectToLocale(w, r, h.deps.resolver().Default(), page)
			return
		}

		body, err := h.deps.cached(r.Context(), "page", h.deps.pageKey(loc, page), func() ([]byte, error) {
			return h.render(loc, page)
		})
		if err != nil {
			logAndInternalError(w, "failed to render page", "error", err, "locale", loc, "page", page)
			return
		}

		metrics.PageViews.WithLabelValues(string(loc), string(page)).Inc()
		render.WriteHTML(w, http.StatusOK, body)
	}
}

// NotFound handles unmatched routes.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}

func (h *FrontendHandler) redirectToLocale(w http.ResponseWriter, r *http.Request, loc locale.Locale, page content.Page) {
	target := seo.LocalizedURL("", loc, page.Path())
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	metrics.LocaleRedirects.WithLabelValues(string(loc)).Inc()
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

func (h *FrontendHandler) render(loc locale.Locale, page content.Page) ([]byte, error) {
	return h.deps.Renderer.RenderBytes(h.pageData(loc, page))
}

func (h *FrontendHandler) pageData(loc locale.Locale, page content.Page) render.PageData {
	data := render.PageData{
		Head:        h.deps.Builder.Build(string(loc), page),
		Locale:      loc,
		Page:        page,
		Nav:         render.Navigation(h.deps.Store, loc, page),
		Languages:   render.Languages(h.deps.resolver(), loc, page),
		Business:    h.deps.Business,
		CurrentYear: h.deps.now().Year(),
	}

	switch page {
	case content.PageHome:
		data.Reviews = site.Testimonials
		data.FAQs = schema.DefaultFAQs(loc)
	case content.PageCarta:
		if h.deps.Catalog != nil {
			data.Categories = h.deps.Catalog.Categories(loc)
			data.Allergens = h.deps.Catalog.AllergenLegend(loc)
		}
	}

	return data
}
