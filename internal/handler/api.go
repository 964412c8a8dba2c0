// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/locale"
	"github.com/lafusta/lafusta-go/internal/menu"
)

// APIHandler serves page heads and the carta as JSON for headless clients.
type APIHandler struct {
	deps Deps
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(deps Deps) *APIHandler {
	return &APIHandler{deps: deps}
}

// MenuResponse is the localized carta.
type MenuResponse struct {
	Locale     locale.Locale            `json:"locale"`
	Version    string                   `json:"version"`
	Currency   string                   `json:"currency"`
	Categories []menu.LocalizedCategory `json:"categories"`
	Allergens  []menu.LocalizedAllergen `json:"allergens"`
}

// Page handles GET /api/v1/pages/{locale}/{page}. Unknown locales resolve
// to the default like everywhere else; unknown pages are 404.
func (h *APIHandler) Page(w http.ResponseWriter, r *http.Request) {
	page, ok := content.ParsePage(chi.URLParam(r, paramPage))
	if !ok {
		writeJSONError(w, http.StatusNotFound, "not_found", "Unknown page")
		return
	}

	writeJSON(w, http.StatusOK, h.deps.Builder.Build(chi.URLParam(r, paramLocale), page))
}

// Menu handles GET /api/v1/menu/{locale}.
func (h *APIHandler) Menu(w http.ResponseWriter, r *http.Request) {
	if h.deps.Catalog == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "menu_unavailable", "Menu is not available")
		return
	}

	loc := h.deps.resolver().Resolve(chi.URLParam(r, paramLocale))
	writeJSON(w, http.StatusOK, MenuResponse{
		Locale:     loc,
		Version:    h.deps.Catalog.Version(),
		Currency:   menu.Currency,
		Categories: h.deps.Catalog.Categories(loc),
		Allergens:  h.deps.Catalog.AllergenLegend(loc),
	})
}
