// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package site composes everything a page needs in its <head>: the
// resolved locale, SEO metadata and the page's JSON-LD blocks.
package site

import (
	"html/template"

	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/locale"
	"github.com/lafusta/lafusta-go/internal/menu"
	"github.com/lafusta/lafusta-go/internal/schema"
	"github.com/lafusta/lafusta-go/internal/seo"
)

// Testimonials are the guest reviews quoted on the homepage. They are not
// fed into the rating schema: the published aggregate is the restaurant's
// configured rating and count, which a hand-picked sample would contradict.
var Testimonials = []schema.Review{
	{
		Author: "María García",
		Rating: 5,
		Text:   "La mejor comida tradicional de Calella. El ambiente es acogedor y el servicio excepcional. ¡Llevamos viniendo 10 años!",
	},
	{
		Author: "John Smith",
		Rating: 5,
		Text:   "Authentic Spanish cuisine! The tapas were amazing and the staff was very friendly. Highly recommended!",
	},
	{
		Author: "Laura Martínez",
		Rating: 5,
		Text:   "Un lugar perfecto para celebraciones familiares. La paella está buenísima y las carnes a la brasa son espectaculares.",
	},
}

// PageHead is the fully resolved head of one localized page.
type PageHead struct {
	Locale         locale.Locale `json:"locale"`
	Page           content.Page  `json:"page"`
	Meta           seo.Metadata  `json:"metadata"`
	StructuredData []any         `json:"structured_data"`
}

// JSONLD serializes every structured-data block for embedding in
// <script type="application/ld+json"> tags.
func (h PageHead) JSONLD() []template.JS {
	out := make([]template.JS, 0, len(h.StructuredData))
	for _, v := range h.StructuredData {
		out = append(out, schema.JSONLD(v))
	}
	return out
}

// Builder assembles page heads. It is immutable and safe for concurrent use.
type Builder struct {
	siteURL  string
	resolver *locale.Resolver
	store    *content.Store
	meta     *seo.Generator
	schema   *schema.Generator
	catalog  *menu.Catalog
}

// NewBuilder wires the generators together. catalog may be nil, in which
// case the carta Menu schema carries no items.
func NewBuilder(siteURL string, store *content.Store, meta *seo.Generator, gen *schema.Generator, catalog *menu.Catalog) *Builder {
	return &Builder{
		siteURL:  siteURL,
		resolver: store.Resolver(),
		store:    store,
		meta:     meta,
		schema:   gen,
		catalog:  catalog,
	}
}

// Resolver returns the locale resolver used by Build.
func (b *Builder) Resolver() *locale.Resolver {
	return b.resolver
}

// Build resolves candidate to a supported locale and produces the page head.
// It never fails: unknown locales resolve to the default.
func (b *Builder) Build(candidate string, page content.Page) PageHead {
	loc := b.resolver.Resolve(candidate)

	head := PageHead{
		Locale: loc,
		Page:   page,
		Meta:   b.meta.Generate(loc, page, page.Path()),
	}

	switch page {
	case content.PageHome:
		head.StructuredData = []any{
			b.schema.Restaurant(loc),
			b.schema.WebSite(loc),
			b.schema.FAQ(loc, nil),
			b.schema.Reviews(loc, nil),
		}
	case content.PageCarta:
		var items []schema.MenuItem
		if b.catalog != nil {
			items = b.catalog.SchemaItems(loc)
		}
		head.StructuredData = []any{
			b.schema.Menu(loc, items),
			b.schema.Breadcrumbs(loc, b.Breadcrumbs(loc, page)),
		}
	case content.PageContacto:
		head.StructuredData = []any{
			b.schema.Restaurant(loc),
			b.schema.Breadcrumbs(loc, b.Breadcrumbs(loc, page)),
		}
	case content.PageHistoria:
		head.StructuredData = []any{
			b.schema.Breadcrumbs(loc, b.Breadcrumbs(loc, page)),
		}
	}

	return head
}

// Breadcrumbs returns the trail from the localized homepage to page.
// The homepage itself has a single-entry trail.
func (b *Builder) Breadcrumbs(loc locale.Locale, page content.Page) []schema.BreadcrumbItem {
	items := []schema.BreadcrumbItem{{
		Name: b.store.Shared(loc, "nav.home"),
		URL:  seo.LocalizedURL(b.siteURL, loc, ""),
	}}
	if page == content.PageHome {
		return items
	}
	return append(items, schema.BreadcrumbItem{
		Name: b.store.Shared(loc, "nav."+string(page)),
		URL:  seo.LocalizedURL(b.siteURL, loc, page.Path()),
	})
}
