// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package schema builds schema.org JSON-LD objects for the restaurant:
// Menu, FAQPage, rated Restaurant, BreadcrumbList, LocalBusiness and WebSite.
// Every method is a pure function of its arguments and the static business
// record. None of them fail; missing optional input degrades to a minimal
// but well-formed object.
package schema

import (
	"encoding/json"
	"html/template"
	"strconv"
	"strings"

	"github.com/lafusta/lafusta-go/internal/business"
	"github.com/lafusta/lafusta-go/internal/locale"
)

const (
	schemaContext = "https://schema.org"
	currency      = "EUR"
)

// Spanish originals used when no localized texts are wired in.
const (
	fallbackMenuName        = "Carta Restaurant La Fusta"
	fallbackMenuDescription = "Carta de cocina mediterránea auténtica con especialidades del mar y de la montaña"
)

// Shared-content keys read through Texts.
const (
	KeyMenuName        = "schema.menu.name"
	KeyMenuDescription = "schema.menu.description"
	KeySiteDescription = "site.description"
)

// Texts supplies localized site-wide strings. *content.Store satisfies it.
type Texts interface {
	Shared(loc locale.Locale, key string) string
}

// Generator produces JSON-LD objects. It is immutable and safe for concurrent use.
type Generator struct {
	biz     business.Config
	siteURL string
	texts   Texts
}

// NewGenerator returns a generator for the given business record and site URL.
// texts may be nil, in which case Spanish strings are used.
func NewGenerator(biz business.Config, siteURL string, texts Texts) *Generator {
	return &Generator{
		biz:     biz.Copy(),
		siteURL: strings.TrimSuffix(siteURL, "/"),
		texts:   texts,
	}
}

func (g *Generator) text(loc locale.Locale, key, fallback string) string {
	if g.texts == nil {
		return fallback
	}
	if v := g.texts.Shared(loc, key); v != "" {
		return v
	}
	return fallback
}

func (g *Generator) address() PostalAddress {
	a := g.biz.Address
	return PostalAddress{
		Type:            "PostalAddress",
		StreetAddress:   a.Street,
		AddressLocality: a.City,
		AddressRegion:   a.Region,
		PostalCode:      a.PostalCode,
		AddressCountry:  a.Country,
	}
}

func (g *Generator) aggregateRating(count int) AggregateRating {
	return AggregateRating{
		Type:        "AggregateRating",
		RatingValue: g.biz.Rating(),
		BestRating:  strconv.Itoa(business.BestRating),
		WorstRating: strconv.Itoa(business.WorstRating),
		RatingCount: count,
	}
}

// Menu returns a Menu naming the restaurant as provider. Items, when given,
// are grouped into sections by category in order of first appearance.
func (g *Generator) Menu(loc locale.Locale, items []MenuItem) MenuSchema {
	addr := g.address()
	menu := MenuSchema{
		Context:     schemaContext,
		Type:        "Menu",
		Name:        g.text(loc, KeyMenuName, fallbackMenuName),
		Description: g.text(loc, KeyMenuDescription, fallbackMenuDescription),
		Provider: &Provider{
			Type:    "Restaurant",
			Name:    g.biz.Name,
			Address: &addr,
		},
	}
	if len(items) == 0 {
		return menu
	}

	index := make(map[string]int)
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(menu.Sections)
			index[it.Category] = i
			menu.Sections = append(menu.Sections, MenuSection{Type: "MenuSection", Name: it.Category})
		}
		entry := MenuItemSchema{
			Type:        "MenuItem",
			Name:        it.Name,
			Description: it.Description,
			Image:       g.absolute(it.Image),
		}
		if it.Price != "" {
			entry.Offers = &Offer{Type: "Offer", Price: it.Price, PriceCurrency: currency}
		}
		menu.Sections[i].Items = append(menu.Sections[i].Items, entry)
	}
	return menu
}

// FAQ returns an FAQPage. Empty faqs select the default set for loc.
func (g *Generator) FAQ(loc locale.Locale, faqs []FAQ) FAQPageSchema {
	if len(faqs) == 0 {
		faqs = DefaultFAQs(loc)
	}
	page := FAQPageSchema{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: make([]Question, 0, len(faqs)),
	}
	for _, f := range faqs {
		page.MainEntity = append(page.MainEntity, Question{
			Type:           "Question",
			Name:           f.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: f.Answer},
		})
	}
	return page
}

// Reviews returns the Restaurant carrying an AggregateRating. ratingCount is
// len(reviews), or the configured placeholder count when there are none.
func (g *Generator) Reviews(_ locale.Locale, reviews []Review) RatedRestaurantSchema {
	count := len(reviews)
	if count == 0 {
		count = g.biz.RatingCount
	}
	out := RatedRestaurantSchema{
		Context:         schemaContext,
		Type:            "Restaurant",
		Name:            g.biz.Name,
		AggregateRating: g.aggregateRating(count),
		Address:         g.address(),
		Telephone:       g.biz.Phone,
		PriceRange:      g.biz.PriceRange,
	}
	for _, r := range reviews {
		out.Reviews = append(out.Reviews, ReviewSchema{
			Type:   "Review",
			Author: PersonSchema{Type: "Person", Name: r.Author},
			ReviewRating: Rating{
				Type:        "Rating",
				RatingValue: strconv.FormatFloat(clampRating(r.Rating), 'f', -1, 64),
				BestRating:  strconv.Itoa(business.BestRating),
				WorstRating: strconv.Itoa(business.WorstRating),
			},
			ReviewBody:    r.Text,
			DatePublished: r.Date,
		})
	}
	return out
}

// Breadcrumbs returns a BreadcrumbList preserving the order of items, with
// 1-based positions and name/url copied verbatim.
func (g *Generator) Breadcrumbs(_ locale.Locale, items []BreadcrumbItem) BreadcrumbListSchema {
	list := BreadcrumbListSchema{
		Context:  schemaContext,
		Type:     "BreadcrumbList",
		ItemList: make([]ListItem, 0, len(items)),
	}
	for i, it := range items {
		list.ItemList = append(list.ItemList, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     it.Name,
			Item:     it.URL,
		})
	}
	return list
}

// Restaurant returns the full LocalBusiness description of the restaurant.
func (g *Generator) Restaurant(loc locale.Locale) RestaurantSchema {
	biz := g.biz.Copy()
	return RestaurantSchema{
		Context:             schemaContext,
		Type:                "Restaurant",
		ID:                  g.siteURL + "/#restaurant",
		Name:                biz.Name,
		Description:         g.text(loc, KeySiteDescription, ""),
		URL:                 g.siteURL,
		Logo:                g.absolute(biz.Logo),
		Image:               g.absolute(biz.OGImage),
		Telephone:           biz.Phone,
		Email:               biz.Email,
		PriceRange:          biz.PriceRange,
		ServesCuisine:       biz.Cuisine,
		Address:             g.address(),
		Geo:                 GeoCoordinates{Type: "GeoCoordinates", Latitude: biz.Geo.Latitude, Longitude: biz.Geo.Longitude},
		OpeningHours:        biz.OpeningHours,
		SameAs:              biz.SocialLinks,
		AcceptsReservations: true,
		FoundingDate:        biz.Established,
		HasMenu:             g.siteURL + "/" + string(loc) + "/carta",
		AggregateRating:     g.aggregateRating(biz.RatingCount),
	}
}

// WebSite returns the WebSite object for the homepage of loc.
func (g *Generator) WebSite(loc locale.Locale) WebSiteSchema {
	return WebSiteSchema{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        g.biz.Name,
		URL:         g.siteURL + "/" + string(loc),
		Description: g.text(loc, KeySiteDescription, ""),
		InLanguage:  string(loc),
		Publisher: &OrgSchema{
			Type: "Organization",
			Name: g.biz.Name,
			Logo: g.absolute(g.biz.Logo),
		},
	}
}

// JSONLD marshals structured data to JSON-LD script tag content.
func JSONLD(v any) template.JS {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return template.JS(data)
}

func clampRating(v float64) float64 {
	switch {
	case v < business.WorstRating:
		return business.WorstRating
	case v > business.BestRating:
		return business.BestRating
	default:
		return v
	}
}

// absolute ensures a URL is absolute by prepending the site URL if needed.
func (g *Generator) absolute(u string) string {
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return g.siteURL + u
}
