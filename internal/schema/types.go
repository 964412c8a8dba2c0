// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package schema

// Inputs

// MenuItem is one dish passed to Menu.
type MenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"` // decimal string in EUR, e.g. "14.50"
	Image       string `json:"image,omitempty"`
	Category    string `json:"category"`
}

// FAQ is one question/answer pair passed to FAQ.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Review is one customer review passed to Reviews.
type Review struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Date   string  `json:"date"` // YYYY-MM-DD
}

// BreadcrumbItem is one step of a breadcrumb trail.
type BreadcrumbItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// JSON-LD output types

// PostalAddress represents JSON-LD PostalAddress structured data.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

// GeoCoordinates represents JSON-LD GeoCoordinates structured data.
type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Provider is the restaurant reference embedded in a Menu.
type Provider struct {
	Type    string         `json:"@type"`
	Name    string         `json:"name"`
	Address *PostalAddress `json:"address"`
}

// MenuSchema represents JSON-LD Menu structured data.
type MenuSchema struct {
	Context     string        `json:"@context"`
	Type        string        `json:"@type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Provider    *Provider     `json:"provider"`
	Sections    []MenuSection `json:"hasMenuSection,omitempty"`
}

// MenuSection groups menu items of one category.
type MenuSection struct {
	Type  string           `json:"@type"`
	Name  string           `json:"name"`
	Items []MenuItemSchema `json:"hasMenuItem"`
}

// MenuItemSchema represents JSON-LD MenuItem structured data.
type MenuItemSchema struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Offers      *Offer `json:"offers,omitempty"`
}

// Offer represents JSON-LD Offer structured data.
type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

// FAQPageSchema represents JSON-LD FAQPage structured data.
type FAQPageSchema struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question represents a JSON-LD Question.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer represents a JSON-LD Answer.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// AggregateRating represents JSON-LD AggregateRating structured data.
type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
	RatingCount int    `json:"ratingCount"`
}

// Rating represents a JSON-LD Rating attached to a single review.
type Rating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
}

// PersonSchema represents JSON-LD Person structured data.
type PersonSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// ReviewSchema represents a JSON-LD Review.
type ReviewSchema struct {
	Type          string       `json:"@type"`
	Author        PersonSchema `json:"author"`
	ReviewRating  Rating       `json:"reviewRating"`
	ReviewBody    string       `json:"reviewBody,omitempty"`
	DatePublished string       `json:"datePublished,omitempty"`
}

// RatedRestaurantSchema is the Restaurant object carrying an AggregateRating.
type RatedRestaurantSchema struct {
	Context         string          `json:"@context"`
	Type            string          `json:"@type"`
	Name            string          `json:"name"`
	AggregateRating AggregateRating `json:"aggregateRating"`
	Address         PostalAddress   `json:"address"`
	Telephone       string          `json:"telephone"`
	PriceRange      string          `json:"priceRange"`
	Reviews         []ReviewSchema  `json:"review,omitempty"`
}

// RestaurantSchema represents full JSON-LD Restaurant (LocalBusiness) data.
type RestaurantSchema struct {
	Context             string          `json:"@context"`
	Type                string          `json:"@type"`
	ID                  string          `json:"@id"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	URL                 string          `json:"url"`
	Logo                string          `json:"logo,omitempty"`
	Image               string          `json:"image,omitempty"`
	Telephone           string          `json:"telephone"`
	Email               string          `json:"email,omitempty"`
	PriceRange          string          `json:"priceRange"`
	ServesCuisine       string          `json:"servesCuisine"`
	Address             PostalAddress   `json:"address"`
	Geo                 GeoCoordinates  `json:"geo"`
	OpeningHours        []string        `json:"openingHours,omitempty"`
	SameAs              []string        `json:"sameAs,omitempty"`
	AcceptsReservations bool            `json:"acceptsReservations"`
	FoundingDate        string          `json:"foundingDate,omitempty"`
	HasMenu             string          `json:"hasMenu,omitempty"`
	AggregateRating     AggregateRating `json:"aggregateRating"`
}

// OrgSchema represents JSON-LD Organization structured data.
type OrgSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// WebSiteSchema represents JSON-LD WebSite structured data for the homepage.
type WebSiteSchema struct {
	Context     string     `json:"@context"`
	Type        string     `json:"@type"`
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	Description string     `json:"description,omitempty"`
	InLanguage  string     `json:"inLanguage"`
	Publisher   *OrgSchema `json:"publisher,omitempty"`
}

// BreadcrumbListSchema represents JSON-LD BreadcrumbList structured data.
type BreadcrumbListSchema struct {
	Context  string     `json:"@context"`
	Type     string     `json:"@type"`
	ItemList []ListItem `json:"itemListElement"`
}

// ListItem represents a single breadcrumb entry.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}
