// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package business holds the static restaurant record that feeds the
// structured data and Open Graph output. The record is read from the
// environment once at startup and never mutated afterwards.
package business

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Rating scale bounds used by every rating the site publishes.
const (
	WorstRating = 1
	BestRating  = 5
)

// Address is the postal address of the restaurant.
type Address struct {
	Street     string `env:"STREET" envDefault:"Carrer de les Creus, 12"`
	City       string `env:"CITY" envDefault:"Calella"`
	Region     string `env:"REGION" envDefault:"Catalunya"`
	PostalCode string `env:"POSTAL_CODE" envDefault:"08370"`
	Country    string `env:"COUNTRY" envDefault:"ES"`
}

// Geo holds WGS84 coordinates.
type Geo struct {
	Latitude  float64 `env:"LATITUDE" envDefault:"41.6127"`
	Longitude float64 `env:"LONGITUDE" envDefault:"2.6601"`
}

// Config describes the restaurant. Field tags are relative; the process
// config nests it under LAFUSTA_BUSINESS_.
type Config struct {
	Name         string   `env:"NAME" envDefault:"Restaurant La Fusta"`
	Cuisine      string   `env:"CUISINE" envDefault:"Mediterranean"`
	PriceRange   string   `env:"PRICE_RANGE" envDefault:"€€"`
	Phone        string   `env:"PHONE" envDefault:"+34 000 00 00 00"`
	Email        string   `env:"EMAIL" envDefault:"info@lafusta.cat"`
	OpeningHours []string `env:"OPENING_HOURS" envSeparator:"|" envDefault:"Mo-Su 09:00-23:30"`
	Established  string   `env:"ESTABLISHED" envDefault:"2024"`

	Address Address `envPrefix:"ADDRESS_"`
	Geo     Geo     `envPrefix:"GEO_"`

	// RatingValue is the published aggregate rating on the 1-5 scale.
	RatingValue float64 `env:"RATING_VALUE" envDefault:"4.5"`
	// RatingCount is used as ratingCount when no reviews are supplied.
	RatingCount int `env:"RATING_COUNT" envDefault:"100"`

	TwitterHandle string   `env:"TWITTER" envDefault:"@lafusta"`
	SocialLinks   []string `env:"SOCIAL_LINKS" envSeparator:"," envDefault:"https://www.instagram.com/lafusta,https://www.facebook.com/lafusta"`

	// Image paths are site-relative and made absolute against the site URL.
	Logo    string `env:"LOGO" envDefault:"/images/logo.png"`
	OGImage string `env:"OG_IMAGE" envDefault:"/images/og-default.jpg"`
}

// Default returns the record built purely from the envDefault tags,
// ignoring the process environment.
func Default() Config {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("business defaults: %v", err))
	}
	return c
}

// Validate reports every field that would produce invalid structured data.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, errors.New("business name is required"))
	}
	if strings.TrimSpace(c.Address.Street) == "" || strings.TrimSpace(c.Address.City) == "" {
		errs = append(errs, errors.New("business address needs street and city"))
	}
	if c.RatingValue < WorstRating || c.RatingValue > BestRating {
		errs = append(errs, fmt.Errorf("rating value %.1f outside %d-%d", c.RatingValue, WorstRating, BestRating))
	}
	if c.RatingCount < 1 {
		errs = append(errs, fmt.Errorf("rating count must be positive, got %d", c.RatingCount))
	}
	if c.Geo.Latitude < -90 || c.Geo.Latitude > 90 {
		errs = append(errs, fmt.Errorf("latitude %f out of range", c.Geo.Latitude))
	}
	if c.Geo.Longitude < -180 || c.Geo.Longitude > 180 {
		errs = append(errs, fmt.Errorf("longitude %f out of range", c.Geo.Longitude))
	}
	return errors.Join(errs...)
}

// Rating formats the aggregate rating the way schema.org examples do ("4.5").
func (c Config) Rating() string {
	return strconv.FormatFloat(c.RatingValue, 'f', -1, 64)
}

// Copy returns c with its slices cloned so callers cannot alias the record.
func (c Config) Copy() Config {
	c.OpeningHours = append([]string(nil), c.OpeningHours...)
	c.SocialLinks = append([]string(nil), c.SocialLinks...)
	return c
}
