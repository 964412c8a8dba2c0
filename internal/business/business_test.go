// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package business

import (
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Name != "Restaurant La Fusta" {
		t.Errorf("Name = %q, want Restaurant La Fusta", c.Name)
	}
	if c.Address.PostalCode != "08370" {
		t.Errorf("PostalCode = %q, want 08370", c.Address.PostalCode)
	}
	if c.Address.Street != "Carrer de les Creus, 12" {
		t.Errorf("Street = %q", c.Address.Street)
	}
	if c.Geo.Latitude != 41.6127 || c.Geo.Longitude != 2.6601 {
		t.Errorf("Geo = %+v", c.Geo)
	}
	if len(c.OpeningHours) != 1 || c.OpeningHours[0] != "Mo-Su 09:00-23:30" {
		t.Errorf("OpeningHours = %v", c.OpeningHours)
	}
	if len(c.SocialLinks) != 2 {
		t.Errorf("SocialLinks = %v, want 2 entries", c.SocialLinks)
	}
	if c.RatingCount != 100 {
		t.Errorf("RatingCount = %d, want 100", c.RatingCount)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestDefaultIgnoresEnvironment(t *testing.T) {
	t.Setenv("NAME", "Other")
	if got := Default().Name; got != "Restaurant La Fusta" {
		t.Errorf("Default().Name = %q, want env to be ignored", got)
	}
}

func TestRating(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{4.5, "4.5"},
		{5, "5"},
		{3.75, "3.75"},
	}
	for _, tt := range tests {
		c := Config{RatingValue: tt.value}
		if got := c.Rating(); got != tt.want {
			t.Errorf("Rating(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty name", func(c *Config) { c.Name = " " }},
		{"no street", func(c *Config) { c.Address.Street = "" }},
		{"rating too high", func(c *Config) { c.RatingValue = 5.5 }},
		{"rating too low", func(c *Config) { c.RatingValue = 0 }},
		{"zero count", func(c *Config) { c.RatingCount = 0 }},
		{"latitude", func(c *Config) { c.Geo.Latitude = 91 }},
		{"longitude", func(c *Config) { c.Geo.Longitude = -181 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestCopyDoesNotAlias(t *testing.T) {
	c := Default()
	cp := c.Copy()
	cp.OpeningHours[0] = "changed"
	cp.SocialLinks[0] = "changed"

	if c.OpeningHours[0] == "changed" || c.SocialLinks[0] == "changed" {
		t.Error("Copy() shares slices with the original")
	}
}
