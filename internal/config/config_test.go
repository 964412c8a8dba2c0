// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"strings"
	"testing"
	"time"

	"github.com/lafusta/lafusta-go/internal/locale"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.SiteURL != "http://localhost:8080" {
		t.Errorf("SiteURL = %q, want %q", cfg.SiteURL, "http://localhost:8080")
	}
	if cfg.Locale() != locale.ES {
		t.Errorf("Locale() = %q, want %q", cfg.Locale(), locale.ES)
	}
	if cfg.NoIndex {
		t.Error("NoIndex = true, want false")
	}
	if cfg.UseRedisCache() {
		t.Error("UseRedisCache() = true, want false")
	}
	if cfg.CacheDuration() != time.Hour {
		t.Errorf("CacheDuration() = %v, want %v", cfg.CacheDuration(), time.Hour)
	}
	if cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 20 {
		t.Errorf("rate limit = %g/%d, want 10/20", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.Business.Name != "Restaurant La Fusta" {
		t.Errorf("Business.Name = %q, want %q", cfg.Business.Name, "Restaurant La Fusta")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"LAFUSTA_SERVER_HOST":    "0.0.0.0",
		"LAFUSTA_SERVER_PORT":    "3000",
		"LAFUSTA_ENV":            "production",
		"LAFUSTA_LOG_LEVEL":      "debug",
		"LAFUSTA_SITE_URL":       "https://lafusta.cat/",
		"LAFUSTA_DEFAULT_LOCALE": " CA ",
		"LAFUSTA_NO_INDEX":       "true",
		"LAFUSTA_REDIS_URL":      "redis://localhost:6379/0",
		"LAFUSTA_CACHE_TTL":      "60",
		"LAFUSTA_BUSINESS_NAME":  "La Fusta Calella",
		"LAFUSTA_BUSINESS_PHONE": "+34 937 00 00 00",
	})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "0.0.0.0:3000")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.SiteURL != "https://lafusta.cat" {
		t.Errorf("SiteURL = %q, want trailing slash trimmed", cfg.SiteURL)
	}
	if cfg.Locale() != locale.CA {
		t.Errorf("Locale() = %q, want %q", cfg.Locale(), locale.CA)
	}
	if !cfg.NoIndex {
		t.Error("NoIndex = false, want true")
	}
	if !cfg.UseRedisCache() {
		t.Error("UseRedisCache() = false, want true")
	}
	if cfg.CacheDuration() != time.Minute {
		t.Errorf("CacheDuration() = %v, want %v", cfg.CacheDuration(), time.Minute)
	}
	if cfg.Business.Name != "La Fusta Calella" {
		t.Errorf("Business.Name = %q, want %q", cfg.Business.Name, "La Fusta Calella")
	}
	if cfg.Business.Phone != "+34 937 00 00 00" {
		t.Errorf("Business.Phone = %q", cfg.Business.Phone)
	}
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("LAFUSTA_SERVER_PORT", "9090")
	t.Setenv("LAFUSTA_DEFAULT_LOCALE", "nl")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d, want 9090", cfg.ServerPort)
	}
	if cfg.Locale() != locale.NL {
		t.Errorf("Locale() = %q, want %q", cfg.Locale(), locale.NL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		wantErr string
	}{
		{"unparsable port", map[string]string{"LAFUSTA_SERVER_PORT": "http"}, "parsing config"},
		{"port out of range", map[string]string{"LAFUSTA_SERVER_PORT": "70000"}, "LAFUSTA_SERVER_PORT"},
		{"unknown env", map[string]string{"LAFUSTA_ENV": "staging"}, "LAFUSTA_ENV"},
		{"relative site url", map[string]string{"LAFUSTA_SITE_URL": "/lafusta"}, "absolute"},
		{"ftp site url", map[string]string{"LAFUSTA_SITE_URL": "ftp://lafusta.cat"}, "absolute"},
		{"site url with query", map[string]string{"LAFUSTA_SITE_URL": "https://lafusta.cat?x=1"}, "query"},
		{"unsupported locale", map[string]string{"LAFUSTA_DEFAULT_LOCALE": "fr"}, "LAFUSTA_DEFAULT_LOCALE"},
		{"negative ttl", map[string]string{"LAFUSTA_CACHE_TTL": "-1"}, "LAFUSTA_CACHE_TTL"},
		{"bad warm schedule", map[string]string{"LAFUSTA_CACHE_WARM_SCHEDULE": "sometimes"}, "LAFUSTA_CACHE_WARM_SCHEDULE"},
		{"zero burst", map[string]string{"LAFUSTA_RATE_LIMIT_BURST": "0"}, "LAFUSTA_RATE_LIMIT_BURST"},
		{"bad rating", map[string]string{"LAFUSTA_BUSINESS_RATING_VALUE": "7"}, "rating value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.environ)
			if err == nil {
				t.Fatal("LoadFrom() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	cfg.Env = "qa"
	cfg.DefaultLocale = "xx"
	err = cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"LAFUSTA_ENV", "LAFUSTA_DEFAULT_LOCALE"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestCacheEnabled(t *testing.T) {
	tests := []struct {
		ttl      int
		schedule string
		want     bool
		wantWarm bool
	}{
		{0, "@every 30m", false, false},
		{1, "", true, false},
		{1, "off", true, false},
		{3600, "@every 30m", true, true},
	}

	for _, tt := range tests {
		cfg := Config{CacheTTL: tt.ttl, CacheWarmSchedule: tt.schedule}
		if got := cfg.CacheEnabled(); got != tt.want {
			t.Errorf("CacheEnabled() with TTL %d = %v, want %v", tt.ttl, got, tt.want)
		}
		if got := cfg.CacheWarmingEnabled(); got != tt.wantWarm {
			t.Errorf("CacheWarmingEnabled() with TTL %d, schedule %q = %v, want %v", tt.ttl, tt.schedule, got, tt.wantWarm)
		}
	}
}
