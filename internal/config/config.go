// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lafusta/lafusta-go/internal/business"
	"github.com/lafusta/lafusta-go/internal/locale"
	"github.com/lafusta/lafusta-go/internal/scheduler"
)

// warmOff disables the cache warmer.
const warmOff = "off"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"LAFUSTA_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"LAFUSTA_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"LAFUSTA_ENV" envDefault:"development"`
	LogLevel   string `env:"LAFUSTA_LOG_LEVEL" envDefault:"info"`

	// SiteURL is the public origin used for canonical, alternate and sitemap URLs.
	SiteURL       string `env:"LAFUSTA_SITE_URL" envDefault:"http://localhost:8080"`
	DefaultLocale string `env:"LAFUSTA_DEFAULT_LOCALE" envDefault:"es"`
	// NoIndex asks crawlers to stay away (staging deployments).
	NoIndex bool `env:"LAFUSTA_NO_INDEX" envDefault:"false"`

	// Cache configuration
	RedisURL     string `env:"LAFUSTA_REDIS_URL"`                         // Optional Redis URL for a shared cache
	CachePrefix  string `env:"LAFUSTA_CACHE_PREFIX" envDefault:"lafusta:"` // Redis key prefix
	CacheTTL     int    `env:"LAFUSTA_CACHE_TTL" envDefault:"3600"`       // Rendered output TTL in seconds, 0 disables caching
	CacheMaxSize int    `env:"LAFUSTA_CACHE_MAX_SIZE" envDefault:"1000"`  // Max memory cache entries
	// CacheWarmSchedule re-renders every page into the cache. "off" disables warming.
	CacheWarmSchedule string `env:"LAFUSTA_CACHE_WARM_SCHEDULE" envDefault:"@every 30m"`

	// Rate limiting per client IP
	RateLimitRPS   float64 `env:"LAFUSTA_RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"LAFUSTA_RATE_LIMIT_BURST" envDefault:"20"`

	Business business.Config `envPrefix:"LAFUSTA_BUSINESS_"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// CacheEnabled reports whether rendered output is cached at all.
func (c Config) CacheEnabled() bool {
	return c.CacheTTL > 0
}

// CacheWarmingEnabled reports whether the cache warmer job should run.
func (c Config) CacheWarmingEnabled() bool {
	return c.CacheEnabled() && c.CacheWarmSchedule != "" && c.CacheWarmSchedule != warmOff
}

// CacheDuration returns CacheTTL as a time.Duration.
func (c Config) CacheDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// Locale returns the configured default locale.
func (c Config) Locale() locale.Locale {
	return locale.Locale(c.DefaultLocale)
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom parses the given environment instead of the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.SiteURL = strings.TrimSuffix(cfg.SiteURL, "/")
	cfg.DefaultLocale = strings.ToLower(strings.TrimSpace(cfg.DefaultLocale))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	switch c.Env {
	case "development", "production":
	default:
		errs = append(errs, fmt.Errorf("LAFUSTA_ENV must be development or production, got %q", c.Env))
	}

	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("LAFUSTA_SERVER_PORT out of range: %d", c.ServerPort))
	}

	if err := validateSiteURL(c.SiteURL); err != nil {
		errs = append(errs, err)
	}

	if !c.Locale().Known() {
		errs = append(errs, fmt.Errorf("LAFUSTA_DEFAULT_LOCALE %q is not one of %v", c.DefaultLocale, locale.All))
	}

	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("LAFUSTA_CACHE_TTL must not be negative, got %d", c.CacheTTL))
	}
	if c.CacheMaxSize < 0 {
		errs = append(errs, fmt.Errorf("LAFUSTA_CACHE_MAX_SIZE must not be negative, got %d", c.CacheMaxSize))
	}
	if c.CacheWarmSchedule != "" && c.CacheWarmSchedule != warmOff {
		if err := scheduler.ValidateSchedule(c.CacheWarmSchedule); err != nil {
			errs = append(errs, fmt.Errorf("LAFUSTA_CACHE_WARM_SCHEDULE: %w", err))
		}
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("LAFUSTA_RATE_LIMIT_RPS must not be negative, got %g", c.RateLimitRPS))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Errorf("LAFUSTA_RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst))
	}

	if err := c.Business.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validateSiteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("LAFUSTA_SITE_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("LAFUSTA_SITE_URL must be an absolute http or https URL, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("LAFUSTA_SITE_URL has no host: %q", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("LAFUSTA_SITE_URL must not carry a query or fragment: %q", raw)
	}
	return nil
}
