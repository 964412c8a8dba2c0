// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lafusta/lafusta-go/internal/config"
	"github.com/lafusta/lafusta-go/internal/handler"
	"github.com/lafusta/lafusta-go/internal/logging"
	"github.com/lafusta/lafusta-go/internal/version"
	"github.com/lafusta/lafusta-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = ""
	appBuildTime = ""
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")
	check := flag.Bool("check", false, "Validate content and configuration, then exit")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "La Fusta - multilingual restaurant website\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LAFUSTA_SITE_URL        Public origin (default: http://localhost:8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LAFUSTA_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LAFUSTA_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LAFUSTA_DEFAULT_LOCALE  Fallback locale: es|en|ca|de|nl (default: es)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LAFUSTA_NO_INDEX        Keep crawlers out (default: false)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LAFUSTA_REDIS_URL       Redis URL for a shared cache (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LAFUSTA_BUSINESS_*      Restaurant record (name, address, phone, rating)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	info := version.New(appVersion, appGitCommit, appBuildTime)

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Println(info.String())
		os.Exit(0)
	}

	if err := run(info, *check); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(info version.Info, checkOnly bool) error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.IsDevelopment(), logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)

	sc, err := loadContent(cfg)
	if err != nil {
		return err
	}
	slog.Info("content loaded",
		"version", sc.table.Version(),
		"locales", sc.resolver.Supported(),
		"default_locale", sc.resolver.Default(),
		"menu_items", sc.catalog.Len(),
	)

	deps, err := newDeps(cfg, sc)
	if err != nil {
		return err
	}
	if deps.Cache != nil {
		defer func() {
			if err := deps.Cache.Close(); err != nil {
				slog.Error("error closing cache", "error", err)
			}
		}()
	}

	if checkOnly {
		for _, line := range checkContent(sc) {
			_, _ = fmt.Println(line)
		}
		_, _ = fmt.Println("ok")
		return nil
	}

	var jobs handler.JobLister
	if cfg.CacheWarmingEnabled() && deps.Cache != nil {
		sched, err := startCacheWarmer(deps, logger, cfg.CacheWarmSchedule)
		if err != nil {
			return err
		}
		defer sched.Stop()
		jobs = sched
	}

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("opening static files: %w", err)
	}

	router := handler.NewRouter(handler.RouterConfig{
		Deps:           deps,
		Logger:         logger,
		StaticFS:       static,
		Version:        info.Version,
		IsDevelopment:  cfg.IsDevelopment(),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Jobs:           jobs,
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", info.Version, "site_url", cfg.SiteURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
