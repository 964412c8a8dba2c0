// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging builds the slog logger of the site. Records at WARN and
// above are also counted per category so alerting can watch them.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/lafusta/lafusta-go/internal/metrics"
)

// Event categories.
const (
	CategoryHTTP    = "http"
	CategoryCache   = "cache"
	CategoryContent = "content"
	CategoryLocale  = "locale"
	CategoryConfig  = "config"
	CategorySystem  = "system"
)

// EventHandler is a slog.Handler that wraps another handler and counts
// records at or above its level in metrics.LogEvents.
type EventHandler struct {
	inner slog.Handler
	level slog.Level // minimum level to count (default: WARN)
}

// NewEventHandler creates an EventHandler counting WARN and above.
func NewEventHandler(inner slog.Handler) *EventHandler {
	return NewEventHandlerWithLevel(inner, slog.LevelWarn)
}

// NewEventHandlerWithLevel creates an EventHandler with a custom minimum level.
func NewEventHandlerWithLevel(inner slog.Handler, level slog.Level) *EventHandler {
	return &EventHandler{inner: inner, level: level}
}

// Enabled implements slog.Handler.
func (h *EventHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		metrics.LogEvents.WithLabelValues(levelLabel(r.Level), extractCategory(r)).Inc()
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *EventHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventHandler{inner: h.inner.WithAttrs(attrs), level: h.level}
}

// WithGroup implements slog.Handler.
func (h *EventHandler) WithGroup(name string) slog.Handler {
	return &EventHandler{inner: h.inner.WithGroup(name), level: h.level}
}

func levelLabel(level slog.Level) string {
	if level >= slog.LevelError {
		return "error"
	}
	return "warn"
}

// extractCategory returns the "category" attribute of r or infers one from
// the message.
func extractCategory(r slog.Record) string {
	var category string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return false
		}
		return true
	})
	if category != "" {
		return category
	}

	msg := strings.ToLower(r.Message)
	switch {
	case strings.Contains(msg, "cache") || strings.Contains(msg, "redis"):
		return CategoryCache
	case strings.Contains(msg, "locale") || strings.Contains(msg, "language"):
		return CategoryLocale
	case strings.Contains(msg, "render") || strings.Contains(msg, "page") ||
		strings.Contains(msg, "content") || strings.Contains(msg, "menu"):
		return CategoryContent
	case strings.Contains(msg, "config"):
		return CategoryConfig
	case strings.Contains(msg, "request") || strings.Contains(msg, "rate limit"):
		return CategoryHTTP
	default:
		return CategorySystem
	}
}

// ParseLevel maps a configured level name to a slog.Level. Unknown names
// fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the site logger: colorized text for development, JSON for
// everything else, both wrapped in an EventHandler.
func New(w io.Writer, development bool, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if development {
		inner = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(NewEventHandler(inner))
}
