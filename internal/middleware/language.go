// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for locale detection,
// security headers, rate limiting and request metrics.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lafusta/lafusta-go/internal/locale"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyLocale holds the resolved locale.Locale of the request.
const ContextKeyLocale ContextKey = "locale"

// LocaleCookieName is the cookie name for the visitor's language preference.
const LocaleCookieName = "lafusta_lang"

// LocaleParam is the chi URL parameter carrying the locale segment.
const LocaleParam = "locale"

// Locale creates middleware for routes under /{locale}. A supported locale
// segment is stored in the request context and remembered in the preference
// cookie, so a later visit to / returns to it. An unsupported segment passes
// through without a locale and leaves the cookie alone; the handler decides
// where to send it.
//
// It must run inside the route that declares {locale}.
func Locale(resolver *locale.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc, ok := urlLocale(r, resolver)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			if cookieLocale(r) != loc {
				SetLocaleCookie(w, loc)
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), loc)))
		})
	}
}

// PreferredLocale picks the visitor's locale for URLs without a locale
// segment: ?lang, then cookie, then Accept-Language, then the default.
func PreferredLocale(r *http.Request, resolver *locale.Resolver) locale.Locale {
	if q := queryLocale(r, resolver); q != "" {
		return q
	}

	if code := cookieLocale(r); resolver.IsSupported(string(code)) {
		return resolver.Resolve(string(code))
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return resolver.Match(accept)
	}

	return resolver.Default()
}

// cookieLocale returns the normalized preference cookie value, or "" when
// the cookie is absent.
func cookieLocale(r *http.Request) locale.Locale {
	cookie, err := r.Cookie(LocaleCookieName)
	if err != nil {
		return ""
	}
	return locale.Locale(strings.ToLower(strings.TrimSpace(cookie.Value)))
}

func urlLocale(r *http.Request, resolver *locale.Resolver) (locale.Locale, bool) {
	param := chi.URLParam(r, LocaleParam)
	if param == "" || !resolver.IsSupported(param) {
		return "", false
	}
	return resolver.Resolve(param), true
}

func queryLocale(r *http.Request, resolver *locale.Resolver) locale.Locale {
	code := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("lang")))
	if code == "" || !resolver.IsSupported(code) {
		return ""
	}
	return resolver.Resolve(code)
}

// WithLocale returns a copy of ctx carrying loc.
func WithLocale(ctx context.Context, loc locale.Locale) context.Context {
	return context.WithValue(ctx, ContextKeyLocale, loc)
}

// GetLocale retrieves the request locale from the context. The boolean is
// false if the Locale middleware did not run or the URL locale is unsupported.
func GetLocale(r *http.Request) (locale.Locale, bool) {
	loc, ok := r.Context().Value(ContextKeyLocale).(locale.Locale)
	return loc, ok
}

// SetLocaleCookie sets the language preference cookie.
func SetLocaleCookie(w http.ResponseWriter, loc locale.Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     LocaleCookieName,
		Value:    string(loc),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
