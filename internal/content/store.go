// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/lafusta/lafusta-go/internal/locale"
)

// DefaultGeneric is the last-resort text returned when a field exists in
// neither the requested nor the default locale.
const DefaultGeneric = "Restaurant La Fusta"

// Tier reports which step of the fallback chain produced a value.
type Tier int

const (
	// TierExact means the requested (locale, page, field) was present.
	TierExact Tier = iota
	// TierDefaultLocale means the value came from the default locale.
	TierDefaultLocale
	// TierGeneric means the generic fallback string was used.
	TierGeneric
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierDefaultLocale:
		return "default_locale"
	default:
		return "generic"
	}
}

// Store serves localized strings from an immutable Table.
// Lookups never fail: a missing value falls back to the default locale and
// then to a generic string.
type Store struct {
	table    *Table
	resolver *locale.Resolver
	generic  string
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewStore wraps a loaded table. An empty generic uses DefaultGeneric.
func NewStore(t *Table, r *locale.Resolver, generic string) *Store {
	if strings.TrimSpace(generic) == "" {
		generic = DefaultGeneric
	}
	return &Store{
		table:    t,
		resolver: r,
		generic:  generic,
		markdown: goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
	}
}

// Get returns the value of fieldPath for (loc, page). fieldPath may be
// page-relative ("title") or fully qualified ("pages.home.title").
func (s *Store) Get(loc locale.Locale, page Page, fieldPath string) string {
	v, _ := s.Lookup(loc, page, fieldPath)
	return v
}

// Lookup is Get that also reports which fallback tier answered.
func (s *Store) Lookup(loc locale.Locale, page Page, fieldPath string) (string, Tier) {
	field := strings.TrimPrefix(fieldPath, pagesKey+"."+string(page)+".")

	if v, ok := s.table.page(loc, page, field); ok {
		return v, TierExact
	}
	if v, ok := s.table.page(s.resolver.Default(), page, field); ok {
		return v, TierDefaultLocale
	}
	return s.generic, TierGeneric
}

// Shared returns a site-wide value such as "site.name" or "nav.carta",
// following the same fallback chain as Get.
func (s *Store) Shared(loc locale.Locale, key string) string {
	if v, ok := s.table.sharedValue(loc, key); ok {
		return v
	}
	if v, ok := s.table.sharedValue(s.resolver.Default(), key); ok {
		return v
	}
	return s.generic
}

// HTML renders a markdown field to sanitized HTML.
func (s *Store) HTML(loc locale.Locale, page Page, fieldPath string) template.HTML {
	src := s.Get(loc, page, fieldPath)

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(s.policy.SanitizeBytes(buf.Bytes()))
}

// Keywords splits the comma-separated keywords field of a page.
func (s *Store) Keywords(loc locale.Locale, page Page) []string {
	raw := s.Get(loc, page, "keywords")
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Version returns the content version.
func (s *Store) Version() string {
	return s.table.Version()
}

// Resolver returns the locale resolver the store falls back through.
func (s *Store) Resolver() *locale.Resolver {
	return s.resolver
}
