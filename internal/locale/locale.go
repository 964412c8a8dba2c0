// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package locale defines the closed set of site locales and resolves
// arbitrary input (URL segments, cookies, Accept-Language headers) to one of them.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported site language code.
type Locale string

// Site locales, listed in enumeration order.
const (
	ES Locale = "es"
	EN Locale = "en"
	CA Locale = "ca"
	DE Locale = "de"
	NL Locale = "nl"
)

// All is the closed locale set in its fixed enumeration order.
// Every ordered output (alternate links, sitemaps) follows this order.
var All = []Locale{ES, EN, CA, DE, NL}

// Default is the locale used when nothing else matches.
const Default = ES

var ogLocales = map[Locale]string{
	ES: "es_ES",
	EN: "en_US",
	CA: "ca_ES",
	DE: "de_DE",
	NL: "nl_NL",
}

var nativeNames = map[Locale]string{
	ES: "Español",
	EN: "English",
	CA: "Català",
	DE: "Deutsch",
	NL: "Nederlands",
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}

// Known reports whether l belongs to the closed locale set.
func (l Locale) Known() bool {
	_, ok := ogLocales[l]
	return ok
}

// OGLocale returns the Open Graph locale code (e.g. "es_ES").
func (l Locale) OGLocale() string {
	if v, ok := ogLocales[l]; ok {
		return v
	}
	return ogLocales[Default]
}

// NativeName returns the language name in its own language.
func (l Locale) NativeName() string {
	if v, ok := nativeNames[l]; ok {
		return v
	}
	return string(l)
}

// Resolver maps candidate strings onto a fixed supported set.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	supported []Locale
	def       Locale
	index     map[string]Locale
	tags      []language.Tag
	matcher   language.Matcher
}

// NewResolver creates a resolver for the given supported locales.
// The default locale must be one of them.
func NewResolver(def Locale, supported ...Locale) (*Resolver, error) {
	if len(supported) == 0 {
		return nil, errors.New("no supported locales")
	}

	r := &Resolver{
		supported: make([]Locale, 0, len(supported)),
		def:       def,
		index:     make(map[string]Locale, len(supported)),
		tags:      make([]language.Tag, 0, len(supported)),
	}

	for _, l := range supported {
		if !l.Known() {
			return nil, fmt.Errorf("unknown locale %q", l)
		}
		if _, dup := r.index[string(l)]; dup {
			return nil, fmt.Errorf("duplicate locale %q", l)
		}
		tag, err := language.Parse(string(l))
		if err != nil {
			return nil, fmt.Errorf("parsing locale %q: %w", l, err)
		}
		r.supported = append(r.supported, l)
		r.index[string(l)] = l
		r.tags = append(r.tags, tag)
	}

	if _, ok := r.index[string(def)]; !ok {
		return nil, fmt.Errorf("default locale %q is not supported", def)
	}

	r.matcher = language.NewMatcher(r.tags)
	return r, nil
}

// DefaultResolver returns a resolver over All with Default as fallback.
func DefaultResolver() *Resolver {
	r, err := NewResolver(Default, All...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve returns candidate when it exactly matches a supported locale,
// and the default locale otherwise. It never fails.
func (r *Resolver) Resolve(candidate string) Locale {
	if l, ok := r.index[candidate]; ok {
		return l
	}
	return r.def
}

// IsSupported reports whether candidate exactly matches a supported locale.
func (r *Resolver) IsSupported(candidate string) bool {
	_, ok := r.index[candidate]
	return ok
}

// Default returns the fallback locale.
func (r *Resolver) Default() Locale {
	return r.def
}

// Supported returns the supported locales in enumeration order.
func (r *Resolver) Supported() []Locale {
	out := make([]Locale, len(r.supported))
	copy(out, r.supported)
	return out
}

// Match finds the best supported locale for an Accept-Language header
// or a single language tag such as "en-GB". Returns the default when
// nothing matches.
func (r *Resolver) Match(acceptLang string) Locale {
	acceptLang = strings.TrimSpace(acceptLang)
	if acceptLang == "" {
		return r.def
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		tag, err := language.Parse(acceptLang)
		if err != nil {
			return r.def
		}
		tags = []language.Tag{tag}
	}

	_, idx, conf := r.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(r.supported) {
		return r.def
	}
	return r.supported[idx]
}
