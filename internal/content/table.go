// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content holds the localized copy of the site: an immutable table
// keyed by (locale, page, field path) that is loaded and parity-checked once
// at startup, and a Store that serves lookups with a total fallback chain.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lafusta/lafusta-go/internal/locale"
)

//go:embed data/*.yaml
var dataFS embed.FS

// pagesKey is the top-level YAML section holding per-page fields.
const pagesKey = "pages"

// RequiredPageFields must be present for every page in every locale.
var RequiredPageFields = []string{"title", "description", "keywords"}

// Table is the loaded content for all locales. It is never mutated after
// Parse returns and is safe for concurrent reads.
type Table struct {
	locales  []locale.Locale
	versions map[locale.Locale]string
	pages    map[locale.Locale]map[Page]map[string]string
	shared   map[locale.Locale]map[string]string
}

// localeFile is the top-level shape of a <locale>.yaml file.
type localeFile struct {
	Version string         `yaml:"version"`
	Pages   map[string]any `yaml:"pages"`
	Rest    map[string]any `yaml:",inline"`
}

// LoadEmbedded parses and validates the content shipped with the binary.
func LoadEmbedded(locales []locale.Locale) (*Table, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("opening embedded content: %w", err)
	}
	return Load(sub, locales)
}

// Load parses <locale>.yaml for every locale in fsys and validates parity.
// Any parity violation is returned as an error; the table must not be used then.
func Load(fsys fs.FS, locales []locale.Locale) (*Table, error) {
	t, err := Parse(fsys, locales)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("content parity: %w", err)
	}
	return t, nil
}

// Parse reads the locale files without validating parity.
func Parse(fsys fs.FS, locales []locale.Locale) (*Table, error) {
	if len(locales) == 0 {
		return nil, errors.New("no locales to load")
	}

	t := &Table{
		locales:  slices.Clone(locales),
		versions: make(map[locale.Locale]string, len(locales)),
		pages:    make(map[locale.Locale]map[Page]map[string]string, len(locales)),
		shared:   make(map[locale.Locale]map[string]string, len(locales)),
	}

	for _, loc := range locales {
		name := string(loc) + ".yaml"
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		var f localeFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		t.versions[loc] = f.Version

		shared := make(map[string]string)
		if err := flatten("", f.Rest, shared); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		t.shared[loc] = shared

		pages := make(map[Page]map[string]string)
		for key, raw := range f.Pages {
			page, ok := ParsePage(key)
			if !ok {
				return nil, fmt.Errorf("%s: unknown page %q", name, key)
			}
			fields := make(map[string]string)
			m, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: page %q is not a mapping", name, key)
			}
			if err := flatten("", m, fields); err != nil {
				return nil, fmt.Errorf("%s: page %q: %w", name, key, err)
			}
			pages[page] = fields
		}
		t.pages[loc] = pages
	}

	return t, nil
}

// flatten converts nested YAML mappings into dotted field paths.
func flatten(prefix string, in map[string]any, out map[string]string) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("field %q: lists are not supported", key)
		case nil:
			out[key] = ""
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return nil
}

// Validate checks the parity invariant: every locale carries the same
// version, every page, and every field path present in any locale, all with
// non-empty values. All violations are reported together.
func (t *Table) Validate() error {
	var errs []error

	base := t.locales[0]
	for _, loc := range t.locales[1:] {
		if t.versions[loc] != t.versions[base] {
			errs = append(errs, fmt.Errorf("locale %s: version %q differs from %s version %q",
				loc, t.versions[loc], base, t.versions[base]))
		}
	}

	for _, page := range Pages {
		union := make(map[string]struct{})
		for _, field := range RequiredPageFields {
			union[field] = struct{}{}
		}
		for _, loc := range t.locales {
			for field := range t.pages[loc][page] {
				union[field] = struct{}{}
			}
		}
		for _, loc := range t.locales {
			fields, ok := t.pages[loc][page]
			if !ok {
				errs = append(errs, fmt.Errorf("locale %s: page %s missing", loc, page))
				continue
			}
			for _, field := range sortedKeys(union) {
				if strings.TrimSpace(fields[field]) == "" {
					errs = append(errs, fmt.Errorf("locale %s: pages.%s.%s missing or empty", loc, page, field))
				}
			}
		}
	}

	union := make(map[string]struct{})
	for _, loc := range t.locales {
		for key := range t.shared[loc] {
			union[key] = struct{}{}
		}
	}
	for _, loc := range t.locales {
		for _, key := range sortedKeys(union) {
			if strings.TrimSpace(t.shared[loc][key]) == "" {
				errs = append(errs, fmt.Errorf("locale %s: %s missing or empty", loc, key))
			}
		}
	}

	return errors.Join(errs...)
}

// Version returns the content version shared by all locales.
func (t *Table) Version() string {
	return t.versions[t.locales[0]]
}

// Locales returns the locales loaded into the table.
func (t *Table) Locales() []locale.Locale {
	return slices.Clone(t.locales)
}

// Pages returns the pages present for every loaded locale, in enumeration order.
func (t *Table) Pages() []Page {
	out := make([]Page, 0, len(Pages))
	for _, p := range Pages {
		all := true
		for _, loc := range t.locales {
			if _, ok := t.pages[loc][p]; !ok {
				all = false
				break
			}
		}
		if all {
			out = append(out, p)
		}
	}
	return out
}

// FieldCount returns the number of page and shared fields loaded for loc.
func (t *Table) FieldCount(loc locale.Locale) int {
	n := len(t.shared[loc])
	for _, fields := range t.pages[loc] {
		n += len(fields)
	}
	return n
}

func (t *Table) page(loc locale.Locale, page Page, field string) (string, bool) {
	v, ok := t.pages[loc][page][field]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func (t *Table) sharedValue(loc locale.Locale, key string) (string, bool) {
	v, ok := t.shared[loc][key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
