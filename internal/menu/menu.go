// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package menu loads the restaurant's carta: dishes grouped into a fixed
// sequence of categories, with names, descriptions and allergen labels in
// every site locale.
package menu

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lafusta/lafusta-go/internal/locale"
	"github.com/lafusta/lafusta-go/internal/schema"
	"github.com/lafusta/lafusta-go/internal/util"
)

//go:embed data/carta.yaml
var dataFS embed.FS

const catalogFile = "data/carta.yaml"

// Currency is the ISO 4217 code of every price on the carta.
const Currency = "EUR"

// Category is a section of the carta.
type Category string

// Carta categories.
const (
	Starters Category = "starters"
	Salads   Category = "salads"
	Rice     Category = "rice"
	Meat     Category = "meat"
	Fish     Category = "fish"
	Desserts Category = "desserts"
	Drinks   Category = "drinks"
)

// Categories is the fixed display order of the carta.
var Categories = []Category{Starters, Salads, Rice, Meat, Fish, Desserts, Drinks}

// Allergen is one of the allergens declared on the carta.
type Allergen string

// Declared allergens.
const (
	AllergenGluten    Allergen = "gluten"
	AllergenShellfish Allergen = "shellfish"
	AllergenFish      Allergen = "fish"
	AllergenDairy     Allergen = "dairy"
	AllergenEggs      Allergen = "eggs"
	AllergenNuts      Allergen = "nuts"
	AllergenSoy       Allergen = "soy"
	AllergenCelery    Allergen = "celery"
	AllergenMustard   Allergen = "mustard"
	AllergenSesame    Allergen = "sesame"
	AllergenSulfites  Allergen = "sulfites"
)

// Allergens is the closed allergen set in legend order.
var Allergens = []Allergen{
	AllergenGluten, AllergenShellfish, AllergenFish, AllergenDairy, AllergenEggs, AllergenNuts,
	AllergenSoy, AllergenCelery, AllergenMustard, AllergenSesame, AllergenSulfites,
}

type localized map[locale.Locale]string

// Item is a dish with all its translations.
type Item struct {
	Slug        string
	Category    Category
	Price       string
	Image       string
	Allergens   []Allergen
	name        localized
	description localized
}

// LocalizedAllergen is an allergen with its label in one locale.
type LocalizedAllergen struct {
	Key   Allergen `json:"key"`
	Label string   `json:"label"`
}

// LocalizedItem is a dish rendered for one locale.
type LocalizedItem struct {
	Slug        string              `json:"slug"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       string              `json:"price"`
	Currency    string              `json:"currency"`
	Image       string              `json:"image,omitempty"`
	Allergens   []LocalizedAllergen `json:"allergens"`
}

// LocalizedCategory is a carta section rendered for one locale.
type LocalizedCategory struct {
	Key   Category        `json:"key"`
	Name  string          `json:"name"`
	Items []LocalizedItem `json:"items"`
}

// Catalog is the loaded carta. It is immutable and safe for concurrent reads.
type Catalog struct {
	version    string
	resolver   *locale.Resolver
	categories map[Category]localized
	allergens  map[Allergen]localized
	items      map[Category][]Item
	bySlug     map[string]Item
}

type catalogFileShape struct {
	Version    string                  `yaml:"version"`
	Allergens  map[string]localizedRaw `yaml:"allergens"`
	Categories map[string]struct {
		Name  localizedRaw `yaml:"name"`
		Items []struct {
			Name        localizedRaw `yaml:"name"`
			Description localizedRaw `yaml:"description"`
			Price       string       `yaml:"price"`
			Image       string       `yaml:"image"`
			Allergens   []string     `yaml:"allergens"`
		} `yaml:"items"`
	} `yaml:"categories"`
}

type localizedRaw map[string]string

// LoadEmbedded loads the carta shipped with the binary.
func LoadEmbedded(r *locale.Resolver) (*Catalog, error) {
	return Load(dataFS, catalogFile, r)
}

// Load reads and validates a carta file. Every name, description and
// allergen label must exist for every supported locale.
func Load(fsys fs.FS, name string, r *locale.Resolver) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var f catalogFileShape
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	c := &Catalog{
		version:    f.Version,
		resolver:   r,
		categories: make(map[Category]localized),
		allergens:  make(map[Allergen]localized),
		items:      make(map[Category][]Item),
		bySlug:     make(map[string]Item),
	}
	supported := r.Supported()
	var errs []error

	for _, a := range Allergens {
		raw, ok := f.Allergens[string(a)]
		if !ok {
			errs = append(errs, fmt.Errorf("allergen %s: no labels", a))
			continue
		}
		labels, err := toLocalized(raw, supported)
		if err != nil {
			errs = append(errs, fmt.Errorf("allergen %s: %w", a, err))
		}
		c.allergens[a] = labels
	}
	for key := range f.Allergens {
		if !isAllergen(key) {
			errs = append(errs, fmt.Errorf("unknown allergen %q", key))
		}
	}

	for key, cat := range f.Categories {
		category := Category(key)
		if !isCategory(key) {
			errs = append(errs, fmt.Errorf("unknown category %q", key))
			continue
		}
		names, err := toLocalized(cat.Name, supported)
		if err != nil {
			errs = append(errs, fmt.Errorf("category %s: %w", key, err))
		}
		c.categories[category] = names

		for i, raw := range cat.Items {
			item := Item{
				Category: category,
				Price:    strings.TrimSpace(raw.Price),
				Image:    raw.Image,
			}
			if item.name, err = toLocalized(raw.Name, supported); err != nil {
				errs = append(errs, fmt.Errorf("category %s item %d name: %w", key, i, err))
				continue
			}
			if item.description, err = toLocalized(raw.Description, supported); err != nil {
				errs = append(errs, fmt.Errorf("category %s item %d description: %w", key, i, err))
			}
			if _, err := strconv.ParseFloat(item.Price, 64); err != nil {
				errs = append(errs, fmt.Errorf("category %s item %d: invalid price %q", key, i, raw.Price))
			}
			for _, a := range raw.Allergens {
				if !isAllergen(a) {
					errs = append(errs, fmt.Errorf("category %s item %d: unknown allergen %q", key, i, a))
					continue
				}
				item.Allergens = append(item.Allergens, Allergen(a))
			}

			item.Slug = util.Slugify(item.name[r.Default()])
			if _, dup := c.bySlug[item.Slug]; dup {
				errs = append(errs, fmt.Errorf("duplicate item slug %q", item.Slug))
				continue
			}
			c.bySlug[item.Slug] = item
			c.items[category] = append(c.items[category], item)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid carta %s: %w", name, err)
	}
	return c, nil
}

func toLocalized(raw localizedRaw, supported []locale.Locale) (localized, error) {
	out := make(localized, len(supported))
	var missing []string
	for _, l := range supported {
		v := strings.TrimSpace(raw[string(l)])
		if v == "" {
			missing = append(missing, string(l))
			continue
		}
		out[l] = v
	}
	if len(missing) > 0 {
		return out, fmt.Errorf("missing translations: %s", strings.Join(missing, ", "))
	}
	return out, nil
}

func isCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

func isAllergen(s string) bool {
	for _, a := range Allergens {
		if string(a) == s {
			return true
		}
	}
	return false
}

// Version returns the catalog version string.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of dishes.
func (c *Catalog) Len() int {
	return len(c.bySlug)
}

func (c *Catalog) resolve(loc locale.Locale) locale.Locale {
	return c.resolver.Resolve(string(loc))
}

// AllergenLabel returns the label of a in loc.
func (c *Catalog) AllergenLabel(loc locale.Locale, a Allergen) string {
	if v, ok := c.allergens[a][c.resolve(loc)]; ok {
		return v
	}
	return string(a)
}

// AllergenLegend returns every allergen with its label, in legend order.
func (c *Catalog) AllergenLegend(loc locale.Locale) []LocalizedAllergen {
	out := make([]LocalizedAllergen, 0, len(Allergens))
	for _, a := range Allergens {
		out = append(out, LocalizedAllergen{Key: a, Label: c.AllergenLabel(loc, a)})
	}
	return out
}

// Categories returns the non-empty categories in display order, rendered for loc.
// An unsupported loc is rendered in the default locale.
func (c *Catalog) Categories(loc locale.Locale) []LocalizedCategory {
	loc = c.resolve(loc)
	out := make([]LocalizedCategory, 0, len(Categories))
	for _, cat := range Categories {
		items := c.items[cat]
		if len(items) == 0 {
			continue
		}
		lc := LocalizedCategory{
			Key:   cat,
			Name:  c.categories[cat][loc],
			Items: make([]LocalizedItem, 0, len(items)),
		}
		for _, it := range items {
			lc.Items = append(lc.Items, c.localize(loc, it))
		}
		out = append(out, lc)
	}
	return out
}

// Item returns the dish with the given slug rendered for loc.
func (c *Catalog) Item(loc locale.Locale, slug string) (LocalizedItem, bool) {
	it, ok := c.bySlug[slug]
	if !ok {
		return LocalizedItem{}, false
	}
	return c.localize(c.resolve(loc), it), true
}

// SchemaItems returns every dish as structured-data input, in display order,
// with the localized category name as section.
func (c *Catalog) SchemaItems(loc locale.Locale) []schema.MenuItem {
	var out []schema.MenuItem
	for _, cat := range c.Categories(loc) {
		for _, it := range cat.Items {
			out = append(out, schema.MenuItem{
				Name:        it.Name,
				Description: it.Description,
				Price:       it.Price,
				Image:       it.Image,
				Category:    cat.Name,
			})
		}
	}
	return out
}

func (c *Catalog) localize(loc locale.Locale, it Item) LocalizedItem {
	li := LocalizedItem{
		Slug:        it.Slug,
		Name:        it.name[loc],
		Description: it.description[loc],
		Price:       it.Price,
		Currency:    Currency,
		Image:       it.Image,
		Allergens:   make([]LocalizedAllergen, 0, len(it.Allergens)),
	}
	for _, a := range it.Allergens {
		li.Allergens = append(li.Allergens, LocalizedAllergen{Key: a, Label: c.AllergenLabel(loc, a)})
	}
	return li
}
