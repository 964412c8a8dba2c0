// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lafusta/lafusta-go/internal/locale"
)

const esFixture = `version: "1"
site:
  name: La Fusta
nav:
  carta: Carta
pages:
  home:
    title: Inicio
    description: Cocina mediterránea
    keywords: "restaurante, cocina ,, mediterránea "
    body: "Hola **mundo**<script>alert(1)</script>"
  carta:
    title: Carta
    description: La carta
    keywords: carta
    subtitle: Del mar
  contacto:
    title: Contacto
    description: Contacta
    keywords: contacto
  historia:
    title: Historia
    description: Nuestra historia
    keywords: historia
`

const enFixture = `version: "1"
site:
  name: La Fusta
nav:
  carta: Menu
pages:
  home:
    title: Home
    description: Mediterranean cuisine
    keywords: restaurant
    body: Hello
  carta:
    title: Menu
    description: The menu
    keywords: menu
    subtitle: From the sea
  contacto:
    title: Contact
    description: Contact us
    keywords: contact
  historia:
    title: History
    description: Our history
    keywords: history
`

// partialEN lacks carta.subtitle, contacto entirely and nav.carta.
const partialEN = `version: "1"
site:
  name: La Fusta
pages:
  home:
    title: Home
    description: Mediterranean cuisine
    keywords: restaurant
    body: Hello
  carta:
    title: Menu
    description: The menu
    keywords: menu
  historia:
    title: History
    description: ""
    keywords: history
`

func fixtureFS(en string) fstest.MapFS {
	return fstest.MapFS{
		"es.yaml": {Data: []byte(esFixture)},
		"en.yaml": {Data: []byte(en)},
	}
}

func twoLocaleResolver(t *testing.T) *locale.Resolver {
	t.Helper()
	r, err := locale.NewResolver(locale.ES, locale.ES, locale.EN)
	require.NoError(t, err)
	return r
}

func TestLoadEmbeddedParity(t *testing.T) {
	table, err := LoadEmbedded(locale.All)
	require.NoError(t, err)

	assert.NotEmpty(t, table.Version())
	assert.Equal(t, locale.All, table.Locales())
	assert.Equal(t, Pages, table.Pages())

	want := table.FieldCount(locale.ES)
	for _, loc := range locale.All {
		assert.Equal(t, want, table.FieldCount(loc), "field count for %s", loc)
	}
}

func TestGetTitleNonEmptyForAllLocalesAndPages(t *testing.T) {
	table, err := LoadEmbedded(locale.All)
	require.NoError(t, err)
	store := NewStore(table, locale.DefaultResolver(), "")

	for _, loc := range locale.All {
		for _, page := range Pages {
			for _, field := range RequiredPageFields {
				v, tier := store.Lookup(loc, page, field)
				if strings.TrimSpace(v) == "" {
					t.Errorf("Get(%s, %s, %s) is empty", loc, page, field)
				}
				if tier != TierExact {
					t.Errorf("Get(%s, %s, %s) tier = %s, want exact", loc, page, field, tier)
				}
			}
		}
	}
}

func TestLoadRejectsParityViolations(t *testing.T) {
	_, err := Load(fixtureFS(partialEN), []locale.Locale{locale.ES, locale.EN})
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"locale en: page contacto missing",
		"locale en: pages.carta.subtitle missing or empty",
		"locale en: pages.historia.description missing or empty",
		"locale en: nav.carta missing or empty",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestLoadRejectsVersionMismatch(t *testing.T) {
	en := strings.Replace(enFixture, `version: "1"`, `version: "2"`, 1)
	_, err := Load(fixtureFS(en), []locale.Locale{locale.ES, locale.EN})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestLoadRejectsMissingRequiredField(t *testing.T) {
	es := strings.Replace(esFixture, "    keywords: historia\n", "", 1)
	en := strings.Replace(enFixture, "    keywords: history\n", "", 1)
	fsys := fstest.MapFS{
		"es.yaml": {Data: []byte(es)},
		"en.yaml": {Data: []byte(en)},
	}
	_, err := Load(fsys, []locale.Locale{locale.ES, locale.EN})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pages.historia.keywords")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing file", fstest.MapFS{"es.yaml": {Data: []byte(esFixture)}}},
		{"unknown page", fixtureFS(enFixture + "  menu:\n    title: x\n")},
		{"list value", fixtureFS(strings.Replace(enFixture, "keywords: menu", "keywords: [a, b]", 1))},
		{"bad yaml", fixtureFS("pages: [")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.fsys, []locale.Locale{locale.ES, locale.EN})
			assert.Error(t, err)
		})
	}
}

func TestGetFallbackChain(t *testing.T) {
	table, err := Parse(fixtureFS(partialEN), []locale.Locale{locale.ES, locale.EN})
	require.NoError(t, err)
	store := NewStore(table, twoLocaleResolver(t), "Generic")

	tests := []struct {
		name     string
		loc      locale.Locale
		page     Page
		field    string
		want     string
		wantTier Tier
	}{
		{"exact", locale.EN, PageCarta, "title", "Menu", TierExact},
		{"qualified path", locale.EN, PageCarta, "pages.carta.title", "Menu", TierExact},
		{"missing field uses default locale", locale.EN, PageCarta, "subtitle", "Del mar", TierDefaultLocale},
		{"missing page uses default locale", locale.EN, PageContacto, "title", "Contacto", TierDefaultLocale},
		{"empty value uses default locale", locale.EN, PageHistoria, "description", "Nuestra historia", TierDefaultLocale},
		{"unknown field uses generic", locale.EN, PageHome, "nonexistent", "Generic", TierGeneric},
		{"unknown locale uses default locale", locale.Locale("xx"), PageHome, "title", "Inicio", TierDefaultLocale},
		{"unknown page uses generic", locale.ES, Page("menu"), "title", "Generic", TierGeneric},
		{"other page prefix is literal", locale.ES, PageHome, "pages.carta.title", "Generic", TierGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tier := store.Lookup(tt.loc, tt.page, tt.field)
			if got != tt.want {
				t.Errorf("Lookup() = %q, want %q", got, tt.want)
			}
			if tier != tt.wantTier {
				t.Errorf("Lookup() tier = %s, want %s", tier, tt.wantTier)
			}
			if plain := store.Get(tt.loc, tt.page, tt.field); plain != got {
				t.Errorf("Get() = %q, Lookup() = %q", plain, got)
			}
		})
	}
}

func TestSharedFallback(t *testing.T) {
	table, err := Parse(fixtureFS(partialEN), []locale.Locale{locale.ES, locale.EN})
	require.NoError(t, err)
	store := NewStore(table, twoLocaleResolver(t), "")

	assert.Equal(t, "La Fusta", store.Shared(locale.EN, "site.name"))
	assert.Equal(t, "Carta", store.Shared(locale.EN, "nav.carta"))
	assert.Equal(t, DefaultGeneric, store.Shared(locale.EN, "nav.unknown"))
}

func TestKeywords(t *testing.T) {
	table, err := Parse(fixtureFS(enFixture), []locale.Locale{locale.ES, locale.EN})
	require.NoError(t, err)
	store := NewStore(table, twoLocaleResolver(t), "")

	assert.Equal(t, []string{"restaurante", "cocina", "mediterránea"}, store.Keywords(locale.ES, PageHome))
	assert.Equal(t, []string{"menu"}, store.Keywords(locale.EN, PageCarta))
}

func TestHTMLSanitizesMarkdown(t *testing.T) {
	table, err := Parse(fixtureFS(enFixture), []locale.Locale{locale.ES, locale.EN})
	require.NoError(t, err)
	store := NewStore(table, twoLocaleResolver(t), "")

	got := string(store.HTML(locale.ES, PageHome, "body"))
	assert.Contains(t, got, "<strong>mundo</strong>")
	assert.NotContains(t, got, "<script>")
}

func TestStoreIsDeterministic(t *testing.T) {
	table, err := LoadEmbedded(locale.All)
	require.NoError(t, err)
	store := NewStore(table, locale.DefaultResolver(), "")

	for _, loc := range locale.All {
		first := store.Get(loc, PageHistoria, "body")
		second := store.Get(loc, PageHistoria, "body")
		assert.Equal(t, first, second)
	}
}

func TestPageHelpers(t *testing.T) {
	tests := []struct {
		page Page
		path string
	}{
		{PageHome, ""},
		{PageCarta, "/carta"},
		{PageContacto, "/contacto"},
		{PageHistoria, "/historia"},
	}
	for _, tt := range tests {
		if got := tt.page.Path(); got != tt.path {
			t.Errorf("%s.Path() = %q, want %q", tt.page, got, tt.path)
		}
		if p, ok := ParsePage(string(tt.page)); !ok || p != tt.page {
			t.Errorf("ParsePage(%q) = %q, %v", tt.page, p, ok)
		}
	}
	if _, ok := ParsePage("admin"); ok {
		t.Error("ParsePage(admin) ok = true, want false")
	}
}
