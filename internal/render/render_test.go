// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lafusta/lafusta-go/internal/business"
	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/locale"
	"github.com/lafusta/lafusta-go/internal/menu"
	"github.com/lafusta/lafusta-go/internal/schema"
	"github.com/lafusta/lafusta-go/internal/seo"
	"github.com/lafusta/lafusta-go/internal/site"
	"github.com/lafusta/lafusta-go/web"
)

const siteURL = "https://example.com"

type fixture struct {
	renderer *Renderer
	store    *content.Store
	builder  *site.Builder
	catalog  *menu.Catalog
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	resolver := locale.DefaultResolver()
	table, err := content.LoadEmbedded(locale.All)
	require.NoError(t, err)
	store := content.NewStore(table, resolver, "")
	catalog, err := menu.LoadEmbedded(resolver)
	require.NoError(t, err)

	templates, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)
	r, err := New(Config{TemplatesFS: templates, Store: store})
	require.NoError(t, err)

	builder := site.NewBuilder(
		siteURL,
		store,
		seo.NewGenerator(store, seo.SiteConfig{SiteURL: siteURL, SiteName: "Restaurant La Fusta"}),
		schema.NewGenerator(business.Default(), siteURL, store),
		catalog,
	)
	return fixture{renderer: r, store: store, builder: builder, catalog: catalog}
}

func (f fixture) data(loc locale.Locale, page content.Page) PageData {
	return PageData{
		Head:        f.builder.Build(string(loc), page),
		Locale:      loc,
		Page:        page,
		Nav:         Navigation(f.store, loc, page),
		Languages:   Languages(f.store.Resolver(), loc, page),
		Business:    business.Default(),
		Categories:  f.catalog.Categories(loc),
		Allergens:   f.catalog.AllergenLegend(loc),
		Reviews:     site.Testimonials,
		FAQs:        schema.DefaultFAQs(loc),
		CurrentYear: 2026,
	}
}

func TestBlankLinesRegex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no blank lines", "line1\nline2\nline3", "line1\nline2\nline3"},
		{"one blank line", "line1\n\nline2", "line1\nline2"},
		{"multiple blank lines", "line1\n\n\n\n\nline2", "line1\nline2"},
		{"blank lines with spaces", "line1\n  \n\t\nline2", "line1\nline2"},
		{"windows line endings", "line1\r\n\r\n\r\nline2", "line1\nline2"},
		{"blank lines at end", "line1\nline2\n\n\n", "line1\nline2\n"},
		{"only newlines", "\n\n\n\n", "\n"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(blankLinesRegex.ReplaceAll([]byte(tt.input), []byte("\n")))
			if got != tt.expected {
				t.Errorf("blankLinesRegex.ReplaceAll(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{5, "★★★★★"},
		{4.4, "★★★★☆"},
		{4.5, "★★★★★"},
		{0, "★☆☆☆☆"},
		{9, "★★★★★"},
	}
	for _, tt := range tests {
		if got := stars(tt.rating); got != tt.want {
			t.Errorf("stars(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestRenderAllPages(t *testing.T) {
	f := newFixture(t)

	for _, loc := range locale.All {
		for _, page := range content.Pages {
			t.Run(string(loc)+"/"+string(page), func(t *testing.T) {
				body, err := f.renderer.RenderBytes(f.data(loc, page))
				require.NoError(t, err)
				html := string(body)

				assert.Contains(t, html, `<html lang="`+string(loc)+`">`)
				assert.Contains(t, html, "<title>"+htmlText(f.store.Get(loc, page, "title"))+"</title>")
				assert.Contains(t, html, `<link rel="canonical" href="`+seo.LocalizedURL(siteURL, loc, page.Path())+`">`)
				assert.Contains(t, html, `hreflang="x-default"`)
				assert.Contains(t, html, `<script type="application/ld+json">`)
				assert.NotContains(t, html, "\n\n")
			})
		}
	}
}

// htmlText escapes s the way html/template does for text content.
func htmlText(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&#34;", "'", "&#39;", "+", "&#43;").Replace(s)
}

func TestRenderPageContent(t *testing.T) {
	f := newFixture(t)

	carta, err := f.renderer.RenderBytes(f.data(locale.EN, content.PageCarta))
	require.NoError(t, err)
	assert.Contains(t, string(carta), "Seafood paella")
	assert.Contains(t, string(carta), `id="paella-de-marisco"`)
	assert.Contains(t, string(carta), `"@type": "Menu"`)

	historia, err := f.renderer.RenderBytes(f.data(locale.ES, content.PageHistoria))
	require.NoError(t, err)
	assert.Contains(t, string(historia), "<strong>centro de Calella</strong>")

	home, err := f.renderer.RenderBytes(f.data(locale.DE, content.PageHome))
	require.NoError(t, err)
	assert.Contains(t, string(home), "María García")
	assert.Contains(t, string(home), `aria-current="page"`)
	assert.Contains(t, string(home), `href="/nl"`)
}

func TestRenderWritesResponse(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()

	require.NoError(t, f.renderer.Render(rec, f.data(locale.CA, content.PageContacto)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Carrer de les Creus, 12")
}

func TestRenderUnknownPage(t *testing.T) {
	f := newFixture(t)
	_, err := f.renderer.RenderBytes(PageData{Page: content.Page("menu")})
	assert.Error(t, err)
}

func TestNewMissingPageTemplate(t *testing.T) {
	f := newFixture(t)
	fsys := fstest.MapFS{
		"layouts/base.html":   {Data: []byte(`{{define "base"}}{{template "content" .}}{{end}}`)},
		"partials/empty.html": {Data: []byte(`{{define "empty"}}{{end}}`)},
		"pages/home.html":     {Data: []byte(`{{define "content"}}home{{end}}`)},
	}
	_, err := New(Config{TemplatesFS: fsys, Store: f.store})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing template carta")

	_, err = New(Config{TemplatesFS: fsys})
	assert.Error(t, err)
}

func TestNavigationAndLanguages(t *testing.T) {
	f := newFixture(t)

	nav := Navigation(f.store, locale.EN, content.PageCarta)
	require.Len(t, nav, len(content.Pages))
	assert.Equal(t, "/en", nav[0].URL)
	assert.Equal(t, "/en/carta", nav[1].URL)
	assert.True(t, nav[1].Active)
	assert.False(t, nav[0].Active)

	langs := Languages(f.store.Resolver(), locale.EN, content.PageHistoria)
	require.Len(t, langs, len(locale.All))
	for i, l := range langs {
		assert.Equal(t, locale.All[i], l.Locale)
		assert.Equal(t, "/"+string(l.Locale)+"/historia", l.URL)
		assert.Equal(t, l.Locale == locale.EN, l.Active)
	}
}
