// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/locale"
)

func newTestGenerator(t *testing.T, noIndex bool) *Generator {
	t.Helper()
	table, err := content.LoadEmbedded(locale.All)
	require.NoError(t, err)
	store := content.NewStore(table, locale.DefaultResolver(), "")
	return NewGenerator(store, SiteConfig{
		SiteURL:        "https://example.com/",
		SiteName:       "Restaurant La Fusta",
		DefaultOGImage: "/images/og-default.jpg",
		TwitterHandle:  "@lafusta",
		NoIndex:        noIndex,
	})
}

func TestGenerateCanonical(t *testing.T) {
	g := newTestGenerator(t, false)

	tests := []struct {
		loc  locale.Locale
		page content.Page
		path string
		want string
	}{
		{locale.ES, content.PageHome, "", "https://example.com/es"},
		{locale.EN, content.PageHome, "/", "https://example.com/en"},
		{locale.CA, content.PageCarta, "/carta", "https://example.com/ca/carta"},
		{locale.DE, content.PageContacto, "contacto/", "https://example.com/de/contacto"},
		{locale.Locale("fr"), content.PageHistoria, "/historia", "https://example.com/es/historia"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			meta := g.Generate(tt.loc, tt.page, tt.path)
			if meta.CanonicalURL != tt.want {
				t.Errorf("CanonicalURL = %q, want %q", meta.CanonicalURL, tt.want)
			}
			if meta.OpenGraph.URL != tt.want {
				t.Errorf("OpenGraph.URL = %q, want %q", meta.OpenGraph.URL, tt.want)
			}
		})
	}
}

func TestGenerateAlternateLinks(t *testing.T) {
	g := newTestGenerator(t, false)

	for _, page := range content.Pages {
		for _, loc := range locale.All {
			meta := g.Generate(loc, page, page.Path())
			links := meta.AlternateLinks

			if len(links) != len(locale.All)+1 {
				t.Fatalf("%s/%s: len(AlternateLinks) = %d, want %d", loc, page, len(links), len(locale.All)+1)
			}
			for i, l := range locale.All {
				if links[i].Hreflang != string(l) {
					t.Errorf("%s/%s: links[%d].Hreflang = %q, want %q", loc, page, i, links[i].Hreflang, l)
				}
				want := "https://example.com/" + string(l) + page.Path()
				if links[i].URL != want {
					t.Errorf("%s/%s: links[%d].URL = %q, want %q", loc, page, i, links[i].URL, want)
				}
				// URLs differ from the canonical only in the locale segment
				swapped := strings.Replace(meta.CanonicalURL, "/"+string(loc), "/"+string(l), 1)
				if swapped != links[i].URL {
					t.Errorf("%s/%s: alternate %q is not the canonical with locale %s", loc, page, links[i].URL, l)
				}
			}
			last := links[len(links)-1]
			if last.Hreflang != XDefault {
				t.Errorf("last Hreflang = %q, want x-default", last.Hreflang)
			}
			if last.URL != "https://example.com/es"+page.Path() {
				t.Errorf("x-default URL = %q", last.URL)
			}
		}
	}
}

func TestGenerateTextFields(t *testing.T) {
	g := newTestGenerator(t, false)
	meta := g.Generate(locale.EN, content.PageCarta, "/carta")

	assert.Equal(t, locale.EN, meta.Locale)
	assert.NotEmpty(t, meta.Title)
	assert.NotEmpty(t, meta.Description)
	assert.NotEmpty(t, meta.Keywords)
	for _, k := range meta.Keywords {
		assert.Equal(t, strings.TrimSpace(k), k)
		assert.NotEmpty(t, k)
	}
	assert.Equal(t, strings.Join(meta.Keywords, ", "), meta.KeywordsString())

	assert.Equal(t, meta.Title, meta.OpenGraph.Title)
	assert.Equal(t, "en_US", meta.OpenGraph.Locale)
	assert.Equal(t, []string{"es_ES", "ca_ES", "de_DE", "nl_NL"}, meta.OpenGraph.AlternateLocales)
	assert.Equal(t, "website", meta.OpenGraph.Type)
	assert.Equal(t, "https://example.com/images/og-default.jpg", meta.OpenGraph.Image)
	assert.Equal(t, "summary_large_image", meta.Twitter.Card)
	assert.Equal(t, "@lafusta", meta.Twitter.Site)
	assert.Equal(t, "index,follow", meta.Robots)
}

func TestGenerateNoIndex(t *testing.T) {
	g := newTestGenerator(t, true)
	if got := g.Generate(locale.ES, content.PageHome, "").Robots; got != "noindex,nofollow" {
		t.Errorf("Robots = %q, want noindex,nofollow", got)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := newTestGenerator(t, false)
	for _, page := range content.Pages {
		assert.Equal(t, g.Generate(locale.NL, page, page.Path()), g.Generate(locale.NL, page, page.Path()))
	}
}

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"/":          "",
		"carta":      "/carta",
		"/carta/":    "/carta",
		" /a/b/ ":    "/a/b",
		"//double//": "/double",
	}
	for in, want := range tests {
		if got := NormalizePath(in); got != want {
			t.Errorf("NormalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeAbsoluteURL(t *testing.T) {
	tests := []struct {
		url, site, want string
	}{
		{"", "https://example.com", ""},
		{"/img.jpg", "https://example.com/", "https://example.com/img.jpg"},
		{"img.jpg", "https://example.com", "https://example.com/img.jpg"},
		{"https://cdn.example.com/a.jpg", "https://example.com", "https://cdn.example.com/a.jpg"},
	}
	for _, tt := range tests {
		if got := makeAbsoluteURL(tt.url, tt.site); got != tt.want {
			t.Errorf("makeAbsoluteURL(%q, %q) = %q, want %q", tt.url, tt.site, got, tt.want)
		}
	}
}

func TestSitemapBuild(t *testing.T) {
	b := NewSitemapBuilder("https://example.com", locale.DefaultResolver())
	b.AddPages([]SitemapPage{
		{Path: "", ChangeFreq: ChangeFreqWeekly, Priority: "1.0"},
		{Path: "/carta", ChangeFreq: ChangeFreqWeekly, Priority: "0.9", UpdatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)},
	})

	data, err := b.Build()
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, out, `xmlns:xhtml="http://www.w3.org/1999/xhtml"`)
	assert.Contains(t, out, "<loc>https://example.com/es</loc>")
	assert.Contains(t, out, "<loc>https://example.com/nl/carta</loc>")
	assert.Contains(t, out, `<xhtml:link rel="alternate" hreflang="x-default" href="https://example.com/es/carta"></xhtml:link>`)
	assert.Contains(t, out, "<lastmod>2025-01-15T10:00:00Z</lastmod>")

	assert.Equal(t, 2*len(locale.All), strings.Count(out, "<url>"))
	assert.Equal(t, 2*len(locale.All)*(len(locale.All)+1), strings.Count(out, "<xhtml:link "))
}

func TestSitemapEmpty(t *testing.T) {
	data, err := NewSitemapBuilder("https://example.com", locale.DefaultResolver()).Build()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<url>")
}

func TestRobotsBuild(t *testing.T) {
	tests := []struct {
		name       string
		config     RobotsConfig
		contains   []string
		notContain []string
	}{
		{
			name:     "default",
			config:   RobotsConfig{SiteURL: "https://example.com/"},
			contains: []string{"User-agent: *\n", "Disallow: /api/\n", "Allow: /\n", "Sitemap: https://example.com/sitemap.xml\n"},
		},
		{
			name:       "disallow all",
			config:     RobotsConfig{SiteURL: "https://example.com", DisallowAll: true},
			contains:   []string{"Disallow: /\n"},
			notContain: []string{"Sitemap:", "Allow: /"},
		},
		{
			name:     "extra paths",
			config:   RobotsConfig{DisallowPaths: []string{"/private"}},
			contains: []string{"Disallow: /private\n"},
			notContain: []string{"Sitemap:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRobotsBuilder(tt.config).Build()
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Build() missing %q in:\n%s", s, got)
				}
			}
			for _, s := range tt.notContain {
				if strings.Contains(got, s) {
					t.Errorf("Build() should not contain %q in:\n%s", s, got)
				}
			}
		})
	}
}
