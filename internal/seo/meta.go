// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds page head metadata, sitemaps and robots.txt for the
// localized site.
package seo

import (
	"strings"

	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/locale"
)

// XDefault is the hreflang value of the language-neutral alternate link.
const XDefault = "x-default"

// AlternateLink points at the same page in another locale.
type AlternateLink struct {
	Hreflang string `json:"hreflang"`
	URL      string `json:"url"`
}

// OpenGraph holds Open Graph meta tag data.
type OpenGraph struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	URL              string   `json:"url"`
	SiteName         string   `json:"site_name"`
	Locale           string   `json:"locale"`
	AlternateLocales []string `json:"alternate_locales"`
	Type             string   `json:"type"`
	Image            string   `json:"image,omitempty"`
}

// Twitter holds Twitter card meta tag data.
type Twitter struct {
	Card        string `json:"card"`
	Site        string `json:"site,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// Metadata holds all SEO meta tag data for a localized page.
type Metadata struct {
	Locale         locale.Locale   `json:"locale"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Keywords       []string        `json:"keywords"`
	CanonicalURL   string          `json:"canonical_url"`
	AlternateLinks []AlternateLink `json:"alternate_links"`
	OpenGraph      OpenGraph       `json:"open_graph"`
	Twitter        Twitter         `json:"twitter"`
	Robots         string          `json:"robots"`
}

// KeywordsString joins keywords for the <meta name="keywords"> tag.
func (m Metadata) KeywordsString() string {
	return strings.Join(m.Keywords, ", ")
}

// SiteConfig contains site-wide settings for SEO.
type SiteConfig struct {
	SiteURL        string
	SiteName       string
	DefaultOGImage string
	TwitterHandle  string
	NoIndex        bool // staging sites
}

// Generator produces page metadata from the content store. It holds no
// mutable state and is safe for concurrent use.
type Generator struct {
	store    *content.Store
	resolver *locale.Resolver
	site     SiteConfig
}

// NewGenerator creates a metadata generator over store.
func NewGenerator(store *content.Store, site SiteConfig) *Generator {
	site.SiteURL = strings.TrimSuffix(site.SiteURL, "/")
	return &Generator{
		store:    store,
		resolver: store.Resolver(),
		site:     site,
	}
}

// Generate builds the metadata of page at path for loc. An unsupported loc
// is resolved to the default locale first.
func (g *Generator) Generate(loc locale.Locale, page content.Page, path string) Metadata {
	loc = g.resolver.Resolve(string(loc))
	path = NormalizePath(path)

	title := g.store.Get(loc, page, "title")
	description := g.store.Get(loc, page, "description")
	canonical := LocalizedURL(g.site.SiteURL, loc, path)
	image := makeAbsoluteURL(g.site.DefaultOGImage, g.site.SiteURL)

	meta := Metadata{
		Locale:         loc,
		Title:          title,
		Description:    description,
		Keywords:       g.store.Keywords(loc, page),
		CanonicalURL:   canonical,
		AlternateLinks: g.Alternates(path),
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			SiteName:    g.site.SiteName,
			Locale:      loc.OGLocale(),
			Type:        "website",
			Image:       image,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Site:        g.site.TwitterHandle,
			Title:       title,
			Description: description,
			Image:       image,
		},
		Robots: buildRobotsDirective(g.site.NoIndex, g.site.NoIndex),
	}

	for _, other := range g.resolver.Supported() {
		if other != loc {
			meta.OpenGraph.AlternateLocales = append(meta.OpenGraph.AlternateLocales, other.OGLocale())
		}
	}

	return meta
}

// Alternates returns one link per supported locale in enumeration order,
// followed by the x-default link to the default locale.
func (g *Generator) Alternates(path string) []AlternateLink {
	path = NormalizePath(path)
	supported := g.resolver.Supported()

	links := make([]AlternateLink, 0, len(supported)+1)
	for _, l := range supported {
		links = append(links, AlternateLink{
			Hreflang: string(l),
			URL:      LocalizedURL(g.site.SiteURL, l, path),
		})
	}
	links = append(links, AlternateLink{
		Hreflang: XDefault,
		URL:      LocalizedURL(g.site.SiteURL, g.resolver.Default(), path),
	})
	return links
}

// LocalizedURL joins the site URL, the locale prefix and a page path.
func LocalizedURL(siteURL string, loc locale.Locale, path string) string {
	return strings.TrimSuffix(siteURL, "/") + "/" + string(loc) + NormalizePath(path)
}

// NormalizePath returns path with a single leading slash and no trailing
// slash. The root path ("" or "/") becomes "".
func NormalizePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return ""
	}
	return "/" + path
}

// buildRobotsDirective creates the robots meta content from noindex/nofollow flags.
func buildRobotsDirective(noIndex, noFollow bool) string {
	var parts []string

	if noIndex {
		parts = append(parts, "noindex")
	} else {
		parts = append(parts, "index")
	}

	if noFollow {
		parts = append(parts, "nofollow")
	} else {
		parts = append(parts, "follow")
	}

	return strings.Join(parts, ",")
}

// makeAbsoluteURL ensures a URL is absolute by prepending site URL if needed.
func makeAbsoluteURL(url, siteURL string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	siteURL = strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return siteURL + url
}
