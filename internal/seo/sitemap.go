// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"time"

	"github.com/lafusta/lafusta-go/internal/locale"
)

// Sitemap XML namespaces.
const (
	XMLNamespace   = "http://www.sitemaps.org/schemas/sitemap/0.9"
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"
)

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
)

// SitemapLink is an xhtml:link alternate inside a sitemap URL entry.
type SitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq    `xml:"changefreq,omitempty"`
	Priority   string        `xml:"priority,omitempty"`
	Links      []SitemapLink `xml:"xhtml:link"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName    xml.Name     `xml:"urlset"`
	XMLNS      string       `xml:"xmlns,attr"`
	XMLNSXHTML string       `xml:"xmlns:xhtml,attr"`
	URLs       []SitemapURL `xml:"url"`
}

// SitemapPage contains data needed to add a page to the sitemap.
type SitemapPage struct {
	Path       string // locale-relative, "" for home
	ChangeFreq ChangeFreq
	Priority   string
	UpdatedAt  time.Time
}

// SitemapBuilder builds a multilingual sitemap: every page is listed once per
// locale, each entry carrying the full alternate set.
type SitemapBuilder struct {
	siteURL  string
	resolver *locale.Resolver
	urls     []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder.
func NewSitemapBuilder(siteURL string, resolver *locale.Resolver) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL:  siteURL,
		resolver: resolver,
		urls:     make([]SitemapURL, 0),
	}
}

// AddPage adds one URL per supported locale for page.
func (b *SitemapBuilder) AddPage(page SitemapPage) {
	supported := b.resolver.Supported()

	links := make([]SitemapLink, 0, len(supported)+1)
	for _, l := range supported {
		links = append(links, SitemapLink{Rel: "alternate", Hreflang: string(l), Href: LocalizedURL(b.siteURL, l, page.Path)})
	}
	links = append(links, SitemapLink{
		Rel:      "alternate",
		Hreflang: XDefault,
		Href:     LocalizedURL(b.siteURL, b.resolver.Default(), page.Path),
	})

	for _, l := range supported {
		url := SitemapURL{
			Loc:        LocalizedURL(b.siteURL, l, page.Path),
			ChangeFreq: page.ChangeFreq,
			Priority:   page.Priority,
			Links:      append([]SitemapLink(nil), links...),
		}
		if !page.UpdatedAt.IsZero() {
			url.LastMod = page.UpdatedAt.Format(time.RFC3339)
		}
		b.urls = append(b.urls, url)
	}
}

// AddPages adds multiple pages to the sitemap.
func (b *SitemapBuilder) AddPages(pages []SitemapPage) {
	for _, p := range pages {
		b.AddPage(p)
	}
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS:      XMLNamespace,
		XMLNSXHTML: XHTMLNamespace,
		URLs:       b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}
