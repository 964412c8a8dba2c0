// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render turns a composed page into HTML using the embedded
// templates.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"regexp"
	"strings"

	"github.com/lafusta/lafusta-go/internal/business"
	"github.com/lafusta/lafusta-go/internal/content"
	"github.com/lafusta/lafusta-go/internal/locale"
	"github.com/lafusta/lafusta-go/internal/menu"
	"github.com/lafusta/lafusta-go/internal/schema"
	"github.com/lafusta/lafusta-go/internal/seo"
	"github.com/lafusta/lafusta-go/internal/site"
)

const (
	baseLayout  = "layouts/base.html"
	partialsDir = "partials"
	pagesDir    = "pages"
)

// blankLinesRegex matches runs of blank lines left behind by template actions.
var blankLinesRegex = regexp.MustCompile(`\r?\n(?:[ \t]*\r?\n)+`)

// Renderer executes one parsed template set per page. It is immutable
// after New and safe for concurrent use.
type Renderer struct {
	templates map[content.Page]*template.Template
	store     *content.Store
}

// Config holds renderer configuration.
type Config struct {
	TemplatesFS fs.FS
	Store       *content.Store
}

// NavLink is one entry of the main navigation.
type NavLink struct {
	Page   content.Page
	Label  string
	URL    string
	Active bool
}

// LanguageLink points at the current page in another locale.
type LanguageLink struct {
	Locale locale.Locale
	Name   string
	URL    string
	Active bool
}

// PageData holds data passed to templates.
type PageData struct {
	Head        site.PageHead
	Locale      locale.Locale
	Page        content.Page
	Nav         []NavLink
	Languages   []LanguageLink
	Business    business.Config
	Categories  []menu.LocalizedCategory
	Allergens   []menu.LocalizedAllergen
	Reviews     []schema.Review
	FAQs        []schema.FAQ
	CurrentYear int
}

// New parses the base layout, the partials and every page template.
// A page of the closed set without a template is an error.
func New(cfg Config) (*Renderer, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("render: content store is required")
	}
	r := &Renderer{
		templates: make(map[content.Page]*template.Template, len(content.Pages)),
		store:     cfg.Store,
	}

	partials, err := templateFiles(cfg.TemplatesFS, partialsDir)
	if err != nil {
		return nil, fmt.Errorf("getting partials: %w", err)
	}

	for _, page := range content.Pages {
		files := []string{baseLayout}
		files = append(files, partials...)
		files = append(files, pagesDir+"/"+string(page)+".html")

		tmpl, err := template.New("").Funcs(r.TemplateFuncs()).ParseFS(cfg.TemplatesFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}

	return r, nil
}

// templateFiles returns all .html files in a directory.
func templateFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			files = append(files, dir+"/"+entry.Name())
		}
	}
	return files, nil
}

// TemplateFuncs returns the functions available to templates.
func (r *Renderer) TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"t": func(loc locale.Locale, page content.Page, field string) string {
			return r.store.Get(loc, page, field)
		},
		"shared": func(loc locale.Locale, key string) string {
			return r.store.Shared(loc, key)
		},
		"md": func(loc locale.Locale, page content.Page, field string) template.HTML {
			return r.store.HTML(loc, page, field)
		},
		"stars": stars,
	}
}

// stars renders a 1-5 rating as filled and empty stars.
func stars(rating float64) string {
	n := max(business.WorstRating, min(int(rating+0.5), business.BestRating))
	return strings.Repeat("★", n) + strings.Repeat("☆", business.BestRating-n)
}

// RenderBytes executes the page template into a byte slice with blank
// lines collapsed.
func (r *Renderer) RenderBytes(data PageData) ([]byte, error) {
	tmpl, ok := r.templates[data.Page]
	if !ok {
		return nil, fmt.Errorf("template %s not found", data.Page)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", data.Page, err)
	}
	return blankLinesRegex.ReplaceAll(buf.Bytes(), []byte("\n")), nil
}

// Render writes the page as an HTML response. Nothing is written on error.
func (r *Renderer) Render(w http.ResponseWriter, data PageData) error {
	body, err := r.RenderBytes(data)
	if err != nil {
		return err
	}
	WriteHTML(w, http.StatusOK, body)
	return nil
}

// WriteHTML writes an already rendered HTML body.
func WriteHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Navigation builds the main menu for loc with page marked active.
// Links are site-relative.
func Navigation(store *content.Store, loc locale.Locale, page content.Page) []NavLink {
	links := make([]NavLink, 0, len(content.Pages))
	for _, p := range content.Pages {
		links = append(links, NavLink{
			Page:   p,
			Label:  store.Shared(loc, "nav."+string(p)),
			URL:    seo.LocalizedURL("", loc, p.Path()),
			Active: p == page,
		})
	}
	return links
}

// Languages builds the language switcher for page, one link per supported
// locale in enumeration order.
func Languages(resolver *locale.Resolver, loc locale.Locale, page content.Page) []LanguageLink {
	supported := resolver.Supported()
	links := make([]LanguageLink, 0, len(supported))
	for _, l := range supported {
		links = append(links, LanguageLink{
			Locale: l,
			Name:   l.NativeName(),
			URL:    seo.LocalizedURL("", l, page.Path()),
			Active: l == loc,
		})
	}
	return links
}
