// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

// Page identifies one logical page of the site.
type Page string

// Site pages, listed in enumeration order.
const (
	PageHome     Page = "home"
	PageCarta    Page = "carta"
	PageContacto Page = "contacto"
	PageHistoria Page = "historia"
)

// Pages is the closed page set in its fixed enumeration order.
var Pages = []Page{PageHome, PageCarta, PageContacto, PageHistoria}

var pagePaths = map[Page]string{
	PageHome:     "",
	PageCarta:    "/carta",
	PageContacto: "/contacto",
	PageHistoria: "/historia",
}

// String implements fmt.Stringer.
func (p Page) String() string {
	return string(p)
}

// Known reports whether p belongs to the closed page set.
func (p Page) Known() bool {
	_, ok := pagePaths[p]
	return ok
}

// Path returns the locale-relative URL path of the page ("" for home).
func (p Page) Path() string {
	return pagePaths[p]
}

// ParsePage returns the page named s, if any.
func ParsePage(s string) (Page, bool) {
	p := Page(s)
	return p, p.Known()
}
