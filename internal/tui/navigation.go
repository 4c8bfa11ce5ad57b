package tui

import "github.com/mmcdole/shelf/internal/i18n"

// Page is one of the three mutually exclusive views
type Page int

const (
	PageRegistration Page = iota
	PageLogin
	PageCatalog
)

// Pages lists all pages in navigation bar order
var Pages = []Page{PageRegistration, PageLogin, PageCatalog}

// Valid reports whether p names a page
func (p Page) Valid() bool {
	return p >= PageRegistration && p <= PageCatalog
}

// Title returns the localized navigation bar label
func (p Page) Title() string {
	switch p {
	case PageRegistration:
		return i18n.T("nav.registration")
	case PageLogin:
		return i18n.T("nav.login")
	case PageCatalog:
		return i18n.T("nav.catalog")
	}
	return ""
}

// Next returns the page after p, wrapping around
func (p Page) Next() Page {
	return (p + 1) % Page(len(Pages))
}

// Prev returns the page before p, wrapping around
func (p Page) Prev() Page {
	return (p + Page(len(Pages)) - 1) % Page(len(Pages))
}

func (p Page) String() string {
	switch p {
	case PageRegistration:
		return "registration"
	case PageLogin:
		return "login"
	case PageCatalog:
		return "catalog"
	}
	return "unknown"
}

// Navigator tracks the active page. The zero value starts on
// PageRegistration and exactly one page is active at any time.
type Navigator struct {
	current Page
}

// Current returns the active page
func (n *Navigator) Current() Page {
	return n.current
}

// Go activates p unconditionally. It reports whether the page changed;
// invalid pages are ignored.
func (n *Navigator) Go(p Page) bool {
	if !p.Valid() || p == n.current {
		return false
	}
	n.current = p
	return true
}
