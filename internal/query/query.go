// Package query filters a resolved holiday list by search term and category
// predicate. Pure and synchronous; input order is preserved.
package query

import (
	"strings"

	"github.com/yzho285/public-holidays-display/internal/model"
)

// Filter selects the subset of holidays to serve.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterFederal    Filter = "federal"
	FilterProvincial Filter = "provincial"
	FilterStatutory  Filter = "statutory"
)

// Valid reports whether f is a known filter. The empty string counts as
// FilterAll.
func (f Filter) Valid() bool {
	switch f {
	case "", FilterAll, FilterFederal, FilterProvincial, FilterStatutory:
		return true
	}
	return false
}

func (f Filter) matches(h model.Holiday) bool {
	switch f {
	case FilterFederal:
		return h.Category == model.CategoryFederal
	case FilterProvincial:
		return h.Category == model.CategoryProvincial
	case FilterStatutory:
		return h.Statutory
	default:
		return true
	}
}

// Apply returns the holidays matching both the case-insensitive substring
// term (against name or description) and the category filter. An empty term
// matches everything.
func Apply(holidays []model.Holiday, term string, filter Filter) []model.Holiday {
	term = strings.ToLower(term)

	out := make([]model.Holiday, 0, len(holidays))
	for _, h := range holidays {
		if term != "" &&
			!strings.Contains(strings.ToLower(h.Name), term) &&
			!strings.Contains(strings.ToLower(h.Description), term) {
			continue
		}
		if !filter.matches(h) {
			continue
		}
		out = append(out, h)
	}
	return out
}
