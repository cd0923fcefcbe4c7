// Package model defines the core value types shared across the holiday
// engine: the Holiday record, its category, and province applicability.
package model

import (
	"fmt"
	"time"
)

// Category classifies a holiday by jurisdiction.
type Category string

const (
	CategoryFederal    Category = "federal"
	CategoryProvincial Category = "provincial"
	CategoryOptional   Category = "optional"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFederal, CategoryProvincial, CategoryOptional:
		return true
	}
	return false
}

// ProvinceScope is the set of provinces a holiday applies to: either every
// province, or an explicit non-empty list of codes. The zero value is
// invalid; construct via AllProvinces() or InProvinces().
type ProvinceScope struct {
	all   bool
	codes []string
}

// AllProvinces returns a scope covering every province and territory.
func AllProvinces() ProvinceScope {
	return ProvinceScope{all: true}
}

// InProvinces returns a scope covering exactly the given codes.
func InProvinces(codes ...string) ProvinceScope {
	cp := make([]string, len(codes))
	copy(cp, codes)
	return ProvinceScope{codes: cp}
}

// IsAll reports whether the scope covers all provinces.
func (s ProvinceScope) IsAll() bool { return s.all }

// Codes returns the explicit province list. For an all-provinces scope it
// returns nil; callers scoped to one province should use Projected first.
func (s ProvinceScope) Codes() []string {
	cp := make([]string, len(s.codes))
	copy(cp, s.codes)
	return cp
}

// Contains reports whether the scope applies to the given province code.
func (s ProvinceScope) Contains(code string) bool {
	if s.all {
		return true
	}
	for _, c := range s.codes {
		if c == code {
			return true
		}
	}
	return false
}

// Projected normalizes the scope for a consumer scoped to one province: an
// all-provinces scope becomes the explicit list [code]; explicit scopes are
// returned unchanged.
func (s ProvinceScope) Projected(code string) ProvinceScope {
	if s.all {
		return ProvinceScope{codes: []string{code}}
	}
	return s
}

// Holiday is an immutable holiday record. Date and ObservedDate are calendar
// dates carried as UTC-midnight time.Time values; ObservedDate is the zero
// value when no weekend shift applies.
type Holiday struct {
	ID           string
	Name         string
	Date         time.Time
	ObservedDate time.Time
	Category     Category
	Provinces    ProvinceScope
	Description  string
	Statutory    bool
}

// Observed returns the date the holiday is actually taken off: ObservedDate
// when set, otherwise the nominal Date.
func (h Holiday) Observed() time.Time {
	if h.ObservedDate.IsZero() {
		return h.Date
	}
	return h.ObservedDate
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date into a UTC-midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a calendar date in ISO form. Zero times render as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
