package catalog

import (
	"reflect"
	"testing"
	"time"

	"github.com/yzho285/public-holidays-display/internal/caldate"
	"github.com/yzho285/public-holidays-display/internal/model"
)

func findByName(hs []model.Holiday, name string) (model.Holiday, bool) {
	for _, h := range hs {
		if h.Name == name {
			return h, true
		}
	}
	return model.Holiday{}, false
}

func TestHolidays_2024KnownDates(t *testing.T) {
	hs := Holidays(2024)

	cases := []struct {
		name string
		date string
	}{
		{"New Year's Day", "2024-01-01"},
		{"Good Friday", "2024-03-29"},
		{"Victoria Day", "2024-05-20"},
		{"Canada Day", "2024-07-01"},
		{"Labour Day", "2024-09-02"},
		{"Thanksgiving Day", "2024-10-14"},
		{"Remembrance Day", "2024-11-11"},
		{"Christmas Day", "2024-12-25"},
		{"Boxing Day", "2024-12-26"},
		{"Family Day", "2024-02-19"},
		{"Civic Holiday", "2024-08-05"},
		{"Saint-Jean-Baptiste Day", "2024-06-24"},
	}
	for _, c := range cases {
		h, ok := findByName(hs, c.name)
		if !ok {
			t.Errorf("missing holiday %q", c.name)
			continue
		}
		if got := model.FormatDate(h.Date); got != c.date {
			t.Errorf("%s: date %s, want %s", c.name, got, c.date)
		}
	}

	// Christmas 2024 is a Wednesday: observed date unchanged.
	xmas, _ := findByName(hs, "Christmas Day")
	if got := model.FormatDate(xmas.Observed()); got != "2024-12-25" {
		t.Errorf("Christmas 2024 observed = %s, want 2024-12-25", got)
	}
}

func TestHolidays_2021EndOfYearPair(t *testing.T) {
	hs := Holidays(2021)
	xmas, _ := findByName(hs, "Christmas Day")
	boxing, _ := findByName(hs, "Boxing Day")

	if got := model.FormatDate(xmas.ObservedDate); got != "2021-12-27" {
		t.Errorf("Christmas 2021 observed = %s, want 2021-12-27", got)
	}
	if got := model.FormatDate(boxing.ObservedDate); got != "2021-12-28" {
		t.Errorf("Boxing Day 2021 observed = %s, want 2021-12-28", got)
	}
}

func TestHolidays_Idempotent(t *testing.T) {
	a := Holidays(2023)
	b := Holidays(2023)
	if !reflect.DeepEqual(a, b) {
		t.Error("two invocations for the same year differ")
	}
}

func TestHolidays_Invariants(t *testing.T) {
	for _, year := range []int{1900, 1999, 2021, 2024, 2025, 2100} {
		for _, h := range Holidays(year) {
			if h.ID == "" || h.Name == "" {
				t.Fatalf("%d: holiday with empty id or name: %+v", year, h)
			}
			if h.Date.Year() != year {
				t.Errorf("%d: %s dated %s outside its year", year, h.Name, model.FormatDate(h.Date))
			}
			if !h.Category.Valid() {
				t.Errorf("%d: %s has category %q", year, h.Name, h.Category)
			}
			if !h.Provinces.IsAll() && len(h.Provinces.Codes()) == 0 {
				t.Errorf("%d: %s has empty province scope", year, h.Name)
			}
			if !h.ObservedDate.IsZero() {
				shift := int(h.ObservedDate.Sub(h.Date) / (24 * time.Hour))
				if shift < 0 || shift > 2 {
					t.Errorf("%d: %s observed shifted %d days", year, h.Name, shift)
				}
				if caldate.IsWeekend(h.ObservedDate) {
					t.Errorf("%d: %s observed on a weekend", year, h.Name)
				}
			}
		}
	}
}

func TestHolidays_UniqueIDsPerYear(t *testing.T) {
	seen := map[string]bool{}
	for _, h := range Holidays(2024) {
		if seen[h.ID] {
			t.Errorf("duplicate id %s", h.ID)
		}
		seen[h.ID] = true
	}
}
