// Package catalog produces the built-in per-year definitions of Canadian
// statutory and provincial holidays. It is the ground truth whenever the
// remote source is unavailable.
package catalog

import (
	"fmt"
	"time"

	"github.com/yzho285/public-holidays-display/internal/caldate"
	"github.com/yzho285/public-holidays-display/internal/model"
)

// Holidays returns the full fixed set of named holidays for the given year,
// with observed dates already computed. Pure: two calls for the same year
// yield structurally identical results.
func Holidays(year int) []model.Holiday {
	newYear := caldate.Date(year, time.January, 1)
	canadaDay := caldate.Date(year, time.July, 1)
	christmas := caldate.Date(year, time.December, 25)
	boxing := caldate.Date(year, time.December, 26)
	christmasObs, boxingObs := caldate.ObservedPair(christmas, boxing)

	return []model.Holiday{
		{
			ID:           fmt.Sprintf("%d-01-01-new-year", year),
			Name:         "New Year's Day",
			Date:         newYear,
			ObservedDate: caldate.Observed(newYear),
			Category:     model.CategoryFederal,
			Provinces:    model.AllProvinces(),
			Description:  "Celebrates the beginning of the new year",
			Statutory:    true,
		},
		{
			ID:          fmt.Sprintf("%d-good-friday", year),
			Name:        "Good Friday",
			Date:        caldate.GoodFriday(year),
			Category:    model.CategoryFederal,
			Provinces:   model.AllProvinces(),
			Description: "Christian holiday commemorating the crucifixion of Jesus",
			Statutory:   true,
		},
		{
			ID:          fmt.Sprintf("%d-victoria-day", year),
			Name:        "Victoria Day",
			Date:        caldate.VictoriaDay(year),
			Category:    model.CategoryFederal,
			Provinces:   model.AllProvinces(),
			Description: "Celebrates Queen Victoria's birthday",
			Statutory:   true,
		},
		{
			ID:           fmt.Sprintf("%d-07-01-canada-day", year),
			Name:         "Canada Day",
			Date:         canadaDay,
			ObservedDate: caldate.Observed(canadaDay),
			Category:     model.CategoryFederal,
			Provinces:    model.AllProvinces(),
			Description:  "Celebrates the anniversary of Canadian confederation",
			Statutory:    true,
		},
		{
			ID:          fmt.Sprintf("%d-labour-day", year),
			Name:        "Labour Day",
			Date:        caldate.NthWeekday(year, time.September, time.Monday, 1),
			Category:    model.CategoryFederal,
			Provinces:   model.AllProvinces(),
			Description: "Celebrates the achievements of workers",
			Statutory:   true,
		},
		{
			ID:          fmt.Sprintf("%d-thanksgiving", year),
			Name:        "Thanksgiving Day",
			Date:        caldate.NthWeekday(year, time.October, time.Monday, 2),
			Category:    model.CategoryFederal,
			Provinces:   model.AllProvinces(),
			Description: "Day of giving thanks for the harvest",
			Statutory:   true,
		},
		{
			ID:          fmt.Sprintf("%d-11-11-remembrance", year),
			Name:        "Remembrance Day",
			Date:        caldate.Date(year, time.November, 11),
			Category:    model.CategoryFederal,
			Provinces:   model.InProvinces("AB", "BC", "NB", "NL", "NT", "NU", "PE", "SK", "YT"),
			Description: "Honours armed forces members who died in the line of duty",
			Statutory:   true,
		},
		{
			ID:           fmt.Sprintf("%d-12-25-christmas", year),
			Name:         "Christmas Day",
			Date:         christmas,
			ObservedDate: christmasObs,
			Category:     model.CategoryFederal,
			Provinces:    model.AllProvinces(),
			Description:  "Christian celebration of the birth of Jesus Christ",
			Statutory:    true,
		},
		{
			ID:           fmt.Sprintf("%d-12-26-boxing", year),
			Name:         "Boxing Day",
			Date:         boxing,
			ObservedDate: boxingObs,
			Category:     model.CategoryFederal,
			Provinces:    model.AllProvinces(),
			Description:  "Day after Christmas traditionally for giving gifts to the poor",
			Statutory:    true,
		},
		{
			ID:          fmt.Sprintf("%d-family-day", year),
			Name:        "Family Day",
			Date:        caldate.NthWeekday(year, time.February, time.Monday, 3),
			Category:    model.CategoryProvincial,
			Provinces:   model.InProvinces("ON", "AB", "BC", "NB", "SK"),
			Description: "Provincial holiday for spending time with family",
			Statutory:   true,
		},
		{
			ID:          fmt.Sprintf("%d-civic-holiday", year),
			Name:        "Civic Holiday",
			Date:        caldate.NthWeekday(year, time.August, time.Monday, 1),
			Category:    model.CategoryProvincial,
			Provinces:   model.InProvinces("ON", "AB", "BC", "MB", "NB", "NT", "NU", "SK"),
			Description: "Provincial summer holiday",
			Statutory:   false,
		},
		{
			ID:          fmt.Sprintf("%d-st-jean-baptiste", year),
			Name:        "Saint-Jean-Baptiste Day",
			Date:        caldate.Date(year, time.June, 24),
			Category:    model.CategoryProvincial,
			Provinces:   model.InProvinces("QC"),
			Description: "Quebec's National Holiday",
			Statutory:   true,
		},
	}
}
