// Package export renders a resolved holiday list into its two interchange
// formats: a tabular CSV and an iCalendar feed. Both are plain formatters
// over the engine's output; they never re-resolve.
package export

import (
	"github.com/gocarina/gocsv"

	"github.com/yzho285/public-holidays-display/internal/model"
)

type csvRow struct {
	Name        string `csv:"Holiday Name"`
	Date        string `csv:"Date"`
	Observed    string `csv:"Observed Date"`
	Type        string `csv:"Type"`
	Statutory   string `csv:"Statutory"`
	Description string `csv:"Description"`
}

// CSV renders the holidays as a CSV document with a header row. The observed
// date column is empty when no weekend shift applies.
func CSV(holidays []model.Holiday) (string, error) {
	rows := make([]csvRow, len(holidays))
	for i, h := range holidays {
		statutory := "No"
		if h.Statutory {
			statutory = "Yes"
		}
		rows[i] = csvRow{
			Name:        h.Name,
			Date:        model.FormatDate(h.Date),
			Observed:    model.FormatDate(h.ObservedDate),
			Type:        string(h.Category),
			Statutory:   statutory,
			Description: h.Description,
		}
	}
	return gocsv.MarshalString(&rows)
}
