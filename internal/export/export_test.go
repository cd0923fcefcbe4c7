package export

import (
	"strings"
	"testing"
	"time"

	"github.com/yzho285/public-holidays-display/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var holidays = []model.Holiday{
	{
		ID:           "2021-12-25-christmas",
		Name:         "Christmas Day",
		Date:         date(2021, time.December, 25),
		ObservedDate: date(2021, time.December, 27),
		Category:     model.CategoryFederal,
		Provinces:    model.AllProvinces(),
		Description:  "Christian celebration of the birth of Jesus Christ",
		Statutory:    true,
	},
	{
		ID:        "2021-civic-holiday",
		Name:      "Civic Holiday",
		Date:      date(2021, time.August, 2),
		Category:  model.CategoryProvincial,
		Provinces: model.InProvinces("ON", "AB"),
		Statutory: false,
	},
}

func TestCSV(t *testing.T) {
	out, err := CSV(holidays)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), out)
	}
	if got := strings.TrimSpace(lines[0]); got != "Holiday Name,Date,Observed Date,Type,Statutory,Description" {
		t.Errorf("header = %q", got)
	}
	if !strings.Contains(lines[1], "Christmas Day") ||
		!strings.Contains(lines[1], "2021-12-25") ||
		!strings.Contains(lines[1], "2021-12-27") ||
		!strings.Contains(lines[1], "Yes") {
		t.Errorf("christmas row = %q", lines[1])
	}
	// No observed shift: empty observed column, statutory No.
	if !strings.Contains(lines[2], "Civic Holiday") || !strings.Contains(lines[2], "No") {
		t.Errorf("civic row = %q", lines[2])
	}
}

func TestICS(t *testing.T) {
	out := ICS(holidays, "ON")

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"X-WR-CALNAME:Canadian Holidays - ON",
		"BEGIN:VEVENT",
		"DTSTART;VALUE=DATE:20211225",
		"SUMMARY:Christmas Day",
		"DESCRIPTION:Christian celebration of the birth of Jesus Christ (Statutory Holiday)",
		"STATUS:CONFIRMED",
		"TRANSP:TRANSPARENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	// Empty description falls back to the name, without statutory suffix.
	if !strings.Contains(out, "DESCRIPTION:Civic Holiday\r\n") {
		t.Error("civic holiday description should fall back to its name")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("got %d events, want 2", got)
	}
}

func TestICS_EscapesReservedCharacters(t *testing.T) {
	out := ICS([]model.Holiday{{
		Name: "A; B, C",
		Date: date(2024, time.January, 1),
	}}, "QC")
	if !strings.Contains(out, `SUMMARY:A\; B\, C`) {
		t.Errorf("unescaped summary in:\n%s", out)
	}
}
