package export

import (
	"fmt"
	"strings"

	"github.com/yzho285/public-holidays-display/internal/model"
)

const icsDateLayout = "20060102"

// ICS renders the holidays as an iCalendar document: one all-day event per
// holiday on its nominal date, with a statutory suffix in the description
// when applicable.
func ICS(holidays []model.Holiday, provinceCode string) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//Canadian Holidays//EN\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")
	fmt.Fprintf(&b, "X-WR-CALNAME:Canadian Holidays - %s\r\n", provinceCode)
	b.WriteString("X-WR-TIMEZONE:America/Toronto\r\n")

	for _, h := range holidays {
		desc := h.Description
		if desc == "" {
			desc = h.Name
		}
		if h.Statutory {
			desc += " (Statutory Holiday)"
		}

		date := h.Date.Format(icsDateLayout)
		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "DTSTART;VALUE=DATE:%s\r\n", date)
		fmt.Fprintf(&b, "DTEND;VALUE=DATE:%s\r\n", date)
		fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeICS(h.Name))
		fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escapeICS(desc))
		b.WriteString("STATUS:CONFIRMED\r\n")
		b.WriteString("TRANSP:TRANSPARENT\r\n")
		b.WriteString("END:VEVENT\r\n")
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

// escapeICS escapes the characters RFC 5545 reserves in text values.
func escapeICS(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
