// Package caldate computes Canadian holiday dates: fixed dates, floating
// nth-weekday rules, the Easter cycle, and weekend-observance shifting.
// All functions are pure and operate on calendar dates (UTC midnight).
package caldate

import "time"

// Date builds a UTC-midnight calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Easter returns Easter Sunday for the given year using the anonymous
// Gregorian (Meeus/Jones/Butcher) algorithm. Valid for all Gregorian years.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return Date(year, time.Month(month), day)
}

// GoodFriday returns the Friday before Easter Sunday.
func GoodFriday(year int) time.Time {
	return Easter(year).AddDate(0, 0, -2)
}

// NthWeekday returns the nth occurrence (1-based) of the given weekday in the
// month. When the month starts on the target weekday, n=1 is day 1.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := Date(year, month, 1)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

// WeekdayOnOrAfter returns the closest given weekday on or after the date.
func WeekdayOnOrAfter(d time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// WeekdayOnOrBefore returns the closest given weekday on or before the date.
func WeekdayOnOrBefore(d time.Time, weekday time.Weekday) time.Time {
	offset := (int(d.Weekday()) - int(weekday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// VictoriaDay returns the Monday on or before May 24.
func VictoriaDay(year int) time.Time {
	return WeekdayOnOrBefore(Date(year, time.May, 24), time.Monday)
}

// Observed applies the general weekend-observance rule: Sunday nominal moves
// to the next Monday, Saturday nominal to the following Monday, weekdays are
// unchanged.
func Observed(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	default:
		return d
	}
}

// ObservedPair resolves the observed dates for two holidays on consecutive
// calendar days (Christmas and Boxing Day) so that neither observed date
// collides with the other and both land on weekdays. The first of the pair
// takes the general rule; the second shifts +2 when its nominal date is a
// Saturday or Sunday and +1 when it is a Monday (the first's nominal Sunday
// would otherwise co-shift onto the same observed day).
func ObservedPair(first, second time.Time) (time.Time, time.Time) {
	obsFirst := Observed(first)

	var obsSecond time.Time
	switch second.Weekday() {
	case time.Saturday, time.Sunday:
		obsSecond = second.AddDate(0, 0, 2)
	case time.Monday:
		obsSecond = second.AddDate(0, 0, 1)
	default:
		obsSecond = second
	}
	return obsFirst, obsSecond
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
