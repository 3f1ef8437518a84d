// Package calendar holds the date-grid math and the event/day matching
// rules shared by every calendar rendering in the app.
package calendar

import "time"

// Day is one calendar cell. OutsideMonth marks leading/trailing days in
// a month grid so they can render dimmed.
type Day struct {
	Date         time.Time
	OutsideMonth bool
}

// DateKey formats a date as the zero-padded YYYY-MM-DD key every record
// in the store uses. Day/event matching is exact string equality on this
// key, never calendar-aware comparison.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Key returns the day's DateKey.
func (d Day) Key() string {
	return DateKey(d.Date)
}

// IsToday reports whether the cell is today's date.
func (d Day) IsToday() bool {
	return DateKey(d.Date) == DateKey(time.Now())
}

// IsWeekend reports whether the cell falls on Saturday or Sunday.
func (d Day) IsWeekend() bool {
	wd := d.Date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthGrid returns the 42 cells (6 weeks of 7) covering ref's month:
// leading days back to the Sunday on or before the 1st, then the month
// itself, then trailing days to fill the grid. A month starting on
// Sunday gets zero leading cells; a month ending on Saturday gets zero
// trailing cells inside its own final week, but the grid is always
// padded to 42.
func MonthGrid(ref time.Time) []Day {
	year, month := ref.Year(), ref.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())

	days := make([]Day, 0, 42)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	for d := start; d.Before(first); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d, OutsideMonth: true})
	}

	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d})
	}

	next := first.AddDate(0, 1, 0)
	for d := next; len(days) < 42; d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d, OutsideMonth: true})
	}

	return days
}

// WeekGrid returns the 7 days from the Sunday on or before ref through
// the following Saturday.
func WeekGrid(ref time.Time) []Day {
	sunday := ref.AddDate(0, 0, -int(ref.Weekday()))
	days := make([]Day, 7)
	for i := range days {
		days[i] = Day{Date: sunday.AddDate(0, 0, i)}
	}
	return days
}

// StartOfMonth returns the first of ref's month. Month navigation is
// anchored here so stepping from Jan 31 never skips February.
func StartOfMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
}

// MonthLabel formats a month header, e.g. "November 2024".
func MonthLabel(ref time.Time) string {
	return ref.Format("January 2006")
}

// WeekLabel formats a week header from its grid, e.g.
// "Week of Nov 10 - Nov 16, 2024".
func WeekLabel(days []Day) string {
	if len(days) == 0 {
		return ""
	}
	first := days[0].Date
	last := days[len(days)-1].Date
	return "Week of " + first.Format("Jan 2") + " - " + last.Format("Jan 2, 2006")
}
