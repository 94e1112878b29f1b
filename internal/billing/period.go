package billing

import (
	"fmt"
	"time"
)

// Window helpers return inclusive [start, end] ranges. The end sits at
// 23:59:59 of the last day so that date-only comparisons keep the final day
// in range.

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// WeekWindow returns the Monday..Sunday week containing d.
func WeekWindow(d time.Time) (time.Time, time.Time) {
	day := startOfDay(d)
	weekday := int(day.Weekday())
	if weekday == 0 { // time.Sunday
		weekday = 7
	}
	start := day.AddDate(0, 0, -(weekday - 1))
	return start, endOfDay(start.AddDate(0, 0, 6))
}

// MonthWindow returns the calendar month of year/month.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, endOfDay(start.AddDate(0, 1, -1))
}

// QuarterWindow returns the three months of quarter q (1..4) of year.
func QuarterWindow(year, quarter int) (time.Time, time.Time) {
	start := time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.Local)
	return start, endOfDay(start.AddDate(0, 3, -1))
}

// WeekStartsOfMonth returns the 1st of the month and every 7th day after it,
// up to the month's last day. The weekly windows derived from these dates
// follow the calendar week of each date and are not clipped to the month, so
// the final one may reach into the following month.
func WeekStartsOfMonth(year int, month time.Month) []time.Time {
	start, end := MonthWindow(year, month)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 7) {
		days = append(days, d)
	}
	return days
}

// WeekLabel names the week starting at start.
func WeekLabel(start time.Time) string {
	return fmt.Sprintf("Week of %s", start.Format("02 Jan 2006"))
}

// MonthLabel names a calendar month, e.g. "March 2026".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}

// QuarterLabel names a quarter, e.g. "Q2 2026".
func QuarterLabel(year, quarter int) string {
	return fmt.Sprintf("Q%d %d", quarter, year)
}
