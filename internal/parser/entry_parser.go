package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRegex     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)\s+ago$`)
	clockRegex    = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// ParseEntryDate parses the date an entry was worked on.
// Supported formats:
// - "" or "today"
// - "yesterday"
// - "X days ago", "X weeks ago"
// - dd/mm/yyyy (e.g., "15/03/2026")
// The result is midnight local time.
func ParseEntryDate(input string) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if d, err := parseDateFormat(input); err == nil {
		return d, nil
	}

	if m := relativeRegex.FindStringSubmatch(input); len(m) == 3 {
		amount, err := strconv.Atoi(m[1])
		if err != nil || amount < 0 || amount > 365 {
			return time.Time{}, fmt.Errorf("relative date out of range: %q", input)
		}
		days := amount
		if strings.HasPrefix(m[2], "week") {
			days = amount * 7
		}
		return today.AddDate(0, 0, -days), nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q (use dd/mm/yyyy, today, yesterday, or 'X days ago')", input)
}

// parseDateFormat parses dd/mm/yyyy into midnight local time.
func parseDateFormat(input string) (time.Time, error) {
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return time.Time{}, fmt.Errorf("year must be between 2000 and 2100")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Reject rollover dates like 31/02.
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return date, nil
}

// ParseClock parses a time of day as HH:MM or HH:MM:SS.
func ParseClock(input string) (time.Duration, error) {
	matches := clockRegex.FindStringSubmatch(strings.TrimSpace(input))
	if len(matches) != 4 {
		return 0, fmt.Errorf("invalid time %q (use HH:MM)", input)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	second := 0
	if matches[3] != "" {
		second, _ = strconv.Atoi(matches[3])
	}

	if hour > 23 || minute > 59 || second > 59 {
		return 0, fmt.Errorf("invalid time %q", input)
	}

	return time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second, nil
}
