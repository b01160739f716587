// Package timeutil provides date parsing and day/range helpers shared by the
// CLI and report code.
package timeutil

import (
	"fmt"
	"time"
)

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// Today returns the start and end times of now's day.
func Today(now time.Time) (start, end time.Time) {
	return StartOfDay(now), EndOfDay(now)
}

// ThisMonth returns the start and end times of now's month.
func ThisMonth(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// IsInRange checks if t falls within [start, end], inclusive on both ends.
func IsInRange(t, start, end time.Time) bool {
	return (t.Equal(start) || t.After(start)) && (t.Equal(end) || t.Before(end))
}

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format and
// returns it at midnight local time. ISO format is tried first, so ambiguous
// inputs resolve as YYYY-MM-DD.
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2025-01-15)")
	}

	if t, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return StartOfDay(t), nil
	}
	if t, err := time.ParseInLocation("02/01/2006", input, time.Local); err == nil {
		return StartOfDay(t), nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2025-01-15)", input)
}
