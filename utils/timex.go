// File: utils/timex.go
package utils

import (
	"fmt"
	"time"
)

// ParseClock parses a 24-hour "HH:MM" string into minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as a 24-hour "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock re-renders a clock string into canonical "HH:MM" form so that
// "8:00" and "08:00" compare equal.
func NormalizeClock(s string) (string, error) {
	m, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return FormatClock(m), nil
}

// ParseDate parses a calendar date in "YYYY-MM-DD" form.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate renders a time as a "YYYY-MM-DD" calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether two instants fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// DayIndex returns the weekday index for a date string, 0=Sunday through 6=Saturday.
func DayIndex(date string) (int, error) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(d.Weekday()), nil
}

// AtClock combines a date string and minutes from midnight into an instant in loc.
func AtClock(date string, minutes int, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc).Add(time.Duration(minutes) * time.Minute), nil
}

// DateWithin reports whether date falls inside the inclusive [startDate, endDate] range.
// ISO dates compare correctly as strings, but parse first so malformed input surfaces.
func DateWithin(date, startDate, endDate string) (bool, error) {
	for _, s := range []string{date, startDate, endDate} {
		if _, err := ParseDate(s); err != nil {
			return false, err
		}
	}
	return date >= startDate && date <= endDate, nil
}
