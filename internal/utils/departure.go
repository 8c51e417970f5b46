package utils

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for trip dates, day and month only.
	DateLayout = "02.01"
	// TimeLayout is the wire format for trip departure times.
	TimeLayout = "15:04"

	// yearWindow bounds how far a departure may sit from now before the
	// inferred year is corrected by one.
	yearWindow = 180 * 24 * time.Hour
)

// ParseTripDate validates a DD.MM date string.
func ParseTripDate(dayMonth string) error {
	if _, err := time.Parse(DateLayout, dayMonth); err != nil {
		return fmt.Errorf("invalid date %q, expected DD.MM: %w", dayMonth, err)
	}
	return nil
}

// ParseTripTime validates an HH:MM time string.
func ParseTripTime(timeStr string) error {
	if _, err := time.Parse(TimeLayout, timeStr); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM: %w", timeStr, err)
	}
	return nil
}

// ResolveDepartureInstant converts a DD.MM date and HH:MM time into an
// absolute instant. Trip dates carry no year, so the year is inferred from
// now: the candidate in now's year is shifted by one year when it lands more
// than half a year away, which keeps a January trip posted in late December
// a few days ahead instead of a year behind.
func ResolveDepartureInstant(dayMonth, timeStr string, now time.Time) (time.Time, error) {
	parsed, err := time.Parse(DateLayout+" "+TimeLayout, dayMonth+" "+timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid departure %q %q: %w", dayMonth, timeStr, err)
	}

	candidate := time.Date(
		now.Year(), parsed.Month(), parsed.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location(),
	)

	switch {
	case candidate.Before(now.Add(-yearWindow)):
		candidate = candidate.AddDate(1, 0, 0)
	case candidate.After(now.Add(yearWindow)):
		candidate = candidate.AddDate(-1, 0, 0)
	}

	return candidate, nil
}

// DepartureInPast reports whether the resolved departure is behind now.
func DepartureInPast(dayMonth, timeStr string, now time.Time) (bool, error) {
	departure, err := ResolveDepartureInstant(dayMonth, timeStr, now)
	if err != nil {
		return false, err
	}
	return departure.Before(now), nil
}
