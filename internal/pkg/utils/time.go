package utils

import (
	"clinicdesk-service/internal/pkg/constvars"
	"fmt"
	"time"
)

// NormalizeTimeForAPI converts HH:MM to the backend's HH:MM:SS form.
// Values already carrying seconds pass through unchanged; empty stays empty.
func NormalizeTimeForAPI(t string) string {
	if len(t) == len(constvars.TimeLayoutShort) {
		return t + ":00"
	}
	return t
}

// ParseClockTime accepts HH:MM or HH:MM:SS time-of-day values.
func ParseClockTime(t string) (time.Time, error) {
	if parsed, err := time.Parse(constvars.TimeLayoutAPI, t); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(constvars.TimeLayoutShort, t)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time value %q", t)
	}
	return parsed, nil
}

// ParseISODate accepts YYYY-MM-DD calendar dates.
func ParseISODate(d string) (time.Time, error) {
	parsed, err := time.Parse(constvars.DateLayoutISO, d)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date value %q", d)
	}
	return parsed, nil
}

// IsTimeRangeValid reports whether start is strictly before end, compared
// as time-of-day values, not full timestamps.
func IsTimeRangeValid(start, end string) bool {
	a, errA := ParseClockTime(start)
	b, errB := ParseClockTime(end)
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// FormatTimeDisplay renders a wire time as 12-hour clock, e.g. "02:30 PM".
func FormatTimeDisplay(t string) string {
	parsed, err := ParseClockTime(t)
	if err != nil {
		return t
	}
	return parsed.Format(constvars.TimeLayoutTwelve)
}

// FormatDateDisplay renders a wire date as DD-MM-YYYY.
func FormatDateDisplay(d string) string {
	parsed, err := ParseISODate(d)
	if err != nil {
		return d
	}
	return parsed.Format(constvars.DateLayoutHuman)
}
