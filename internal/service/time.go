package service

import (
	"fmt"
	"math"
	"time"
)

const (
	tsLayout   = "2006-01-02T15:04:05"
	dateLayout = "2006-01-02"
)

// nowISO returns the current UTC time as an ISO-8601 second-resolution
// string, the storage format for log and pantry timestamps.
func nowISO() string {
	return time.Now().UTC().Format(tsLayout)
}

// dayBounds returns the inclusive start and end timestamps of a day's
// window. An empty date means today. Stored timestamps are ISO-8601
// strings, so the window is applied with plain string comparison.
func dayBounds(date string) (string, string, error) {
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return date + "T00:00:00", date + "T23:59:59", nil
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
