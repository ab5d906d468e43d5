// Package dateutil handles the date strings stored on item records.
// Dates are stored canonically as YYYY-MM-DD; user input may also arrive
// as DD-MM-YYYY, and lists display dates in the DD-MM-YYYY form.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutCanonical is the storage format for date fields.
	LayoutCanonical = "2006-01-02"
	// LayoutDisplay is the format lists render dates in.
	LayoutDisplay = "02-01-2006"
)

// acceptedLayouts are tried in order when parsing user-supplied dates.
var acceptedLayouts = []string{LayoutCanonical, LayoutDisplay}

// Parse converts a date string in one of the accepted layouts into a
// time.Time at midnight UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// Canonical normalizes a date string in any accepted layout to the
// canonical YYYY-MM-DD form.
func Canonical(value string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}
	return t.Format(LayoutCanonical), nil
}

// Display renders a stored date string as DD-MM-YYYY. Unparseable or
// empty values are returned unchanged — display never fails.
func Display(value string) string {
	t, err := Parse(value)
	if err != nil {
		return value
	}
	return t.Format(LayoutDisplay)
}

// OnOrBefore reports whether date d is on or before the calendar day of
// ref, ignoring the time-of-day component of both.
func OnOrBefore(d, ref time.Time) bool {
	return !truncate(d).After(truncate(ref))
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
