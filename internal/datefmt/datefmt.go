// Package datefmt parses the textual timestamps used by the show forms
// and renders them with the two named presets the pages use.
package datefmt

import (
	"fmt"
	"time"
)

const (
	// Full is the long preset: weekday, month, day, year and 12-hour time.
	Full = "full"
	// Medium is the abbreviated preset.
	Medium = "medium"

	layoutFull   = "Monday January, 2, 2006 at 3:04PM"
	layoutMedium = "Mon Jan, 02, 2006 3:04PM"
)

var parseLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse reads a textual timestamp in any of the accepted layouts.
func Parse(value string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// FormatTime renders t with the named preset, defaulting to Medium.
func FormatTime(t time.Time, preset string) string {
	if preset == Full {
		return t.Format(layoutFull)
	}
	return t.Format(layoutMedium)
}

// Format parses value and renders it with the named preset. Values that
// fail to parse are returned unchanged so a template never breaks on a
// malformed stored timestamp.
func Format(value, preset string) string {
	t, err := Parse(value)
	if err != nil {
		return value
	}
	return FormatTime(t, preset)
}
