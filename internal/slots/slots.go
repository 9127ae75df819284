// Package slots turns weekly availability templates into discrete bookable
// start times. Times are handled as minutes since midnight internally and
// converted to HH:MM strings only at the boundary.
package slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"turfnest/internal/models"
)

// DefaultSlotMinutes is the granularity used when a template does not set one.
const DefaultSlotMinutes = 60

const minutesPerDay = 24 * 60

// ParseClock converts an HH:MM wall-clock string into minutes since midnight.
// 24:00 is accepted as an end-of-day bound.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	mins, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hours < 0 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	total := hours*60 + mins
	if total > minutesPerDay {
		return 0, fmt.Errorf("time %q is past 24:00", s)
	}
	return total, nil
}

// FormatClock renders minutes since midnight as a zero-padded HH:MM string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Generate produces the ordered start times t with start <= t < end at the
// given granularity. Pure function of its inputs: malformed bounds or
// start >= end yield an empty sequence, and when the granularity does not
// evenly divide the window the last slot is the largest t still before end.
func Generate(startTime, endTime string, slotMinutes int) []string {
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}

	start, err := ParseClock(startTime)
	if err != nil {
		return nil
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return nil
	}

	var out []string
	for t := start; t < end; t += slotMinutes {
		out = append(out, FormatClock(t))
	}
	return out
}

// Resolve selects the templates matching the sport and the date's weekday and
// expands each through Generate, flattened in template input order. Slots
// repeated across overlapping templates are kept as-is.
func Resolve(templates []models.AvailabilityTemplate, sportID string, date time.Time) []string {
	weekday := int(date.Weekday())

	var out []string
	for _, tpl := range templates {
		if tpl.SportID != sportID || tpl.Weekday != weekday {
			continue
		}
		out = append(out, Generate(tpl.StartTime, tpl.EndTime, tpl.SlotMinutes)...)
	}
	return out
}

// BookingWindow combines a date with a start time and an hour count into the
// absolute start/end timestamps of a reservation. Seconds and smaller units
// are zeroed. An end past 24:00 does not roll into the next day and is
// rejected instead.
func BookingWindow(date time.Time, startTime string, hours int) (time.Time, time.Time, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if hours <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("hours must be positive, got %d", hours)
	}

	end := start + hours*60
	if end > minutesPerDay {
		return time.Time{}, time.Time{}, fmt.Errorf("booking ends past midnight (%s + %dh)", startTime, hours)
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	startAt := day.Add(time.Duration(start) * time.Minute)
	endAt := day.Add(time.Duration(end) * time.Minute)
	return startAt, endAt, nil
}
