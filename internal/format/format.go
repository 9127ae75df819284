// Package format holds the display formatting shared by responses and event
// payloads: Indian-grouped rupee amounts and 12-hour clock times.
package format

import (
	"fmt"
	"strings"

	"turfnest/internal/slots"
)

// Currency renders a whole-rupee amount with Indian digit grouping, e.g.
// 125000 -> "₹1,25,000".
func Currency(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return sign + "₹" + s
	}

	// last three digits, then groups of two
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}

// Time renders an HH:MM wall-clock string as 12-hour time, e.g. "18:30" ->
// "6:30 PM". Malformed input is returned unchanged.
func Time(clock string) string {
	minutes, err := slots.ParseClock(clock)
	if err != nil {
		return clock
	}

	hour := minutes / 60
	min := minutes % 60
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, min, ampm)
}
