package timeutil

import (
	"fmt"
	"time"
)

// ClockLayout is the 12-hour face shown on the clock view.
const ClockLayout = "03:04"

// FormatClock renders hour (0-23) and minute as a 12-hour "hh:mm" face plus AM/PM.
func FormatClock(hour, minute int) (face, meridiem string) {
	meridiem = "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d", h, minute), meridiem
}

// LoadLocation resolves an IANA zone name, falling back to UTC for "" or unknown names.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, err
	}
	return loc, nil
}
