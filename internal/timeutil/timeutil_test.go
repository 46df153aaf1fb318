package timeutil

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		hour, minute int
		face, mer    string
	}{
		{0, 5, "12:05", "AM"},
		{9, 30, "09:30", "AM"},
		{12, 0, "12:00", "PM"},
		{13, 7, "01:07", "PM"},
		{23, 59, "11:59", "PM"},
	}
	for _, tc := range cases {
		face, mer := FormatClock(tc.hour, tc.minute)
		if face != tc.face || mer != tc.mer {
			t.Fatalf("FormatClock(%d, %d) = %s %s, want %s %s", tc.hour, tc.minute, face, mer, tc.face, tc.mer)
		}
	}
}

func TestFormatClockMatchesLayout(t *testing.T) {
	value := time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC)
	face, _ := FormatClock(value.Hour(), value.Minute())
	if face != value.Format(ClockLayout) {
		t.Fatalf("expected %s, got %s", value.Format(ClockLayout), face)
	}
}

func TestLoadLocation(t *testing.T) {
	if loc, err := LoadLocation(""); err != nil || loc != time.UTC {
		t.Fatalf("expected UTC for empty name, got %v %v", loc, err)
	}
	if loc, err := LoadLocation("Not/AZone"); err == nil || loc != time.UTC {
		t.Fatalf("expected UTC fallback with error, got %v %v", loc, err)
	}
}
