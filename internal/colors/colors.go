// Package colors holds the display palette and picks legible team color pairs.
package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is a 24-bit 0xRRGGBB color.
type RGB uint32

const (
	White   RGB = 0xFFFFFF
	Black   RGB = 0x000000
	Red     RGB = 0xFF0000
	Green   RGB = 0x00FF00
	Blue    RGB = 0x0000FF
	Cyan    RGB = 0x00FFFF
	Yellow  RGB = 0xFFFF00
	Magenta RGB = 0xFF00FF

	// Stagnant is the list row color; Hovered outlines the selected row.
	Stagnant RGB = 0x8C1919
	Hovered  RGB = Yellow

	// Neutral is used for both teams when no legible pair exists.
	Neutral RGB = White
)

// ClockPalette is the cycle of clock themes, starting at Green.
var ClockPalette = []RGB{Green, White, Blue, Red, Yellow, Cyan}

// NextClockColor returns the theme after c, restarting at Green for unknown colors.
func NextClockColor(c RGB) RGB {
	for i, p := range ClockPalette {
		if p == c {
			return ClockPalette[(i+1)%len(ClockPalette)]
		}
	}
	return ClockPalette[0]
}

// Channels splits the color into 8-bit components.
func (c RGB) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Brightness is the perceived luminance on a 0-255 scale.
func (c RGB) Brightness() float64 {
	r, g, b := c.Channels()
	return (float64(r)*299 + float64(g)*587 + float64(b)*114) / 1000
}

// Distance is the Euclidean distance between two colors in RGB space.
func Distance(a, b RGB) float64 {
	ar, ag, ab := a.Channels()
	br, bg, bb := b.Channels()
	dr := float64(ar) - float64(br)
	dg := float64(ag) - float64(bg)
	db := float64(ab) - float64(bb)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// String formats the color as six lower-case hex digits.
func (c RGB) String() string {
	return fmt.Sprintf("%06x", uint32(c)&0xFFFFFF)
}

// MarshalText keeps cached snapshots readable ("c60c30" instead of 12979248).
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts the same forms as ParseHex.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseHex parses "c60c30", "#C60C30" or "0xc60c30".
func ParseHex(raw string) (RGB, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 6 {
		return Black, fmt.Errorf("color %q: expected 6 hex digits", raw)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black, fmt.Errorf("color %q: %w", raw, err)
	}
	return RGB(v), nil
}

// ParseHexOr parses raw, returning fallback when it is empty or invalid.
func ParseHexOr(raw string, fallback RGB) RGB {
	c, err := ParseHex(raw)
	if err != nil {
		return fallback
	}
	return c
}
