package store

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidColor is wrapped by color parse failures.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque display color, persisted as a hex RGB string.
type Color struct {
	R, G, B uint8
}

// ParseColor parses "#rrggbb".
func ParseColor(s string) (Color, error) {
	var c Color
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// String formats the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// AccentColors is the Solarized accent palette new entries pick from.
var AccentColors = []Color{
	{0xb5, 0x89, 0x00}, // yellow
	{0xcb, 0x4b, 0x16}, // orange
	{0xdc, 0x32, 0x2f}, // red
	{0xd3, 0x36, 0x82}, // magenta
	{0x6c, 0x71, 0xc4}, // violet
	{0x26, 0x8b, 0xd2}, // blue
	{0x2a, 0xa1, 0x98}, // cyan
	{0x85, 0x99, 0x00}, // green
}

// RandomAccentColor returns a random palette color for a new draft.
func RandomAccentColor() Color {
	return AccentColors[rand.Intn(len(AccentColors))]
}
