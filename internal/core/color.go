package core

import "fmt"

// RGB is a 24-bit color. The zero value means "terminal default" and is
// treated as unstyled by the renderer.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates a color from 8-bit channels.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// IsZero reports whether the color is the unstyled default.
func (c RGB) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
