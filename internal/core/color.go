package core

import "fmt"

// Color is an opaque 24-bit RGB colour. Backends convert it to their own
// colour types (image/color for the window, hex strings for the terminal).
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the colour as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color so a Color can be handed straight to image APIs.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Named colours used by the game screens.
var (
	ColorBlack     = RGB(0, 0, 0)
	ColorWhite     = RGB(255, 255, 255)
	ColorBlue      = RGB(0, 0, 255)
	ColorScoreText = RGB(64, 64, 64)
	ColorIntroBG   = RGB(94, 129, 162)
)
