package core

import "image/color"

// Color is the palette index of a drawn element. Terminals map it to an
// ANSI code, the window frontend to RGBA via RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorCyan
	ColorYellow
)

var palette = [...]color.RGBA{
	ColorDefault:     {0xff, 0xff, 0xff, 0xff},
	ColorWhite:       {0xff, 0xff, 0xff, 0xff},
	ColorBrightWhite: {0xff, 0xff, 0xff, 0xff},
	ColorGray:        {0x8a, 0x8a, 0x8a, 0xff},
	ColorCyan:        {0x00, 0xaf, 0xaf, 0xff},
	ColorYellow:      {0xff, 0xff, 0x5f, 0xff},
}

// RGBA returns the colour used when drawing with pixels.
// Unknown values fall back to white.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[ColorWhite]
}
