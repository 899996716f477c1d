package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack  = color.RGBA{0, 0, 0, 255}
	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorGreen  = color.RGBA{0, 255, 0, 255}
	ColorYellow = color.RGBA{255, 255, 0, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// ParseRGB parses an opaque color written as "R,G,B" with components in
// 0-255.
func ParseRGB(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("parse color %q: want R,G,B", s)
	}

	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return RGB(rgb[0], rgb[1], rgb[2]), nil
}
