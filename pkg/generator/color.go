// color.go — Hex color parsing and channel interpolation.
package generator

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor parses a "#rrggbb" string. The leading '#' is optional.
func ParseColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}

	return uint8(rv), uint8(gv), uint8(bv), nil
}

// ParseHexNRGBA converts a "#rrggbb" string to a non-premultiplied color
// with the given alpha.
func ParseHexNRGBA(hex string, a uint8) (color.NRGBA, error) {
	r, g, b, err := ParseColor(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// lerp returns from + (to-from)*t truncated toward zero.
func lerp(from, to uint8, t float64) uint8 {
	return uint8(int(float64(from) + (float64(to)-float64(from))*t))
}
