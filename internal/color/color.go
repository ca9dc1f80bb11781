// Package color implements sRGB hex parsing, HSL lightness adjustment and
// WCAG relative-luminance/contrast math for the devourer toolkit.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an sRGB triple with 8-bit channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// FormatError reports a color string that does not decode to three 2-digit
// hexadecimal byte pairs.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid color %q: want 6 hex digits with optional leading '#'", e.Input)
}

// ParseHex decodes a hex color like "#3b82f6" or "3B82F6" into an RGB
// triple. The leading '#' is optional; exactly 6 hex digits must remain
// after stripping it.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, &FormatError{Input: s}
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, &FormatError{Input: s}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Hex formats the triple as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Canonical re-encodes a hex color into its lowercase "#rrggbb" form.
func Canonical(s string) (string, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}
