package color

import "math"

// WCAG contrast thresholds (WCAG 2.1 §1.4.3, §1.4.6).
const (
	aaNormal  = 4.5
	aaLarge   = 3.0
	aaaNormal = 7.0
	aaaLarge  = 4.5
)

// Luminance computes the WCAG relative luminance of a hex color, in [0,1].
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(color string) (float64, error) {
	rgb, err := ParseHex(color)
	if err != nil {
		return 0, err
	}

	r := linearize(float64(rgb.R) / 255.0)
	g := linearize(float64(rgb.G) / 255.0)
	b := linearize(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// ContrastRatio computes the WCAG contrast ratio between two hex colors.
// The result is symmetric in its arguments and lies in [1,21] for the
// sRGB gamut (1 for identical colors, 21 for black on white).
func ContrastRatio(a, b string) (float64, error) {
	la, err := Luminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := Luminance(b)
	if err != nil {
		return 0, err
	}

	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)

	return (lighter + 0.05) / (darker + 0.05), nil
}

// MeetsAA reports whether a foreground/background pair satisfies the
// WCAG AA contrast requirement: 3:1 for large text, 4.5:1 otherwise.
func MeetsAA(fg, bg string, largeText bool) (bool, error) {
	ratio, err := ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	if largeText {
		return ratio >= aaLarge, nil
	}
	return ratio >= aaNormal, nil
}

// MeetsAAA reports whether a foreground/background pair satisfies the
// WCAG AAA contrast requirement: 4.5:1 for large text, 7:1 otherwise.
func MeetsAAA(fg, bg string, largeText bool) (bool, error) {
	ratio, err := ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	if largeText {
		return ratio >= aaaLarge, nil
	}
	return ratio >= aaaNormal, nil
}

// linearize applies the WCAG gamma expansion to a normalized channel.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
