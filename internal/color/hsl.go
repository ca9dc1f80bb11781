package color

import "math"

// RGBToHSL converts a triple to hue/saturation/lightness, each in [0,1].
// Hue is cyclic but reported on [0,1); achromatic colors get h=0, s=0.
func RGBToHSL(c RGB) (h, s, l float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	l = (maxC + minC) / 2.0

	if delta == 0 {
		return 0, 0, l
	}

	if l <= 0.5 {
		s = delta / (maxC + minC)
	} else {
		s = delta / (2.0 - maxC - minC)
	}

	switch maxC {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h /= 6

	return h, s, l
}

// HSLToRGB converts hue/saturation/lightness in [0,1] back to an 8-bit
// triple. Channels are rounded half away from zero and clamped to [0,255]
// so float error can never produce an out-of-range byte.
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := channelByte(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: channelByte(hueToChannel(p, q, h+1.0/3.0)),
		G: channelByte(hueToChannel(p, q, h)),
		B: channelByte(hueToChannel(p, q, h-1.0/3.0)),
	}
}

// AdjustLightness scales the HSL lightness of a hex color by factor and
// returns the adjusted color in canonical lowercase form. Factor below 1
// darkens, above 1 lightens; the scaled lightness is clamped to [0,1], so
// a negative factor degenerates to lightness 0. The HSL round-trip is
// lossy: factor 1 may move a channel by one step.
func AdjustLightness(color string, factor float64) (string, error) {
	rgb, err := ParseHex(color)
	if err != nil {
		return "", err
	}

	h, s, l := RGBToHSL(rgb)
	l = clamp01(l * factor)

	return HSLToRGB(h, s, l).Hex(), nil
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

func channelByte(v float64) uint8 {
	scaled := math.Round(clamp01(v) * 255)
	return uint8(scaled)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
