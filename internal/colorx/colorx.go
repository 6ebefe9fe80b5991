// Package colorx provides the color arithmetic used by the frame renderer:
// hue-rotation rainbows, brightness scaling, and dimmed glow derivation.
//
// All functions are pure and bit-reproducible: float channels are truncated,
// not rounded, when converted back to 8-bit so repeated renders of the same
// animation phase produce identical pixels.
package colorx

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Rainbow maps a phase in degrees to a fully saturated hue-rotated color.
// Any integer phase is accepted; it is taken mod 360.
func Rainbow(phaseDeg int) color.RGBA {
	h := float64(((phaseDeg % 360) + 360) % 360)
	c := colorful.Hsv(h, 1, 1)
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}

// Scale multiplies each channel by factor, clamped to [0, 255].
// Alpha is preserved.
func Scale(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: clampChannel(float64(c.R) * factor),
		G: clampChannel(float64(c.G) * factor),
		B: clampChannel(float64(c.B) * factor),
		A: c.A,
	}
}

// Glow returns the dimmed halo variant of a color: the base color scaled
// by 1/divisor. Themes use divisor 3 or 4.
func Glow(c color.RGBA, divisor int) color.RGBA {
	if divisor <= 0 {
		divisor = 3
	}
	return Scale(c, 1/float64(divisor))
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
