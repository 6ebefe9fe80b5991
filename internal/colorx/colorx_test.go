package colorx

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRainbowPeriodicity(t *testing.T) {
	for _, phase := range []int{0, 1, 45, 90, 180, 270, 359, 720, -90} {
		assert.Equal(t, Rainbow(phase), Rainbow(phase+360), "phase %d", phase)
	}
}

func TestRainbowAnchors(t *testing.T) {
	// Fully saturated primaries at the canonical hue angles.
	assert.Equal(t, color.RGBA{R: 255, A: 255}, Rainbow(0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, Rainbow(120))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, Rainbow(240))
}

func TestRainbowNegativePhase(t *testing.T) {
	assert.Equal(t, Rainbow(270), Rainbow(-90))
}

func TestScaleClampsAndTruncates(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	full := Scale(c, 2.0)
	assert.Equal(t, uint8(255), full.R, "channel overflow clamps to 255")
	assert.Equal(t, uint8(200), full.G)
	assert.Equal(t, uint8(100), full.B)

	third := Scale(c, 1.0/3.0)
	// 200/3 = 66.66 truncates to 66, not 67
	assert.Equal(t, uint8(66), third.R)
	assert.Equal(t, uint8(33), third.G)
	assert.Equal(t, uint8(16), third.B)

	zero := Scale(c, 0)
	assert.Equal(t, color.RGBA{A: 255}, zero)
}

func TestScaleMonotonic(t *testing.T) {
	c := color.RGBA{R: 180, G: 90, B: 45, A: 255}
	prev := Scale(c, 0)
	for f := 0.1; f <= 1.0; f += 0.1 {
		cur := Scale(c, f)
		assert.GreaterOrEqual(t, cur.R, prev.R)
		assert.GreaterOrEqual(t, cur.G, prev.G)
		assert.GreaterOrEqual(t, cur.B, prev.B)
		prev = cur
	}
}

func TestScalePreservesAlpha(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 128}
	assert.Equal(t, uint8(128), Scale(c, 0.5).A)
}

func TestGlow(t *testing.T) {
	c := color.RGBA{R: 240, G: 120, B: 60, A: 255}

	assert.Equal(t, Scale(c, 1.0/3.0), Glow(c, 3))
	assert.Equal(t, Scale(c, 1.0/4.0), Glow(c, 4))

	// Invalid divisor falls back to 3.
	assert.Equal(t, Glow(c, 3), Glow(c, 0))
	assert.Equal(t, Glow(c, 3), Glow(c, -1))
}
