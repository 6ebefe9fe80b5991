package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestNewClampsGeometry(t *testing.T) {
	c := New(0, -5)
	assert.Equal(t, 1, c.Width())
	assert.Equal(t, 1, c.Height())
}

func TestSetAndAt(t *testing.T) {
	c := New(10, 10)
	c.Set(3, 4, red)
	assert.Equal(t, red, c.At(3, 4))
	assert.Equal(t, color.RGBA{}, c.At(0, 0))
}

func TestOutOfBoundsDrawsAreNoOps(t *testing.T) {
	c := New(10, 10)

	// None of these may panic.
	c.Set(-1, 5, red)
	c.Set(5, 100, red)
	c.FilledRect(-20, -20, 5, 5, red)
	c.FilledRect(8, 8, 50, 50, red)
	c.Line(-10, -10, 30, 30, red)
	c.Arc(5, 5, 50, 0, 360, 2, red)
	c.RoundedRect(-5, -5, 100, 100, 8, red)

	// Clipped rect painted the in-bounds corner.
	assert.Equal(t, red, c.At(9, 9))
}

func TestFill(t *testing.T) {
	c := New(4, 4)
	c.Fill(green)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, green, c.At(x, y))
		}
	}
}

func TestFilledRect(t *testing.T) {
	c := New(20, 20)
	c.FilledRect(5, 5, 4, 3, red)

	assert.Equal(t, red, c.At(5, 5))
	assert.Equal(t, red, c.At(8, 7))
	assert.Equal(t, color.RGBA{}, c.At(4, 5), "left of rect untouched")
	assert.Equal(t, color.RGBA{}, c.At(9, 5), "right of rect untouched")
	assert.Equal(t, color.RGBA{}, c.At(5, 8), "below rect untouched")
}

func TestLineEndpoints(t *testing.T) {
	c := New(20, 20)
	c.Line(2, 3, 10, 11, white)
	assert.Equal(t, white, c.At(2, 3))
	assert.Equal(t, white, c.At(10, 11))
}

func TestRoundedRectCornersClipped(t *testing.T) {
	c := New(40, 40)
	c.RoundedRect(0, 0, 20, 20, 6, red)

	// Center filled, extreme corner pixel left empty by the radius.
	assert.Equal(t, red, c.At(10, 10))
	assert.Equal(t, color.RGBA{}, c.At(0, 0))
}

func TestArcFullCircleHitsCardinalPoints(t *testing.T) {
	c := New(50, 50)
	c.Arc(25, 25, 10, 0, 360, 1, red)

	assert.Equal(t, red, c.At(35, 25))
	assert.Equal(t, red, c.At(15, 25))
	assert.Equal(t, red, c.At(25, 35))
	assert.Equal(t, red, c.At(25, 15))
}

func TestArcZeroSweepDrawsNothing(t *testing.T) {
	c := New(50, 50)
	c.Arc(25, 25, 10, 0, 0, 1, red)
	assert.Equal(t, color.RGBA{}, c.At(35, 25))
}

func TestTextDrawsPixels(t *testing.T) {
	c := New(100, 20)
	face := basicfont.Face7x13

	c.Text(face, 2, 2, "UP", white)

	found := false
	for y := 0; y < 20 && !found; y++ {
		for x := 0; x < 100 && !found; x++ {
			if c.At(x, y) == white {
				found = true
			}
		}
	}
	assert.True(t, found, "text should touch at least one pixel")
}

func TestMeasureString(t *testing.T) {
	c := New(100, 20)
	face := basicfont.Face7x13

	// Face7x13 advances 7px per glyph.
	assert.Equal(t, 21, c.MeasureString(face, "CPU"))
	assert.Equal(t, 0, c.MeasureString(nil, "CPU"))
}

func TestProgressBarZeroDrawsOnlyTrack(t *testing.T) {
	c := New(60, 10)
	c.ProgressBar(0, 0, 50, 8, 0, red, BarOpts{})

	track := c.At(0, 0)
	require.NotEqual(t, color.RGBA{}, track, "track painted")
	assert.NotEqual(t, red, track, "no foreground at zero progress")
	for x := 0; x < 50; x++ {
		assert.NotEqual(t, red, c.At(x, 0), "column %d must stay at track color", x)
	}
}

func TestProgressBarFullWidth(t *testing.T) {
	c := New(60, 10)
	c.ProgressBar(0, 0, 50, 8, 1, red, BarOpts{})
	for x := 0; x < 50; x++ {
		assert.Equal(t, red, c.At(x, 0), "column %d filled", x)
	}
}

func TestProgressBarFloorWidth(t *testing.T) {
	c := New(120, 10)
	// 100 * 0.42 = 42 columns exactly.
	c.ProgressBar(0, 0, 100, 8, 0.42, red, BarOpts{})

	assert.Equal(t, red, c.At(41, 0))
	assert.NotEqual(t, red, c.At(42, 0))

	// 50 * 0.15 = 7.5 floors to 7 columns.
	c2 := New(120, 10)
	c2.ProgressBar(0, 0, 50, 8, 0.15, red, BarOpts{})
	assert.Equal(t, red, c2.At(6, 0))
	assert.NotEqual(t, red, c2.At(7, 0))
}

func TestProgressBarClampsProgress(t *testing.T) {
	c := New(60, 10)
	c.ProgressBar(0, 0, 50, 8, 1.7, red, BarOpts{})
	assert.Equal(t, red, c.At(49, 0))

	c2 := New(60, 10)
	c2.ProgressBar(0, 0, 50, 8, -0.3, red, BarOpts{})
	assert.NotEqual(t, red, c2.At(0, 0))
}

func TestProgressBarGradientStaysDimmerOrEqual(t *testing.T) {
	c := New(120, 10)
	c.ProgressBar(0, 0, 100, 8, 1, red, BarOpts{Gradient: true})
	for x := 0; x < 100; x++ {
		px := c.At(x, 0)
		assert.LessOrEqual(t, px.R, red.R)
		assert.NotEqual(t, color.RGBA{}, px)
	}
}

func TestGlowingLine(t *testing.T) {
	c := New(40, 40)
	c.GlowingLine(5, 20, 35, 20, red, 3)

	assert.Equal(t, red, c.At(10, 20), "base stroke at full color")

	glow := c.At(10, 21)
	require.NotEqual(t, color.RGBA{}, glow, "halo rows painted")
	assert.Less(t, glow.R, red.R, "halo dimmer than stroke")
	assert.Equal(t, glow, c.At(10, 19))
	assert.Equal(t, glow, c.At(10, 22))
	assert.Equal(t, glow, c.At(10, 18))
}

func TestLoadingArcZeroProgressDrawsOnlyRing(t *testing.T) {
	c := New(60, 60)
	c.LoadingArc(30, 30, 12, 0, red, 0, ArcOpts{})

	ring := c.At(42, 30)
	require.NotEqual(t, color.RGBA{}, ring)
	assert.NotEqual(t, red, ring, "no full-color arc at zero progress")
}

func TestLoadingArcFullProgress(t *testing.T) {
	c := New(60, 60)
	c.LoadingArc(30, 30, 12, 1, red, 0, ArcOpts{})
	assert.Equal(t, red, c.At(42, 30))
	assert.Equal(t, red, c.At(18, 30))
}

func TestCyberBoxDrawsBrackets(t *testing.T) {
	c := New(80, 80)
	c.CyberBox(10, 10, 50, 40, red, 0, "", nil)

	corner := c.At(10, 10)
	assert.NotEqual(t, color.RGBA{}, corner, "top-left bracket painted")
	// Middle of the top edge stays empty (brackets only, no full border).
	assert.Equal(t, color.RGBA{}, c.At(35, 10))
}

func TestCyberBoxTitleStrip(t *testing.T) {
	c := New(120, 80)
	c.CyberBox(10, 30, 80, 40, red, 15, "API", basicfont.Face7x13)

	// Title strip background sits above the top edge.
	found := false
	for y := 10; y < 30 && !found; y++ {
		for x := 10; x < 60 && !found; x++ {
			if c.At(x, y) != (color.RGBA{}) {
				found = true
			}
		}
	}
	assert.True(t, found, "title strip painted above the box")
}
