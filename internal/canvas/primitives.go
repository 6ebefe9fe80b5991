package canvas

import (
	"image/color"
	"math"

	"golang.org/x/image/font"

	"github.com/pidash/pidash/internal/colorx"
)

// GlowingLine draws a line at full color with dimmed parallel lines offset
// 1 and 2 pixel rows on both sides, approximating a blur halo without real
// blurring.
func (c *Canvas) GlowingLine(x0, y0, x1, y1 int, col color.RGBA, glowDivisor int) {
	glow := colorx.Glow(col, glowDivisor)
	for _, off := range []int{-2, -1, 1, 2} {
		c.Line(x0, y0+off, x1, y1+off, glow)
	}
	c.Line(x0, y0, x1, y1, col)
}

// BarOpts controls optional progress bar styling.
type BarOpts struct {
	// Gradient applies a per-column sinusoidal brightness sweep across the
	// filled width: brightness(i) = 0.7 + 0.3*sin(i/width * π).
	Gradient bool
	// GlowDivisor dims the background track. Zero means the default of 3.
	GlowDivisor int
}

// ProgressBar draws a dimmed background track then fills floor(w*progress)
// columns in the full color. Progress outside [0, 1] is clamped; zero
// progress draws only the track.
func (c *Canvas) ProgressBar(x, y, w, h int, progress float64, col color.RGBA, opts BarOpts) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	div := opts.GlowDivisor
	if div == 0 {
		div = 3
	}
	c.FilledRect(x, y, w, h, colorx.Glow(col, div))

	filled := int(float64(w) * progress)
	if filled <= 0 {
		return
	}
	if !opts.Gradient {
		c.FilledRect(x, y, filled, h, col)
		return
	}
	for i := 0; i < filled; i++ {
		brightness := 0.7 + 0.3*math.Sin(float64(i)/float64(w)*math.Pi)
		c.FilledRect(x+i, y, 1, h, colorx.Scale(col, brightness))
	}
}

// ArcOpts controls optional loading arc styling.
type ArcOpts struct {
	// ExtraGlowArcs draws up to 2 concentric halo rings outside the main
	// arc at decreasing brightness.
	ExtraGlowArcs int
	// GlowDivisor dims the background ring. Zero means the default of 3.
	GlowDivisor int
	// Thickness of the arc stroke in pixels. Zero means 3.
	Thickness int
}

// LoadingArc draws a full background ring at the glow color, then an arc
// spanning progress*360 degrees starting at sweepDeg in the full color.
func (c *Canvas) LoadingArc(cx, cy, radius int, progress float64, col color.RGBA, sweepDeg int, opts ArcOpts) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	div := opts.GlowDivisor
	if div == 0 {
		div = 3
	}
	thickness := opts.Thickness
	if thickness == 0 {
		thickness = 3
	}

	c.Arc(cx, cy, radius, 0, 360, thickness, colorx.Glow(col, div))

	if progress > 0 {
		c.Arc(cx, cy, radius, float64(sweepDeg), progress*360, thickness, col)
	}

	extra := opts.ExtraGlowArcs
	if extra > 2 {
		extra = 2
	}
	for i := 1; i <= extra; i++ {
		halo := colorx.Scale(col, 1/float64(div*(i+1)))
		if progress > 0 {
			c.Arc(cx, cy, radius+i, float64(sweepDeg), progress*360, 1, halo)
		}
	}
}

// CyberBox draws four L-shaped corner brackets around a rectangle, pulsed
// by the frame counter, with an optional title strip above the top-left
// corner. Bracket arms are 10px long.
func (c *Canvas) CyberBox(x, y, w, h int, col color.RGBA, frame int, title string, face font.Face) {
	const arm = 10
	pulse := 0.5 + 0.5*math.Abs(math.Sin(float64(frame)*0.1))
	bc := colorx.Scale(col, pulse)

	// Top-left
	c.Line(x, y, x+arm, y, bc)
	c.Line(x, y, x, y+arm, bc)
	// Top-right
	c.Line(x+w-arm, y, x+w, y, bc)
	c.Line(x+w, y, x+w, y+arm, bc)
	// Bottom-left
	c.Line(x, y+h-arm, x, y+h, bc)
	c.Line(x, y+h, x+arm, y+h, bc)
	// Bottom-right
	c.Line(x+w, y+h-arm, x+w, y+h, bc)
	c.Line(x+w-arm, y+h, x+w, y+h, bc)

	if title != "" && face != nil {
		tw := c.MeasureString(face, title)
		th := face.Metrics().Height.Ceil()
		c.FilledRect(x+4, y-th-2, tw+4, th+2, colorx.Glow(col, 4))
		c.Text(face, x+6, y-th-1, title, col)
	}
}
