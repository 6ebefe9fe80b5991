// Package canvas implements the fixed-resolution pixel buffer the dashboard
// renders into, plus the drawing primitives used by the frame composer.
//
// All operations clamp to the canvas bounds: out-of-range draws clip or
// become no-ops, never a panic. The buffer is allocated once and mutated in
// place on every frame.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is a mutable RGBA pixel buffer of fixed geometry.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int
}

// New allocates a canvas of the given geometry. Dimensions are clamped to
// at least 1x1.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

// Width returns the pixel width.
func (c *Canvas) Width() int { return c.width }

// Height returns the pixel height.
func (c *Canvas) Height() int { return c.height }

// Image exposes the backing buffer for sinks. Callers must treat it as
// read-only; the composer overwrites it on the next tick.
func (c *Canvas) Image() *image.RGBA { return c.img }

// At returns the pixel at (x, y), or zero outside the bounds.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.RGBA{}
	}
	return c.img.RGBAAt(x, y)
}

// Set writes one pixel, silently dropping out-of-bounds coordinates.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// Fill paints the whole canvas a single color.
func (c *Canvas) Fill(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// FilledRect paints an axis-aligned rectangle, clipped to the canvas.
func (c *Canvas) FilledRect(x, y, w, h int, col color.RGBA) {
	x0 := clamp(x, 0, c.width)
	y0 := clamp(y, 0, c.height)
	x1 := clamp(x+w, 0, c.width)
	y1 := clamp(y+h, 0, c.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	draw.Draw(c.img, image.Rect(x0, y0, x1, y1), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// RoundedRect paints a filled rectangle with quarter-circle corners of the
// given radius. A radius of 0 degenerates to FilledRect.
func (c *Canvas) RoundedRect(x, y, w, h, radius int, col color.RGBA) {
	if radius <= 0 {
		c.FilledRect(x, y, w, h, col)
		return
	}
	if 2*radius > w {
		radius = w / 2
	}
	if 2*radius > h {
		radius = h / 2
	}
	for row := 0; row < h; row++ {
		inset := 0
		if row < radius {
			dy := radius - row
			inset = radius - isqrt(radius*radius-dy*dy)
		} else if row >= h-radius {
			dy := row - (h - radius - 1)
			inset = radius - isqrt(radius*radius-dy*dy)
		}
		c.FilledRect(x+inset, y+row, w-2*inset, 1, col)
	}
}

// Line draws a 1px Bresenham line between two points.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Arc draws a circular arc centered at (cx, cy). Angles are in degrees,
// measured clockwise from 3 o'clock (screen coordinates). Thickness grows
// inward from the given radius.
func (c *Canvas) Arc(cx, cy, radius int, startDeg, sweepDeg float64, thickness int, col color.RGBA) {
	if radius <= 0 || sweepDeg <= 0 {
		return
	}
	if thickness < 1 {
		thickness = 1
	}
	// Angular step fine enough to leave no gaps on the outer radius.
	step := 1.0 / float64(radius)
	for t := 0; t < thickness; t++ {
		r := float64(radius - t)
		if r <= 0 {
			break
		}
		for a := 0.0; a <= sweepDeg; a += step * 180 / math.Pi {
			rad := (startDeg + a) * math.Pi / 180
			px := cx + int(math.Round(r*math.Cos(rad)))
			py := cy + int(math.Round(r*math.Sin(rad)))
			c.Set(px, py, col)
		}
	}
}

// Text draws a string with its top-left corner at (x, y) using the given
// face. Missing glyphs fall back to the face's replacement character.
func (c *Canvas) Text(face font.Face, x, y int, s string, col color.RGBA) {
	if face == nil {
		return
	}
	metrics := face.Metrics()
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+metrics.Ascent.Ceil()),
	}
	d.DrawString(s)
}

// MeasureString returns the advance width of s in pixels for the face.
func (c *Canvas) MeasureString(face font.Face, s string) int {
	if face == nil {
		return 0
	}
	return font.MeasureString(face, s).Ceil()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// isqrt returns the integer square root, truncated.
func isqrt(v int) int {
	if v <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(v)))
}
