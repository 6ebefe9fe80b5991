// Package compose lays out one dashboard frame: header, backend status
// boxes, metric rows, and clock readout, drawn onto the shared canvas with
// the primitives in internal/canvas.
//
// Layout coordinates are fixed for the panel geometry; every styling
// decision (colors, pulse, glow, chrome) comes from the theme so the same
// engine renders all presets. Compose never fails: primitives are total
// over clamped input, and error handling lives in the refresh loop.
package compose

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/pidash/pidash/internal/anim"
	"github.com/pidash/pidash/internal/canvas"
	"github.com/pidash/pidash/internal/colorx"
	"github.com/pidash/pidash/internal/sampler"
	"github.com/pidash/pidash/internal/theme"
)

// Fixed layout coordinates, exported so tests can address specific pixels.
const (
	// MarginX is the left/right content margin.
	MarginX = 10
	// DividerY is the baseline of the header divider line.
	DividerY = 50
	// StatusTop is the top edge of the backend status boxes.
	StatusTop = 58
	// StatusBoxH is the status box height.
	StatusBoxH = 38
	// IndicatorSize is the side of the square online/offline indicator.
	IndicatorSize = 10
	// MetricsHeaderY is the top of the "SYSTEM" section label.
	MetricsHeaderY = 102
	// RowStartY is the top of the first metric row.
	RowStartY = 118
	// ArcRadius is the loading arc radius on each metric row.
	ArcRadius = 12
	// BarX is the left edge of the progress bars.
	BarX = 96
	// BarW is the progress bar track width.
	BarW = 150
	// BarH is the progress bar height.
	BarH = 8
	// ClockBottomMargin is the distance from the canvas bottom to the
	// clock text top.
	ClockBottomMargin = 20
)

// Composer renders snapshots into a canvas it owns for the duration of a
// tick. The canvas is allocated once and overwritten in place every frame.
type Composer struct {
	cv    *canvas.Canvas
	th    theme.Theme
	title string
	now   func() time.Time
}

// Option configures a Composer.
type Option func(*Composer)

// WithTitle overrides the header title.
func WithTitle(title string) Option {
	return func(c *Composer) {
		if title != "" {
			c.title = title
		}
	}
}

// WithClock overrides the wall clock used for the time readout, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) { c.now = now }
}

// New creates a composer drawing into cv with the given theme.
func New(cv *canvas.Canvas, th theme.Theme, opts ...Option) *Composer {
	c := &Composer{
		cv:    cv,
		th:    th,
		title: "PRODUCT SEARCH API",
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Canvas returns the buffer the composer draws into.
func (c *Composer) Canvas() *canvas.Canvas { return c.cv }

// Compose renders one full frame from the snapshot and animation state and
// returns the shared canvas.
func (c *Composer) Compose(snap sampler.Snapshot, st anim.State) *canvas.Canvas {
	c.background(st)
	c.header(st)
	c.statusBoxes(snap, st)
	c.metricsSection(snap, st)
	c.clock(st)
	return c.cv
}

func (c *Composer) background(st anim.State) {
	w, h := c.cv.Width(), c.cv.Height()

	switch c.th.BackgroundMode {
	case theme.BackgroundGradient:
		top := c.th.Background
		bottom := c.th.Surface
		for y := 0; y < h; y++ {
			t := float64(y) / float64(h)
			c.cv.FilledRect(0, y, w, 1, lerpRGBA(top, bottom, t))
		}
	case theme.BackgroundWaveGrid:
		c.cv.Fill(c.th.Background)
		grid := colorx.Glow(c.th.Accent, c.th.GlowDivisor*2)
		// Vertical grid lines scroll with the wave offset.
		for x := -st.Wave % 32; x < w; x += 32 {
			c.cv.Line(x, 0, x, h-1, grid)
		}
		for y := 0; y < h; y += 32 {
			c.cv.Line(0, y, w-1, y, grid)
		}
		// Sine wave across the lower half, phase-shifted per frame.
		wave := colorx.Glow(c.th.Accent, c.th.GlowDivisor)
		phase := float64(st.Frame) * 0.2
		for x := 0; x < w; x++ {
			y := h*3/4 + int(12*math.Sin(float64(x+st.Wave)/24+phase))
			c.cv.Set(x, y, wave)
		}
	default:
		c.cv.Fill(c.th.Background)
	}
}

func (c *Composer) header(st anim.State) {
	col := c.th.Title
	if c.th.RainbowTitle {
		col = colorx.Rainbow(st.Frame * 6)
	}
	c.cv.Text(c.th.TitleFace, MarginX, 8, c.title, col)

	if c.th.DividerGlow {
		c.cv.GlowingLine(MarginX, DividerY, c.cv.Width()-MarginX, DividerY, c.th.Accent, c.th.GlowDivisor)
	} else {
		c.cv.Line(MarginX, DividerY, c.cv.Width()-MarginX, DividerY, c.th.Accent)
	}
}

// StatusBoxRect returns the bounding box of status box i (0 = API, 1 = cache)
// for a canvas of the given width.
func StatusBoxRect(i, canvasWidth int) (x, y, w, h int) {
	w = (canvasWidth - 3*MarginX) / 2
	x = MarginX + i*(w+MarginX)
	return x, StatusTop, w, StatusBoxH
}

// IndicatorAt returns the top-left corner of the online/offline indicator
// inside status box i.
func IndicatorAt(i, canvasWidth int) (x, y int) {
	bx, by, _, bh := StatusBoxRect(i, canvasWidth)
	return bx + 8, by + (bh-IndicatorSize)/2
}

func (c *Composer) statusBoxes(snap sampler.Snapshot, st anim.State) {
	type box struct {
		label string
		up    bool
	}
	boxes := []box{
		{label: "API", up: snap.APIUp},
		{label: "CACHE", up: snap.CacheUp},
	}

	for i, b := range boxes {
		x, y, w, h := StatusBoxRect(i, c.cv.Width())

		switch c.th.BoxStyle {
		case theme.BoxRounded:
			c.cv.RoundedRect(x, y, w, h, c.th.CornerRadius, c.th.Surface)
		case theme.BoxCyber:
			c.cv.CyberBox(x, y, w, h, c.th.Accent, st.Frame, "", nil)
		default:
			c.cv.Line(x, y, x+w, y, c.th.Accent)
			c.cv.Line(x, y+h, x+w, y+h, c.th.Accent)
			c.cv.Line(x, y, x, y+h, c.th.Accent)
			c.cv.Line(x+w, y, x+w, y+h, c.th.Accent)
		}

		col := c.th.Success
		label := "ONLINE"
		if !b.up {
			col = c.th.Error
			label = "OFFLINE"
		}
		if c.th.PulseStatus {
			pulse := 0.7 + 0.3*math.Abs(math.Sin(float64(st.Frame)*0.1))
			col = colorx.Scale(col, pulse)
		}

		ix, iy := IndicatorAt(i, c.cv.Width())
		c.cv.FilledRect(ix, iy, IndicatorSize, IndicatorSize, col)

		c.cv.Text(c.th.SmallFace, ix+IndicatorSize+6, y+4, b.label, c.th.Text)
		c.cv.Text(c.th.SmallFace, ix+IndicatorSize+6, y+h-17, label, col)
	}
}

// RowY returns the top of metric row i for the theme's row pitch.
func RowY(i, pitch int) int {
	return RowStartY + i*pitch
}

func (c *Composer) metricsSection(snap sampler.Snapshot, st anim.State) {
	c.cv.Text(c.th.SmallFace, MarginX, MetricsHeaderY, "SYSTEM", c.th.Title)

	rows := []struct {
		label string
		pct   float64
	}{
		{"CPU", snap.CPUPct},
		{"RAM", snap.MemPct},
		{"DISK", snap.DiskPct},
	}

	for i, row := range rows {
		y := RowY(i, c.th.RowPitch)
		progress := row.pct / 100

		c.cv.LoadingArc(MarginX+ArcRadius, y+ArcRadius, ArcRadius, progress, c.th.Accent, st.Sweep, canvas.ArcOpts{
			ExtraGlowArcs: c.th.ExtraGlowArcs,
			GlowDivisor:   c.th.GlowDivisor,
		})

		c.cv.Text(c.th.SmallFace, MarginX+2*ArcRadius+12, y+4, row.label, c.th.Text)

		c.cv.ProgressBar(BarX, y+ArcRadius-BarH/2, BarW, BarH, progress, c.th.Accent, canvas.BarOpts{
			Gradient:    c.th.GradientBars,
			GlowDivisor: c.th.GlowDivisor,
		})

		pct := fmt.Sprintf("%3.0f%%", row.pct)
		tw := c.cv.MeasureString(c.th.SmallFace, pct)
		c.cv.Text(c.th.SmallFace, c.cv.Width()-MarginX-tw, y+4, pct, c.th.Text)
	}
}

func (c *Composer) clock(st anim.State) {
	readout := c.now().Format("15:04:05")
	tw := c.cv.MeasureString(c.th.TitleFace, readout)
	x := (c.cv.Width() - tw) / 2
	y := c.cv.Height() - ClockBottomMargin

	col := c.th.Text
	if c.th.RainbowClock {
		col = colorx.Rainbow(st.Frame * 6)
	}
	if c.th.ClockShadow {
		c.cv.Text(c.th.TitleFace, x+1, y+1, readout, colorx.Glow(col, c.th.GlowDivisor))
	}
	c.cv.Text(c.th.TitleFace, x, y, readout, col)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
