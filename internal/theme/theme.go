// Package theme defines the visual presets for the status panel.
//
// The three presets differ only in palette and animation richness; the
// composer reads every styling decision from the Theme value so a single
// rendering engine serves all of them. Constants that vary between presets
// (glow divisor, row pitch, corner radius) are deliberately per-theme fields
// rather than unified values.
package theme

import (
	"fmt"
	"image/color"
	"sort"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"

	"github.com/pidash/pidash/internal/errors"
)

// BackgroundMode selects how the frame background is painted.
type BackgroundMode int

const (
	// BackgroundSolid fills the canvas with a single color.
	BackgroundSolid BackgroundMode = iota
	// BackgroundGradient paints a vertical two-stop gradient.
	BackgroundGradient
	// BackgroundWaveGrid paints a scrolling grid with a sine wave overlay.
	BackgroundWaveGrid
)

// BoxStyle selects the chrome drawn around the status boxes.
type BoxStyle int

const (
	// BoxPlain outlines the box with a 1px rectangle.
	BoxPlain BoxStyle = iota
	// BoxRounded fills a rounded rectangle behind the content.
	BoxRounded
	// BoxCyber draws pulsing L-shaped corner brackets.
	BoxCyber
)

// Theme is an immutable bundle of colors, fonts, and effect toggles,
// selected once at startup.
type Theme struct {
	Name string

	Background color.RGBA
	Surface    color.RGBA
	Title      color.RGBA
	Text       color.RGBA
	Success    color.RGBA
	Error      color.RGBA
	Accent     color.RGBA

	// GlowDivisor dims colors for halo rendering (3 or 4 across presets).
	GlowDivisor int
	// RowPitch is the vertical distance between metric rows in pixels.
	RowPitch int
	// CornerRadius for rounded box chrome; 0 disables rounding.
	CornerRadius int
	// Interval is the refresh cadence for this theme.
	Interval time.Duration

	BackgroundMode BackgroundMode
	BoxStyle       BoxStyle

	RainbowTitle  bool
	RainbowClock  bool
	ClockShadow   bool
	PulseStatus   bool
	DividerGlow   bool
	GradientBars  bool
	ExtraGlowArcs int

	TitleFace font.Face
	SmallFace font.Face
}

var presets = map[string]Theme{
	"plain": {
		Name:           "plain",
		Background:     color.RGBA{A: 255},
		Surface:        color.RGBA{R: 20, G: 20, B: 20, A: 255},
		Title:          color.RGBA{B: 255, A: 255},
		Text:           color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Success:        color.RGBA{G: 255, A: 255},
		Error:          color.RGBA{R: 255, A: 255},
		Accent:         color.RGBA{B: 255, A: 255},
		GlowDivisor:    3,
		RowPitch:       30,
		Interval:       time.Second,
		BackgroundMode: BackgroundSolid,
		BoxStyle:       BoxPlain,
		TitleFace:      inconsolata.Bold8x16,
		SmallFace:      basicfont.Face7x13,
	},
	"modern": {
		Name:           "modern",
		Background:     color.RGBA{R: 10, G: 10, B: 15, A: 255},
		Surface:        color.RGBA{R: 18, G: 18, B: 26, A: 255},
		Title:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Text:           color.RGBA{R: 180, G: 180, B: 208, A: 255},
		Success:        color.RGBA{R: 57, G: 255, B: 20, A: 255},
		Error:          color.RGBA{R: 255, B: 85, A: 255},
		Accent:         color.RGBA{G: 255, B: 255, A: 255},
		GlowDivisor:    3,
		RowPitch:       45,
		CornerRadius:   6,
		Interval:       50 * time.Millisecond,
		BackgroundMode: BackgroundGradient,
		BoxStyle:       BoxRounded,
		ClockShadow:    true,
		PulseStatus:    true,
		DividerGlow:    true,
		GradientBars:   true,
		ExtraGlowArcs:  1,
		TitleFace:      inconsolata.Bold8x16,
		SmallFace:      basicfont.Face7x13,
	},
	"cyber": {
		Name:           "cyber",
		Background:     color.RGBA{R: 5, B: 10, A: 255},
		Surface:        color.RGBA{R: 10, G: 5, B: 20, A: 255},
		Title:          color.RGBA{G: 255, B: 255, A: 255},
		Text:           color.RGBA{R: 200, G: 255, B: 255, A: 255},
		Success:        color.RGBA{R: 57, G: 255, B: 20, A: 255},
		Error:          color.RGBA{R: 255, G: 46, B: 151, A: 255},
		Accent:         color.RGBA{R: 191, G: 64, B: 255, A: 255},
		GlowDivisor:    4,
		RowPitch:       45,
		Interval:       50 * time.Millisecond,
		BackgroundMode: BackgroundWaveGrid,
		BoxStyle:       BoxCyber,
		RainbowTitle:   true,
		RainbowClock:   true,
		ClockShadow:    true,
		PulseStatus:    true,
		DividerGlow:    true,
		GradientBars:   true,
		ExtraGlowArcs:  2,
		TitleFace:      inconsolata.Bold8x16,
		SmallFace:      basicfont.Face7x13,
	},
}

// DefaultName is the preset used when the config does not choose one.
const DefaultName = "plain"

// ByName returns the named preset.
func ByName(name string) (Theme, error) {
	t, ok := presets[name]
	if !ok {
		return Theme{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown theme '%s'", name),
			fmt.Sprintf("Pick one of: %v", Names()))
	}
	return t, nil
}

// Names lists the preset names in stable order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
