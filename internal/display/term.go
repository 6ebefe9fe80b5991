package display

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// TermSink renders frames into a terminal using the Unicode upper-half-block
// glyph, packing two pixel rows into each character cell. Useful for checking
// a theme without panel hardware.
type TermSink struct {
	out     io.Writer
	profile termenv.Profile
	// maxCols caps the rendered width; wider frames are downsampled by
	// integer column skipping. Zero means no cap.
	maxCols int
	homed   bool
}

// NewTermSink creates a sink writing ANSI frames to out with the given
// color profile. maxCols of 0 renders one terminal column per pixel column.
func NewTermSink(out io.Writer, profile termenv.Profile, maxCols int) *TermSink {
	return &TermSink{out: out, profile: profile, maxCols: maxCols}
}

// Render returns one frame as an ANSI string without writing it.
func (s *TermSink) Render(frame *image.RGBA) string {
	b := frame.Bounds()
	step := 1
	if s.maxCols > 0 && b.Dx() > s.maxCols {
		step = (b.Dx() + s.maxCols - 1) / s.maxCols
	}

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 * step {
		for x := b.Min.X; x < b.Max.X; x += step {
			top := frame.RGBAAt(x, y)
			bottom := top
			if y+step < b.Max.Y {
				bottom = frame.RGBAAt(x, y+step)
			}
			cell := termenv.String("▀").
				Foreground(s.profile.FromColor(top)).
				Background(s.profile.FromColor(bottom))
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Present implements Sink. The cursor is homed between frames so successive
// presents overdraw in place rather than scrolling.
func (s *TermSink) Present(frame *image.RGBA) error {
	if s.homed {
		step := 1
		if s.maxCols > 0 && frame.Bounds().Dx() > s.maxCols {
			step = (frame.Bounds().Dx() + s.maxCols - 1) / s.maxCols
		}
		rows := (frame.Bounds().Dy() + 2*step - 1) / (2 * step)
		if _, err := fmt.Fprintf(s.out, "\x1b[%dA", rows); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(s.out, s.Render(frame)); err != nil {
		return err
	}
	s.homed = true
	return nil
}

// Close implements Sink.
func (s *TermSink) Close() error { return nil }
