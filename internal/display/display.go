// Package display defines the sink a composed frame is handed to, and the
// in-repo sink implementations: a PNG file writer and an ANSI terminal
// renderer. The physical SPI display driver lives behind the same interface
// but outside this repository.
package display

import "image"

// Sink consumes composed frames. Present receives the canvas buffer by
// read-only reference immediately after composition; implementations must
// not retain it past the call, as the composer overwrites it on the next
// tick.
type Sink interface {
	Present(frame *image.RGBA) error
	Close() error
}

// Func adapts a plain function to a Sink, for tests and channel fan-outs.
type Func func(frame *image.RGBA) error

// Present implements Sink.
func (f Func) Present(frame *image.RGBA) error { return f(frame) }

// Close implements Sink.
func (f Func) Close() error { return nil }
