// Package anim holds the animation phase state that gives the dashboard its
// motion: a frame counter, a rotating sweep angle, and a scrolling wave offset.
//
// The clock is advanced exactly once per refresh tick, whether or not that
// tick's sampling or rendering succeeded, so animation never stutters when a
// backend goes away.
package anim

// State is one observation of the animation counters.
type State struct {
	// Frame counts ticks mod 60.
	Frame int
	// Sweep is an angle in degrees, advancing 6° per tick (one revolution
	// every 60 ticks).
	Sweep int
	// Wave is a horizontal pixel offset, advancing 2px per tick mod the
	// canvas width.
	Wave int
}

// Clock owns the mutable animation counters. Not safe for concurrent use;
// the refresh loop is its only writer.
type Clock struct {
	state       State
	canvasWidth int
}

// NewClock creates a clock for a canvas of the given pixel width.
// Width must be positive; the wave offset wraps at this bound.
func NewClock(canvasWidth int) *Clock {
	if canvasWidth <= 0 {
		canvasWidth = 1
	}
	return &Clock{canvasWidth: canvasWidth}
}

// Advance steps every counter once and returns the updated state.
func (c *Clock) Advance() State {
	c.state.Frame = (c.state.Frame + 1) % 60
	c.state.Sweep = (c.state.Sweep + 6) % 360
	c.state.Wave = (c.state.Wave + 2) % c.canvasWidth
	return c.state
}

// State returns the current counters without advancing.
func (c *Clock) State() State {
	return c.state
}
