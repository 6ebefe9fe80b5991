package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceArithmetic(t *testing.T) {
	const width = 320

	tests := []struct {
		ticks int
	}{
		{1},
		{10},
		{59},
		{60},
		{61},
		{180},
		{1000},
	}

	for _, tt := range tests {
		c := NewClock(width)
		var last State
		for i := 0; i < tt.ticks; i++ {
			last = c.Advance()
		}

		assert.Equal(t, tt.ticks%60, last.Frame, "frame after %d ticks", tt.ticks)
		assert.Equal(t, (6*tt.ticks)%360, last.Sweep, "sweep after %d ticks", tt.ticks)
		assert.Equal(t, (2*tt.ticks)%width, last.Wave, "wave after %d ticks", tt.ticks)
	}
}

func TestReplayDeterminism(t *testing.T) {
	a := NewClock(320)
	b := NewClock(320)
	for i := 0; i < 137; i++ {
		a.Advance()
		b.Advance()
	}
	assert.Equal(t, a.State(), b.State())
}

func TestStateDoesNotAdvance(t *testing.T) {
	c := NewClock(320)
	c.Advance()
	s1 := c.State()
	s2 := c.State()
	assert.Equal(t, s1, s2)
}

func TestZeroWidthClockIsSafe(t *testing.T) {
	c := NewClock(0)
	for i := 0; i < 5; i++ {
		c.Advance()
	}
	assert.Equal(t, 0, c.State().Wave)
}
