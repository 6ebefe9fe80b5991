package loop

import (
	"context"
	"fmt"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidash/pidash/internal/anim"
	"github.com/pidash/pidash/internal/canvas"
	"github.com/pidash/pidash/internal/display"
	"github.com/pidash/pidash/internal/logger"
	"github.com/pidash/pidash/internal/sampler"
)

type stubSampler struct {
	snap  sampler.Snapshot
	calls int
}

func (s *stubSampler) Sample(ctx context.Context) sampler.Snapshot {
	s.calls++
	return s.snap
}

// stubComposer optionally panics on scripted ticks.
type stubComposer struct {
	cv       *canvas.Canvas
	calls    int
	panicOn  map[int]bool
	lastAnim anim.State
}

func (c *stubComposer) Compose(snap sampler.Snapshot, st anim.State) *canvas.Canvas {
	c.calls++
	c.lastAnim = st
	if c.panicOn[c.calls] {
		panic("scripted compose failure")
	}
	return c.cv
}

// recorder tracks slept durations and cancels after a tick budget.
type recorder struct {
	slept  []time.Duration
	budget int
	cancel context.CancelFunc
}

func (r *recorder) sleep(ctx context.Context, d time.Duration) error {
	r.slept = append(r.slept, d)
	if len(r.slept) >= r.budget {
		r.cancel()
	}
	return ctx.Err()
}

func newTestLoop(t *testing.T, comp *stubComposer, sink display.Sink, budget int) (*Loop, *recorder, *stubSampler, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	rec := &recorder{budget: budget, cancel: cancel}
	samp := &stubSampler{}
	l := New(anim.NewClock(320), samp, comp, sink, 50*time.Millisecond,
		WithSleeper(rec.sleep),
		WithFallbackInterval(time.Second))
	return l, rec, samp, ctx
}

func okSink() display.Sink {
	return display.Func(func(*image.RGBA) error { return nil })
}

func TestRunTicksUntilCancelled(t *testing.T) {
	comp := &stubComposer{cv: canvas.New(320, 240)}
	l, rec, samp, ctx := newTestLoop(t, comp, okSink(), 3)

	err := l.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 3, samp.calls)
	assert.Equal(t, 3, comp.calls)
	for _, d := range rec.slept {
		assert.Equal(t, 50*time.Millisecond, d, "healthy ticks sleep the cadence")
	}
}

func TestComposePanicDoesNotKillLoop(t *testing.T) {
	comp := &stubComposer{cv: canvas.New(320, 240), panicOn: map[int]bool{1: true}}
	log := logger.NewBufferLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{budget: 2, cancel: cancel}

	clock := anim.NewClock(320)
	l := New(clock, &stubSampler{}, comp, okSink(), 50*time.Millisecond,
		WithSleeper(rec.sleep),
		WithFallbackInterval(time.Second),
		WithLogger(log))

	err := l.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// The failing tick and the next one both advanced the clock.
	assert.Equal(t, 2, clock.State().Frame, "clock advanced exactly twice")
	assert.Equal(t, 2, comp.calls, "loop retried after the panic")

	require.Len(t, rec.slept, 2)
	assert.Equal(t, time.Second, rec.slept[0], "failed tick sleeps the fallback interval")
	assert.Equal(t, 50*time.Millisecond, rec.slept[1], "recovered tick sleeps the cadence")

	assert.True(t, log.HasLevel("error"))
}

func TestSinkErrorUsesFallbackDelay(t *testing.T) {
	comp := &stubComposer{cv: canvas.New(320, 240)}
	failing := display.Func(func(*image.RGBA) error {
		return fmt.Errorf("spi write failed")
	})

	l, rec, _, ctx := newTestLoop(t, comp, failing, 2)
	err := l.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	for _, d := range rec.slept {
		assert.Equal(t, time.Second, d)
	}
}

func TestAnimationStateReachesComposer(t *testing.T) {
	comp := &stubComposer{cv: canvas.New(320, 240)}
	l, _, _, ctx := newTestLoop(t, comp, okSink(), 3)

	err := l.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 3, comp.lastAnim.Frame)
	assert.Equal(t, 18, comp.lastAnim.Sweep)
	assert.Equal(t, 6, comp.lastAnim.Wave)
}

func TestRunReturnsImmediatelyWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	comp := &stubComposer{cv: canvas.New(320, 240)}
	clock := anim.NewClock(320)
	l := New(clock, &stubSampler{}, comp, okSink(), time.Second)

	err := l.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, comp.calls)
	assert.Equal(t, 0, clock.State().Frame)
}
