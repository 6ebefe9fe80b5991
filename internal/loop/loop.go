// Package loop drives the refresh cadence: advance the animation clock,
// sample backend health, compose a frame, present it to the display sink.
//
// The whole tick body sits inside a failure boundary. A panic in
// composition or an error from the sink is logged and followed by a short
// fallback delay, then the loop carries on; the display keeps the last
// good frame rather than going blank. The animation clock advances on
// every tick, failed or not, so recovery resumes mid-animation instead of
// snapping backwards.
package loop

import (
	"context"
	"time"

	"github.com/pidash/pidash/internal/anim"
	"github.com/pidash/pidash/internal/canvas"
	"github.com/pidash/pidash/internal/display"
	"github.com/pidash/pidash/internal/errors"
	"github.com/pidash/pidash/internal/logger"
	"github.com/pidash/pidash/internal/sampler"
)

// FallbackInterval is slept after a failed tick before retrying.
const FallbackInterval = time.Second

// Sampler produces one snapshot per tick.
type Sampler interface {
	Sample(ctx context.Context) sampler.Snapshot
}

// Composer renders a snapshot plus animation state into the shared canvas.
type Composer interface {
	Compose(snap sampler.Snapshot, st anim.State) *canvas.Canvas
}

// Loop owns the tick cadence and the failure boundary around each tick.
type Loop struct {
	clock    *anim.Clock
	sampler  Sampler
	composer Composer
	sink     display.Sink
	interval time.Duration
	fallback time.Duration
	log      logger.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the loop's logger.
func WithLogger(log logger.Logger) Option {
	return func(l *Loop) { l.log = log }
}

// WithFallbackInterval overrides the post-failure delay.
func WithFallbackInterval(d time.Duration) Option {
	return func(l *Loop) { l.fallback = d }
}

// WithSleeper replaces the sleep function, for tests.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(l *Loop) { l.sleep = sleep }
}

// New creates a refresh loop ticking at interval.
func New(clock *anim.Clock, s Sampler, c Composer, sink display.Sink, interval time.Duration, opts ...Option) *Loop {
	l := &Loop{
		clock:    clock,
		sampler:  s,
		composer: c,
		sink:     sink,
		interval: interval,
		fallback: FallbackInterval,
		log:      logger.Noop(),
		sleep:    sleepCtx,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run ticks until ctx is cancelled and returns ctx.Err(). It never returns
// because of a tick failure.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		st := l.clock.Advance()
		err := l.tick(ctx, st)

		delay := l.interval
		if err != nil {
			l.log.Error("tick failed: %v", err)
			delay = l.fallback
		}
		if serr := l.sleep(ctx, delay); serr != nil {
			return serr
		}
	}
}

// tick runs one sample-compose-present cycle with panic recovery.
func (l *Loop) tick(ctx context.Context, st anim.State) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.ErrRender,
				"Panic during frame render", "")
			l.log.Error("render panic: %v", r)
		}
	}()

	snap := l.sampler.Sample(ctx)
	cv := l.composer.Compose(snap, st)

	if perr := l.sink.Present(cv.Image()); perr != nil {
		return errors.WrapWithCode(perr, errors.ErrDisplay,
			"Could not present frame", "")
	}
	l.log.Debug("tick ok: api=%v cache=%v cpu=%.0f%%", snap.APIUp, snap.CacheUp, snap.CPUPct)
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
