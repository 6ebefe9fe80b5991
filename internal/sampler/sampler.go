// Package sampler gathers one tick's worth of health and utilization data
// into an immutable Snapshot.
//
// Failure isolation is per probe: a probe that errors, times out, or panics
// yields false for its backend without blocking or altering the others, and
// Sample itself never returns an error. Probe errors are coerced to booleans
// here, at the snapshot boundary, and nowhere else.
package sampler

import (
	"context"
	"sync"
	"time"

	"github.com/pidash/pidash/internal/logger"
	"github.com/pidash/pidash/internal/metrics"
	"github.com/pidash/pidash/internal/probe"
)

// Snapshot is the immutable bundle of one tick's readings. A failed probe
// shows up as false; there is no "unknown" state and no stale carry-over.
type Snapshot struct {
	APIUp   bool
	CacheUp bool

	CPUPct  float64
	MemPct  float64
	DiskPct float64

	SampledAt time.Time
}

// Sampler polls the two backend probes and the metrics provider.
type Sampler struct {
	api      probe.Prober
	cache    probe.Prober
	provider metrics.Provider
	log      logger.Logger
	parallel bool
	now      func() time.Time
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithLogger sets the logger used for probe failure diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(s *Sampler) { s.log = log }
}

// WithParallelProbes runs both backend probes concurrently. The join is
// bounded by the probes' own timeouts, so one slow backend cannot stall a
// tick beyond the larger of the two.
func WithParallelProbes() Option {
	return func(s *Sampler) { s.parallel = true }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Sampler) { s.now = now }
}

// New creates a sampler over the given collaborators.
func New(api, cache probe.Prober, provider metrics.Provider, opts ...Option) *Sampler {
	s := &Sampler{
		api:      api,
		cache:    cache,
		provider: provider,
		log:      logger.Noop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample produces a fresh Snapshot. It never returns an error and never
// panics; every failure is coerced to a down/zero reading.
func (s *Sampler) Sample(ctx context.Context) Snapshot {
	var apiRes, cacheRes probe.Result

	if s.parallel {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			apiRes = s.check(ctx, s.api)
		}()
		go func() {
			defer wg.Done()
			cacheRes = s.check(ctx, s.cache)
		}()
		wg.Wait()
	} else {
		apiRes = s.check(ctx, s.api)
		cacheRes = s.check(ctx, s.cache)
	}

	s.logResult(s.api.Name(), apiRes)
	s.logResult(s.cache.Name(), cacheRes)

	usage := s.provider.Read()

	return Snapshot{
		APIUp:     apiRes.Up,
		CacheUp:   cacheRes.Up,
		CPUPct:    clampPct(usage.CPU),
		MemPct:    clampPct(usage.Mem),
		DiskPct:   clampPct(usage.Disk),
		SampledAt: s.now(),
	}
}

// check runs one probe with panic isolation.
func (s *Sampler) check(ctx context.Context, p probe.Prober) (res probe.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = probe.Result{Err: panicError{val: r}}
		}
	}()
	return p.Check(ctx)
}

func (s *Sampler) logResult(name string, res probe.Result) {
	switch {
	case res.Up:
		s.log.Debug("probe %s: up", name)
	case res.TimedOut():
		s.log.Warn("probe %s: timed out", name)
	case res.Err != nil:
		s.log.Debug("probe %s: down: %v", name, res.Err)
	default:
		s.log.Debug("probe %s: down", name)
	}
}

type panicError struct {
	val interface{}
}

func (e panicError) Error() string {
	return "probe panicked"
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
