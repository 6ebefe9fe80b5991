// Package probe implements bounded-time health checks against the dashboard's
// backends: an HTTP API and a redis cache.
//
// Probes report a typed Result rather than a bare bool so callers (and tests)
// can tell a timeout apart from an explicit negative answer. The sampler
// coerces the Result to a boolean at snapshot construction; errors never
// travel further than that.
package probe

import (
	"context"
	"errors"
	"time"
)

// DefaultTimeout bounds a single probe call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Result is the outcome of one probe call.
type Result struct {
	// Up is true only for a definitive healthy answer.
	Up bool
	// Err records why the probe failed, nil when Up.
	Err error
}

// TimedOut reports whether the probe failed by exceeding its deadline.
func (r Result) TimedOut() bool {
	return errors.Is(r.Err, context.DeadlineExceeded)
}

// Prober is a single backend health check.
type Prober interface {
	// Name identifies the probe in logs and on the panel (e.g. "api").
	Name() string
	// Check runs one bounded health check. It must return within the
	// probe's timeout and must not panic.
	Check(ctx context.Context) Result
}
