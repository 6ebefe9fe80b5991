package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// HTTP probes a web endpoint. The backend is considered up iff it answers
// with a 2xx status within the timeout.
type HTTP struct {
	name    string
	url     string
	timeout time.Duration
	client  *http.Client
}

// NewHTTP creates a probe for the given URL. A zero timeout uses
// DefaultTimeout.
func NewHTTP(name, url string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTP{
		name:    name,
		url:     url,
		timeout: timeout,
		// The probe owns its client so keep-alive connections are reused
		// across ticks.
		client: &http.Client{},
	}
}

// Name implements Prober.
func (h *HTTP) Name() string { return h.name }

// Check implements Prober.
func (h *HTTP) Check(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return Result{Err: err}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		// Unwrap url.Error so TimedOut sees context.DeadlineExceeded.
		if ctx.Err() != nil {
			return Result{Err: ctx.Err()}
		}
		return Result{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Err: fmt.Errorf("unexpected status %d from %s", resp.StatusCode, h.url)}
	}
	return Result{Up: true}
}
