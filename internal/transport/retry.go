// Package transport provides the HTTP client shared by every outbound request,
// with exponential-backoff retries on transient failures.
package transport

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/avast/retry-go"
)

// RetryPolicy controls retries of transient HTTP failures.
type RetryPolicy struct {
	Attempts     int           // total tries, including the first
	InitialDelay time.Duration // delay before the first retry
	Factor       float64       // multiplier applied per retry
	MaxDelay     time.Duration // cap on a single delay
	Statuses     []int         // response codes that trigger a retry
}

// DefaultRetryPolicy returns the policy used when the config has none.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:     4,
		InitialDelay: 5 * time.Second,
		Factor:       2,
		MaxDelay:     40 * time.Second,
		Statuses:     []int{http.StatusTooManyRequests, 500, 502, 503, 504},
	}
}

// Delay returns the wait before retry n (0-based).
func (p RetryPolicy) Delay(n uint) time.Duration {
	factor := p.Factor
	if factor < 1 {
		factor = 1
	}
	d := time.Duration(float64(p.InitialDelay) * math.Pow(factor, float64(n)))
	if p.MaxDelay > 0 && (d > p.MaxDelay || d < 0) {
		return p.MaxDelay
	}
	return d
}

// statusError marks a response whose status is in the retry set.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("retryable status %d", e.code)
}

// errBodyNotReplayable is returned when a request body cannot be re-sent.
var errBodyNotReplayable = errors.New("request body cannot be replayed")

// RetryTransport wraps an http.RoundTripper with retry logic.
// When every attempt ends in a retryable status, the last response is
// returned unchanged so callers can still inspect it (e.g. 429).
type RetryTransport struct {
	base     http.RoundTripper
	policy   RetryPolicy
	statuses map[int]bool
	log      *slog.Logger
}

// NewRetryTransport creates a RetryTransport around base.
func NewRetryTransport(base http.RoundTripper, policy RetryPolicy, log *slog.Logger) *RetryTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if log == nil {
		log = slog.Default()
	}
	statuses := make(map[int]bool, len(policy.Statuses))
	for _, code := range policy.Statuses {
		statuses[code] = true
	}
	return &RetryTransport{base: base, policy: policy, statuses: statuses, log: log}
}

// NewClient returns an http.Client using a RetryTransport.
func NewClient(policy RetryPolicy, timeout time.Duration, log *slog.Logger) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewRetryTransport(http.DefaultTransport, policy, log),
	}
}

// RoundTrip implements http.RoundTripper.
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	attempts := t.policy.Attempts
	if attempts <= 1 {
		return t.base.RoundTrip(req)
	}

	var (
		resp    *http.Response
		attempt int
	)
	err := retry.Do(
		func() error {
			attempt++
			r, err := replayable(req, attempt)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			res, err := t.base.RoundTrip(r)
			if err != nil {
				if req.Context().Err() != nil {
					return retry.Unrecoverable(err)
				}
				return err
			}
			if t.statuses[res.StatusCode] && attempt < attempts {
				_, _ = io.Copy(io.Discard, res.Body)
				_ = res.Body.Close()
				return &statusError{code: res.StatusCode}
			}
			resp = res
			return nil
		},
		retry.Attempts(uint(attempts)),
		retry.Context(req.Context()),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			return t.policy.Delay(n)
		}),
		retry.OnRetry(func(n uint, err error) {
			t.log.Debug("retrying request",
				"method", req.Method,
				"host", req.URL.Host,
				"path", req.URL.Path,
				"attempt", n+1,
				"error", err)
		}),
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// replayable returns the request to send on the given attempt, rewinding
// the body for attempts after the first.
func replayable(req *http.Request, attempt int) (*http.Request, error) {
	if attempt == 1 || req.Body == nil || req.Body == http.NoBody {
		return req, nil
	}
	if req.GetBody == nil {
		return nil, errBodyNotReplayable
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("rewind body: %w", err)
	}
	r := req.Clone(req.Context())
	r.Body = body
	return r, nil
}
