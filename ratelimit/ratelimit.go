// Package ratelimit provides an [http.RoundTripper] that paces
// outbound API calls with a token-bucket limiter. It delays the single
// transport invocation of a call; it never retries one.
package ratelimit

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrMustNotBeZero = errors.New("must be greater than zero")
	ErrWaitingFailed = errors.New("limiter waiting failed")
	ErrContextEnded  = errors.New("rate limit context ended")
)

// Config defines the limiter's requests per second and burst capacity.
type Config struct {
	RPS   int
	Burst int
}

// limiter restricts outbound calls using the time/rate token bucket.
type limiter struct {
	bucket *rate.Limiter
	rps    int
	burst  int
	next   http.RoundTripper
	logFn  func() *slog.Logger
}

// NewRoundTripper returns an http.RoundTripper that paces outbound
// requests. logFn lazily resolves the logger at request time, so the
// order client options are applied in doesn't matter. A nil logFn, or
// one returning nil, skips the bucket-state logging.
func NewRoundTripper(rps, burst int, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if rps <= 0 || burst <= 0 {
		return nil, fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, ErrMustNotBeZero)
	}

	l := &limiter{
		bucket: rate.NewLimiter(rate.Limit(rps), burst),
		rps:    rps,
		burst:  burst,
		next:   next,
		logFn:  logFn,
	}

	return l, nil
}

func (l *limiter) RoundTrip(r *http.Request) (*http.Response, error) {
	if l.bucket == nil {
		return l.next.RoundTrip(r)
	}

	ctx := r.Context()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	var waited time.Duration
	var logger *slog.Logger
	if l.logFn != nil {
		logger = l.logFn()
	}
	if logger != nil && !l.bucket.Allow() {
		logger.Info("rate limit tokens exhausted", "rate", l.rps, "burst", l.burst, "path", r.URL.Path)

		defer func() {
			logger.Info("rate limit wait complete", "waited", waited.String(), "rate", l.rps, "burst", l.burst)
		}()
	}

	start := time.Now()

	err := l.bucket.Wait(ctx)
	waited = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if err := ctx.Err(); err != nil { // Check the context hasn't expired again.
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return l.next.RoundTrip(r)
}
