package ratelimit_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/trellis-ml/trellis-go/ratelimit"
)

type stubRoundTripper struct {
	calls int
}

func (s *stubRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	s.calls++
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func TestNewRoundTripper_RejectsZeroConfig(t *testing.T) {
	tests := []struct {
		name  string
		rps   int
		burst int
	}{
		{"zero rps", 0, 1},
		{"zero burst", 1, 0},
		{"negative rps", -1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ratelimit.NewRoundTripper(tc.rps, tc.burst, nil, http.DefaultTransport)
			if !errors.Is(err, ratelimit.ErrMustNotBeZero) {
				t.Errorf("expected ErrMustNotBeZero, got: %v", err)
			}
		})
	}
}

func TestRoundTrip_PassesThrough(t *testing.T) {
	next := &stubRoundTripper{}

	rt, err := ratelimit.NewRoundTripper(100, 10, nil, next)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://trellis.test/health", nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}

	resp, err := rt.RoundTrip(req)
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if next.calls != 1 {
		t.Errorf("next invoked %d times, want 1", next.calls)
	}
}

func TestRoundTrip_EndedContext(t *testing.T) {
	next := &stubRoundTripper{}

	rt, err := ratelimit.NewRoundTripper(1, 1, nil, next)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://trellis.test/health", nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}

	if _, err := rt.RoundTrip(req); !errors.Is(err, ratelimit.ErrContextEnded) {
		t.Errorf("expected ErrContextEnded, got: %v", err)
	}
	if next.calls != 0 {
		t.Errorf("next invoked %d times, want 0", next.calls)
	}
}

func TestRoundTrip_DelaysBeyondBurst(t *testing.T) {
	next := &stubRoundTripper{}

	rt, err := ratelimit.NewRoundTripper(10, 1, nil, next)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	start := time.Now()
	for i := 0; i < 2; i++ {
		req, rerr := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://trellis.test/x", nil)
		if rerr != nil {
			t.Fatalf("building request: %v", rerr)
		}
		if _, rerr := rt.RoundTrip(req); rerr != nil {
			t.Fatalf("round trip: %v", rerr)
		}
	}

	// Burst of 1 at 10 rps: the second call must wait roughly 100ms.
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("two calls finished in %s, limiter did not delay", elapsed)
	}
}
