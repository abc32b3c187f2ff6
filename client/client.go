// Package client implements the request pipeline shared by every
// resource method of the Trellis SDK: bearer-credential injection,
// timeout-bound cancellable execution, URL and query construction,
// multipart upload encoding, and uniform response/error decoding.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trellis-ml/trellis-go/ratelimit"
)

const defaultTimeout = 30 * time.Second

// maxErrBodySize caps the amount of response body read when building
// an error for an unexpected status code. This prevents unbounded
// memory usage when a large response arrives with a wrong status.
const maxErrBodySize = 64 << 10 // 64KB

// Doer is the pluggable transport the executor calls through. The
// default is an [http.Client]; substitute anything satisfying the
// interface for testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client executes requests against the Trellis service. Any number of
// calls may be in flight concurrently on one Client; the bearer
// credential is the only shared mutable state.
type Client struct {
	transport Doer
	baseURL   string
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
	tracer    trace.Tracer

	mu    sync.RWMutex
	token string
}

// Build constructs a Client with the provided options. [WithBaseURL]
// is required; everything else has defaults.
func Build(optFns ...Option) (*Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.baseURL == "" {
		return nil, errors.New("base url must not be empty")
	}

	c := &Client{
		baseURL: strings.TrimRight(opts.baseURL, "/"),
		timeout: defaultTimeout,
		token:   opts.token,
		logger:  slog.Default(),
		tracer:  otel.Tracer("github.com/trellis-ml/trellis-go/client"),
	}

	if opts.timeout != nil {
		c.timeout = *opts.timeout
	}
	if opts.userAgent != "" {
		c.userAgent = opts.userAgent
	}
	if opts.logger != nil {
		c.logger = opts.logger
	}

	switch {
	case opts.transport != nil:
		if opts.limit != nil {
			return nil, errors.New("rate limiting requires the built-in http transport")
		}
		c.transport = opts.transport
	default:
		hc := opts.hc
		if hc == nil {
			hc = &http.Client{
				Transport: &http.Transport{
					DialContext: (&net.Dialer{
						Timeout: 5 * time.Second,
					}).DialContext,
					MaxIdleConns: 5,
				},
			}
		}

		if opts.limit != nil {
			base := hc.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			rt, err := ratelimit.NewRoundTripper(opts.limit.RPS, opts.limit.Burst, func() *slog.Logger { return c.logger }, base)
			if err != nil {
				return nil, fmt.Errorf("configuring rate limit: %w", err)
			}
			hc.Transport = rt
		}

		c.transport = hc
	}

	return c, nil
}

// SetToken replaces the bearer credential. The replacement affects
// only calls that build their headers afterward; in-flight calls keep
// the credential they already read.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer credential.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// Call executes one request against the service. The call is bounded
// by the configured timeout; the transport is invoked exactly once and
// never retried. Outcomes map onto the error taxonomy: nil on a 2xx
// response, [APIError] for a non-2xx response, [ParseError] for a 2xx
// response with an undecodable body, and errors wrapping [ErrTimeout]
// or [ErrTransport] when no response was obtained.
func (c *Client) Call(ctx context.Context, method, path string, optFns ...CallOption) error {
	var opts callOpts
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return err
		}
	}

	if opts.jsonBody != nil && opts.multipart != nil {
		return errors.New("a call cannot carry both a json and a multipart body")
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case opts.jsonBody != nil:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(opts.jsonBody); err != nil {
			return fmt.Errorf("encoding request payload: %w", err)
		}
		body = &buf
		contentType = "application/json"
	case opts.multipart != nil:
		encoded, err := opts.multipart.encode()
		if err != nil {
			return fmt.Errorf("encoding multipart payload: %w", err)
		}
		body = bytes.NewReader(encoded.body)
		contentType = encoded.contentType
	}

	// Every call owns its own timer; cancel releases it on all exit paths.
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "client.call", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, opts.query), body)
	if err != nil {
		return fmt.Errorf("instantiating request: %w", err)
	}

	req.Header.Set("X-Request-Id", uuid.New().String())
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}

	// Derived headers never clobber an explicit caller-supplied one.
	if req.Header.Get("Authorization") == "" {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.transport.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s: %w", ErrTimeout, c.timeout, err)
		} else {
			err = fmt.Errorf("%w: %w", ErrTransport, err)
		}
		span.RecordError(err)

		return err
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, derr := io.Copy(io.Discard, resp.Body); derr != nil {
				c.logger.Error("failed to discard unused body", "error", derr)
			}
		}
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error("failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := decodeError(resp)
		discardBody = false
		span.RecordError(apiErr)

		return apiErr
	}

	switch {
	case opts.raw != nil:
		b, rerr := io.ReadAll(resp.Body)
		if rerr != nil {
			return fmt.Errorf("reading response body: %w", rerr)
		}
		discardBody = false
		*opts.raw = b
	case opts.result != nil:
		b, rerr := io.ReadAll(resp.Body)
		if rerr != nil {
			return fmt.Errorf("reading response body: %w", rerr)
		}
		discardBody = false

		// An empty success body leaves the destination untouched.
		if len(b) == 0 {
			return nil
		}

		if jerr := json.Unmarshal(b, opts.result); jerr != nil {
			perr := &ParseError{
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("%w: %w", ErrDecode, jerr),
			}
			span.RecordError(perr)

			return perr
		}
	}

	return nil
}

// buildURL joins the base address, path, and encoded query parameters.
func (c *Client) buildURL(path string, q *Query) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := c.baseURL + path
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	return u
}

// decodeError turns a non-2xx response into an *APIError. The body
// text is preserved: valid JSON becomes the structured body, anything
// else is wrapped as {"detail": <raw text>}.
func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Err:        ErrUnexpectedStatus,
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		apiErr.Err = fmt.Errorf("%w: %w", ErrAuthFailure, ErrUnexpectedStatus)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
	if err == nil && len(b) > 0 {
		var parsed any
		if jerr := json.Unmarshal(b, &parsed); jerr == nil {
			apiErr.Body = parsed
		} else {
			apiErr.Body = map[string]any{"detail": string(b)}
		}
	}

	apiErr.Message = errorMessage(apiErr.Body, resp.StatusCode)

	return apiErr
}

// errorMessage derives the human-readable message: a string "detail"
// field wins, then a string "error" field, then a status fallback.
func errorMessage(body any, status int) string {
	if m, ok := body.(map[string]any); ok {
		if detail, ok := m["detail"].(string); ok {
			return detail
		}
		if errMsg, ok := m["error"].(string); ok {
			return errMsg
		}
	}

	return fmt.Sprintf("Request failed: %d", status)
}
