package client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/trellis-ml/trellis-go/ratelimit"
)

// Option is a functional option for configuring a [Client] via [Build].
type Option func(*options) error

type options struct {
	baseURL   string
	token     string
	transport Doer
	hc        *http.Client
	timeout   *time.Duration
	userAgent string
	limit     *ratelimit.Config
	logger    *slog.Logger
}

// WithBaseURL sets the service's base address. Required. A trailing
// slash is trimmed.
func WithBaseURL(baseURL string) Option {
	return func(o *options) error {
		if baseURL == "" {
			return errors.New("base url must not be empty")
		}
		o.baseURL = baseURL
		return nil
	}
}

// WithToken sets the initial bearer credential. The credential can be
// replaced later via [Client.SetToken].
func WithToken(token string) Option {
	return func(o *options) error {
		o.token = token
		return nil
	}
}

// WithTransport replaces the transport the executor calls through.
// Incompatible with [WithRateLimit], which wraps the built-in
// [http.Client] transport chain.
func WithTransport(d Doer) Option {
	return func(o *options) error {
		if d == nil {
			return errors.New("transport must not be nil")
		}
		o.transport = d
		return nil
	}
}

// WithHTTPClient replaces the default [http.Client] used when no
// [WithTransport] override is given.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		o.hc = hc
		return nil
	}
}

// WithTimeout sets the per-call timeout. Defaults to 30s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		o.timeout = &d
		return nil
	}
}

// WithUserAgent adds a persistent User-Agent header to all outgoing
// requests. A caller-supplied User-Agent header on a single call wins.
func WithUserAgent(header string) Option {
	return func(o *options) error {
		o.userAgent = header
		return nil
	}
}

// WithRateLimit enables token-bucket limiting of outbound calls with
// the given requests per second and burst capacity.
func WithRateLimit(rps, burst int) Option {
	return func(o *options) error {
		if rps <= 0 || burst <= 0 {
			return fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, ratelimit.ErrMustNotBeZero)
		}
		o.limit = &ratelimit.Config{RPS: rps, Burst: burst}
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// CallOption is a functional option for [Client.Call].
type CallOption func(*callOpts) error

type callOpts struct {
	jsonBody  any
	multipart *Multipart
	query     *Query
	headers   map[string]string
	result    any
	raw       *[]byte
}

// WithJSONBody sets the request body, encoded as JSON. Unless the
// caller sets an explicit Content-Type header, the call carries
// "Content-Type: application/json".
func WithJSONBody(body any) CallOption {
	return func(o *callOpts) error {
		o.jsonBody = body
		return nil
	}
}

// WithMultipartBody sets a multipart upload body. The content type,
// boundary included, comes from the encoder.
func WithMultipartBody(m *Multipart) CallOption {
	return func(o *callOpts) error {
		if m == nil {
			return errors.New("multipart body must not be nil")
		}
		o.multipart = m
		return nil
	}
}

// WithQuery appends query parameters to the call's URL.
func WithQuery(q *Query) CallOption {
	return func(o *callOpts) error {
		o.query = q
		return nil
	}
}

// WithHeader sets an explicit header on the call. Explicit headers
// always win over derived ones (Authorization, Content-Type,
// User-Agent).
func WithHeader(key, value string) CallOption {
	return func(o *callOpts) error {
		if key == "" {
			return errors.New("header key must not be empty")
		}
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
		return nil
	}
}

// WithResult decodes the JSON response body into dest. dest must be a
// pointer. An empty response body leaves dest untouched.
func WithResult[T any](dest *T) CallOption {
	return func(o *callOpts) error {
		o.result = dest
		return nil
	}
}

// WithBinaryResult captures the raw response bytes into dest without
// JSON interpretation, for download-style endpoints.
func WithBinaryResult(dest *[]byte) CallOption {
	return func(o *callOpts) error {
		if dest == nil {
			return errors.New("binary destination must not be nil")
		}
		o.raw = dest
		return nil
	}
}
