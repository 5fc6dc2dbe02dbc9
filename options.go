package reporter

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Option func(*Options)

type Options struct {
	retryCount     int
	retryWaitTime  time.Duration
	requestLogger  RequestLogger
	retryPolicy    func(*resty.Response, error) bool
	requestHeaders map[string]string
	httpClient     *http.Client
}

func newClientOptions() *Options {
	return &Options{
		retryCount:    60,
		retryWaitTime: time.Second,
		requestLogger: &NoopLogger{},
		retryPolicy:   DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithRetryCount sets how many times a rate-limited submission is retried
// before giving up. Zero disables retries. Default: 60.
func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

// WithRetryWaitTime sets the fixed wait between rate-limit retries.
// Default: 1s.
func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRetryPolicy replaces [DefaultRetryPolicy] as the condition deciding
// whether a failed attempt is re-issued.
func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

// WithRequestHeader adds a header sent with every submission. The
// Content-Type, Accept, and X-Sentry-Auth headers are owned by the client
// and cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, authHeaderName) {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithHTTPClient supplies the underlying [http.Client], for callers that
// need a request timeout, proxy, or instrumented transport.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		if client != nil {
			o.httpClient = client
		}
	}
}
