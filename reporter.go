package reporter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config identifies the submission endpoint and describes the reporting
// application. All six fields are required and are treated as opaque,
// already-valid strings; no URL escaping or DSN parsing is performed.
type Config struct {
	// PublicKey authenticates the client in the X-Sentry-Auth header.
	PublicKey string

	// Host is the service hostname, without scheme or path.
	Host string

	// ProjectID selects the project that receives the events.
	ProjectID string

	// Release is the version of the reporting application.
	Release string

	// Environment names the deployment environment, e.g. "production".
	Environment string

	// Context is a free-form scope tag attached to every event.
	Context string
}

func (c Config) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"PublicKey", c.PublicKey},
		{"Host", c.Host},
		{"ProjectID", c.ProjectID},
		{"Release", c.Release},
		{"Environment", c.Environment},
		{"Context", c.Context},
	}

	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("config field %s must be set", f.name)
		}
	}

	return nil
}

// Client submits events to a single project. It is immutable after [New]
// and safe for concurrent use; each submission owns its own event, request,
// and retry budget.
type Client struct {
	config  Config
	options *Options
	http    *resty.Client
	url     string
}

// New validates the configuration, applies the options, and returns a
// ready-to-use client. There is no connect step: every submission is
// self-contained.
func New(config Config, opts ...Option) (*Client, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	var hc *resty.Client
	if options.httpClient != nil {
		hc = resty.NewWithClient(options.httpClient)
	} else {
		hc = resty.New()
	}

	hc.SetRetryCount(options.retryCount).
		SetRetryWaitTime(options.retryWaitTime).
		SetRetryMaxWaitTime(options.retryWaitTime).
		SetRetryAfter(func(_ *resty.Client, _ *resty.Response) (time.Duration, error) {
			// Fixed wait between attempts; the retry budget, not the
			// backoff curve, bounds a rate-limited submission.
			return options.retryWaitTime, nil
		}).
		AddRetryCondition(options.retryPolicy).
		SetHeaders(options.requestHeaders).
		SetLogger(options.requestLogger)

	return &Client{
		config:  config,
		options: options,
		http:    hc,
		url:     endpointURL(config.Host, config.ProjectID),
	}, nil
}

// Fatal reports an event with fatal severity. It returns the generated
// event ID on success.
func (c *Client) Fatal(ctx context.Context, message string, extra map[string]any) (string, error) {
	return c.submit(ctx, SeverityFatal, message, extra)
}

// Error reports an event with error severity. It returns the generated
// event ID on success.
func (c *Client) Error(ctx context.Context, message string, extra map[string]any) (string, error) {
	return c.submit(ctx, SeverityError, message, extra)
}

// Warning reports an event with warning severity. It returns the generated
// event ID on success.
func (c *Client) Warning(ctx context.Context, message string, extra map[string]any) (string, error) {
	return c.submit(ctx, SeverityWarning, message, extra)
}

// Info reports an event with info severity. It returns the generated event
// ID on success.
func (c *Client) Info(ctx context.Context, message string, extra map[string]any) (string, error) {
	return c.submit(ctx, SeverityInfo, message, extra)
}

// Debug reports an event with debug severity. It returns the generated
// event ID on success.
func (c *Client) Debug(ctx context.Context, message string, extra map[string]any) (string, error) {
	return c.submit(ctx, SeverityDebug, message, extra)
}

// submit runs the full pipeline for one event: build, encode, deliver.
// The event ID, timestamp, and auth header are computed here exactly once;
// resty re-issues the identical request on each rate-limit retry.
func (c *Client) submit(ctx context.Context, severity Severity, message string, extra map[string]any) (string, error) {
	if c == nil {
		return "", errors.New("reporter client is nil")
	}

	event := newEvent(severity, message, extra)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(authHeaderName, authHeader(c.config.PublicKey, event.Timestamp)).
		SetBody(encodePayload(c.config, event)).
		Post(c.url)
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", c.url, err)
	}

	if resp.IsError() {
		return "", newStatusError(resp.StatusCode(), resp.Body())
	}

	// The response body is deliberately ignored: the caller gets the ID
	// generated for this submission, which is what the service recorded.
	return event.ID, nil
}
