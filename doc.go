// Package reporter provides an HTTP client for submitting error and log
// events to a Sentry-compatible tracking service.
//
// The client wraps [github.com/go-resty/resty/v2] with the service's
// authentication scheme, automatic retries on rate limiting, and pluggable
// logging.
//
// # Basic Usage
//
//	c, err := reporter.New(reporter.Config{
//	    PublicKey:   "abc123",
//	    Host:        "o1.example.com",
//	    ProjectID:   "42",
//	    Release:     "1.4.0",
//	    Environment: "production",
//	    Context:     "checkout",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	eventID, err := c.Error(ctx, "payment declined", map[string]any{
//	    "order_id": 9913,
//	})
//
// Each call builds a self-contained event (fresh identifier, whole-second
// timestamp), POSTs it to the project's store endpoint, and resolves to the
// generated event ID on success. Calls are independent; there is no
// batching, buffering, or flush step.
//
// # Configuration
//
// The endpoint identity (public key, host, project ID) and release context
// (release, environment, context) are supplied as [Config] fields and
// validated by [New]. They are treated as opaque, already-valid strings;
// the client performs no DSN parsing, so supply the three endpoint parts
// separately. Tuning is supplied as [Option] functions passed to [New].
// Invalid option values are silently ignored and the default is retained.
//
// # Retry Behaviour
//
// Only HTTP 429 (rate limit) is retried, up to 60 times with a fixed one
// second wait between attempts. The event ID, timestamp, and
// authentication header are computed once per submission and reused on
// every retry. All other failures, transport errors and non-429 error
// statuses alike, surface to the caller immediately. Supply a custom
// function via [WithRetryPolicy] to override this behaviour.
//
// # Authentication
//
// Every request carries an X-Sentry-Auth header built from the configured
// public key and the event's timestamp. The store endpoint supports no
// other authentication method.
//
// # Concurrency
//
// A [Client] is immutable after [New] and safe for concurrent use. Each
// submission owns its own event, request, and retry budget. Cancel the
// supplied context to abandon an in-flight request or a pending retry
// wait; the client imposes no request timeout of its own.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output.
package reporter
