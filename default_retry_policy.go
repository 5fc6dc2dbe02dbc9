package reporter

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the default retry condition used by [Client]. It
// retries only on HTTP 429, the service's signal that the client must slow
// down. Transport errors and every other status are terminal: the failure
// surfaces to the caller with no further attempts.
//
// Supply a custom function via [WithRetryPolicy] to override this behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		return false
	}

	return r.StatusCode() == http.StatusTooManyRequests
}
