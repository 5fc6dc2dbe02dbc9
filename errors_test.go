package reporter

import (
	"strings"
	"testing"
)

func TestNewStatusError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     int
		body     string
		expected string
	}{
		{
			"json detail extracted",
			400,
			`{"detail": "invalid event payload"}`,
			"store request failed with status 400: invalid event payload",
		},
		{
			"json without detail falls back to raw body",
			400,
			`{"message": "something went wrong"}`,
			`store request failed with status 400: {"message": "something went wrong"}`,
		},
		{
			"plain text body",
			403,
			"Forbidden",
			"store request failed with status 403: Forbidden",
		},
		{
			"empty body",
			500,
			"",
			"store request failed with status 500 (empty error body)",
		},
		{
			"whitespace body",
			500,
			"  \n",
			"store request failed with status 500 (empty error body)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := newStatusError(tt.code, []byte(tt.body))

			if err.Code != tt.code {
				t.Errorf("expected code=%d, got %d", tt.code, err.Code)
			}

			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
		})
	}
}

func TestStatusError_MessageContainsStatus(t *testing.T) {
	t.Parallel()

	err := newStatusError(429, []byte("slow down"))

	if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected error to contain the status code, got: %v", err)
	}
}
