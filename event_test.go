package reporter

import (
	"regexp"
	"testing"
	"time"
)

func TestSeverityTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity Severity
		token    string
	}{
		{SeverityFatal, "fatal"},
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{SeverityInfo, "info"},
		{SeverityDebug, "debug"},
	}

	for _, tt := range tests {
		if string(tt.severity) != tt.token {
			t.Errorf("expected token %q, got %q", tt.token, tt.severity)
		}
	}
}

func TestNewEventID_Format(t *testing.T) {
	t.Parallel()

	format := regexp.MustCompile(`^[0-9a-f]{32}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newEventID()

		if !format.MatchString(id) {
			t.Fatalf("expected 32 lowercase hex characters with no dashes, got %q", id)
		}

		if seen[id] {
			t.Fatalf("duplicate event ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewEvent_WholeSecondTimestamp(t *testing.T) {
	t.Parallel()

	before := time.Now().UnixMilli() / 1000
	event := newEvent(SeverityInfo, "tick", nil)
	after := time.Now().UnixMilli() / 1000

	if event.Timestamp < before || event.Timestamp > after {
		t.Errorf("expected timestamp in [%d, %d], got %d", before, after, event.Timestamp)
	}
}

func TestNewEvent_Fields(t *testing.T) {
	t.Parallel()

	extra := map[string]any{"a": 1}
	event := newEvent(SeverityFatal, "crash", extra)

	if event.Severity != SeverityFatal {
		t.Errorf("expected severity=fatal, got %s", event.Severity)
	}

	if event.Message != "crash" {
		t.Errorf("expected message=crash, got %s", event.Message)
	}

	if event.Extra["a"] != 1 {
		t.Errorf("expected extra.a=1, got %v", event.Extra["a"])
	}
}
