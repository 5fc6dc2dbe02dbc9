package reporter

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Severity classifies an event's importance. The value is the lowercase
// token transmitted in the payload's level field.
type Severity string

const (
	SeverityFatal   Severity = "fatal"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityDebug   Severity = "debug"
)

// Event is one reported occurrence. It is built immediately before
// transmission, serialized once, and discarded — never persisted or
// reused across submissions.
type Event struct {
	// ID is a 32-character lowercase hexadecimal identifier with no
	// separators, the service's event-ID format.
	ID string

	// Timestamp is the Unix time in whole seconds at which the event was
	// built. Sub-second precision is discarded deliberately.
	Timestamp int64

	Severity Severity
	Message  string
	Extra    map[string]any
}

// newEvent captures the current wall-clock time once and generates a fresh
// identifier. It cannot fail.
func newEvent(severity Severity, message string, extra map[string]any) Event {
	return Event{
		ID:        newEventID(),
		Timestamp: time.Now().UnixMilli() / 1000,
		Severity:  severity,
		Message:   message,
		Extra:     extra,
	}
}

// newEventID generates an identifier from OS entropy rather than the
// clock, so rapid or concurrent submissions cannot collide.
func newEventID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
