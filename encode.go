package reporter

import "fmt"

// Client identifier reported in the authentication header. Baked into the
// build, not configurable per call.
const (
	clientName    = "sentry-reporter-go"
	clientVersion = "0.1.0"
)

const (
	// protocolVersion is the sentry_version advertised in the auth header.
	protocolVersion = 7

	// platform tags every event with the originating SDK ecosystem.
	platform = "go"

	authHeaderName = "X-Sentry-Auth"
)

// payload is the wire representation of one event, matching the store
// endpoint's documented schema.
type payload struct {
	EventID     string         `json:"event_id"`
	Timestamp   int64          `json:"timestamp"`
	Platform    string         `json:"platform"`
	Level       Severity       `json:"level"`
	Release     string         `json:"release"`
	Environment string         `json:"environment"`
	Tags        payloadTags    `json:"tags"`
	Message     payloadMessage `json:"message"`
	Extra       map[string]any `json:"extra"`
}

type payloadTags struct {
	Context string `json:"context"`
}

type payloadMessage struct {
	Formatted string `json:"formatted"`
}

// encodePayload shapes an event and the client's release context into the
// wire payload. Deterministic and side-effect free; the timestamp was
// already captured when the event was built.
func encodePayload(config Config, event Event) payload {
	extra := event.Extra
	if extra == nil {
		extra = map[string]any{}
	}

	return payload{
		EventID:     event.ID,
		Timestamp:   event.Timestamp,
		Platform:    platform,
		Level:       event.Severity,
		Release:     config.Release,
		Environment: config.Environment,
		Tags:        payloadTags{Context: config.Context},
		Message:     payloadMessage{Formatted: event.Message},
		Extra:       extra,
	}
}

// endpointURL builds the store URL by concatenation. Host and project ID
// are trusted to be already valid; no escaping is performed.
func endpointURL(host, projectID string) string {
	return "https://" + host + "/api/" + projectID + "/store/"
}

// authHeader builds the X-Sentry-Auth value for one submission. The
// timestamp is the one captured when the event was built, so retries of
// the same submission carry an identical header.
func authHeader(publicKey string, timestampSeconds int64) string {
	return fmt.Sprintf("Sentry sentry_version=%d,sentry_client=%s/%s,sentry_timestamp=%d,sentry_key=%s",
		protocolVersion, clientName, clientVersion, timestampSeconds, publicKey)
}
