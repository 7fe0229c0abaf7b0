package model

import "time"

// EventType represents the type of webhook event received
type EventType string

const (
	EventTypeIssues      EventType = "issues"
	EventTypePullRequest EventType = "pull_request"
	EventTypeRelease     EventType = "release"
	EventTypeStar        EventType = "star"
	EventTypeWatch       EventType = "watch"
	EventTypeUnknown     EventType = "unknown"
)

// IsSupported checks if the event type has a transformer. Star and watch
// events share one.
func (t EventType) IsSupported() bool {
	switch t {
	case EventTypeIssues, EventTypePullRequest, EventTypeRelease, EventTypeStar, EventTypeWatch:
		return true
	default:
		return false
	}
}

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string    // Retrieved from X-GitHub-Delivery header
	Type       EventType // Retrieved from X-GitHub-Event header
	Action     string    // Event action (e.g., opened, published)
	Repository string    // Repository full name (owner/repo)
	Sender     string    // Sender username
	ReceivedAt time.Time // Time when the event was received
	RawPayload []byte    // Raw JSON payload
	Payload    any       // Parsed payload (go-github event struct)
}
