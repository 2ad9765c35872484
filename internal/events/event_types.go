package events

import (
	"time"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventIssueReported EventType = "issue_reported"
	EventIssueResolved EventType = "issue_resolved"
	EventIssueDeleted  EventType = "issue_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	IssueID   string      `json:"issue_id"`
	Email     string      `json:"email,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// IssueReportedPayload payload.
type IssueReportedPayload struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Location string  `json:"location"`
	Image    *string `json:"image,omitempty"`
}

// IssueResolvedPayload payload.
type IssueResolvedPayload struct {
	NewStatus domain.IssueStatus `json:"new_status"`
}
