package domain

import "time"

// IssueStatus enumerates the issue lifecycle. The only transition is
// Pending -> Solved, triggered by the government resolve endpoint.
type IssueStatus string

const (
	IssueStatusPending IssueStatus = "Pending"
	IssueStatusSolved  IssueStatus = "Solved"
)

// Issue is a citizen-submitted civic complaint. Email is the ownership key;
// it is a soft reference to User.Email with no enforced link.
type Issue struct {
	ID          string
	Title       string
	Description string
	Location    string
	Category    string
	Image       *string
	Email       string
	Status      IssueStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
