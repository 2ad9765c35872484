package dto

import (
	"time"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

// IssueResponse mirrors the wire shape existing clients expect: camelCase
// keys, null image when no attachment was uploaded.
type IssueResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	Category    string             `json:"category"`
	Image       *string            `json:"image"`
	Email       string             `json:"email"`
	Status      domain.IssueStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// NewIssueResponse maps a domain issue onto the wire shape.
func NewIssueResponse(issue *domain.Issue) IssueResponse {
	return IssueResponse{
		ID:          issue.ID,
		Title:       issue.Title,
		Description: issue.Description,
		Location:    issue.Location,
		Category:    issue.Category,
		Image:       issue.Image,
		Email:       issue.Email,
		Status:      issue.Status,
		CreatedAt:   issue.CreatedAt,
		UpdatedAt:   issue.UpdatedAt,
	}
}

// NewIssueListResponse maps a slice of issues, always yielding a JSON array.
func NewIssueListResponse(issues []domain.Issue) []IssueResponse {
	items := make([]IssueResponse, 0, len(issues))
	for i := range issues {
		items = append(items, NewIssueResponse(&issues[i]))
	}
	return items
}
