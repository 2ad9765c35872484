package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/civic-issue-service/internal/cache"
	"github.com/spec-kit/civic-issue-service/internal/domain"
	"github.com/spec-kit/civic-issue-service/internal/events"
	"github.com/spec-kit/civic-issue-service/internal/repository"
	apperrors "github.com/spec-kit/civic-issue-service/pkg/util"
)

// IssueSubmitInput carries the fields of a new report.
type IssueSubmitInput struct {
	Title       string
	Description string
	Location    string
	Category    string
	Email       string
	Image       *string
}

// IssueService implements the issue lifecycle: submit, list, resolve, remove.
type IssueService struct {
	issues     repository.IssueRepository
	cache      *cache.IssueCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewIssueService builds the service.
func NewIssueService(issues repository.IssueRepository, issueCache *cache.IssueCache, dispatcher events.Dispatcher, logger *zap.Logger) *IssueService {
	return &IssueService{
		issues:     issues,
		cache:      issueCache,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Submit stores a new issue with status Pending.
func (s *IssueService) Submit(ctx context.Context, input IssueSubmitInput) (*domain.Issue, error) {
	if hasEmptyField(input.Title, input.Description, input.Location, input.Category, input.Email) {
		return nil, apperrors.NewValidationError("title, description, location, category and email are required")
	}

	issue := &domain.Issue{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Category:    input.Category,
		Email:       input.Email,
		Image:       input.Image,
		Status:      domain.IssueStatusPending,
	}
	if err := s.issues.Create(ctx, issue); err != nil {
		return nil, apperrors.NewStoreError("Issue not saved", err)
	}

	s.cache.Invalidate(ctx, issue.Email)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventIssueReported,
		IssueID:   issue.ID,
		Email:     issue.Email,
		Timestamp: time.Now(),
		Payload: events.IssueReportedPayload{
			Title:    issue.Title,
			Category: issue.Category,
			Location: issue.Location,
			Image:    issue.Image,
		},
	})
	return issue, nil
}

// ListByOwner returns the owner's issues, newest first. An empty email fails
// before any store access.
func (s *IssueService) ListByOwner(ctx context.Context, email string) ([]domain.Issue, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("Email required")
	}

	if issues, err := s.cache.GetByOwner(ctx, email); err == nil {
		return issues, nil
	}

	issues, err := s.issues.ListByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to fetch issues", err)
	}
	s.cache.SetByOwner(ctx, email, issues)
	return issues, nil
}

// ListAll returns every issue, newest first.
func (s *IssueService) ListAll(ctx context.Context) ([]domain.Issue, error) {
	if issues, err := s.cache.GetAll(ctx); err == nil {
		return issues, nil
	}

	issues, err := s.issues.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to fetch issues", err)
	}
	s.cache.SetAll(ctx, issues)
	return issues, nil
}

// Resolve marks the issue Solved. Resolving an already solved or missing id
// succeeds silently; the transition is one-way and idempotent.
func (s *IssueService) Resolve(ctx context.Context, id string) error {
	if err := s.issues.MarkSolved(ctx, id); err != nil {
		return apperrors.NewStoreError("Failed to update issue", err)
	}

	s.cache.InvalidateAll(ctx)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventIssueResolved,
		IssueID:   id,
		Timestamp: time.Now(),
		Payload:   events.IssueResolvedPayload{NewStatus: domain.IssueStatusSolved},
	})
	return nil
}

// Remove deletes the issue permanently. Deleting a missing id succeeds.
func (s *IssueService) Remove(ctx context.Context, id string) error {
	if err := s.issues.Delete(ctx, id); err != nil {
		return apperrors.NewStoreError("Failed to delete issue", err)
	}

	s.cache.InvalidateAll(ctx)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventIssueDeleted,
		IssueID:   id,
		Timestamp: time.Now(),
	})
	return nil
}

func (s *IssueService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish issue event",
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}

func hasEmptyField(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
