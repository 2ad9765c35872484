package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-issue-service/internal/api/dto"
	"github.com/spec-kit/civic-issue-service/internal/service"
	"github.com/spec-kit/civic-issue-service/internal/storage"
	apperrors "github.com/spec-kit/civic-issue-service/pkg/util"
)

// IssuesHandler exposes the citizen-facing issue endpoints.
type IssuesHandler struct {
	service *service.IssueService
	uploads *storage.UploadStore
}

// NewIssuesHandler constructs handler.
func NewIssuesHandler(issueService *service.IssueService, uploads *storage.UploadStore) *IssuesHandler {
	return &IssuesHandler{service: issueService, uploads: uploads}
}

// Report handles POST /report. The body is a multipart form with the issue
// fields and an optional "image" file, which is relayed to the upload store
// before the issue row is written.
func (h *IssuesHandler) Report(c *fiber.Ctx) error {
	input := service.IssueSubmitInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Location:    c.FormValue("location"),
		Category:    c.FormValue("category"),
		Email:       c.FormValue("email"),
	}

	if header, err := c.FormFile("image"); err == nil && header != nil {
		file, err := header.Open()
		if err != nil {
			return apperrors.NewStoreError("Issue not saved", err)
		}
		name, err := h.uploads.Save(header.Filename, file)
		_ = file.Close()
		if err != nil {
			return apperrors.NewStoreError("Issue not saved", err)
		}
		input.Image = &name
	}

	if _, err := h.service.Submit(c.UserContext(), input); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Issue reported successfully"})
}

// MyIssues handles GET /my-issues?email=...
func (h *IssuesHandler) MyIssues(c *fiber.Ctx) error {
	issues, err := h.service.ListByOwner(c.UserContext(), c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewIssueListResponse(issues))
}

// Delete handles DELETE /issue/:id. Deleting an unknown id still reports
// success; the record is gone either way.
func (h *IssuesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Remove(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Issue deleted successfully"})
}
