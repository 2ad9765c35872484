package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-issue-service/internal/api/dto"
	"github.com/spec-kit/civic-issue-service/internal/service"
)

// GovHandler exposes the government-role endpoints. Access control is the
// client-held role string returned at login; the server does not gate these
// routes beyond that contract.
type GovHandler struct {
	service *service.IssueService
}

// NewGovHandler constructs handler.
func NewGovHandler(issueService *service.IssueService) *GovHandler {
	return &GovHandler{service: issueService}
}

// ListIssues handles GET /gov/issues.
func (h *GovHandler) ListIssues(c *fiber.Ctx) error {
	issues, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewIssueListResponse(issues))
}

// ResolveIssue handles PUT /gov/issue/:id.
func (h *GovHandler) ResolveIssue(c *fiber.Ctx) error {
	if err := h.service.Resolve(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Issue marked as solved"})
}
