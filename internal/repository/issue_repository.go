package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

// IssueRepository encapsulates issue persistence.
type IssueRepository interface {
	Create(ctx context.Context, issue *domain.Issue) error
	ListByEmail(ctx context.Context, email string) ([]domain.Issue, error)
	ListAll(ctx context.Context) ([]domain.Issue, error)
	// MarkSolved flips status to Solved. A missing id is not an error: the
	// update simply affects zero rows, matching the permissive resolve
	// semantics of the public API.
	MarkSolved(ctx context.Context, id string) error
	// Delete removes the issue. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}

type issueRepository struct {
	db Querier
}

// NewIssueRepository instantiates repository.
func NewIssueRepository(db Querier) IssueRepository {
	return &issueRepository{db: db}
}

func (r *issueRepository) Create(ctx context.Context, issue *domain.Issue) error {
	const query = `
        INSERT INTO issues (title, description, location, category, image, email, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		issue.Title,
		issue.Description,
		issue.Location,
		issue.Category,
		issue.Image,
		issue.Email,
		issue.Status,
	).Scan(&issue.ID, &issue.CreatedAt, &issue.UpdatedAt)
}

func (r *issueRepository) ListByEmail(ctx context.Context, email string) ([]domain.Issue, error) {
	const query = `
        SELECT id, title, description, location, category, image, email, status, created_at, updated_at
        FROM issues WHERE email=$1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIssues(rows)
}

func (r *issueRepository) ListAll(ctx context.Context) ([]domain.Issue, error) {
	const query = `
        SELECT id, title, description, location, category, image, email, status, created_at, updated_at
        FROM issues ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIssues(rows)
}

func (r *issueRepository) MarkSolved(ctx context.Context, id string) error {
	const query = `
        UPDATE issues SET status=$1, updated_at=NOW() WHERE id=$2`

	_, err := r.db.Exec(ctx, query, domain.IssueStatusSolved, id)
	return err
}

func (r *issueRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM issues WHERE id=$1`

	_, err := r.db.Exec(ctx, query, id)
	return err
}

func scanIssues(rows pgx.Rows) ([]domain.Issue, error) {
	var result []domain.Issue
	for rows.Next() {
		var issue domain.Issue
		if err := rows.Scan(
			&issue.ID,
			&issue.Title,
			&issue.Description,
			&issue.Location,
			&issue.Category,
			&issue.Image,
			&issue.Email,
			&issue.Status,
			&issue.CreatedAt,
			&issue.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, issue)
	}
	return result, rows.Err()
}
