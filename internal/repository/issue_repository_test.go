package repository

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

const issueColumnsSQL = `SELECT id, title, description, location, category, image, email, status, created_at, updated_at`

func issueRows(now time.Time) *pgxmock.Rows {
	image := "1700000000000_pothole.jpg"
	return pgxmock.NewRows([]string{
		"id", "title", "description", "location", "category", "image", "email", "status", "created_at", "updated_at",
	}).
		AddRow("issue-2", "Streetlight out", "Dark corner", "5th Ave", "Electricity", (*string)(nil), "a@x.com", domain.IssueStatusPending, now, now).
		AddRow("issue-1", "Pothole", "Deep pothole", "Main St", "Road", &image, "a@x.com", domain.IssueStatusSolved, now.Add(-time.Hour), now.Add(-time.Hour))
}

func TestIssueRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO issues`).
		WithArgs("Pothole", "Deep pothole", "Main St", "Road", (*string)(nil), "a@x.com", domain.IssueStatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("issue-1", now, now))

	repo := NewIssueRepository(mock)
	issue := &domain.Issue{
		Title:       "Pothole",
		Description: "Deep pothole",
		Location:    "Main St",
		Category:    "Road",
		Email:       "a@x.com",
		Status:      domain.IssueStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), issue))

	assert.Equal(t, "issue-1", issue.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueRepository_ListByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(issueColumnsSQL).
		WithArgs("a@x.com").
		WillReturnRows(issueRows(now))

	repo := NewIssueRepository(mock)
	issues, err := repo.ListByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)

	require.Len(t, issues, 2)
	assert.Equal(t, "issue-2", issues[0].ID, "newest first")
	assert.Nil(t, issues[0].Image)
	require.NotNil(t, issues[1].Image)
	assert.Equal(t, "1700000000000_pothole.jpg", *issues[1].Image)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueRepository_ListAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(issueColumnsSQL).
		WillReturnRows(issueRows(time.Now()))

	repo := NewIssueRepository(mock)
	issues, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, issues, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueRepository_MarkSolved_MissingIDIsNoError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE issues SET status`).
		WithArgs(domain.IssueStatusSolved, "no-such-id").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewIssueRepository(mock)
	assert.NoError(t, repo.MarkSolved(context.Background(), "no-such-id"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueRepository_Delete_MissingIDIsNoError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM issues`).
		WithArgs("no-such-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewIssueRepository(mock)
	assert.NoError(t, repo.Delete(context.Background(), "no-such-id"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
