package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakedifyai/backend/errs"
	"github.com/nakedifyai/backend/models"
)

func TestCategoryListActiveOrdersBySortOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE is_active = \$1 ORDER BY sort_order ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "is_active", "sort_order"}).
			AddRow(uuid.NewString(), "Chatbots", "chatbot", true, 1).
			AddRow(uuid.NewString(), "Image Generators", "image-generator", true, 2))

	categories, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "chatbot", categories[0].Slug)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryFindBySlugNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE slug = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}))

	category, err := repo.FindBySlug("missing")
	assert.Nil(t, category)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestTagNamesReturnsMostUsedFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTagRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE is_active = \$1 ORDER BY usage_count DESC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "usage_count", "is_active"}).
			AddRow(uuid.NewString(), "chat", "chat", 40, true).
			AddRow(uuid.NewString(), "image", "image", 12, true))

	names, err := repo.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"chat", "image"}, names)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionListFiltersByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "tool_submissions" WHERE status = \$1 ORDER BY submitted_at DESC`).
		WithArgs(models.SubmissionPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "url", "description", "category", "status"}).
			AddRow(uuid.NewString(), "NewTool", "https://newtool.example", "a tool", "chatbot", "pending"))

	submissions, err := repo.List(models.SubmissionPending)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, "NewTool", submissions[0].Name)
}

func TestAdminVerifyCredentialsDelegatesToDatabaseFunction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminRepo(db)

	mock.ExpectQuery(`SELECT verify_admin_credentials\(\$1, \$2\)`).
		WithArgs("admin@example.com", "hunter2").
		WillReturnRows(sqlmock.NewRows([]string{"verify_admin_credentials"}).AddRow(true))

	ok, err := repo.VerifyCredentials("admin@example.com", "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
