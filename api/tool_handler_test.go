package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nakedifyai/backend/database"
	"github.com/nakedifyai/backend/models"
)

func newMockDatabase(t *testing.T) (database.Database, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return database.New(db), mock
}

func toolRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "slug", "description", "url", "status", "pricing", "views", "tags"})
}

func TestGetToolsParsesQueryParameters(t *testing.T) {
	db, mock := newMockDatabase(t)
	handler := newToolHandler(db.ToolRepo())

	mock.ExpectQuery(`SELECT \* FROM "ai_tools" WHERE category = \$1 AND \(name ILIKE \$2 OR description ILIKE \$3\) AND tags && \$4 AND status = \$5 ORDER BY views DESC LIMIT \$6`).
		WillReturnRows(toolRows().
			AddRow(uuid.NewString(), "ChatBuddy", "chatbuddy", "chat companion", "https://chatbuddy.example", "published", "free", 120, "{chat}"))

	req := httptest.NewRequest(http.MethodGet, "/tools?category=chatbot&search=chat&tags=chat,%20companion&limit=5", nil)
	rec := httptest.NewRecorder()
	handler.getTools().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var collection ToolCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &collection))
	assert.Equal(t, 1, collection.Total)
	require.Len(t, collection.Tools, 1)
	assert.Equal(t, "ChatBuddy", collection.Tools[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetToolsIgnoresStatusParameter(t *testing.T) {
	db, mock := newMockDatabase(t)
	handler := newToolHandler(db.ToolRepo())

	// A public caller asking for drafts still gets the published default.
	mock.ExpectQuery(`^SELECT \* FROM "ai_tools" WHERE status = \$1 ORDER BY views DESC$`).
		WithArgs(models.StatusPublished).
		WillReturnRows(toolRows())

	req := httptest.NewRequest(http.MethodGet, "/tools?status=draft", nil)
	rec := httptest.NewRecorder()
	handler.getTools().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetToolsReturnsEmptyListNotError(t *testing.T) {
	db, mock := newMockDatabase(t)
	handler := newToolHandler(db.ToolRepo())

	mock.ExpectQuery(`SELECT \* FROM "ai_tools"`).
		WillReturnRows(toolRows())

	req := httptest.NewRequest(http.MethodGet, "/tools", nil)
	rec := httptest.NewRecorder()
	handler.getTools().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var collection ToolCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &collection))
	assert.Equal(t, 0, collection.Total)
	assert.NotNil(t, collection.Tools)
}

func TestGetToolBySlugRendersDespiteViewCounterFailure(t *testing.T) {
	db, mock := newMockDatabase(t)
	handler := newToolHandler(db.ToolRepo())

	// Only the read is expected. The background increment hits an unexpected
	// call and fails; the page render must not notice.
	mock.ExpectQuery(`SELECT \* FROM "ai_tools" WHERE slug = \$1 AND status = \$2`).
		WillReturnRows(toolRows().
			AddRow(uuid.NewString(), "ChatBuddy", "chatbuddy", "chat companion", "https://chatbuddy.example", "published", "free", 120, "{chat}"))

	router := chi.NewRouter()
	router.Get("/tool/{slug}", handler.getToolBySlug())

	req := httptest.NewRequest(http.MethodGet, "/tool/chatbuddy", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var detail ToolDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "chatbuddy", detail.Tool.Slug)
	assert.Equal(t, "ChatBuddy", detail.Meta.Title)
	assert.Equal(t, "chat companion", detail.Meta.Description)
}

func TestGetToolBySlugNotFound(t *testing.T) {
	db, mock := newMockDatabase(t)
	handler := newToolHandler(db.ToolRepo())

	mock.ExpectQuery(`SELECT \* FROM "ai_tools" WHERE slug = \$1 AND status = \$2`).
		WillReturnRows(toolRows())

	router := chi.NewRouter()
	router.Get("/tool/{slug}", handler.getToolBySlug())

	req := httptest.NewRequest(http.MethodGet, "/tool/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
