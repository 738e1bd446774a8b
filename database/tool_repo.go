package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/nakedifyai/backend/errs"
	"github.com/nakedifyai/backend/models"
)

// defaultPageSize is the window size when callers paginate with an offset
// but no explicit limit.
const defaultPageSize = 10

// ToolFilter is the structured filter a listing page composes for one fetch.
// Every field is an independent predicate; leaving one at its zero value
// skips it. Status is special: when empty it defaults to published so an
// unfiltered call can never leak draft or archived tools to a public page.
type ToolFilter struct {
	Category string
	IsNsfw   *bool
	Search   string
	Tags     []string
	Limit    int
	Offset   int
	Status   string
}

// SearchFilter narrows a free-text search on the search page.
type SearchFilter struct {
	Category string
	Pricing  string
	Tags     []string
	IsNsfw   *bool
}

type ToolRepo struct {
	db *gorm.DB
}

func NewToolRepo(db *gorm.DB) *ToolRepo {
	return &ToolRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ToolRepo) GetDB() *gorm.DB {
	return r.db
}

// List returns the tools matching filter, ordered by view count descending.
// No matches is an empty slice, not an error.
func (r *ToolRepo) List(filter ToolFilter) ([]models.Tool, error) {
	query := r.db.Model(&models.Tool{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsNsfw != nil {
		query = query.Where("is_nsfw = ?", *filter.IsNsfw)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if len(filter.Tags) > 0 {
		query = query.Where("tags && ?", pq.Array(filter.Tags))
	}

	status := filter.Status
	if status == "" {
		status = models.StatusPublished
	}
	query = query.Where("status = ?", status).Order("views DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
		if filter.Limit <= 0 {
			query = query.Limit(defaultPageSize)
		}
	}

	var tools []models.Tool
	if err := query.Find(&tools).Error; err != nil {
		return nil, errs.NewQueryError("list", "tools", err)
	}
	if tools == nil {
		tools = []models.Tool{}
	}
	return tools, nil
}

// FindBySlug returns the single published tool with the given slug.
func (r *ToolRepo) FindBySlug(slug string) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.Where("slug = ? AND status = ?", slug, models.StatusPublished).First(&tool).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("tool")
	}
	if err != nil {
		return nil, errs.NewQueryError("find", "tool", err)
	}
	return &tool, nil
}

// FindByID returns a tool regardless of status. Admin use only.
func (r *ToolRepo) FindByID(id uuid.UUID) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.First(&tool, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("tool")
	}
	if err != nil {
		return nil, errs.NewQueryError("find", "tool", err)
	}
	return &tool, nil
}

// FindByIDs returns the published subset of the requested ids, used for a
// tool's alternatives list. An empty input short-circuits without touching
// the database.
func (r *ToolRepo) FindByIDs(ids []uuid.UUID) ([]models.Tool, error) {
	if len(ids) == 0 {
		return []models.Tool{}, nil
	}

	var tools []models.Tool
	err := r.db.Where("id IN ? AND status = ?", ids, models.StatusPublished).Find(&tools).Error
	if err != nil {
		return nil, errs.NewQueryError("list", "alternative tools", err)
	}
	if tools == nil {
		tools = []models.Tool{}
	}
	return tools, nil
}

// Featured returns published featured tools, most viewed first.
func (r *ToolRepo) Featured(limit int) ([]models.Tool, error) {
	query := r.db.
		Where("is_featured = ? AND status = ?", true, models.StatusPublished).
		Order("views DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var tools []models.Tool
	if err := query.Find(&tools).Error; err != nil {
		return nil, errs.NewQueryError("list", "featured tools", err)
	}
	if tools == nil {
		tools = []models.Tool{}
	}
	return tools, nil
}

// Search runs the search-page query: published tools whose name or
// description contain the query as a substring, or whose tag set contains it
// exactly, further narrowed by the optional filters.
func (r *ToolRepo) Search(searchQuery string, filter SearchFilter) ([]models.Tool, error) {
	query := r.db.Model(&models.Tool{}).Where("status = ?", models.StatusPublished)

	if searchQuery != "" {
		pattern := "%" + searchQuery + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR ? = ANY(tags)", pattern, pattern, searchQuery)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Pricing != "" {
		query = query.Where("pricing = ?", filter.Pricing)
	}
	if len(filter.Tags) > 0 {
		query = query.Where("tags && ?", pq.Array(filter.Tags))
	}
	if filter.IsNsfw != nil {
		query = query.Where("is_nsfw = ?", *filter.IsNsfw)
	}

	var tools []models.Tool
	if err := query.Order("views DESC").Find(&tools).Error; err != nil {
		return nil, errs.NewQueryError("search", "tools", err)
	}
	if tools == nil {
		tools = []models.Tool{}
	}
	return tools, nil
}

// IncrementViews bumps the view counter with a single server-side UPDATE.
// Never read-then-write here: concurrent page views would lose counts.
func (r *ToolRepo) IncrementViews(id uuid.UUID) error {
	err := r.db.Model(&models.Tool{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return errs.NewQueryError("increment views of", "tool", err)
	}
	return nil
}

// Add inserts a new tool into the database
func (r *ToolRepo) Add(tool *models.Tool) error {
	if err := r.db.Create(tool).Error; err != nil {
		return errs.NewQueryError("create", "tool", err)
	}
	return nil
}

// Update updates an existing tool in the database
func (r *ToolRepo) Update(tool *models.Tool) error {
	if err := r.db.Save(tool).Error; err != nil {
		return errs.NewQueryError("update", "tool", err)
	}
	return nil
}

// Delete removes a tool from the database by id
func (r *ToolRepo) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.Tool{}, "id = ?", id).Error; err != nil {
		return errs.NewQueryError("delete", "tool", err)
	}
	return nil
}
