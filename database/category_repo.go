package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakedifyai/backend/errs"
	"github.com/nakedifyai/backend/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// ListActive returns the categories shown in public navigation, in their
// configured display order.
func (r *CategoryRepo) ListActive() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&categories).Error
	if err != nil {
		return nil, errs.NewQueryError("list", "categories", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// ListAll returns every category, active or not. Admin use only.
func (r *CategoryRepo) ListAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order ASC").Find(&categories).Error; err != nil {
		return nil, errs.NewQueryError("list", "categories", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// FindBySlug returns one category by its slug, active or not.
func (r *CategoryRepo) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("category")
	}
	if err != nil {
		return nil, errs.NewQueryError("find", "category", err)
	}
	return &category, nil
}

// Add inserts a new category into the database
func (r *CategoryRepo) Add(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return errs.NewQueryError("create", "category", err)
	}
	return nil
}

// Update updates an existing category in the database
func (r *CategoryRepo) Update(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		return errs.NewQueryError("update", "category", err)
	}
	return nil
}

// Delete removes a category from the database by id
func (r *CategoryRepo) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		return errs.NewQueryError("delete", "category", err)
	}
	return nil
}
