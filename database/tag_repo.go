package database

import (
	"gorm.io/gorm"

	"github.com/nakedifyai/backend/errs"
	"github.com/nakedifyai/backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// ListActive returns active tags, most used first.
func (r *TagRepo) ListActive() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("is_active = ?", true).Order("usage_count DESC").Find(&tags).Error
	if err != nil {
		return nil, errs.NewQueryError("list", "tags", err)
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

// Names returns the names of active tags, most used first. The filter UI
// only needs the names.
func (r *TagRepo) Names() ([]string, error) {
	tags, err := r.ListActive()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names, nil
}

// Add inserts a new tag into the database
func (r *TagRepo) Add(tag *models.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		return errs.NewQueryError("create", "tag", err)
	}
	return nil
}
