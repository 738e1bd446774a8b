package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakedifyai/backend/errs"
	"github.com/nakedifyai/backend/models"
)

type SubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *SubmissionRepo {
	return &SubmissionRepo{db}
}

// List returns submissions, newest first, optionally narrowed to one
// moderation status.
func (r *SubmissionRepo) List(status string) ([]models.ToolSubmission, error) {
	query := r.db.Order("submitted_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var submissions []models.ToolSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, errs.NewQueryError("list", "tool submissions", err)
	}
	if submissions == nil {
		submissions = []models.ToolSubmission{}
	}
	return submissions, nil
}

// FindByID returns a submission by its ID
func (r *SubmissionRepo) FindByID(id uuid.UUID) (*models.ToolSubmission, error) {
	var submission models.ToolSubmission
	err := r.db.First(&submission, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("tool submission")
	}
	if err != nil {
		return nil, errs.NewQueryError("find", "tool submission", err)
	}
	return &submission, nil
}

// Add inserts a new submission into the database
func (r *SubmissionRepo) Add(submission *models.ToolSubmission) error {
	if err := r.db.Create(submission).Error; err != nil {
		return errs.NewQueryError("create", "tool submission", err)
	}
	return nil
}

// Update updates an existing submission in the database
func (r *SubmissionRepo) Update(submission *models.ToolSubmission) error {
	if err := r.db.Save(submission).Error; err != nil {
		return errs.NewQueryError("update", "tool submission", err)
	}
	return nil
}

// Delete removes a submission from the database by id
func (r *SubmissionRepo) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.ToolSubmission{}, "id = ?", id).Error; err != nil {
		return errs.NewQueryError("delete", "tool submission", err)
	}
	return nil
}
