package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Moderation states for a public tool submission.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// ToolSubmission is a pending catalog entry created by the public submission
// form. Approval promotes it into a Tool; rejection only flags it.
type ToolSubmission struct {
	ID            uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name          string         `json:"name" db:"name" gorm:"type:text;not null"`
	URL           string         `json:"url" db:"url" gorm:"type:text;not null"`
	Description   string         `json:"description" db:"description" gorm:"type:text;not null"`
	Category      string         `json:"category" db:"category" gorm:"type:text;not null"`
	Pricing       string         `json:"pricing" db:"pricing" gorm:"type:text;not null;default:'free'"`
	IsNsfw        bool           `json:"is_nsfw" db:"is_nsfw" gorm:"not null;default:false"`
	Features      pq.StringArray `json:"features" db:"features" gorm:"type:text[]"`
	Tags          pq.StringArray `json:"tags" db:"tags" gorm:"type:text[]"`
	ScreenshotURL *string        `json:"screenshot_url,omitempty" db:"screenshot_url" gorm:"type:text"`
	FaviconURL    *string        `json:"favicon_url,omitempty" db:"favicon_url" gorm:"type:text"`
	Status        string         `json:"status" db:"status" gorm:"type:text;not null;default:'pending';index:idx_tool_submissions_status"`
	SubmittedAt   time.Time      `json:"submitted_at" db:"submitted_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	ReviewedAt    *time.Time     `json:"reviewed_at,omitempty" db:"reviewed_at" gorm:"type:timestamptz"`
	ReviewedBy    *string        `json:"reviewed_by,omitempty" db:"reviewed_by" gorm:"type:text"`
}

func (ToolSubmission) TableName() string {
	return "tool_submissions"
}
