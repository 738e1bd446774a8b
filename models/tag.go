package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag represents a free-form label attached to tools. UsageCount is
// recalculated out of band and reflects how many published tools carry it.
type Tag struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug       string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_tags_slug"`
	Color      string    `json:"color" db:"color" gorm:"type:text;not null;default:'#6b7280'"`
	UsageCount int       `json:"usage_count" db:"usage_count" gorm:"not null;default:0"`
	IsActive   bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Tag) TableName() string {
	return "tags"
}
