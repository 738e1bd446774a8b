package models

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a taxonomy bucket tools are grouped under
type Category struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_categories_slug"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	Icon        *string   `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Color       string    `json:"color" db:"color" gorm:"type:text;not null;default:'#6b7280'"`
	IsActive    bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	SortOrder   int       `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Category) TableName() string {
	return "categories"
}
