package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Pricing classifications a tool can carry.
const (
	PricingFree         = "free"
	PricingFreemium     = "freemium"
	PricingPaid         = "paid"
	PricingSubscription = "subscription"
)

// Publication statuses. Only published tools are visible on public pages.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Tool represents a single catalog entry for a third-party AI product
type Tool struct {
	ID             uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name           string         `json:"name" db:"name" gorm:"type:text;not null"`
	Slug           string         `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_ai_tools_slug"`
	Description    string         `json:"description" db:"description" gorm:"type:text;not null"`
	URL            string         `json:"url" db:"url" gorm:"type:text;not null"`
	IsNsfw         bool           `json:"is_nsfw" db:"is_nsfw" gorm:"not null;default:false"`
	Pricing        string         `json:"pricing" db:"pricing" gorm:"type:text;not null;default:'free'"`
	Features       pq.StringArray `json:"features" db:"features" gorm:"type:text[]"`
	Tags           pq.StringArray `json:"tags" db:"tags" gorm:"type:text[]"`
	Category       string         `json:"category" db:"category" gorm:"type:text;index:idx_ai_tools_category"`
	AltTools       pq.StringArray `json:"alt_tools" db:"alt_tools" gorm:"type:text[]"`
	Views          int64          `json:"views" db:"views" gorm:"not null;default:0"`
	Rating         *float64       `json:"rating,omitempty" db:"rating" gorm:"type:numeric"`
	ReviewCount    *int           `json:"review_count,omitempty" db:"review_count" gorm:"type:integer"`
	Status         string         `json:"status" db:"status" gorm:"type:text;not null;default:'draft';index:idx_ai_tools_status"`
	IsFeatured     bool           `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	ScreenshotURL  *string        `json:"screenshot_url,omitempty" db:"screenshot_url" gorm:"type:text"`
	FaviconURL     *string        `json:"favicon_url,omitempty" db:"favicon_url" gorm:"type:text"`
	SeoTitle       *string        `json:"seo_title,omitempty" db:"seo_title" gorm:"type:text"`
	SeoDescription *string        `json:"seo_description,omitempty" db:"seo_description" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Tool) TableName() string {
	return "ai_tools"
}

// ValidPricing reports whether p is one of the known pricing classifications.
func ValidPricing(p string) bool {
	switch p {
	case PricingFree, PricingFreemium, PricingPaid, PricingSubscription:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known publication statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}
