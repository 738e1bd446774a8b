package api

import (
	"github.com/nakedifyai/backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, jwtSecret []byte, fallbackEmail, fallbackHash string) *routeHandlers {
	return &routeHandlers{
		toolHandler:       newToolHandler(db.ToolRepo()),
		listingHandler:    newListingHandler(db.ToolRepo(), db.CategoryRepo(), db.TagRepo()),
		categoryHandler:   newCategoryHandler(db.CategoryRepo(), db.ToolRepo()),
		tagHandler:        newTagHandler(db.TagRepo()),
		submissionHandler: newSubmissionHandler(db.SubmissionRepo(), db.CategoryRepo()),
		adminHandler:      newAdminHandler(db, jwtSecret, fallbackEmail, fallbackHash),
	}
}
