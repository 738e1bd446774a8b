package database

import (
	"gorm.io/gorm"
)

type Database struct {
	toolRepo       *ToolRepo
	categoryRepo   *CategoryRepo
	tagRepo        *TagRepo
	submissionRepo *SubmissionRepo
	adminRepo      *AdminRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		toolRepo:       NewToolRepo(db),
		categoryRepo:   NewCategoryRepo(db),
		tagRepo:        NewTagRepo(db),
		submissionRepo: NewSubmissionRepo(db),
		adminRepo:      NewAdminRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ToolRepo() *ToolRepo {
	return d.toolRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) SubmissionRepo() *SubmissionRepo {
	return d.submissionRepo
}

func (d Database) AdminRepo() *AdminRepo {
	return d.adminRepo
}
