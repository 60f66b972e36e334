package repository

import "gorm.io/gorm"

// Repository aggregates all repositories.
type Repository struct {
	School SchoolRepository
}

// NewRepository builds the repository aggregate over one gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		School: NewSchoolRepo(db),
	}
}
