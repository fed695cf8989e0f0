package repository

import (
	"fmt"

	"github.com/yourusername/lay-scout/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Run RunRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Run: NewPostgresRunRepository(db),
	}, nil
}
