package repositories

import (
	"errors"

	"postboard/app/models"
)

// ErrNotFound is returned when a post does not exist in the store.
var ErrNotFound = errors.New("record not found")

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Delete(id int) error
	// Mutate loads the post, applies fn, and persists the result as a
	// single atomic operation. If fn returns an error the post is not
	// persisted.
	Mutate(id int, fn func(*models.Post) error) (*models.Post, error)
}
