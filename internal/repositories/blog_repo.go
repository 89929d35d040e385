package repositories

import (
	"bloglist/internal/models"
)

// BlogRepository defines the interface for blog data access.
type BlogRepository interface {
	GetAll() ([]models.Blog, error)
	GetByID(id string) (*models.Blog, error)
	Create(blog *models.Blog) error
	UpdateLikes(id string, likes int) (*models.Blog, error)
	Delete(id string) error
}
