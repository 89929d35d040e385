package repositories

import (
	"errors"
	"fmt"

	"bloglist/internal/apperrors"
	"bloglist/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{
		db: db,
	}
}

// GetAll retrieves all blogs from the database in insertion order.
func (r *GORMBlogRepository) GetAll() ([]models.Blog, error) {
	var blogs []models.Blog
	// The id tiebreak keeps the order stable when rows share a timestamp.
	if err := r.db.Order("created_at, id").Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to get all blogs: %v", apperrors.ErrStoreUnavailable, err)
	}
	return blogs, nil
}

// GetByID retrieves a single blog by its ID from the database.
func (r *GORMBlogRepository) GetByID(id string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to get blog by ID %s: %v", apperrors.ErrStoreUnavailable, id, err)
	}
	return &blog, nil
}

// Create creates a new blog in the database.
func (r *GORMBlogRepository) Create(blog *models.Blog) error {
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	if err := r.db.Create(blog).Error; err != nil {
		return fmt.Errorf("%w: failed to create blog: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// UpdateLikes sets the like count of an existing blog and returns the
// updated record.
func (r *GORMBlogRepository) UpdateLikes(id string, likes int) (*models.Blog, error) {
	res := r.db.Model(&models.Blog{}).Where("id = ?", id).Update("likes", likes)
	if res.Error != nil {
		return nil, fmt.Errorf("%w: failed to update likes for blog %s: %v", apperrors.ErrStoreUnavailable, id, res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Update does not return ErrRecordNotFound when no rows
		// match, so we check RowsAffected.
		return nil, fmt.Errorf("blog with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return r.GetByID(id)
}

// Delete deletes a blog by its ID from the database.
func (r *GORMBlogRepository) Delete(id string) error {
	res := r.db.Delete(&models.Blog{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%w: failed to delete blog: %v", apperrors.ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("blog with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
