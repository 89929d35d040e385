package repositories

import (
	"fmt"
	"sync"

	"bloglist/internal/apperrors"
	"bloglist/internal/models"

	"github.com/google/uuid"
)

// MockBlogRepository is an in-memory implementation of BlogRepository.
type MockBlogRepository struct {
	blogs map[string]models.Blog
	order []string // insertion order, so GetAll is stable
	mu    sync.RWMutex
}

// NewMockBlogRepository creates a new instance of MockBlogRepository.
func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{
		blogs: make(map[string]models.Blog),
	}
}

// GetAll returns all blogs in insertion order.
func (r *MockBlogRepository) GetAll() ([]models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blogList := make([]models.Blog, 0, len(r.blogs))
	for _, id := range r.order {
		blogList = append(blogList, r.blogs[id])
	}
	return blogList, nil
}

// GetByID returns a blog by its ID.
func (r *MockBlogRepository) GetByID(id string) (*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blog, ok := r.blogs[id]
	if !ok {
		return nil, fmt.Errorf("blog with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &blog, nil
}

// Create adds a new blog.
func (r *MockBlogRepository) Create(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	r.blogs[blog.ID] = *blog
	r.order = append(r.order, blog.ID)
	return nil
}

// UpdateLikes sets the like count of an existing blog.
func (r *MockBlogRepository) UpdateLikes(id string, likes int) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog, ok := r.blogs[id]
	if !ok {
		return nil, fmt.Errorf("blog with ID %s: %w", id, apperrors.ErrNotFound)
	}
	blog.Likes = likes
	r.blogs[id] = blog
	return &blog, nil
}

// Delete removes a blog by its ID.
func (r *MockBlogRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.blogs[id]
	if !ok {
		return fmt.Errorf("blog with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.blogs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
