package services

import (
	"fmt"
	"log"

	"bloglist/internal/apperrors"
	"bloglist/internal/models"
	"bloglist/internal/repositories"
	"bloglist/pkg/rabbitmq"

	"github.com/google/uuid"
)

// BlogService handles business logic related to blogs: creation with
// defaulting, reads, and owner-gated mutations.
type BlogService struct {
	blogRepo repositories.BlogRepository
	mqClient *rabbitmq.Client // optional, nil disables event publishing
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogRepo repositories.BlogRepository, mqClient *rabbitmq.Client) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		mqClient: mqClient,
	}
}

// GetAllBlogs retrieves all blogs.
func (s *BlogService) GetAllBlogs() ([]models.Blog, error) {
	return s.blogRepo.GetAll()
}

// GetBlogByID retrieves a single blog by its ID.
func (s *BlogService) GetBlogByID(id string) (*models.Blog, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.blogRepo.GetByID(id)
}

// CreateBlog validates and stores a new blog. A nil likes value
// defaults to 0. ownerID is nil when the caller was not authenticated,
// which stores an owner-less blog.
func (s *BlogService) CreateBlog(title, author, url string, likes *int, ownerID *string) (*models.Blog, error) {
	if title == "" || url == "" {
		return nil, apperrors.NewValidation("title or url missing")
	}

	likeCount := 0
	if likes != nil {
		if *likes < 0 {
			return nil, apperrors.NewValidation("likes must be a non-negative number")
		}
		likeCount = *likes
	}

	blog := &models.Blog{
		ID:     uuid.New().String(),
		Title:  title,
		Author: author,
		URL:    url,
		Likes:  likeCount,
		UserID: ownerID,
	}
	if err := s.blogRepo.Create(blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	s.publishEvent("blog.created", blog)

	return blog, nil
}

// DeleteBlog removes a blog on behalf of callerID. Only the owner may
// delete; an owner-less blog cannot be deleted by anyone.
func (s *BlogService) DeleteBlog(id, callerID string) error {
	if err := checkID(id); err != nil {
		return err
	}
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return err
	}
	if blog.UserID == nil || *blog.UserID != callerID {
		return fmt.Errorf("blog %s is not owned by the caller: %w", id, apperrors.ErrForbidden)
	}
	if err := s.blogRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent("blog.deleted", blog)

	return nil
}

// UpdateBlogLikes sets the like count of a blog on behalf of callerID.
// Like deletion, the operation is owner-gated.
func (s *BlogService) UpdateBlogLikes(id string, likes int, callerID string) (*models.Blog, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if likes < 0 {
		return nil, apperrors.NewValidation("likes must be a non-negative number")
	}
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if blog.UserID == nil || *blog.UserID != callerID {
		return nil, fmt.Errorf("blog %s is not owned by the caller: %w", id, apperrors.ErrForbidden)
	}
	return s.blogRepo.UpdateLikes(id, likes)
}

// publishEvent publishes a blog event best-effort: a broker failure is
// logged and never fails the request.
func (s *BlogService) publishEvent(event string, blog *models.Blog) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"blogID": blog.ID,
		"title":  blog.Title,
		"likes":  blog.Likes,
	}
	if blog.UserID != nil {
		payload["userID"] = *blog.UserID
	}
	if err := s.mqClient.PublishBlogEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for blog %s: %v", event, blog.ID, err)
	}
}

// checkID rejects syntactically invalid identifiers before any store
// round-trip.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid blog id %q: %w", id, apperrors.ErrMalformedID)
	}
	return nil
}
