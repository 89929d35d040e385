package services_test

import (
	"testing"

	"bloglist/internal/apperrors"
	"bloglist/internal/repositories"
	"bloglist/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newBlogService() (*services.BlogService, *repositories.MockBlogRepository) {
	repo := repositories.NewMockBlogRepository()
	return services.NewBlogService(repo, nil), repo
}

func intPtr(v int) *int {
	return &v
}

func TestBlogService_CreateBlog(t *testing.T) {
	t.Run("stores a valid blog with its owner", func(t *testing.T) {
		service, repo := newBlogService()

		ownerID := uuid.New().String()
		blog, err := service.CreateBlog("React patterns", "Michael Chan", "https://reactpatterns.com/", intPtr(7), &ownerID)
		assert.NoError(t, err)
		assert.NotEmpty(t, blog.ID)
		assert.Equal(t, 7, blog.Likes)
		assert.Equal(t, ownerID, *blog.UserID)

		blogs, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Len(t, blogs, 1)
	})

	t.Run("defaults likes to 0 when absent", func(t *testing.T) {
		service, _ := newBlogService()

		blog, err := service.CreateBlog("First class tests", "Robert C. Martin", "http://blog.cleancoder.com/", nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0, blog.Likes)
	})

	t.Run("allows an owner-less blog", func(t *testing.T) {
		service, _ := newBlogService()

		blog, err := service.CreateBlog("Type wars", "Robert C. Martin", "http://blog.cleancoder.com/", intPtr(2), nil)
		assert.NoError(t, err)
		assert.Nil(t, blog.UserID)
	})

	t.Run("rejects a blog without title", func(t *testing.T) {
		service, repo := newBlogService()

		_, err := service.CreateBlog("", "Joker", "http://www.test.com", intPtr(17), nil)
		assert.Error(t, err)
		var vErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, err.Error(), "title or url missing")

		blogs, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Empty(t, blogs)
	})

	t.Run("rejects a blog without url", func(t *testing.T) {
		service, repo := newBlogService()

		_, err := service.CreateBlog("No url here", "Joker", "", nil, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "title or url missing")

		blogs, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Empty(t, blogs)
	})

	t.Run("rejects negative likes", func(t *testing.T) {
		service, _ := newBlogService()

		_, err := service.CreateBlog("Negative likes", "Joker", "http://www.test.com", intPtr(-1), nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "likes must be a non-negative number")
	})
}

func TestBlogService_GetBlogByID(t *testing.T) {
	service, _ := newBlogService()

	ownerID := uuid.New().String()
	created, err := service.CreateBlog("Canonical string reduction", "Edsger W. Dijkstra", "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", intPtr(12), &ownerID)
	assert.NoError(t, err)

	t.Run("returns an existing blog", func(t *testing.T) {
		blog, err := service.GetBlogByID(created.ID)
		assert.NoError(t, err)
		assert.Equal(t, created.Title, blog.Title)
	})

	t.Run("reports a malformed id", func(t *testing.T) {
		_, err := service.GetBlogByID("5a3d5da59070081a82a3445")
		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrMalformedID)
	})

	t.Run("reports a well-formed but unknown id", func(t *testing.T) {
		_, err := service.GetBlogByID(uuid.New().String())
		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestBlogService_DeleteBlog(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		service, repo := newBlogService()

		ownerID := uuid.New().String()
		created, err := service.CreateBlog("React patterns", "Michael Chan", "https://reactpatterns.com/", intPtr(7), &ownerID)
		assert.NoError(t, err)

		err = service.DeleteBlog(created.ID, ownerID)
		assert.NoError(t, err)

		blogs, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Empty(t, blogs)
	})

	t.Run("second delete of the same id reports not found", func(t *testing.T) {
		service, _ := newBlogService()

		ownerID := uuid.New().String()
		created, err := service.CreateBlog("React patterns", "Michael Chan", "https://reactpatterns.com/", intPtr(7), &ownerID)
		assert.NoError(t, err)

		assert.NoError(t, service.DeleteBlog(created.ID, ownerID))
		err = service.DeleteBlog(created.ID, ownerID)
		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("non-owner is rejected and the blog survives", func(t *testing.T) {
		service, repo := newBlogService()

		ownerID := uuid.New().String()
		created, err := service.CreateBlog("React patterns", "Michael Chan", "https://reactpatterns.com/", intPtr(7), &ownerID)
		assert.NoError(t, err)

		err = service.DeleteBlog(created.ID, uuid.New().String())
		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		blogs, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Len(t, blogs, 1)
	})

	t.Run("owner-less blog cannot be deleted by anyone", func(t *testing.T) {
		service, _ := newBlogService()

		created, err := service.CreateBlog("Type wars", "Robert C. Martin", "http://blog.cleancoder.com/", nil, nil)
		assert.NoError(t, err)

		err = service.DeleteBlog(created.ID, uuid.New().String())
		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("reports a malformed id", func(t *testing.T) {
		service, _ := newBlogService()

		err := service.DeleteBlog("not-a-uuid", uuid.New().String())
		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrMalformedID)
	})
}

func TestBlogService_UpdateBlogLikes(t *testing.T) {
	t.Run("owner can update likes", func(t *testing.T) {
		service, _ := newBlogService()

		ownerID := uuid.New().String()
		created, err := service.CreateBlog("React patterns", "Michael Chan", "https://reactpatterns.com/", intPtr(7), &ownerID)
		assert.NoError(t, err)

		updated, err := service.UpdateBlogLikes(created.ID, 8, ownerID)
		assert.NoError(t, err)
		assert.Equal(t, 8, updated.Likes)
		assert.Equal(t, created.ID, updated.ID)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		service, _ := newBlogService()

		ownerID := uuid.New().String()
		created, err := service.CreateBlog("React patterns", "Michael Chan", "https://reactpatterns.com/", intPtr(7), &ownerID)
		assert.NoError(t, err)

		_, err = service.UpdateBlogLikes(created.ID, 8, uuid.New().String())
		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		blog, err := service.GetBlogByID(created.ID)
		assert.NoError(t, err)
		assert.Equal(t, 7, blog.Likes)
	})

	t.Run("rejects negative likes", func(t *testing.T) {
		service, _ := newBlogService()

		ownerID := uuid.New().String()
		created, err := service.CreateBlog("React patterns", "Michael Chan", "https://reactpatterns.com/", intPtr(7), &ownerID)
		assert.NoError(t, err)

		_, err = service.UpdateBlogLikes(created.ID, -1, ownerID)
		assert.Error(t, err)
		var vErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("reports an unknown id", func(t *testing.T) {
		service, _ := newBlogService()

		_, err := service.UpdateBlogLikes(uuid.New().String(), 8, uuid.New().String())
		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
