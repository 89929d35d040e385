package handlers

import (
	"log"

	"bloglist/internal/models"
	"bloglist/internal/services"
	"bloglist/internal/stats"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles HTTP requests for blogs.
type BlogHandler struct {
	service  *services.BlogService
	validate *validator.Validate
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the blog read routes. These must be
// registered before any auth middleware group so reads stay public.
func (h *BlogHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/blogs", h.HandleGetBlogs)
	router.Get("/blogs/stats", h.HandleGetStats) // before /blogs/:id
	router.Get("/blogs/:id", h.HandleGetBlogByID)
}

// RegisterCreateRoute registers blog creation on a router carrying the
// optional-auth middleware: an authenticated caller becomes the owner,
// an anonymous one creates an owner-less blog.
func (h *BlogHandler) RegisterCreateRoute(router fiber.Router) {
	router.Post("/blogs", h.HandleCreateBlog)
}

// RegisterProtectedRoutes registers the owner-gated mutations on a
// router carrying the required-auth middleware.
func (h *BlogHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Delete("/blogs/:id", h.HandleDeleteBlog)
	router.Put("/blogs/:id", h.HandleUpdateBlogLikes)
}

// HandleGetBlogs retrieves all blogs.
func (h *BlogHandler) HandleGetBlogs(c *fiber.Ctx) error {
	blogs, err := h.service.GetAllBlogs()
	if err != nil {
		return errorResponse(c, err)
	}

	responses := make([]models.BlogResponse, 0, len(blogs))
	for i := range blogs {
		responses = append(responses, blogs[i].ToResponse())
	}
	return c.JSON(responses)
}

// HandleGetStats returns the aggregate view over all blogs, computed at
// request time.
func (h *BlogHandler) HandleGetStats(c *fiber.Ctx) error {
	blogs, err := h.service.GetAllBlogs()
	if err != nil {
		return errorResponse(c, err)
	}

	var favorite *models.BlogResponse
	if fav := stats.FavoriteBlog(blogs); fav != nil {
		resp := fav.ToResponse()
		favorite = &resp
	}
	return c.JSON(fiber.Map{
		"totalLikes": stats.TotalLikes(blogs),
		"favorite":   favorite,
	})
}

// HandleGetBlogByID retrieves a single blog by its ID.
func (h *BlogHandler) HandleGetBlogByID(c *fiber.Ctx) error {
	blog, err := h.service.GetBlogByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(blog.ToResponse())
}

// CreateBlogRequest represents the request body for blog creation.
// Likes is a pointer so an absent value can default to 0.
type CreateBlogRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	URL    string `json:"url" validate:"required"`
	Likes  *int   `json:"likes" validate:"omitempty,gte=0"`
}

// HandleCreateBlog creates a new blog. An authenticated caller becomes
// the owner; an anonymous caller creates an owner-less blog.
func (h *BlogHandler) HandleCreateBlog(c *fiber.Ctx) error {
	var req CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create blog request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		for _, e := range validationErrors {
			if e.Field() == "Likes" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "likes must be a non-negative number",
				})
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title or url missing",
		})
	}

	var ownerID *string
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		ownerID = &userID
	}

	blog, err := h.service.CreateBlog(req.Title, req.Author, req.URL, req.Likes, ownerID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(blog.ToResponse())
}

// HandleDeleteBlog deletes a blog owned by the caller.
func (h *BlogHandler) HandleDeleteBlog(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	if err := h.service.DeleteBlog(c.Params("id"), userID); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateBlogRequest represents the request body for a likes update. The
// other fields are accepted for compatibility but only likes changes.
type UpdateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes" validate:"required,gte=0"`
}

// HandleUpdateBlogLikes updates the like count of a blog owned by the
// caller.
func (h *BlogHandler) HandleUpdateBlogLikes(c *fiber.Ctx) error {
	var req UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update blog request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "likes must be a non-negative number",
		})
	}

	userID, _ := c.Locals("user_id").(string)

	blog, err := h.service.UpdateBlogLikes(c.Params("id"), *req.Likes, userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(blog.ToResponse())
}
