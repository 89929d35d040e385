package handlers

import (
	"errors"
	"log"

	"bloglist/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// errorResponse maps a service error to an HTTP status by its kind.
// Validation messages pass through verbatim; everything unrecognized is
// a server error.
func errorResponse(c *fiber.Ctx, err error) error {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": vErr.Reason,
		})
	case errors.Is(err, apperrors.ErrMalformedID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed id",
		})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "blog not found",
		})
	case errors.Is(err, apperrors.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid or missing token",
		})
	case errors.Is(err, apperrors.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "only the owner may modify this blog",
		})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		log.Printf("Store unavailable: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "store unavailable",
		})
	default:
		log.Printf("Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
