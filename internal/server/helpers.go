package server

import (
	"errors"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parsePage extracts the 1-based page query parameter. Out-of-range values
// are tolerated here, the paginator clamps them later.
func parsePage(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentUserID returns the authenticated user's ID, or 0 when the request
// carries no (valid) credentials.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// respondAppError maps the application error taxonomy to HTTP statuses and
// writes the standardized error body.
func respondAppError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "FORBIDDEN":
			status = fiber.StatusForbidden
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		}
	}

	return models.RespondWithError(c, status, err)
}
