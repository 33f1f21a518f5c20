package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /api/groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	if groups == nil {
		groups = []models.Group{}
	}
	return c.JSON(groups)
}

// GetGroupPosts handles GET /api/groups/:slug/posts?page=N
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	slug := c.Params("slug")

	group, page, err := s.postService.GroupFeed(c.Context(), slug, parsePage(c))
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"group":       group,
		"posts":       page.Posts,
		"page":        page.Number,
		"total_pages": page.TotalPages,
		"total":       page.Total,
		"has_next":    page.HasNext,
		"has_prev":    page.HasPrev,
	})
}
