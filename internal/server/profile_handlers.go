package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profiles/:username?page=N
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	viewerID := currentUserID(c)

	profile, err := s.userService.GetProfile(c.Context(), username, viewerID)
	if err != nil {
		return respondAppError(c, err)
	}

	_, page, err := s.postService.ProfileFeed(c.Context(), username, parsePage(c))
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"profile":     profile,
		"posts":       page.Posts,
		"page":        page.Number,
		"total_pages": page.TotalPages,
		"total":       page.Total,
		"has_next":    page.HasNext,
		"has_prev":    page.HasPrev,
	})
}

// FollowAuthor handles POST /api/profiles/:username/follow
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Follow(c.Context(), userID, username); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"following": true,
		"author":    username,
	})
}

// UnfollowAuthor handles DELETE /api/profiles/:username/follow
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Unfollow(c.Context(), userID, username); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"following": false,
		"author":    username,
	})
}

// GetFollowingFeed handles GET /api/feed/following?page=N
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	page, err := s.followService.FollowingFeed(c.Context(), userID, parsePage(c))
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(page)
}
