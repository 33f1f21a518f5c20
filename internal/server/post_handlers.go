package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetHomeFeed handles GET /api/posts?page=N
func (s *Server) GetHomeFeed(c *fiber.Ctx) error {
	page, err := s.postService.HomeFeed(c.Context(), parsePage(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(page)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, comments, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Text     string `json:"text"`
		GroupID  *uint  `json:"group_id,omitempty"`
		ImageURL string `json:"image_url,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID: userID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text     string `json:"text"`
		GroupID  *uint  `json:"group_id,omitempty"`
		ImageURL string `json:"image_url,omitempty"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:   userID,
		PostID:   postID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	}); err != nil {
		return respondAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
