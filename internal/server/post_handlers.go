package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	actorID := currentUserID(c)

	post, err := s.postService.Create(c.Context(), actorID, req.Content)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully.",
		"post":    post.Summarize(),
	})
}

// ToggleLike handles POST /api/posts/:id/like
//
// Liking an already-liked post removes the like. The response carries the
// resulting state and the post's updated like count.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actorID := currentUserID(c)

	result, err := s.postService.ToggleLike(c.Context(), actorID, postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	message := "Like removed"
	if result.Liked {
		message = "Like added"
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     message,
		"liked":       result.Liked,
		"total_likes": result.TotalLikes,
	})
}

// UpdatePost handles PUT /api/posts/:id
//
// Only the creator may edit a post. The creation timestamp never changes
// on edit.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	actorID := currentUserID(c)

	post, err := s.postService.UpdateContent(c.Context(), actorID, postID, req.Content)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post updated successfully.",
		"post":    post.Summarize(),
	})
}
