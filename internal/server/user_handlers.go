package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/:id/profile
//
// The response includes follower and following counts. is_following is
// only meaningful when the caller is authenticated and viewing someone
// else's profile; for anonymous callers it is always false.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID := currentUserID(c)

	user, stats, err := s.followService.Stats(c.Context(), profileID, viewerID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":         user,
		"followers":    stats.Followers,
		"following":    stats.Following,
		"is_following": stats.IsFollowing,
	})
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// ToggleFollow handles POST /api/users/:id/follow
//
// Following an already-followed user unfollows them. The response reports
// the resulting state so clients don't need to track it.
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actorID := currentUserID(c)

	following, err := s.followService.Toggle(c.Context(), actorID, targetID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	message := "Unfollowed"
	if following {
		message = "Followed"
	}

	return c.JSON(fiber.Map{
		"message":      message,
		"is_following": following,
	})
}
