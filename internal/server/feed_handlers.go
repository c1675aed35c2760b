package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/posts/:page/:mode/:userId
//
// mode selects the feed: "following" returns posts by users the subject
// follows, "profile" returns the subject's own posts, anything else
// returns the global feed. The subject is the :userId route parameter;
// the global feed ignores it (clients pass 0). Out-of-range pages clamp
// to the nearest valid page instead of erroring.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page, err := c.ParamsInt("page")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid page"))
	}

	mode := c.Params("mode")

	// The global feed takes 0 as a placeholder user ID, so this is not
	// parsed through parseID (which rejects non-positive values).
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	if (mode == service.FeedModeFollowing || mode == service.FeedModeProfile) && userID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A user ID is required for this feed"))
	}

	feedPage, err := s.feedService.Resolve(c.Context(), mode, uint(userID), page)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(feedPage)
}
