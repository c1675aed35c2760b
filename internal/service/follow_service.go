package service

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

// FollowService toggles follow edges and reports profile relationship stats.
type FollowService struct {
	userRepo     repository.UserRepository
	followerRepo repository.FollowerRepository
}

// NewFollowService creates a new follow service.
func NewFollowService(
	userRepo repository.UserRepository,
	followerRepo repository.FollowerRepository,
) *FollowService {
	return &FollowService{
		userRepo:     userRepo,
		followerRepo: followerRepo,
	}
}

// Toggle creates the follow edge (actor → target) if absent and removes it if
// present. It reports whether the actor follows the target after the call.
// Identifiers are compared by value: a user can never follow themselves.
func (s *FollowService) Toggle(ctx context.Context, actorID, targetID uint) (bool, error) {
	if actorID == targetID {
		return false, models.NewValidationError("Users cannot follow themselves")
	}

	if _, err := s.userRepo.GetByID(ctx, actorID); err != nil {
		return false, err
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return false, err
	}

	exists, err := s.followerRepo.Exists(ctx, actorID, targetID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.followerRepo.Delete(ctx, actorID, targetID); err != nil {
			return false, err
		}
		observability.ObserveToggle("follow", false)
		return false, nil
	}

	if err := s.followerRepo.Create(ctx, actorID, targetID); err != nil {
		return false, err
	}
	observability.ObserveToggle("follow", true)
	return true, nil
}

// ProfileStats carries the relationship counters shown on a profile page.
type ProfileStats struct {
	Followers   int64 `json:"followers"`
	Following   int64 `json:"following"`
	IsFollowing bool  `json:"is_following"`
}

// profileCounters is the viewer-independent part of ProfileStats, cached
// separately so the cache never leaks one viewer's is_following to another.
type profileCounters struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// Stats resolves a profile user together with follower/following counts and,
// when viewerID is non-zero, whether the viewer follows the profile.
func (s *FollowService) Stats(ctx context.Context, profileUserID, viewerID uint) (*models.User, *ProfileStats, error) {
	user, err := s.userRepo.GetByID(ctx, profileUserID)
	if err != nil {
		return nil, nil, err
	}

	var counters profileCounters
	err = cache.Aside(ctx, cache.ProfileStatsKey(profileUserID), &counters, cache.ProfileStatsTTL, func() error {
		followers, countErr := s.followerRepo.CountFollowers(ctx, profileUserID)
		if countErr != nil {
			return countErr
		}
		following, countErr := s.followerRepo.CountFollowing(ctx, profileUserID)
		if countErr != nil {
			return countErr
		}
		counters = profileCounters{Followers: followers, Following: following}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	stats := &ProfileStats{
		Followers: counters.Followers,
		Following: counters.Following,
	}
	if viewerID != 0 && viewerID != profileUserID {
		isFollowing, err := s.followerRepo.Exists(ctx, viewerID, profileUserID)
		if err != nil {
			return nil, nil, err
		}
		stats.IsFollowing = isFollowing
	}

	return user, stats, nil
}
