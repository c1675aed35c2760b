package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

// PostService creates posts, toggles likes, and applies creator-only edits.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new post service.
func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > models.MaxPostContentLen {
		return models.NewValidationError("Content is too long (max 10000 characters)")
	}
	return nil
}

// Create persists a new post with the actor as creator.
func (s *PostService) Create(ctx context.Context, actorID uint, content string) (*models.Post, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Content: content,
		UserID:  actorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()

	// Reload so the creator association is populated for the response.
	return s.postRepo.GetByID(ctx, post.ID)
}

// LikeResult reports a like toggle's outcome.
type LikeResult struct {
	Liked      bool  `json:"liked"`
	TotalLikes int64 `json:"total_likes"`
}

// ToggleLike adds the actor to the post's like set if absent and removes
// them if present.
func (s *PostService) ToggleLike(ctx context.Context, actorID, postID uint) (*LikeResult, error) {
	if _, err := s.userRepo.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := s.postRepo.Unlike(ctx, actorID, postID); err != nil {
			return nil, err
		}
	} else {
		if err := s.postRepo.Like(ctx, actorID, postID); err != nil {
			return nil, err
		}
	}
	observability.ObserveToggle("like", !liked)

	total, err := s.postRepo.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: !liked, TotalLikes: total}, nil
}

// UpdateContent replaces a post's content. Only the creator may edit;
// identifiers are compared by value. The creation timestamp is untouched.
func (s *PostService) UpdateContent(ctx context.Context, actorID, postID uint, content string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != actorID {
		return nil, models.NewForbiddenError("Only the post creator can edit")
	}

	if err := validateContent(content); err != nil {
		return nil, err
	}

	if err := s.postRepo.UpdateContent(ctx, post, content); err != nil {
		return nil, err
	}
	return post, nil
}
