// Package service contains the application's domain logic, sitting between
// HTTP handlers and repositories.
package service

import (
	"context"
	"time"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

// PageSize is the fixed number of posts per feed page.
const PageSize = 10

// Feed filter modes. Any other value falls through to the all-posts feed.
const (
	FeedModeFollowing = "following"
	FeedModeProfile   = "profile"
	FeedModeAll       = "all"
)

// FeedPage is one page of resolved feed content.
type FeedPage struct {
	Page     int                  `json:"page"`
	NumPages int                  `json:"num_pages"`
	Items    []models.PostSummary `json:"page_objects"`
}

// FeedService resolves ordered, paginated pages of post summaries.
type FeedService struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	followerRepo repository.FollowerRepository
}

// NewFeedService creates a new feed service.
func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	followerRepo repository.FollowerRepository,
) *FeedService {
	return &FeedService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		followerRepo: followerRepo,
	}
}

// Resolve returns the requested feed page. mode selects the filter:
// "following" restricts to posts by users the subject follows, "profile"
// restricts to the subject's own posts, anything else returns all posts.
// Pages are 1-indexed; a page past the end clamps to the last page. The
// subject user must exist for the filtered modes.
func (s *FeedService) Resolve(ctx context.Context, mode string, subjectUserID uint, page int) (*FeedPage, error) {
	start := time.Now()

	var result *FeedPage
	var err error

	switch mode {
	case FeedModeFollowing:
		result, err = s.resolveFollowing(ctx, subjectUserID, page)
	case FeedModeProfile:
		result, err = s.resolveProfile(ctx, subjectUserID, page)
	default:
		mode = FeedModeAll
		result, err = s.resolveAll(ctx, page)
	}

	if err != nil {
		return nil, err
	}
	observability.ObserveFeedResolve(mode, start)
	return result, nil
}

func (s *FeedService) resolveFollowing(ctx context.Context, subjectUserID uint, page int) (*FeedPage, error) {
	if _, err := s.userRepo.GetByID(ctx, subjectUserID); err != nil {
		return nil, err
	}
	creatorIDs, err := s.followerRepo.FollowingIDs(ctx, subjectUserID)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.CountByCreators(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}
	page, numPages := clampPage(page, total)
	posts, err := s.postRepo.ListByCreators(ctx, creatorIDs, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(page, numPages, posts), nil
}

func (s *FeedService) resolveProfile(ctx context.Context, subjectUserID uint, page int) (*FeedPage, error) {
	if _, err := s.userRepo.GetByID(ctx, subjectUserID); err != nil {
		return nil, err
	}
	creatorIDs := []uint{subjectUserID}
	total, err := s.postRepo.CountByCreators(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}
	page, numPages := clampPage(page, total)
	posts, err := s.postRepo.ListByCreators(ctx, creatorIDs, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(page, numPages, posts), nil
}

func (s *FeedService) resolveAll(ctx context.Context, page int) (*FeedPage, error) {
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	page, numPages := clampPage(page, total)

	// The all-posts feed is identical for every caller, so it is served
	// cache-aside. Write paths invalidate the whole key range.
	result := &FeedPage{}
	err = cache.Aside(ctx, cache.FeedPageKey(page), result, cache.FeedTTL, func() error {
		posts, listErr := s.postRepo.List(ctx, PageSize, (page-1)*PageSize)
		if listErr != nil {
			return listErr
		}
		*result = *buildPage(page, numPages, posts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// clampPage normalizes a 1-indexed page number against the total row count.
// Zero rows still yield a single empty page, matching the behavior of a
// standard clamping paginator.
func clampPage(page int, total int64) (int, int) {
	numPages := int((total + PageSize - 1) / PageSize)
	if numPages < 1 {
		numPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > numPages {
		page = numPages
	}
	return page, numPages
}

func buildPage(page, numPages int, posts []*models.Post) *FeedPage {
	items := make([]models.PostSummary, 0, len(posts))
	for _, p := range posts {
		items = append(items, p.Summarize())
	}
	return &FeedPage{
		Page:     page,
		NumPages: numPages,
		Items:    items,
	}
}
