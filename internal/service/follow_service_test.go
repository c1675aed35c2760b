package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "user"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// followerRepoStub is a stub for repository.FollowerRepository.
type followerRepoStub struct {
	existsFn         func(context.Context, uint, uint) (bool, error)
	createFn         func(context.Context, uint, uint) error
	deleteFn         func(context.Context, uint, uint) error
	followingIDsFn   func(context.Context, uint) ([]uint, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
}

func (s *followerRepoStub) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followingID)
}
func (s *followerRepoStub) Create(ctx context.Context, followerID, followingID uint) error {
	return s.createFn(ctx, followerID, followingID)
}
func (s *followerRepoStub) Delete(ctx context.Context, followerID, followingID uint) error {
	return s.deleteFn(ctx, followerID, followingID)
}
func (s *followerRepoStub) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, followerID)
}
func (s *followerRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followerRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}

func noopFollowerRepo() *followerRepoStub {
	return &followerRepoStub{
		existsFn:         func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		createFn:         func(_ context.Context, _, _ uint) error { return nil },
		deleteFn:         func(_ context.Context, _, _ uint) error { return nil },
		followingIDsFn:   func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		countFollowersFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countFollowingFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

func TestFollowService_Toggle_SelfFollow(t *testing.T) {
	t.Parallel()

	followerRepo := noopFollowerRepo()
	followerRepo.createFn = func(_ context.Context, _, _ uint) error {
		t.Fatal("Create must not be called for a self-follow")
		return nil
	}

	svc := NewFollowService(noopUserRepo(), followerRepo)
	_, err := svc.Toggle(context.Background(), 3, 3)
	assertValidationError(t, err)
}

func TestFollowService_Toggle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("follow when no edge exists", func(t *testing.T) {
		t.Parallel()
		created := false
		followerRepo := noopFollowerRepo()
		followerRepo.createFn = func(_ context.Context, followerID, followingID uint) error {
			created = true
			assert.Equal(t, uint(1), followerID)
			assert.Equal(t, uint(2), followingID)
			return nil
		}

		svc := NewFollowService(noopUserRepo(), followerRepo)
		following, err := svc.Toggle(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, following)
		assert.True(t, created)
	})

	t.Run("unfollow when an edge exists", func(t *testing.T) {
		t.Parallel()
		deleted := false
		followerRepo := noopFollowerRepo()
		followerRepo.existsFn = func(_ context.Context, _, _ uint) (bool, error) { return true, nil }
		followerRepo.deleteFn = func(_ context.Context, _, _ uint) error {
			deleted = true
			return nil
		}

		svc := NewFollowService(noopUserRepo(), followerRepo)
		following, err := svc.Toggle(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, following)
		assert.True(t, deleted)
	})

	t.Run("double toggle restores the original state", func(t *testing.T) {
		t.Parallel()
		edge := false
		followerRepo := noopFollowerRepo()
		followerRepo.existsFn = func(_ context.Context, _, _ uint) (bool, error) { return edge, nil }
		followerRepo.createFn = func(_ context.Context, _, _ uint) error {
			edge = true
			return nil
		}
		followerRepo.deleteFn = func(_ context.Context, _, _ uint) error {
			edge = false
			return nil
		}

		svc := NewFollowService(noopUserRepo(), followerRepo)
		first, err := svc.Toggle(ctx, 1, 2)
		require.NoError(t, err)
		second, err := svc.Toggle(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, first)
		assert.False(t, second)
		assert.False(t, edge)
	})

	t.Run("missing target user", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			if id == 404 {
				return nil, models.NewNotFoundError("User", id)
			}
			return &models.User{ID: id}, nil
		}

		svc := NewFollowService(userRepo, noopFollowerRepo())
		_, err := svc.Toggle(ctx, 1, 404)
		assertNotFoundError(t, err)
	})
}

func TestFollowService_Stats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newStatsRepo := func() *followerRepoStub {
		repo := noopFollowerRepo()
		repo.countFollowersFn = func(_ context.Context, _ uint) (int64, error) { return 12, nil }
		repo.countFollowingFn = func(_ context.Context, _ uint) (int64, error) { return 3, nil }
		return repo
	}

	t.Run("counts for anonymous viewer", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopUserRepo(), newStatsRepo())
		user, stats, err := svc.Stats(ctx, 7, 0)
		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.Equal(t, int64(12), stats.Followers)
		assert.Equal(t, int64(3), stats.Following)
		assert.False(t, stats.IsFollowing)
	})

	t.Run("is_following for an authenticated viewer", func(t *testing.T) {
		t.Parallel()
		repo := newStatsRepo()
		repo.existsFn = func(_ context.Context, followerID, followingID uint) (bool, error) {
			return followerID == 9 && followingID == 7, nil
		}

		svc := NewFollowService(noopUserRepo(), repo)
		_, stats, err := svc.Stats(ctx, 7, 9)
		require.NoError(t, err)
		assert.True(t, stats.IsFollowing)
	})

	t.Run("own profile never checks the edge", func(t *testing.T) {
		t.Parallel()
		repo := newStatsRepo()
		repo.existsFn = func(_ context.Context, _, _ uint) (bool, error) {
			t.Fatal("Exists must not be called when viewing your own profile")
			return false, nil
		}

		svc := NewFollowService(noopUserRepo(), repo)
		_, stats, err := svc.Stats(ctx, 7, 7)
		require.NoError(t, err)
		assert.False(t, stats.IsFollowing)
	})

	t.Run("missing profile user", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}

		svc := NewFollowService(userRepo, newStatsRepo())
		_, _, err := svc.Stats(ctx, 404, 0)
		assertNotFoundError(t, err)
	})
}
