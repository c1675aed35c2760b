package server

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFeedApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Get("/api/posts/:page/:mode/:userId", s.GetFeed)
	return app
}

func seedPosts(t *testing.T, db *gorm.DB, user *models.User, n int) {
	t.Helper()
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		post := &models.Post{
			Content:   fmt.Sprintf("post %d", i),
			UserID:    user.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(post).Error)
	}
}

func TestGetFeed_ProfilePagination(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	app := newFeedApp(s)
	ada := createUser(t, db, "ada")
	seedPosts(t, db, ada, 25)

	t.Run("first page holds ten posts newest first", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet,
			fmt.Sprintf("/api/posts/1/profile/%d", ada.ID), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(1), body["page"])
		assert.Equal(t, float64(3), body["num_pages"])
		items, ok := body["page_objects"].([]any)
		require.True(t, ok)
		require.Len(t, items, 10)

		first, ok := items[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "post 25", first["content"])
		assert.Equal(t, "ada", first["creator"])
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet,
			fmt.Sprintf("/api/posts/3/profile/%d", ada.ID), nil))
		require.NoError(t, err)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(3), body["page"])
		items := body["page_objects"].([]any)
		assert.Len(t, items, 5)
	})

	t.Run("page past the end clamps to the last page", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet,
			fmt.Sprintf("/api/posts/99/profile/%d", ada.ID), nil))
		require.NoError(t, err)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(3), body["page"])
	})
}

func TestGetFeed_FollowingMode(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	app := newFeedApp(s)
	ada := createUser(t, db, "ada")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	seedPosts(t, db, bob, 2)
	seedPosts(t, db, carol, 3)
	require.NoError(t, db.Create(&models.Follower{FollowerID: ada.ID, FollowingID: bob.ID}).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet,
		fmt.Sprintf("/api/posts/1/following/%d", ada.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["page_objects"].([]any)
	require.Len(t, items, 2)
	for _, raw := range items {
		item := raw.(map[string]any)
		assert.Equal(t, "bob", item["creator"])
	}
}

func TestGetFeed_AllMode(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	app := newFeedApp(s)
	ada := createUser(t, db, "ada")
	bob := createUser(t, db, "bob")
	seedPosts(t, db, ada, 1)
	seedPosts(t, db, bob, 1)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/posts/1/all/0", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["page_objects"].([]any)
	assert.Len(t, items, 2)
}

func TestGetFeed_EmptyFeedIsOnePage(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	app := newFeedApp(s)
	ada := createUser(t, db, "ada")

	resp, err := app.Test(jsonRequest(http.MethodGet,
		fmt.Sprintf("/api/posts/1/profile/%d", ada.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(1), body["num_pages"])
	assert.Empty(t, body["page_objects"])
}

func TestGetFeed_Errors(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	app := newFeedApp(s)
	createUser(t, db, "ada")

	t.Run("unknown subject user", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/posts/1/profile/999", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-numeric page", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/posts/abc/all/0", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("filtered mode without a user", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/posts/1/following/0", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetFeed_LikeIDs(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	app := newFeedApp(s)
	ada := createUser(t, db, "ada")
	bob := createUser(t, db, "bob")
	seedPosts(t, db, ada, 1)

	var post models.Post
	require.NoError(t, db.First(&post).Error)
	require.NoError(t, db.Create(&models.Like{UserID: bob.ID, PostID: post.ID}).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet,
		fmt.Sprintf("/api/posts/1/profile/%d", ada.ID), nil))
	require.NoError(t, err)

	body := decodeBody(t, resp)
	items := body["page_objects"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, []any{float64(bob.ID)}, item["likes"])
	assert.Equal(t, float64(1), item["total_likes"])
}
