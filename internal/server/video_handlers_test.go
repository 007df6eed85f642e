package server

import (
	"fmt"
	"net/http"
	"testing"

	"clipstream/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type videoBody struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Views         int64  `json:"views"`
	IsPublished   bool   `json:"is_published"`
	IsLiked       bool   `json:"is_liked"`
	IsDisliked    bool   `json:"is_disliked"`
	LikesCount    int64  `json:"likes_count"`
	DislikesCount int64  `json:"dislikes_count"`
	Owner         *struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	} `json:"owner"`
}

func TestCreateAndGetVideo(t *testing.T) {
	app, _ := newTestApp(t)
	token, ownerID := signupUser(t, app, "creator")
	videoID := createVideo(t, app, token, "First upload")

	// Anonymous read: viewer flags stay false, owner summary attached.
	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/videos/%d", videoID), "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var video videoBody
	decodeBody(t, resp, &video)
	assert.Equal(t, "First upload", video.Title)
	assert.False(t, video.IsLiked)
	assert.False(t, video.IsDisliked)
	assert.Zero(t, video.Views)
	require.NotNil(t, video.Owner)
	assert.Equal(t, ownerID, video.Owner.ID)
	assert.Equal(t, "creator", video.Owner.Username)
}

func TestGetVideoNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/videos/9999", "", "")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/videos/abc", "", "")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestViewCountsOncePerViewer(t *testing.T) {
	app, _ := newTestApp(t)
	ownerToken, _ := signupUser(t, app, "creator")
	viewerToken, _ := signupUser(t, app, "viewer")
	videoID := createVideo(t, app, ownerToken, "Watched video")

	path := fmt.Sprintf("/api/videos/%d", videoID)

	// First authenticated watch moves the counter.
	resp := doJSON(t, app, http.MethodGet, path, "", viewerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var video videoBody
	decodeBody(t, resp, &video)
	assert.Equal(t, int64(1), video.Views)

	// Rewatching does not.
	resp = doJSON(t, app, http.MethodGet, path, "", viewerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &video)
	assert.Equal(t, int64(1), video.Views)

	// The owner opening their own video never counts.
	resp = doJSON(t, app, http.MethodGet, path, "", ownerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &video)
	assert.Equal(t, int64(1), video.Views)

	// Anonymous reads never count either.
	resp = doJSON(t, app, http.MethodGet, path, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &video)
	assert.Equal(t, int64(1), video.Views)
}

func TestUpdateVideoOwnershipEnforced(t *testing.T) {
	app, _ := newTestApp(t)
	ownerToken, _ := signupUser(t, app, "creator")
	otherToken, _ := signupUser(t, app, "intruder")
	videoID := createVideo(t, app, ownerToken, "Original title")

	path := fmt.Sprintf("/api/videos/%d", videoID)

	resp := doJSON(t, app, http.MethodPut, path, `{"title":"Hijacked"}`, otherToken)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, path, `{"title":"Renamed"}`, ownerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var video videoBody
	decodeBody(t, resp, &video)
	assert.Equal(t, "Renamed", video.Title)
}

func TestTogglePublish(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := signupUser(t, app, "creator")
	videoID := createVideo(t, app, token, "Toggle me")

	path := fmt.Sprintf("/api/videos/%d/publish", videoID)

	resp := doJSON(t, app, http.MethodPatch, path, "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var video videoBody
	decodeBody(t, resp, &video)
	assert.False(t, video.IsPublished)

	resp = doJSON(t, app, http.MethodPatch, path, "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &video)
	assert.True(t, video.IsPublished)
}

func TestListVideosHidesDraftsFromOthers(t *testing.T) {
	app, _ := newTestApp(t)
	token, ownerID := signupUser(t, app, "creator")
	createVideo(t, app, token, "Published video")

	resp := doJSON(t, app, http.MethodPost, "/api/videos",
		`{"title":"Draft video","video_url":"https://cdn.example.com/d.mp4","is_published":false}`, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	var page struct {
		Items      []videoBody `json:"items"`
		TotalItems int64       `json:"total_items"`
	}

	// Anonymous feed only sees the published video.
	resp = doJSON(t, app, http.MethodGet, "/api/videos", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	assert.Equal(t, int64(1), page.TotalItems)

	// The owner browsing their own channel sees the draft too.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/videos?userId=%d", ownerID), "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	assert.Equal(t, int64(2), page.TotalItems)

	// Other viewers browsing that channel do not.
	otherToken, _ := signupUser(t, app, "viewer")
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/videos?userId=%d", ownerID), "", otherToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	assert.Equal(t, int64(1), page.TotalItems)
}

func TestDeleteVideo(t *testing.T) {
	app, s := newTestApp(t)
	ownerToken, _ := signupUser(t, app, "creator")
	fanToken, _ := signupUser(t, app, "fan")
	videoID := createVideo(t, app, ownerToken, "Doomed video")

	// A second user reacts before the delete: like, then switch to dislike.
	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/videos/%d/like", videoID), "", fanToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status reactionBody
	decodeBody(t, resp, &status)
	assert.True(t, status.IsLiked)
	assert.Equal(t, int64(1), status.LikeCount)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/videos/%d/dislike", videoID), "", fanToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.True(t, status.IsDisliked)
	assert.Equal(t, int64(0), status.LikeCount)
	assert.Equal(t, int64(1), status.DislikeCount)

	path := fmt.Sprintf("/api/videos/%d", videoID)

	resp = doJSON(t, app, http.MethodDelete, path, "", ownerToken)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, path, "", "")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The cascade removed the fan's reaction rows along with the video.
	var likes, dislikes int64
	require.NoError(t, s.db.Model(&models.Like{}).
		Where("target_kind = ? AND target_id = ?", models.TargetVideo, videoID).
		Count(&likes).Error)
	require.NoError(t, s.db.Model(&models.Dislike{}).
		Where("target_kind = ? AND target_id = ?", models.TargetVideo, videoID).
		Count(&dislikes).Error)
	assert.Zero(t, likes)
	assert.Zero(t, dislikes)
}
