package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reactionBody struct {
	IsLiked      bool  `json:"is_liked"`
	IsDisliked   bool  `json:"is_disliked"`
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
}

func TestVideoReactionLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	ownerToken, _ := signupUser(t, app, "creator")
	viewerToken, _ := signupUser(t, app, "viewer")
	videoID := createVideo(t, app, ownerToken, "Reaction target")

	likePath := fmt.Sprintf("/api/videos/%d/like", videoID)
	dislikePath := fmt.Sprintf("/api/videos/%d/dislike", videoID)

	// Like turns on.
	resp := doJSON(t, app, http.MethodPost, likePath, "", viewerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status reactionBody
	decodeBody(t, resp, &status)
	assert.True(t, status.IsLiked)
	assert.False(t, status.IsDisliked)
	assert.Equal(t, int64(1), status.LikeCount)

	// Dislike switches, it does not stack.
	resp = doJSON(t, app, http.MethodPost, dislikePath, "", viewerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.False(t, status.IsLiked)
	assert.True(t, status.IsDisliked)
	assert.Equal(t, int64(0), status.LikeCount)
	assert.Equal(t, int64(1), status.DislikeCount)

	// Disliking again turns it off.
	resp = doJSON(t, app, http.MethodPost, dislikePath, "", viewerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.False(t, status.IsDisliked)
	assert.Equal(t, int64(0), status.DislikeCount)
}

func TestReactionStatusIsViewerScoped(t *testing.T) {
	app, _ := newTestApp(t)
	ownerToken, _ := signupUser(t, app, "creator")
	likerToken, _ := signupUser(t, app, "liker")
	otherToken, _ := signupUser(t, app, "bystander")
	videoID := createVideo(t, app, ownerToken, "Scoped video")

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/videos/%d/like", videoID), "", likerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	statusPath := fmt.Sprintf("/api/videos/%d/reactions", videoID)

	// The liker sees their own flag.
	resp = doJSON(t, app, http.MethodGet, statusPath, "", likerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status reactionBody
	decodeBody(t, resp, &status)
	assert.True(t, status.IsLiked)
	assert.Equal(t, int64(1), status.LikeCount)

	// Another viewer sees the count but not the flag.
	resp = doJSON(t, app, http.MethodGet, statusPath, "", otherToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.False(t, status.IsLiked)
	assert.Equal(t, int64(1), status.LikeCount)

	// Anonymous viewers get counts with flags off.
	resp = doJSON(t, app, http.MethodGet, statusPath, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.False(t, status.IsLiked)
	assert.Equal(t, int64(1), status.LikeCount)
}

func TestReactionOnMissingTarget(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := signupUser(t, app, "viewer")

	resp := doJSON(t, app, http.MethodPost, "/api/videos/9999/like", "", token)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/comments/9999/like", "", token)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/tweets/9999/dislike", "", token)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCommentAndTweetReactions(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := signupUser(t, app, "creator")
	videoID := createVideo(t, app, token, "Video with comment")

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/videos/%d/comments", videoID),
		`{"content":"nice"}`, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var comment struct {
		ID uint `json:"id"`
	}
	decodeBody(t, resp, &comment)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/comments/%d/like", comment.ID), "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status reactionBody
	decodeBody(t, resp, &status)
	assert.True(t, status.IsLiked)

	resp = doJSON(t, app, http.MethodPost, "/api/tweets", `{"content":"hello world"}`, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var tweet struct {
		ID uint `json:"id"`
	}
	decodeBody(t, resp, &tweet)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/tweets/%d/dislike", tweet.ID), "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.True(t, status.IsDisliked)
	assert.Equal(t, int64(1), status.DislikeCount)
}

func TestLikedVideosCatalogue(t *testing.T) {
	app, _ := newTestApp(t)
	ownerToken, _ := signupUser(t, app, "creator")
	viewerToken, _ := signupUser(t, app, "viewer")

	first := createVideo(t, app, ownerToken, "First")
	second := createVideo(t, app, ownerToken, "Second")

	for _, id := range []uint{first, second} {
		resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/videos/%d/like", id), "", viewerToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/likes/videos", "", viewerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page struct {
		Items      []videoBody `json:"items"`
		TotalItems int64       `json:"total_items"`
	}
	decodeBody(t, resp, &page)
	assert.Equal(t, int64(2), page.TotalItems)
	assert.Len(t, page.Items, 2)

	// Nothing disliked yet.
	resp = doJSON(t, app, http.MethodGet, "/api/dislikes/videos", "", viewerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	assert.Equal(t, int64(0), page.TotalItems)
}
