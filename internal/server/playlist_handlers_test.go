package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type playlistBody struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	VideoCount  int64       `json:"video_count"`
	TotalViews  int64       `json:"total_views"`
	Videos      []videoBody `json:"videos"`
}

func TestPlaylistLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := signupUser(t, app, "curator")
	videoID := createVideo(t, app, token, "Playlist video")

	// Create
	resp := doJSON(t, app, http.MethodPost, "/api/playlists",
		`{"name":"Favorites","description":"the good stuff"}`, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var playlist playlistBody
	decodeBody(t, resp, &playlist)
	require.NotZero(t, playlist.ID)
	assert.Equal(t, "Favorites", playlist.Name)

	// Add a video, twice; the duplicate is absorbed.
	addPath := fmt.Sprintf("/api/playlists/%d/videos/%d", playlist.ID, videoID)
	for i := 0; i < 2; i++ {
		resp = doJSON(t, app, http.MethodPost, addPath, "", token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	// Detail carries the videos and rollups.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/playlists/%d", playlist.ID), "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &playlist)
	require.Len(t, playlist.Videos, 1)
	assert.Equal(t, int64(1), playlist.VideoCount)
	assert.Equal(t, "Playlist video", playlist.Videos[0].Title)

	// Update
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/playlists/%d", playlist.ID),
		`{"name":"Renamed"}`, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &playlist)
	assert.Equal(t, "Renamed", playlist.Name)

	// Remove the video.
	resp = doJSON(t, app, http.MethodDelete, addPath, "", token)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/playlists/%d", playlist.ID), "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &playlist)
	assert.Empty(t, playlist.Videos)

	// Delete
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/playlists/%d", playlist.ID), "", token)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/playlists/%d", playlist.ID), "", "")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlaylistOwnershipEnforced(t *testing.T) {
	app, _ := newTestApp(t)
	ownerToken, _ := signupUser(t, app, "curator")
	otherToken, _ := signupUser(t, app, "intruder")

	resp := doJSON(t, app, http.MethodPost, "/api/playlists", `{"name":"Mine"}`, ownerToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var playlist playlistBody
	decodeBody(t, resp, &playlist)

	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/playlists/%d", playlist.ID),
		`{"name":"Stolen"}`, otherToken)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/playlists/%d", playlist.ID), "", otherToken)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPlaylistRequiresName(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := signupUser(t, app, "curator")

	resp := doJSON(t, app, http.MethodPost, "/api/playlists", `{"description":"no name"}`, token)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserPlaylistsListing(t *testing.T) {
	app, _ := newTestApp(t)
	token, userID := signupUser(t, app, "curator")

	for _, name := range []string{"First", "Second"} {
		resp := doJSON(t, app, http.MethodPost, "/api/playlists",
			fmt.Sprintf(`{"name":%q}`, name), token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = resp.Body.Close()
	}

	var page struct {
		Items      []playlistBody `json:"items"`
		TotalItems int64          `json:"total_items"`
	}

	// Own listing.
	resp := doJSON(t, app, http.MethodGet, "/api/playlists", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	assert.Equal(t, int64(2), page.TotalItems)

	// Public listing by user id.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d/playlists", userID), "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	assert.Equal(t, int64(2), page.TotalItems)
}
