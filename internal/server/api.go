package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mosaicnet/mosaic/internal/entities"
)

const maxPageSize = 100
const defaultPageSize = 20

// Error ...
type Error struct {
	Error string `json:"error"`
}

// LoginRequest ...
type LoginRequest struct {
	UserID string `json:"userId"`
}

// LoginResponse ...
type LoginResponse struct {
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	FollowingCount int    `json:"followingCount"`
	FollowersCount int    `json:"followersCount"`
}

// Post ...
type Post struct {
	ID            string               `json:"id"`
	AuthorID      string               `json:"authorId"`
	Title         string               `json:"title"`
	Media         []entities.MediaItem `json:"media"`
	LikesCount    int                  `json:"likesCount"`
	LikedByViewer bool                 `json:"likedByViewer"`
	CreatedAt     int64                `json:"createdAt"`
}

// FeedEntry ...
type FeedEntry struct {
	Post               Post   `json:"post"`
	AuthorDisplayName  string `json:"authorDisplayName"`
	AuthorAvatar       string `json:"authorAvatar"`
	IsFollowedByViewer bool   `json:"isFollowedByViewer"`
}

// FeedResponse ...
type FeedResponse struct {
	Entries []FeedEntry `json:"entries"`
	// Partial is set when the feed degraded to unscoped results only.
	Partial bool `json:"partial"`
	// Stale is set when assembly failed and the previous feed is returned.
	Stale bool `json:"stale,omitempty"`
}

// FollowResponse ...
type FollowResponse struct {
	Following bool `json:"following"`
	// Partial is set when the write left a one-sided edge; local state
	// reflects intent, not confirmed truth.
	Partial bool `json:"partial,omitempty"`
}

// ToggleLikeResponse ...
type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

// CreatePostRequest ...
type CreatePostRequest struct {
	Title string               `json:"title"`
	Media []entities.MediaItem `json:"media"`
}

// CreatePostResponse ...
type CreatePostResponse struct {
	ID string `json:"id"`
}

// UserStatsResponse ...
type UserStatsResponse struct {
	FollowersCount int `json:"followersCount"`
	FollowingCount int `json:"followingCount"`
	PostsCount     int `json:"postsCount"`
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	b, _ := json.Marshal(v)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalError(w http.ResponseWriter, message string) {
	logrus.Error(message)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func toAPIFeedEntry(viewerID string, e *entities.FeedEntry) FeedEntry {
	return FeedEntry{
		Post:               toAPIPost(viewerID, &e.Post),
		AuthorDisplayName:  e.AuthorDisplayName,
		AuthorAvatar:       e.AuthorAvatar,
		IsFollowedByViewer: e.IsFollowedByViewer,
	}
}

func toAPIPost(viewerID string, p *entities.Post) Post {
	return Post{
		ID:            p.ID,
		AuthorID:      p.AuthorID,
		Title:         p.Title,
		Media:         p.Media,
		LikesCount:    len(p.Likes),
		LikedByViewer: p.LikedBy(viewerID),
		CreatedAt:     p.CreatedAt.UTC().Unix(),
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
