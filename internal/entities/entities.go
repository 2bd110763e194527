// Package entities contains main entities of service.
package entities

import (
	"time"
)

// MediaType ...
type MediaType string

const (
	// ImageMediaType ...
	ImageMediaType MediaType = "image"
	// VideoMediaType ...
	VideoMediaType MediaType = "video"
)

// MediaItem is a single element of a post's media sequence.
type MediaItem struct {
	Type MediaType `json:"type"`
	URL  string    `json:"url"`
}

// User ...
type User struct {
	ID         string
	Name       string
	Username   string
	ProfilePic string
	Following  []string
	Followers  []string
	CreatedAt  time.Time
}

// Post is a post document. Immutable except for its like-set and author-edited fields.
type Post struct {
	ID         string
	AuthorID   string
	AuthorName string
	AuthorPic  string
	Title      string
	Media      []MediaItem
	Likes      []string
	CreatedAt  time.Time
}

// LikedBy reports whether userID is a member of the post's like-set.
func (p *Post) LikedBy(userID string) bool {
	for _, v := range p.Likes {
		if v == userID {
			return true
		}
	}

	return false
}

// FeedEntry is a view-only projection created per assembly pass, never persisted.
type FeedEntry struct {
	Post               Post
	AuthorDisplayName  string
	AuthorAvatar       string
	IsFollowedByViewer bool
}
