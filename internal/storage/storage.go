// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/mosaicnet/mosaic/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrEmptyAuthorFilter returned when QueryPosts is called with a non-nil empty AuthorIn.
// An empty IN filter is invalid and must be skipped by the caller, not sent.
var ErrEmptyAuthorFilter = fmt.Errorf("empty author filter")

// SetOp ...
type SetOp string

const (
	// AddSetOp ...
	AddSetOp SetOp = "add"
	// RemoveSetOp ...
	RemoveSetOp SetOp = "remove"
)

// PostStorage provides methods for interacting with post documents.
type PostStorage interface {
	CreatePost(ctx context.Context, p *CreatePostParams) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	QueryPosts(ctx context.Context, p *QueryPostsParams) ([]*entities.Post, error)
	UpdatePostLikes(ctx context.Context, postID string, op SetOp, userID string) error
}

// UserStorage provides methods for interacting with user documents.
type UserStorage interface {
	CreateUser(ctx context.Context, u *entities.User) error
	GetUser(ctx context.Context, id string) (*entities.User, error)
	UpdateFollowing(ctx context.Context, userID string, op SetOp, targetID string) error
	UpdateFollowers(ctx context.Context, userID string, op SetOp, targetID string) error
}

// Storage ...
type Storage interface {
	PostStorage
	UserStorage

	Ping(ctx context.Context) error
}

// QueryPostsParams describe a post query. Results are always ordered by
// created_at descending.
type QueryPostsParams struct {
	AuthorIn      []string
	ExcludeAuthor *string
	Limit         uint16
}

// CreatePostParams ...
type CreatePostParams struct {
	ID         string
	AuthorID   string
	AuthorName string
	AuthorPic  string
	Title      string
	Media      []entities.MediaItem
	CreatedAt  time.Time
}

// ChangeKind ...
type ChangeKind string

const (
	// PostChangeKind ...
	PostChangeKind ChangeKind = "post"
	// UserChangeKind ...
	UserChangeKind ChangeKind = "user"
)

// Change is a single change-notification event. Exactly one of Post and User
// is set according to Kind. A nil payload means the notification exceeded the
// transport limit and the document has to be re-read by id.
type Change struct {
	Kind ChangeKind
	ID   string
	Post *entities.Post
	User *entities.User
}

// Watcher delivers authoritative document changes. The returned channel is
// closed when ctx is cancelled; Watch is the single long-lived push channel
// of the process.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Change, error)
}
