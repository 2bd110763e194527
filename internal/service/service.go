// Package service contains interfaces for service business-logic and the
// error kinds the view layer is allowed to see. Store-layer errors are
// converted to one of these kinds at the service boundary; raw transport
// errors never reach a handler.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mosaicnet/mosaic/internal/entities"
	"github.com/mosaicnet/mosaic/internal/session"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrSelfFollow returned when a viewer tries to follow or unfollow themselves.
var ErrSelfFollow = errors.New("viewer and target are the same user")

// ErrTransient marks a store error that may be retried for reads. Writes that
// mutate set membership are never auto-retried to avoid duplicate toggles.
var ErrTransient = errors.New("transient store error")

// Transient converts a store error to the transient kind.
func Transient(err error) error {
	return fmt.Errorf("%w: %s", ErrTransient, err)
}

// PartialError reports a one-sided follow edge: the viewer's half of the
// write succeeded, the target's half did not. Non-fatal; local state reflects
// intent, not confirmed truth.
type PartialError struct {
	Op       string
	ViewerID string
	TargetID string
	Err      error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%s %s->%s left a one-sided edge: %s", e.Op, e.ViewerID, e.TargetID, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }

// Graph exposes follow/unfollow as a single logical bidirectional operation
// over two independently stored user documents.
type Graph interface {
	Follow(ctx context.Context, sess *session.Session, targetID string) error
	Unfollow(ctx context.Context, sess *session.Session, targetID string) error
	IsFollowing(sess *session.Session, targetID string) bool
}

// AssembledFeed ...
type AssembledFeed struct {
	Entries []entities.FeedEntry
	// Partial is set when the following-scoped query failed and the feed
	// degraded to unscoped results only.
	Partial bool
	Seq     uint64
}

// Feed produces the viewer's merged timeline.
type Feed interface {
	Assemble(ctx context.Context, sess *session.Session, pageSize uint16) (*AssembledFeed, error)
}

// Engagement tracks per-post like state and reconciles local optimistic
// toggles with authoritative store updates.
type Engagement interface {
	ToggleLike(ctx context.Context, sess *session.Session, postID string) (liked bool, err error)
	Liked(ctx context.Context, sess *session.Session, postID string) (bool, error)
	ApplyAuthoritative(postID string, likes []string)
	DropViewer(viewerID string)
}
