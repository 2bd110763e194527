// Package graph is implementation of the follow graph service.
//
// A follow edge is stored redundantly: targetID in the viewer's following set
// and viewerID in the target's followers set. No multi-document transaction
// is assumed, so the edge is written in two phases with a fixed order: the
// viewer's own document first, then the target's. A failed second phase
// leaves a one-sided edge which is reported, never hidden.
package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mosaicnet/mosaic/internal/metrics"
	"github.com/mosaicnet/mosaic/internal/service"
	"github.com/mosaicnet/mosaic/internal/session"
	"github.com/mosaicnet/mosaic/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "graph")

type srv struct {
	users storage.UserStorage
	locks *keyedMutex
}

// New creates new instance of the follow graph service.
func New(users storage.UserStorage) service.Graph {
	return &srv{
		users: users,
		locks: newKeyedMutex(),
	}
}

func (s *srv) Follow(ctx context.Context, sess *session.Session, targetID string) error {
	return s.update(ctx, sess, targetID, storage.AddSetOp)
}

func (s *srv) Unfollow(ctx context.Context, sess *session.Session, targetID string) error {
	return s.update(ctx, sess, targetID, storage.RemoveSetOp)
}

func (s *srv) IsFollowing(sess *session.Session, targetID string) bool {
	return sess.IsFollowing(targetID)
}

func (s *srv) update(ctx context.Context, sess *session.Session, targetID string, op storage.SetOp) error {
	viewerID := sess.ViewerID()

	if viewerID == targetID {
		return service.ErrSelfFollow
	}

	unlock := s.locks.lockPair(viewerID, targetID)
	defer unlock()

	viewer, err := s.users.GetUser(ctx, viewerID)
	if err != nil {
		return convertReadErr(fmt.Errorf("failed to get viewer: %w", err))
	}

	if _, err := s.users.GetUser(ctx, targetID); err != nil {
		return convertReadErr(fmt.Errorf("failed to get target: %w", err))
	}

	// idempotency guard: repeating an already applied operation is a no-op
	// that still succeeds
	if member(viewer.Following, targetID) == (op == storage.AddSetOp) {
		applyToSession(sess, targetID, op)
		return nil
	}

	if err := s.users.UpdateFollowing(ctx, viewerID, op, targetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}
		return service.Transient(fmt.Errorf("failed to update following: %w", err))
	}

	// the cached set reflects viewer intent from here on, whatever happens
	// to the second write
	applyToSession(sess, targetID, op)

	if err := s.users.UpdateFollowers(ctx, targetID, op, viewerID); err != nil {
		metrics.FollowPartialFailures.Inc()
		log.WithError(err).
			WithField("viewer", viewerID).
			WithField("target", targetID).
			WithField("op", op).
			Warn("one-sided follow edge, compensating followers write required")

		return &service.PartialError{
			Op:       string(op),
			ViewerID: viewerID,
			TargetID: targetID,
			Err:      err,
		}
	}

	return nil
}

func applyToSession(sess *session.Session, targetID string, op storage.SetOp) {
	if op == storage.AddSetOp {
		sess.AddFollowing(targetID)
	} else {
		sess.RemoveFollowing(targetID)
	}
}

func convertReadErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return service.Transient(err)
}

func member(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
