// Package stream dispatches store change notifications to the ledger and the
// live sessions. One consumer per process keeps the number of open push
// channels bounded; teardown happens through context cancellation.
package stream

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/mosaicnet/mosaic/internal/consumer"
	"github.com/mosaicnet/mosaic/internal/service"
	"github.com/mosaicnet/mosaic/internal/session"
	"github.com/mosaicnet/mosaic/internal/storage"
)

var log = logrus.WithField("package", "stream")

type stream struct {
	w        storage.Watcher
	posts    storage.PostStorage
	users    storage.UserStorage
	sessions *session.Manager
	ledger   service.Engagement

	running int32
}

// New creates new instance of the change-stream consumer.
func New(
	w storage.Watcher,
	posts storage.PostStorage,
	users storage.UserStorage,
	sessions *session.Manager,
	ledger service.Engagement,
) consumer.Consumer {
	return &stream{
		w:        w,
		posts:    posts,
		users:    users,
		sessions: sessions,
		ledger:   ledger,
	}
}

func (s *stream) Run(ctx context.Context) error {
	ch, err := s.w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	atomic.StoreInt32(&s.running, 1)
	defer atomic.StoreInt32(&s.running, 0)

	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-ch:
			if !ok {
				return nil
			}
			s.dispatch(ctx, c)
		}
	}
}

func (s *stream) Ping(_ context.Context) error {
	if atomic.LoadInt32(&s.running) == 0 {
		return errors.New("change stream is not running")
	}
	return nil
}

func (s *stream) dispatch(ctx context.Context, c storage.Change) {
	switch c.Kind {
	case storage.PostChangeKind:
		p := c.Post
		if p == nil { // truncated notification, re-read the document
			var err error
			p, err = s.posts.GetPost(ctx, c.ID)
			if err != nil {
				if !errors.Is(err, storage.ErrNotFound) {
					log.WithError(err).WithField("post", c.ID).Error("failed to re-read changed post")
				}
				return
			}
		}

		s.ledger.ApplyAuthoritative(p.ID, p.Likes)
		s.sessions.ForEach(func(sess *session.Session) {
			sess.ApplyPostUpdate(p.ID, p.Likes)
		})
	case storage.UserChangeKind:
		u := c.User
		if u == nil {
			var err error
			u, err = s.users.GetUser(ctx, c.ID)
			if err != nil {
				if !errors.Is(err, storage.ErrNotFound) {
					log.WithError(err).WithField("user", c.ID).Error("failed to re-read changed user")
				}
				return
			}
		}

		if sess, ok := s.sessions.Get(u.ID); ok {
			sess.ApplyUserUpdate(u)
		}
	default:
		log.WithField("kind", c.Kind).Debug("skip change")
	}
}
