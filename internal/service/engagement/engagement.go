// Package engagement is implementation of the engagement ledger.
//
// Like state is tracked per (viewer, post) by a small reconciliation state
// machine: clean (no write pending), pendingLocal (a local toggle is being
// flushed) and receivedStale (an authoritative update arrived while a local
// toggle was in flight and was deliberately dropped). Membership is judged
// purely by value, the viewer id being in the like-set, never by comparing
// captured update directives.
package engagement

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mosaicnet/mosaic/internal/metrics"
	"github.com/mosaicnet/mosaic/internal/service"
	"github.com/mosaicnet/mosaic/internal/session"
	"github.com/mosaicnet/mosaic/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "engagement")

const (
	defaultSettleWindow = 50 * time.Millisecond
	writeTimeout        = 10 * time.Second
)

type key struct {
	viewer string
	post   string
}

type state struct {
	liked     bool // local optimistic value, what the viewer sees
	confirmed bool // last value written by us or observed authoritatively
	inflight  bool // a flusher owns this key
	stale     bool // authoritative update dropped while in flight
}

type srv struct {
	posts storage.PostStorage

	// rapid toggles inside the window coalesce into one net write
	settle time.Duration

	mu     sync.Mutex
	states map[key]*state
}

// New creates new instance of the ledger. Zero settle means the default
// window.
func New(posts storage.PostStorage, settle time.Duration) service.Engagement {
	if settle <= 0 {
		settle = defaultSettleWindow
	}

	return &srv{
		posts:  posts,
		settle: settle,
		states: map[key]*state{},
	}
}

func (s *srv) ToggleLike(ctx context.Context, sess *session.Session, postID string) (bool, error) {
	st, err := s.stateFor(ctx, sess, postID)
	if err != nil {
		return false, err
	}

	k := key{viewer: sess.ViewerID(), post: postID}

	s.mu.Lock()
	st.liked = !st.liked
	liked := st.liked

	if st.inflight {
		metrics.LikeTogglesCoalesced.Inc()
		s.mu.Unlock()
		return liked, nil
	}

	st.inflight = true
	s.mu.Unlock()

	// the flush outlives the request: the optimistic value is already
	// visible, the store write settles in the background
	go s.flush(k, st)

	return liked, nil
}

func (s *srv) Liked(ctx context.Context, sess *session.Session, postID string) (bool, error) {
	st, err := s.stateFor(ctx, sess, postID)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return st.liked, nil
}

// ApplyAuthoritative reconciles an authoritative like-set. Keys with a local
// toggle still in flight keep their local value; the store wins again once
// the in-flight count returns to zero and the next notification arrives.
func (s *srv) ApplyAuthoritative(postID string, likes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, st := range s.states {
		if k.post != postID {
			continue
		}

		if st.inflight {
			st.stale = true
			metrics.StaleAuthoritativeDrops.Inc()
			continue
		}

		v := member(likes, k.viewer)
		st.liked = v
		st.confirmed = v
		st.stale = false
	}
}

// DropViewer discards all ledger state of a signed-out viewer.
func (s *srv) DropViewer(viewerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.states {
		if k.viewer == viewerID {
			delete(s.states, k)
		}
	}
}

// stateFor returns the tracked state for the key, seeding it from the
// session's last post snapshot or, failing that, a store read.
func (s *srv) stateFor(ctx context.Context, sess *session.Session, postID string) (*state, error) {
	k := key{viewer: sess.ViewerID(), post: postID}

	s.mu.Lock()
	if st, ok := s.states[k]; ok {
		s.mu.Unlock()
		return st, nil
	}
	s.mu.Unlock()

	liked, err := s.currentMembership(ctx, sess, postID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.states[k]; ok { // seeded concurrently
		return st, nil
	}

	st := &state{liked: liked, confirmed: liked}
	s.states[k] = st

	return st, nil
}

func (s *srv) currentMembership(ctx context.Context, sess *session.Session, postID string) (bool, error) {
	if p, ok := sess.PostSnapshot(postID); ok {
		return p.LikedBy(sess.ViewerID()), nil
	}

	p, err := s.posts.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, err
		}
		return false, service.Transient(err)
	}

	return p.LikedBy(sess.ViewerID()), nil
}

// flush owns the key until local and confirmed values agree. It waits out the
// settle window first so a rapid burst of toggles nets to at most one write,
// then issues serialized net writes. Set-membership writes are never
// auto-retried.
func (s *srv) flush(k key, st *state) {
	time.Sleep(s.settle)

	for {
		s.mu.Lock()
		desired := st.liked
		if desired == st.confirmed {
			st.inflight = false
			st.stale = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		op := storage.RemoveSetOp
		if desired {
			op = storage.AddSetOp
		}

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := s.posts.UpdatePostLikes(ctx, k.post, op, k.viewer)
		cancel()

		metrics.LikeWrites.Inc()

		s.mu.Lock()
		if err != nil {
			// keep the local value as viewer intent; the next toggle or
			// authoritative notification settles it
			st.inflight = false
			s.mu.Unlock()
			log.WithError(err).
				WithField("post", k.post).
				WithField("viewer", k.viewer).
				Warn("failed to write like-set membership")
			return
		}

		st.confirmed = desired
		if st.liked == desired {
			st.inflight = false
			st.stale = false
			s.mu.Unlock()
			return
		}
		// the viewer toggled again mid-write, one more net write
		s.mu.Unlock()
	}
}

func member(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
