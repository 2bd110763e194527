// Package feed is implementation of the feed assembler.
//
// A feed is merged from two queries: the global recency stream and the
// following-scoped stream. Posts from followed authors always precede posts
// from unfollowed ones; inside each partition the original descending
// created_at order is kept, ties stay in query order. A post present in both
// streams is kept once, the scoped copy winning since it is already known to
// come from a followed author.
package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/mosaicnet/mosaic/internal/entities"
	"github.com/mosaicnet/mosaic/internal/metrics"
	"github.com/mosaicnet/mosaic/internal/service"
	"github.com/mosaicnet/mosaic/internal/session"
	"github.com/mosaicnet/mosaic/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "feed")

const defaultRetryBackoff = 250 * time.Millisecond

type srv struct {
	posts storage.PostStorage
	users storage.UserStorage

	// deduplicates concurrent author lookups across assembly passes
	sf           singleflight.Group
	retryBackoff time.Duration
}

// New creates new instance of the assembler. Zero retryBackoff means the
// default.
func New(posts storage.PostStorage, users storage.UserStorage, retryBackoff time.Duration) service.Feed {
	if retryBackoff <= 0 {
		retryBackoff = defaultRetryBackoff
	}

	return &srv{
		posts:        posts,
		users:        users,
		retryBackoff: retryBackoff,
	}
}

func (s *srv) Assemble(ctx context.Context, sess *session.Session, pageSize uint16) (*service.AssembledFeed, error) {
	start := time.Now()
	defer func() {
		metrics.FeedAssemblyDuration.Observe(time.Since(start).Seconds())
	}()

	seq := sess.NextFeedSeq()
	viewerID := sess.ViewerID()
	following := sess.Following()

	global, err := s.queryWithRetry(ctx, &storage.QueryPostsParams{ExcludeAuthor: &viewerID})
	if err != nil {
		// the unscoped query is the feed's backbone; without it the whole
		// assembly fails and the previous feed stays on screen
		metrics.FeedAssemblies.WithLabelValues("error").Inc()
		return nil, service.Transient(fmt.Errorf("failed to query posts: %s", err))
	}

	var (
		scoped  []*entities.Post
		partial bool
	)

	// an empty IN filter is invalid and must be skipped, not sent
	if len(following) > 0 {
		scoped, err = s.posts.QueryPosts(ctx, &storage.QueryPostsParams{
			AuthorIn:      following,
			ExcludeAuthor: &viewerID,
		})
		if err != nil {
			partial = true
			scoped = nil
			log.WithError(err).WithField("viewer", viewerID).Warn("scoped query failed, degrading to unscoped feed")
		}
	}

	merged, followedFlags := merge(viewerID, toSet(following), global, scoped)

	entries, err := s.resolveAuthors(ctx, merged, followedFlags)
	if err != nil {
		metrics.FeedAssemblies.WithLabelValues("error").Inc()
		return nil, err
	}

	// truncation happens strictly after merge so neither source is biased
	if pageSize > 0 && len(entries) > int(pageSize) {
		entries = entries[:pageSize]
	}

	out := &service.AssembledFeed{
		Entries: entries,
		Partial: partial,
		Seq:     seq,
	}

	switch {
	case !sess.ApplyFeed(seq, entries, partial):
		metrics.FeedAssemblies.WithLabelValues("superseded").Inc()
	case partial:
		metrics.FeedAssemblies.WithLabelValues("partial").Inc()
	default:
		metrics.FeedAssemblies.WithLabelValues("ok").Inc()
	}

	return out, nil
}

// queryWithRetry issues a read query with one bounded retry. Writes are never
// retried anywhere in the engine, reads may be.
func (s *srv) queryWithRetry(ctx context.Context, p *storage.QueryPostsParams) ([]*entities.Post, error) {
	posts, err := s.posts.QueryPosts(ctx, p)
	if err == nil || errors.Is(err, storage.ErrEmptyAuthorFilter) || ctx.Err() != nil {
		return posts, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.retryBackoff):
	}

	return s.posts.QueryPosts(ctx, p)
}

// merge deduplicates and orders the two result sets. Returned flags report
// per returned post whether its author is followed by the viewer.
func merge(viewerID string, following map[string]struct{}, global, scoped []*entities.Post) ([]*entities.Post, []bool) {
	seen := make(map[string]struct{}, len(global)+len(scoped))

	var followed, others []*entities.Post

	for _, p := range scoped {
		if p.AuthorID == viewerID {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		followed = append(followed, p)
	}

	for _, p := range global {
		if p.AuthorID == viewerID {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}

		if _, ok := following[p.AuthorID]; ok {
			followed = append(followed, p)
		} else {
			others = append(others, p)
		}
	}

	out := make([]*entities.Post, 0, len(followed)+len(others))
	flags := make([]bool, 0, cap(out))

	for _, p := range followed {
		out = append(out, p)
		flags = append(flags, true)
	}
	for _, p := range others {
		out = append(out, p)
		flags = append(flags, false)
	}

	return out, flags
}

type authorInfo struct {
	name   string
	avatar string
}

// resolveAuthors fills display data per entry. Posts carrying denormalized
// author fields skip the lookup; the rest share one lookup per author within
// the pass and across concurrent passes. Posts whose author no longer exists
// are skipped, not fatal.
func (s *srv) resolveAuthors(ctx context.Context, posts []*entities.Post, followedFlags []bool) ([]entities.FeedEntry, error) {
	cache := map[string]*authorInfo{}
	out := make([]entities.FeedEntry, 0, len(posts))

	for i, p := range posts {
		info := &authorInfo{name: p.AuthorName, avatar: p.AuthorPic}

		if info.name == "" && info.avatar == "" {
			cached, ok := cache[p.AuthorID]
			if !ok {
				var err error
				cached, err = s.lookupAuthor(ctx, p.AuthorID)
				if err != nil {
					return nil, service.Transient(fmt.Errorf("failed to resolve author %s: %s", p.AuthorID, err))
				}
				cache[p.AuthorID] = cached
			}

			if cached == nil { // author gone
				continue
			}
			info = cached
		}

		out = append(out, entities.FeedEntry{
			Post:               *p,
			AuthorDisplayName:  info.name,
			AuthorAvatar:       info.avatar,
			IsFollowedByViewer: followedFlags[i],
		})
	}

	return out, nil
}

func (s *srv) lookupAuthor(ctx context.Context, authorID string) (*authorInfo, error) {
	v, err, _ := s.sf.Do(authorID, func() (interface{}, error) {
		u, err := s.users.GetUser(ctx, authorID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return (*authorInfo)(nil), nil
			}
			return nil, err
		}

		return &authorInfo{name: u.Name, avatar: u.ProfilePic}, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*authorInfo), nil
}

func toSet(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}

	return m
}
