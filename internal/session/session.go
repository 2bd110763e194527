// Package session contains the per-viewer session store. A session owns the
// viewer's cached follow sets, the last assembled feed and post snapshots.
// It is created at login, destroyed at logout and injected into services;
// there is no ambient process-wide viewer state.
package session

import (
	"sync"

	"github.com/mosaicnet/mosaic/internal/entities"
)

// Session ...
type Session struct {
	viewerID string

	mu         sync.RWMutex
	name       string
	username   string
	profilePic string
	following  map[string]struct{}
	followers  map[string]struct{}

	issuedSeq  uint64
	appliedSeq uint64
	feed       []entities.FeedEntry
	partial    bool
	hasFeed    bool

	posts map[string]*entities.Post

	closed bool
}

// New creates a session seeded from the viewer's user record.
func New(u *entities.User) *Session {
	return &Session{
		viewerID:   u.ID,
		name:       u.Name,
		username:   u.Username,
		profilePic: u.ProfilePic,
		following:  toSet(u.Following),
		followers:  toSet(u.Followers),
		posts:      map[string]*entities.Post{},
	}
}

// ViewerID ...
func (s *Session) ViewerID() string {
	return s.viewerID
}

// Name ...
func (s *Session) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.name
}

// ProfilePic ...
func (s *Session) ProfilePic() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profilePic
}

// Following returns a snapshot of the cached following set.
func (s *Session) Following() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.following))
	for id := range s.following {
		out = append(out, id)
	}

	return out
}

// FollowingCount ...
func (s *Session) FollowingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.following)
}

// FollowersCount ...
func (s *Session) FollowersCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.followers)
}

// IsFollowing ...
func (s *Session) IsFollowing(targetID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.following[targetID]
	return ok
}

// AddFollowing merges targetID into the cached following set.
func (s *Session) AddFollowing(targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.following[targetID] = struct{}{}
}

// RemoveFollowing ...
func (s *Session) RemoveFollowing(targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.following, targetID)
}

// ApplyUserUpdate applies an authoritative update of the viewer's own user
// document to the cached sets.
func (s *Session) ApplyUserUpdate(u *entities.User) {
	if u.ID != s.viewerID {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.following = toSet(u.Following)
	s.followers = toSet(u.Followers)
}

// NextFeedSeq reserves the sequence number for a new assembly. Only the
// result carrying the most recently issued number may be applied.
func (s *Session) NextFeedSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issuedSeq++
	return s.issuedSeq
}

// ApplyFeed stores an assembled feed. It reports false and leaves the
// previous feed untouched when the result was superseded by a newer request.
func (s *Session) ApplyFeed(seq uint64, entries []entities.FeedEntry, partial bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq != s.issuedSeq || seq <= s.appliedSeq {
		return false
	}

	s.appliedSeq = seq
	s.feed = entries
	s.partial = partial
	s.hasFeed = true

	for i := range entries {
		p := entries[i].Post
		s.posts[p.ID] = &p
	}

	return true
}

// LastFeed returns the last successfully applied feed, stale or not.
func (s *Session) LastFeed() (entries []entities.FeedEntry, partial, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.feed, s.partial, s.hasFeed
}

// PostSnapshot returns the last known snapshot of a post.
func (s *Session) PostSnapshot(id string) (*entities.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	return p, ok
}

// ApplyPostUpdate merges an authoritative like-set into the cached snapshot,
// if any.
func (s *Session) ApplyPostUpdate(postID string, likes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if p, ok := s.posts[postID]; ok {
		p.Likes = likes
	}
}

// Close marks the session destroyed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.posts = map[string]*entities.Post{}
	s.feed = nil
	s.hasFeed = false
}

func toSet(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}

	return m
}
