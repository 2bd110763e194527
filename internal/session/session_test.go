package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaicnet/mosaic/internal/entities"
	"github.com/mosaicnet/mosaic/internal/storage"
	"github.com/mosaicnet/mosaic/internal/storage/mock"
)

func newTestSession() *Session {
	return New(&entities.User{
		ID:         "viewer",
		Name:       "Viewer",
		Username:   "viewer",
		ProfilePic: "pic",
		Following:  []string{"alice", "bob"},
		Followers:  []string{"carol"},
		CreatedAt:  time.Unix(100, 0),
	})
}

func TestSession_FollowSets(t *testing.T) {
	s := newTestSession()

	assert.Equal(t, "viewer", s.ViewerID())
	assert.Equal(t, 2, s.FollowingCount())
	assert.Equal(t, 1, s.FollowersCount())

	assert.True(t, s.IsFollowing("alice"))
	assert.False(t, s.IsFollowing("carol"))

	s.AddFollowing("carol")
	assert.True(t, s.IsFollowing("carol"))

	// repeating keeps the set a set
	s.AddFollowing("carol")
	assert.Equal(t, 3, s.FollowingCount())

	s.RemoveFollowing("alice")
	assert.False(t, s.IsFollowing("alice"))

	s.RemoveFollowing("alice")
	assert.Equal(t, 2, s.FollowingCount())
}

func TestSession_ApplyUserUpdate(t *testing.T) {
	s := newTestSession()

	// update for a different user is ignored
	s.ApplyUserUpdate(&entities.User{ID: "someone-else", Following: []string{"x"}})
	assert.True(t, s.IsFollowing("alice"))

	s.ApplyUserUpdate(&entities.User{
		ID:        "viewer",
		Following: []string{"dave"},
		Followers: []string{"carol", "erin"},
	})

	assert.False(t, s.IsFollowing("alice"))
	assert.True(t, s.IsFollowing("dave"))
	assert.Equal(t, 2, s.FollowersCount())
}

func TestSession_ApplyFeed(t *testing.T) {
	s := newTestSession()

	_, _, ok := s.LastFeed()
	require.False(t, ok)

	entries := []entities.FeedEntry{
		{Post: entities.Post{ID: "p1", AuthorID: "alice"}},
	}

	seq := s.NextFeedSeq()
	require.True(t, s.ApplyFeed(seq, entries, false))

	got, partial, ok := s.LastFeed()
	require.True(t, ok)
	assert.False(t, partial)
	assert.Equal(t, entries, got)

	// the same result cannot be applied twice
	assert.False(t, s.ApplyFeed(seq, nil, false))
}

func TestSession_ApplyFeed_Superseded(t *testing.T) {
	s := newTestSession()

	old := s.NextFeedSeq()
	latest := s.NextFeedSeq()

	// the slower older assembly loses against the newer one
	require.False(t, s.ApplyFeed(old, []entities.FeedEntry{{Post: entities.Post{ID: "old"}}}, false))

	_, _, ok := s.LastFeed()
	assert.False(t, ok)

	require.True(t, s.ApplyFeed(latest, []entities.FeedEntry{{Post: entities.Post{ID: "new"}}}, true))

	got, partial, ok := s.LastFeed()
	require.True(t, ok)
	assert.True(t, partial)
	assert.Equal(t, "new", got[0].Post.ID)
}

func TestSession_PostSnapshot(t *testing.T) {
	s := newTestSession()

	_, ok := s.PostSnapshot("p1")
	require.False(t, ok)

	seq := s.NextFeedSeq()
	require.True(t, s.ApplyFeed(seq, []entities.FeedEntry{
		{Post: entities.Post{ID: "p1", AuthorID: "alice", Likes: []string{"bob"}}},
	}, false))

	p, ok := s.PostSnapshot("p1")
	require.True(t, ok)
	assert.Equal(t, []string{"bob"}, p.Likes)

	s.ApplyPostUpdate("p1", []string{"bob", "viewer"})

	p, ok = s.PostSnapshot("p1")
	require.True(t, ok)
	assert.True(t, p.LikedBy("viewer"))

	// unknown posts are a no-op
	s.ApplyPostUpdate("unknown", []string{"x"})
}

// a straggling assembly must not resurrect a destroyed session
func TestSession_Close(t *testing.T) {
	s := newTestSession()

	seq := s.NextFeedSeq()
	s.Close()

	assert.False(t, s.ApplyFeed(seq, []entities.FeedEntry{{Post: entities.Post{ID: "p1"}}}, false))

	_, _, ok := s.LastFeed()
	assert.False(t, ok)
}

func TestManager_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserStorage(ctrl)
	m := NewManager(users)

	users.EXPECT().GetUser(gomock.Any(), "viewer").Return(&entities.User{
		ID:        "viewer",
		Following: []string{"alice"},
	}, nil)

	s, err := m.Login(context.Background(), "viewer")
	require.NoError(t, err)
	require.True(t, s.IsFollowing("alice"))

	// second login reuses the session, no store read
	s2, err := m.Login(context.Background(), "viewer")
	require.NoError(t, err)
	assert.Same(t, s, s2)

	got, ok := m.Get("viewer")
	require.True(t, ok)
	assert.Same(t, s, got)
}

func TestManager_Login_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserStorage(ctrl)
	m := NewManager(users)

	users.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	_, err := m.Login(context.Background(), "ghost")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestManager_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserStorage(ctrl)
	m := NewManager(users)

	users.EXPECT().GetUser(gomock.Any(), "viewer").Return(&entities.User{ID: "viewer"}, nil)

	_, err := m.Login(context.Background(), "viewer")
	require.NoError(t, err)

	m.Logout("viewer")

	_, ok := m.Get("viewer")
	assert.False(t, ok)

	// unknown viewer is a no-op
	m.Logout("viewer")
}

func TestManager_ForEach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserStorage(ctrl)
	m := NewManager(users)

	users.EXPECT().GetUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (*entities.User, error) {
		return &entities.User{ID: id}, nil
	}).Times(2)

	_, err := m.Login(context.Background(), "a")
	require.NoError(t, err)
	_, err = m.Login(context.Background(), "b")
	require.NoError(t, err)

	seen := map[string]struct{}{}
	m.ForEach(func(s *Session) {
		seen[s.ViewerID()] = struct{}{}
	})

	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}}, seen)
}
