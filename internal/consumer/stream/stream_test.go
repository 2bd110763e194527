package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaicnet/mosaic/internal/entities"
	servicemock "github.com/mosaicnet/mosaic/internal/service/mock"
	"github.com/mosaicnet/mosaic/internal/session"
	"github.com/mosaicnet/mosaic/internal/storage"
	"github.com/mosaicnet/mosaic/internal/storage/mock"
)

type fixture struct {
	w        *mock.MockWatcher
	posts    *mock.MockPostStorage
	users    *mock.MockUserStorage
	sessions *session.Manager
	ledger   *servicemock.MockEngagement

	s *stream
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		w:      mock.NewMockWatcher(ctrl),
		posts:  mock.NewMockPostStorage(ctrl),
		users:  mock.NewMockUserStorage(ctrl),
		ledger: servicemock.NewMockEngagement(ctrl),
	}
	f.sessions = session.NewManager(f.users)
	f.s = New(f.w, f.posts, f.users, f.sessions, f.ledger).(*stream)

	return f
}

func (f *fixture) login(t *testing.T, u *entities.User) *session.Session {
	t.Helper()

	f.users.EXPECT().GetUser(gomock.Any(), u.ID).Return(u, nil)

	s, err := f.sessions.Login(context.Background(), u.ID)
	require.NoError(t, err)

	return s
}

func TestStream_Dispatch_PostChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	sess := f.login(t, &entities.User{ID: "viewer"})

	seq := sess.NextFeedSeq()
	require.True(t, sess.ApplyFeed(seq, []entities.FeedEntry{
		{Post: entities.Post{ID: "p1"}},
	}, false))

	f.ledger.EXPECT().ApplyAuthoritative("p1", []string{"viewer"})

	f.s.dispatch(context.Background(), storage.Change{
		Kind: storage.PostChangeKind,
		ID:   "p1",
		Post: &entities.Post{ID: "p1", Likes: []string{"viewer"}},
	})

	p, ok := sess.PostSnapshot("p1")
	require.True(t, ok)
	assert.True(t, p.LikedBy("viewer"))
}

// a truncated notification carries no payload, the document is re-read
func TestStream_Dispatch_TruncatedPostChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.posts.EXPECT().GetPost(gomock.Any(), "p1").Return(&entities.Post{ID: "p1", Likes: []string{"x"}}, nil)
	f.ledger.EXPECT().ApplyAuthoritative("p1", []string{"x"})

	f.s.dispatch(context.Background(), storage.Change{
		Kind: storage.PostChangeKind,
		ID:   "p1",
	})
}

// a change for a meanwhile-deleted document is dropped silently
func TestStream_Dispatch_PostGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.posts.EXPECT().GetPost(gomock.Any(), "p1").Return(nil, storage.ErrNotFound)

	f.s.dispatch(context.Background(), storage.Change{
		Kind: storage.PostChangeKind,
		ID:   "p1",
	})
}

func TestStream_Dispatch_UserChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	sess := f.login(t, &entities.User{ID: "viewer", Following: []string{"alice"}})

	f.s.dispatch(context.Background(), storage.Change{
		Kind: storage.UserChangeKind,
		ID:   "viewer",
		User: &entities.User{ID: "viewer", Following: []string{"bob"}},
	})

	assert.False(t, sess.IsFollowing("alice"))
	assert.True(t, sess.IsFollowing("bob"))
}

// changes for users without a live session are ignored
func TestStream_Dispatch_UserChange_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.s.dispatch(context.Background(), storage.Change{
		Kind: storage.UserChangeKind,
		ID:   "stranger",
		User: &entities.User{ID: "stranger"},
	})
}

func TestStream_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	ch := make(chan storage.Change)
	f.w.EXPECT().Watch(gomock.Any()).Return((<-chan storage.Change)(ch), nil)

	require.Error(t, f.s.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- f.s.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return f.s.Ping(context.Background()) == nil
	}, time.Second, 10*time.Millisecond)

	f.ledger.EXPECT().ApplyAuthoritative("p1", []string(nil))
	ch <- storage.Change{
		Kind: storage.PostChangeKind,
		ID:   "p1",
		Post: &entities.Post{ID: "p1"},
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}

	require.Error(t, f.s.Ping(context.Background()))
}

func TestStream_Run_WatchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.w.EXPECT().Watch(gomock.Any()).Return(nil, errors.New("connection reset"))

	require.Error(t, f.s.Run(context.Background()))
}
