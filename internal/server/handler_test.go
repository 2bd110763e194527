package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaicnet/mosaic/internal/entities"
	"github.com/mosaicnet/mosaic/internal/service"
	servicemock "github.com/mosaicnet/mosaic/internal/service/mock"
	"github.com/mosaicnet/mosaic/internal/session"
	"github.com/mosaicnet/mosaic/internal/storage"
	"github.com/mosaicnet/mosaic/internal/storage/mock"
)

type fixture struct {
	sessions   *session.Manager
	graph      *servicemock.MockGraph
	feed       *servicemock.MockFeed
	engagement *servicemock.MockEngagement
	posts      *mock.MockPostStorage
	users      *mock.MockUserStorage

	srv server
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		graph:      servicemock.NewMockGraph(ctrl),
		feed:       servicemock.NewMockFeed(ctrl),
		engagement: servicemock.NewMockEngagement(ctrl),
		posts:      mock.NewMockPostStorage(ctrl),
		users:      mock.NewMockUserStorage(ctrl),
	}
	f.sessions = session.NewManager(f.users)
	f.srv = server{
		sessions:   f.sessions,
		graph:      f.graph,
		feed:       f.feed,
		engagement: f.engagement,
		posts:      f.posts,
		users:      f.users,
	}

	return f
}

func (f *fixture) login(t *testing.T, u *entities.User) *session.Session {
	t.Helper()

	f.users.EXPECT().GetUser(gomock.Any(), u.ID).Return(u, nil)

	s, err := f.sessions.Login(context.Background(), u.ID)
	require.NoError(t, err)

	return s
}

func Test_login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.users.EXPECT().GetUser(gomock.Any(), "viewer").Return(&entities.User{
		ID:        "viewer",
		Name:      "Viewer",
		Following: []string{"alice"},
		Followers: []string{"bob", "carol"},
	}, nil)

	r, err := http.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"userId":"viewer"}`))
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Post("/v1/sessions", f.srv.login)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"viewer","name":"Viewer","followingCount":1,"followersCount":2}`, w.Body.String())
}

func Test_login_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.users.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	r, err := http.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"userId":"ghost"}`))
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Post("/v1/sessions", f.srv.login)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, w.Body.String())
}

func Test_logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.login(t, &entities.User{ID: "viewer"})

	f.engagement.EXPECT().DropViewer("viewer")

	r, err := http.NewRequest(http.MethodDelete, "/v1/sessions", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Delete("/v1/sessions", f.srv.logout)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)

	_, ok := f.sessions.Get("viewer")
	assert.False(t, ok)
}

func Test_getFeed(t *testing.T) {
	timestamp := time.Unix(100, 0)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	sess := f.login(t, &entities.User{ID: "viewer"})

	f.feed.EXPECT().Assemble(gomock.Any(), sess, uint16(10)).Return(&service.AssembledFeed{
		Entries: []entities.FeedEntry{
			{
				Post: entities.Post{
					ID:        "p1",
					AuthorID:  "alice",
					Title:     "title",
					Likes:     []string{"viewer", "bob"},
					CreatedAt: timestamp,
				},
				AuthorDisplayName:  "Alice",
				AuthorAvatar:       "avatar",
				IsFollowedByViewer: true,
			},
		},
	}, nil)

	r, err := http.NewRequest(http.MethodGet, "/v1/feed?pageSize=10", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Get("/v1/feed", f.srv.getFeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
		{
			"entries": [
				{
					"post": {
						"id": "p1",
						"authorId": "alice",
						"title": "title",
						"media": null,
						"likesCount": 2,
						"likedByViewer": true,
						"createdAt": 100
					},
					"authorDisplayName": "Alice",
					"authorAvatar": "avatar",
					"isFollowedByViewer": true
				}
			],
			"partial": false
		}
	`, w.Body.String())
}

func Test_getFeed_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	router := chi.NewRouter()
	router.Get("/v1/feed", f.srv.getFeed)

	for name, r := range map[string]*http.Request{
		"no header":  httptest.NewRequest(http.MethodGet, "/v1/feed", nil),
		"no session": func() *http.Request {
			r := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
			r.Header.Set("X-User-ID", "stranger")
			return r
		}(),
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func Test_getFeed_PageSizeTooBig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.login(t, &entities.User{ID: "viewer"})

	r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/feed?pageSize=%d", maxPageSize+1), nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Get("/v1/feed", f.srv.getFeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// a failed assembly falls back to the previous feed, flagged stale
func Test_getFeed_StaleFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	sess := f.login(t, &entities.User{ID: "viewer"})

	seq := sess.NextFeedSeq()
	require.True(t, sess.ApplyFeed(seq, []entities.FeedEntry{
		{Post: entities.Post{ID: "old", AuthorID: "alice", CreatedAt: time.Unix(100, 0)}, AuthorDisplayName: "Alice"},
	}, false))

	f.feed.EXPECT().Assemble(gomock.Any(), sess, uint16(defaultPageSize)).Return(nil, service.Transient(errors.New("connection reset")))

	r, err := http.NewRequest(http.MethodGet, "/v1/feed", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Get("/v1/feed", f.srv.getFeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
		{
			"entries": [
				{
					"post": {
						"id": "old",
						"authorId": "alice",
						"title": "",
						"media": null,
						"likesCount": 0,
						"likedByViewer": false,
						"createdAt": 100
					},
					"authorDisplayName": "Alice",
					"authorAvatar": "",
					"isFollowedByViewer": false
				}
			],
			"partial": false,
			"stale": true
		}
	`, w.Body.String())
}

// no previous feed to fall back to: the transient error surfaces as 502
func Test_getFeed_NoFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	sess := f.login(t, &entities.User{ID: "viewer"})

	f.feed.EXPECT().Assemble(gomock.Any(), sess, uint16(defaultPageSize)).Return(nil, service.Transient(errors.New("connection reset")))

	r, err := http.NewRequest(http.MethodGet, "/v1/feed", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Get("/v1/feed", f.srv.getFeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func Test_follow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	sess := f.login(t, &entities.User{ID: "viewer"})

	f.graph.EXPECT().Follow(gomock.Any(), sess, "target").Return(nil)

	r, err := http.NewRequest(http.MethodPost, "/v1/users/target/follow", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Post("/v1/users/{userID}/follow", f.srv.follow)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"following":true}`, w.Body.String())
}

// a one-sided edge is not an error for the caller, only flagged
func Test_follow_Partial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	sess := f.login(t, &entities.User{ID: "viewer"})

	f.graph.EXPECT().Follow(gomock.Any(), sess, "target").Return(&service.PartialError{
		Op:       "add",
		ViewerID: "viewer",
		TargetID: "target",
		Err:      errors.New("connection reset"),
	})

	r, err := http.NewRequest(http.MethodPost, "/v1/users/target/follow", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Post("/v1/users/{userID}/follow", f.srv.follow)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"following":true,"partial":true}`, w.Body.String())
}

func Test_follow_Self(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	sess := f.login(t, &entities.User{ID: "viewer"})

	f.graph.EXPECT().Follow(gomock.Any(), sess, "viewer").Return(service.ErrSelfFollow)

	r, err := http.NewRequest(http.MethodPost, "/v1/users/viewer/follow", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Post("/v1/users/{userID}/follow", f.srv.follow)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_unfollow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	sess := f.login(t, &entities.User{ID: "viewer"})

	f.graph.EXPECT().Unfollow(gomock.Any(), sess, "target").Return(nil)

	r, err := http.NewRequest(http.MethodDelete, "/v1/users/target/follow", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Delete("/v1/users/{userID}/follow", f.srv.unfollow)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"following":false}`, w.Body.String())
}

func Test_getFollow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	sess := f.login(t, &entities.User{ID: "viewer"})

	f.graph.EXPECT().IsFollowing(sess, "target").Return(true)

	r, err := http.NewRequest(http.MethodGet, "/v1/users/target/follow", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Get("/v1/users/{userID}/follow", f.srv.getFollow)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"following":true}`, w.Body.String())
}

func Test_toggleLike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	sess := f.login(t, &entities.User{ID: "viewer"})

	f.engagement.EXPECT().ToggleLike(gomock.Any(), sess, "p1").Return(true, nil)

	r, err := http.NewRequest(http.MethodPost, "/v1/posts/p1/like", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Post("/v1/posts/{postID}/like", f.srv.toggleLike)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":true}`, w.Body.String())
}

func Test_toggleLike_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	sess := f.login(t, &entities.User{ID: "viewer"})

	f.engagement.EXPECT().ToggleLike(gomock.Any(), sess, "ghost").Return(false, storage.ErrNotFound)

	r, err := http.NewRequest(http.MethodPost, "/v1/posts/ghost/like", nil)
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Post("/v1/posts/{postID}/like", f.srv.toggleLike)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_createPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.login(t, &entities.User{ID: "viewer", Name: "Viewer", ProfilePic: "pic"})

	f.posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storage.CreatePostParams) {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "viewer", p.AuthorID)
		assert.Equal(t, "Viewer", p.AuthorName)
		assert.Equal(t, "pic", p.AuthorPic)
		assert.Equal(t, "title", p.Title)
		assert.Equal(t, []entities.MediaItem{{Type: entities.ImageMediaType, URL: "https://cdn/img"}}, p.Media)
	}).Return(nil)

	body := `{"title":"title","media":[{"type":"image","url":"https://cdn/img"}]}`
	r, err := http.NewRequest(http.MethodPost, "/v1/posts", bytes.NewBufferString(body))
	require.NoError(t, err)
	r.Header.Set("X-User-ID", "viewer")

	router := chi.NewRouter()
	router.Post("/v1/posts", f.srv.createPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func Test_createPost_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.login(t, &entities.User{ID: "viewer"})

	router := chi.NewRouter()
	router.Post("/v1/posts", f.srv.createPost)

	for name, body := range map[string]string{
		"empty":      `{}`,
		"bad media":  `{"media":[{"type":"gif","url":"https://cdn/gif"}]}`,
		"broken json": `{`,
	} {
		t.Run(name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodPost, "/v1/posts", bytes.NewBufferString(body))
			require.NoError(t, err)
			r.Header.Set("X-User-ID", "viewer")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func Test_getUserStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.users.EXPECT().GetUser(gomock.Any(), "alice").Return(&entities.User{
		ID:        "alice",
		Following: []string{"a", "b"},
		Followers: []string{"c"},
	}, nil)
	f.posts.EXPECT().QueryPosts(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storage.QueryPostsParams) {
		assert.Equal(t, []string{"alice"}, p.AuthorIn)
	}).Return([]*entities.Post{{ID: "p1"}, {ID: "p2"}}, nil)

	r, err := http.NewRequest(http.MethodGet, "/v1/users/alice/stats", nil)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Get("/v1/users/{userID}/stats", f.srv.getUserStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"followersCount":1,"followingCount":2,"postsCount":2}`, w.Body.String())
}

func Test_getUserStats_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.users.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	r, err := http.NewRequest(http.MethodGet, "/v1/users/ghost/stats", nil)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Get("/v1/users/{userID}/stats", f.srv.getUserStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
