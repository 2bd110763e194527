package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/mosaicnet/mosaic/internal/entities"
	"github.com/mosaicnet/mosaic/internal/service"
	"github.com/mosaicnet/mosaic/internal/session"
	"github.com/mosaicnet/mosaic/internal/storage"
)

const viewerHeader = "X-User-ID"

func (s server) login(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /sessions Sessions Login
	//
	// Creates a session for the user: loads the user record and caches the
	// follow sets for the process lifetime of the session.
	//
	// ---
	// responses:
	//   '200':
	//     description: session created (or already active)
	//   '404':
	//     description: user not found

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	sess, err := s.sessions.Login(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeInternalError(w, "failed to login: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, LoginResponse{
		UserID:         sess.ViewerID(),
		Name:           sess.Name(),
		FollowingCount: sess.FollowingCount(),
		FollowersCount: sess.FollowersCount(),
	})
}

func (s server) logout(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /sessions Sessions Logout
	//
	// Destroys the viewer's session and drops its ledger state.
	//
	// ---
	// responses:
	//   '204':
	//     description: session destroyed

	viewerID := r.Header.Get(viewerHeader)
	if viewerID == "" {
		writeError(w, http.StatusUnauthorized, "missing "+viewerHeader+" header")
		return
	}

	s.engagement.DropViewer(viewerID)
	s.sessions.Logout(viewerID)

	w.WriteHeader(http.StatusNoContent)
}

func (s server) getFeed(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /feed Feed GetFeed
	//
	// Assembles the viewer's merged timeline: posts from followed authors
	// first, global recency after, deduplicated, viewer's own posts excluded.
	// A failed assembly returns the last successfully assembled feed flagged
	// stale.
	//
	// ---
	// parameters:
	// - name: pageSize
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Feed
	//     schema:
	//       "$ref": "#/definitions/FeedResponse"

	sess, ok := s.viewerSession(w, r)
	if !ok {
		return
	}

	pageSize := uint16(defaultPageSize)
	if v := r.URL.Query().Get("pageSize"); v != "" {
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to parse pageSize")
			return
		}
		if n > maxPageSize {
			writeError(w, http.StatusBadRequest, "pageSize is too big")
			return
		}
		pageSize = uint16(n)
	}

	assembled, err := s.feed.Assemble(r.Context(), sess, pageSize)
	if err != nil {
		// stale-but-present beats an empty screen
		if entries, partial, ok := sess.LastFeed(); ok {
			writeOK(w, http.StatusOK, toFeedResponse(sess, entries, partial, true))
			return
		}
		writeServiceError(w, err, "failed to assemble feed")
		return
	}

	writeOK(w, http.StatusOK, toFeedResponse(sess, assembled.Entries, assembled.Partial, false))
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users/{userID}/follow Graph Follow
	//
	// Follows the user: adds the target to the viewer's following set and the
	// viewer to the target's followers set. Repeating is a no-op that still
	// succeeds.
	//
	// ---
	// responses:
	//   '200':
	//     description: Follow state
	//     schema:
	//       "$ref": "#/definitions/FollowResponse"

	s.updateFollow(w, r, true)
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /users/{userID}/follow Graph Unfollow
	//
	// Unfollows the user.
	//
	// ---
	// responses:
	//   '200':
	//     description: Follow state
	//     schema:
	//       "$ref": "#/definitions/FollowResponse"

	s.updateFollow(w, r, false)
}

func (s server) updateFollow(w http.ResponseWriter, r *http.Request, follow bool) {
	sess, ok := s.viewerSession(w, r)
	if !ok {
		return
	}

	targetID := chi.URLParam(r, "userID")
	if targetID == "" {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var err error
	if follow {
		err = s.graph.Follow(r.Context(), sess, targetID)
	} else {
		err = s.graph.Unfollow(r.Context(), sess, targetID)
	}

	if err != nil {
		var partial *service.PartialError
		if errors.As(err, &partial) {
			// non-fatal: local state reflects intent, the one-sided edge is
			// reported for retry
			writeOK(w, http.StatusOK, FollowResponse{Following: follow, Partial: true})
			return
		}

		writeServiceError(w, err, "failed to update follow state")
		return
	}

	writeOK(w, http.StatusOK, FollowResponse{Following: follow})
}

func (s server) getFollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{userID}/follow Graph IsFollowing
	//
	// Reports whether the viewer follows the user.
	//
	// ---
	// responses:
	//   '200':
	//     description: Follow state
	//     schema:
	//       "$ref": "#/definitions/FollowResponse"

	sess, ok := s.viewerSession(w, r)
	if !ok {
		return
	}

	targetID := chi.URLParam(r, "userID")

	writeOK(w, http.StatusOK, FollowResponse{Following: s.graph.IsFollowing(sess, targetID)})
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{postID}/like Engagement ToggleLike
	//
	// Toggles the viewer's membership in the post's like-set. The returned
	// value is the optimistic local state; the store write settles in the
	// background.
	//
	// ---
	// responses:
	//   '200':
	//     description: Like state
	//     schema:
	//       "$ref": "#/definitions/ToggleLikeResponse"
	//   '404':
	//     description: post not found

	sess, ok := s.viewerSession(w, r)
	if !ok {
		return
	}

	postID := chi.URLParam(r, "postID")
	if postID == "" {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	liked, err := s.engagement.ToggleLike(r.Context(), sess, postID)
	if err != nil {
		writeServiceError(w, err, "failed to toggle like")
		return
	}

	writeOK(w, http.StatusOK, ToggleLikeResponse{Liked: liked})
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Creates a post owned by the viewer. Author display data is denormalized
	// onto the post at creation time.
	//
	// ---
	// responses:
	//   '201':
	//     description: Post created
	//     schema:
	//       "$ref": "#/definitions/CreatePostResponse"

	sess, ok := s.viewerSession(w, r)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Title == "" && len(req.Media) == 0 {
		writeError(w, http.StatusBadRequest, "empty post")
		return
	}

	for _, m := range req.Media {
		if m.Type != entities.ImageMediaType && m.Type != entities.VideoMediaType {
			writeError(w, http.StatusBadRequest, "invalid media type")
			return
		}
	}

	id := uuid.New().String()

	if err := s.posts.CreatePost(r.Context(), &storage.CreatePostParams{
		ID:         id,
		AuthorID:   sess.ViewerID(),
		AuthorName: sess.Name(),
		AuthorPic:  sess.ProfilePic(),
		Title:      req.Title,
		Media:      req.Media,
		CreatedAt:  nowUTC(),
	}); err != nil {
		writeServiceError(w, err, "failed to create post")
		return
	}

	writeOK(w, http.StatusCreated, CreatePostResponse{ID: id})
}

func (s server) getUserStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{userID}/stats Users GetUserStats
	//
	// Returns follower, following and post counts for the user.
	//
	// ---
	// responses:
	//   '200':
	//     description: Stats
	//     schema:
	//       "$ref": "#/definitions/UserStatsResponse"
	//   '404':
	//     description: user not found

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := s.users.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeInternalError(w, "failed to get user: "+err.Error())
		return
	}

	posts, err := s.posts.QueryPosts(r.Context(), &storage.QueryPostsParams{AuthorIn: []string{userID}})
	if err != nil {
		writeInternalError(w, "failed to query posts: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, UserStatsResponse{
		FollowersCount: len(u.Followers),
		FollowingCount: len(u.Following),
		PostsCount:     len(posts),
	})
}

func (s server) viewerSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	viewerID := r.Header.Get(viewerHeader)
	if viewerID == "" {
		writeError(w, http.StatusUnauthorized, "missing "+viewerHeader+" header")
		return nil, false
	}

	sess, ok := s.sessions.Get(viewerID)
	if !ok {
		writeError(w, http.StatusUnauthorized, "no active session")
		return nil, false
	}

	return sess, true
}

func writeServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrSelfFollow):
		writeError(w, http.StatusBadRequest, "viewer and target are the same user")
	case errors.Is(err, storage.ErrEmptyAuthorFilter):
		writeError(w, http.StatusBadRequest, "empty author filter")
	case errors.Is(err, service.ErrTransient):
		writeError(w, http.StatusBadGateway, "temporarily unavailable")
	default:
		writeInternalError(w, message+": "+err.Error())
	}
}

func toFeedResponse(sess *session.Session, entries []entities.FeedEntry, partial, stale bool) FeedResponse {
	out := FeedResponse{
		Entries: make([]FeedEntry, len(entries)),
		Partial: partial,
		Stale:   stale,
	}

	for i := range entries {
		out.Entries[i] = toAPIFeedEntry(sess.ViewerID(), &entries[i])
	}

	return out
}
