// Package server Mosaic
//
// Mosaic is the data-consistency and assembly engine behind a social feed:
// follow graph, merged timeline and like reconciliation.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 0.1.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/mosaicnet/mosaic/internal/middleware"
	"github.com/mosaicnet/mosaic/internal/service"
	"github.com/mosaicnet/mosaic/internal/session"
	"github.com/mosaicnet/mosaic/internal/storage"
)

const maxBodySize = 64 * 1024
const statsCacheTTL = time.Minute

type server struct {
	sessions   *session.Manager
	graph      service.Graph
	feed       service.Feed
	engagement service.Engagement
	posts      storage.PostStorage
	users      storage.UserStorage
}

// SetupRouter setups handlers to chi router.
func SetupRouter(
	sessions *session.Manager,
	graph service.Graph,
	feed service.Feed,
	engagement service.Engagement,
	posts storage.PostStorage,
	users storage.UserStorage,
	r chi.Router,
	timeout time.Duration,
) {
	r.Use(
		loggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		bodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		sessions:   sessions,
		graph:      graph,
		feed:       feed,
		engagement: engagement,
		posts:      posts,
		users:      users,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/sessions", srv.login)
		r.Delete("/sessions", srv.logout)

		r.Get("/feed", srv.getFeed)

		r.Post("/posts", srv.createPost)
		r.Post("/posts/{postID}/like", srv.toggleLike)

		r.Post("/users/{userID}/follow", srv.follow)
		r.Delete("/users/{userID}/follow", srv.unfollow)
		r.Get("/users/{userID}/follow", srv.getFollow)
		r.Get("/users/{userID}/stats", mm.Cached(statsCacheTTL, srv.getUserStats))
	})
}
