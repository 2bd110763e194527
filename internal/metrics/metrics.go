// Package metrics contains prometheus collectors of the engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// FeedAssemblies counts assembly passes by outcome (ok, partial, superseded, error).
	FeedAssemblies = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mosaic_feed_assemblies_total",
		Help: "Total feed assembly passes by outcome",
	}, []string{"outcome"})

	// FeedAssemblyDuration ...
	FeedAssemblyDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mosaic_feed_assembly_duration_seconds",
		Help:    "Feed assembly duration seconds",
		Buckets: prometheus.DefBuckets,
	})

	// FollowPartialFailures counts one-sided follow edges left by a failed second write.
	FollowPartialFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mosaic_follow_partial_failures_total",
		Help: "Total follow/unfollow operations that left a one-sided edge",
	})

	// LikeWrites counts like-set writes actually issued to the store.
	LikeWrites = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mosaic_like_writes_total",
		Help: "Total like-set membership writes issued",
	})

	// LikeTogglesCoalesced counts local toggles absorbed without a store write.
	LikeTogglesCoalesced = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mosaic_like_toggles_coalesced_total",
		Help: "Total like toggles coalesced into an already pending write",
	})

	// StaleAuthoritativeDrops counts authoritative updates ignored because a local toggle was in flight.
	StaleAuthoritativeDrops = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mosaic_stale_authoritative_drops_total",
		Help: "Total authoritative like updates dropped in favor of a fresher local toggle",
	})
)

// nolint: gochecknoinits
func init() {
	prometheus.MustRegister(
		FeedAssemblies,
		FeedAssemblyDuration,
		FollowPartialFailures,
		LikeWrites,
		LikeTogglesCoalesced,
		StaleAuthoritativeDrops,
	)
}
