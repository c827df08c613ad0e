package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "love_space_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "love_space_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Business metrics
	RoomsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "love_space_rooms_created_total",
			Help: "Total rooms created",
		},
	)

	RoomJoins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "love_space_room_joins_total",
			Help: "Total room join requests (including re-joins)",
		},
	)

	MessagesPosted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "love_space_messages_posted_total",
			Help: "Total messages posted",
		},
	)

	ThemeChanges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "love_space_theme_changes_total",
			Help: "Total theme changes",
		},
	)

	// Cache metrics
	StateCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "love_space_state_cache_hits_total",
			Help: "Room state reads served from the Redis cache",
		},
	)

	StateCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "love_space_state_cache_misses_total",
			Help: "Room state reads assembled from Postgres",
		},
	)
)
