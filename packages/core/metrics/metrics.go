// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResultsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "boardgametracker",
		Name:      "results_recorded_total",
		Help:      "Number of results committed to the store.",
	})

	ResultsReplayed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "boardgametracker",
		Name:      "results_replayed_total",
		Help:      "Number of record calls answered from an existing request key.",
	})

	StandingsCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "boardgametracker",
		Name:      "standings_cache_hits_total",
		Help:      "Standings queries served from the versioned cache.",
	})

	StandingsCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "boardgametracker",
		Name:      "standings_cache_misses_total",
		Help:      "Standings queries that had to fold the result set.",
	})
)
