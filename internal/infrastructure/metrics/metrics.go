// Package metrics exposes Prometheus collectors for the discovery service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Classification outcomes.
const (
	OutcomeClassified      = "classified"
	OutcomeFallbackInvalid = "fallback_invalid"
	OutcomeFallbackError   = "fallback_error"
	OutcomeCacheHit        = "cache_hit"
)

var (
	// ClassificationsTotal counts event classifications by outcome.
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_event_classifications_total",
			Help: "Total number of event category classifications",
		},
		[]string{"outcome"},
	)

	// ClassificationDuration tracks the latency of the external classification call.
	ClassificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discovery_event_classification_duration_seconds",
			Help:    "Duration of external event classification calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)

	// RankingsTotal counts ranking requests by surface.
	RankingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_rankings_total",
			Help: "Total number of candidate rankings produced",
		},
		[]string{"surface"},
	)

	// RankedCandidates tracks how many candidates go into a ranking.
	RankedCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discovery_ranked_candidates",
			Help:    "Number of candidates per ranking",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

// RecordClassification records one classification outcome.
func RecordClassification(outcome string) {
	ClassificationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveClassificationCall records how long the external call took.
func ObserveClassificationCall(d time.Duration) {
	ClassificationDuration.Observe(d.Seconds())
}

// RecordRanking records a ranking over n candidates.
func RecordRanking(surface string, n int) {
	RankingsTotal.WithLabelValues(surface).Inc()
	RankedCandidates.Observe(float64(n))
}
