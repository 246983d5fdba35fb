package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	swipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommatch_swipes_total",
			Help: "Total number of recorded swipes",
		},
		[]string{"liked"},
	)

	matchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommatch_match_checks_total",
			Help: "Outcomes of mutual-like checks",
		},
		[]string{"outcome"},
	)

	unmatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roommatch_unmatches_total",
			Help: "Total number of deleted matches",
		},
	)

	orphansRepaired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roommatch_orphaned_matches_repaired_total",
			Help: "One-sided match records removed by repair",
		},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roommatch_compatibility_scores",
			Help:    "Distribution of computed compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	scoreFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roommatch_discovery_score_fallbacks_total",
			Help: "Candidates ranked with the neutral score after a scoring failure",
		},
	)

	messagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommatch_messages_total",
			Help: "Message send attempts by result",
		},
		[]string{"result"},
	)

	rpcDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "roommatch_rpc_duration_seconds",
			Help: "gRPC handler latency",
		},
		[]string{"method", "code"},
	)
)

func RecordSwipe(liked bool) {
	if liked {
		swipesTotal.WithLabelValues("true").Inc()
		return
	}
	swipesTotal.WithLabelValues("false").Inc()
}

// RecordMatchOutcome counts "no_match", "matched" or "creation_failed".
func RecordMatchOutcome(outcome string) {
	matchOutcomes.WithLabelValues(outcome).Inc()
}

func RecordUnmatch() {
	unmatchesTotal.Inc()
}

func RecordOrphansRepaired(n int) {
	orphansRepaired.Add(float64(n))
}

func RecordCompatibilityScore(score float64) {
	compatibilityScores.Observe(score)
}

func RecordScoreFallback() {
	scoreFallbacks.Inc()
}

// RecordMessage counts send attempts: "sent", "not_matched", "empty", "invalid" or "failed".
func RecordMessage(result string) {
	messagesTotal.WithLabelValues(result).Inc()
}

func RecordRPC(method, code string, d time.Duration) {
	rpcDuration.WithLabelValues(method, code).Observe(d.Seconds())
}
