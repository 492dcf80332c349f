package gridsearch

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFound          = "found"
	outcomeUnreachable    = "unreachable"
	outcomeInvalid        = "invalid"
	outcomeBudgetExceeded = "budget_exceeded"
	outcomeCanceled       = "canceled"
)

var (
	// searchTotal counts searches by engine and outcome
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridsearch_search_total",
		Help: "Total searches by engine and outcome",
	}, []string{"engine", "outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridsearch_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
	}, []string{"engine"})

	searchExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridsearch_search_expanded_cells",
		Help:    "Cells finalized per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"engine"})
)

func observeSearch(engine Engine, outcome string, expanded int, elapsed time.Duration) {
	searchTotal.WithLabelValues(engine.String(), outcome).Inc()
	if outcome == outcomeInvalid {
		return
	}
	searchDuration.WithLabelValues(engine.String()).Observe(elapsed.Seconds())
	searchExpanded.WithLabelValues(engine.String()).Observe(float64(expanded))
}

func outcomeOf(result Result, err error) string {
	switch {
	case err == nil && result.Found:
		return outcomeFound
	case err == nil:
		return outcomeUnreachable
	case errors.Is(err, ErrBudgetExceeded):
		return outcomeBudgetExceeded
	case errors.Is(err, ErrInvalidEndpoint), errors.Is(err, ErrInvalidOptions):
		return outcomeInvalid
	default:
		return outcomeCanceled
	}
}
