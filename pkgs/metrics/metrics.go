package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PageViews = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "birdboard_page_views_total",
		Help: "Total dashboard page views",
	})
	PostsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "birdboard_posts_submitted_total",
		Help: "Total posts submitted through the compose box",
	})
	StageFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "birdboard_stage_failures_total",
		Help: "Total aggregation stage failures",
	}, []string{"stage"})
	AggregationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "birdboard_aggregation_duration_seconds",
		Help:    "Full aggregation duration seconds",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(PageViews, PostsSubmitted, StageFailures, AggregationDuration)
}

// ObserveAggregationDuration records one full aggregation run
func ObserveAggregationDuration(start time.Time) {
	AggregationDuration.Observe(time.Since(start).Seconds())
}

// IncStageFailure increments the failure counter for a stage
func IncStageFailure(stage string) { StageFailures.WithLabelValues(stage).Inc() }
