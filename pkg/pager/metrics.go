package pager

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for pager operations.
var (
	pagerPagesFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "genai_pager_pages_fetched_total",
		Help: "Total pages fetched by collection",
	}, []string{"collection"})

	pagerFetchDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "genai_pager_fetch_duration_seconds",
		Help:    "Page fetch duration in seconds by collection",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
	}, []string{"collection"})

	pagerFetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "genai_pager_fetch_errors_total",
		Help: "Total failed page fetches by collection",
	}, []string{"collection"})

	pagerExhaustedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "genai_pager_exhausted_total",
		Help: "Total page advances attempted past the final page by collection",
	}, []string{"collection"})
)
