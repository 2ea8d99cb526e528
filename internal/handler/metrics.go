package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "furniture_store",
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Total number of successfully placed orders",
		},
	)

	checkoutFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture_store",
			Subsystem: "checkout",
			Name:      "failures_total",
			Help:      "Total number of failed checkout attempts",
		},
		[]string{"reason"},
	)

	checkoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "furniture_store",
			Subsystem: "checkout",
			Name:      "duration_seconds",
			Help:      "Histogram of successful checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
