// Package metrics declares the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SnapshotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dental_lab_draft_snapshot_writes_total",
			Help: "Draft snapshot writes to local storage",
		},
		[]string{"trigger", "result"},
	)

	DraftRecoveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dental_lab_draft_recoveries_total",
			Help: "Startup checks by outcome",
		},
		[]string{"outcome"},
	)

	WorkOrderSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dental_lab_work_order_submissions_total",
			Help: "Work order submissions by result",
		},
		[]string{"result"},
	)

	WorkOrderSubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dental_lab_work_order_submission_duration_seconds",
			Help:    "Time spent persisting a submitted work order",
			Buckets: prometheus.DefBuckets,
		},
	)

	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dental_lab_work_order_status_transitions_total",
			Help: "Work order status transitions",
		},
		[]string{"to"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dental_lab_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
