package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CadencesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_generations_completed_total",
			Help: "Total number of cadences generated and persisted",
		},
		[]string{"business_type"},
	)

	CadencesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_generations_failed_total",
			Help: "Total number of failed cadence generations",
		},
		[]string{"error_code"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "cadence_generation_duration_seconds",
			Help: "End-to-end duration of cadence generation",
		},
		[]string{"business_type"},
	)

	StepsScheduled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_steps_scheduled_total",
			Help: "Total number of cadence steps materialized, by channel",
		},
		[]string{"channel"},
	)
)
