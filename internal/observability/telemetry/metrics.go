package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	VoiceConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffhub_voice_conversions_total",
		Help: "Total voice-to-template conversions by matched template",
	}, []string{"template", "result"})

	VoiceProcessingLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "staffhub_voice_processing_latency_seconds",
		Help:    "Latency of voice-to-template processing",
		Buckets: prometheus.DefBuckets,
	})

	ActivitiesLoggedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffhub_activities_logged_total",
		Help: "Total activity feed entries recorded",
	})

	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffhub_form_submissions_total",
		Help: "Total form submissions by status",
	}, []string{"status"})

	// Infrastructure metrics
	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "staffhub_websocket_clients",
		Help: "Currently connected websocket clients",
	})

	DatabaseLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "staffhub_database_latency_seconds",
		Help:    "Latency of database queries",
		Buckets: prometheus.DefBuckets,
	})
)
