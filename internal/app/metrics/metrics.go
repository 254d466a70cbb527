package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TranscriptionsTotal counts transcription calls by outcome.
	TranscriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scribepad_transcriptions_total",
		Help: "Number of transcription requests by outcome.",
	}, []string{"status"})

	// SheetsGeneratedTotal counts practice sheet generations by outcome.
	SheetsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scribepad_sheets_generated_total",
		Help: "Number of practice sheet generations by outcome.",
	}, []string{"status"})

	// LoginsTotal counts login attempts by outcome.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scribepad_logins_total",
		Help: "Number of login attempts by outcome.",
	}, []string{"status"})

	// ModelLatencySeconds observes external speech model call latency.
	ModelLatencySeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scribepad_model_latency_seconds",
		Help:    "Latency of external speech model calls.",
		Buckets: prometheus.DefBuckets,
	})
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)
