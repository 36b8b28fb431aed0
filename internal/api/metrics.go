package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linesight_analyses_total",
		Help: "Analyses served, by domain and narrative source.",
	}, []string{"domain", "source"})

	generatorFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linesight_generator_fallbacks_total",
		Help: "Generator requests that fell back to the rule-based path.",
	})

	anomaliesDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linesight_anomalies_detected_total",
		Help: "Assessments where at least one threshold rule fired.",
	}, []string{"domain"})
)
