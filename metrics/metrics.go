// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Project page resolutions by outcome: found, not_found, fetch_failed
	PageResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_page_resolutions_total",
			Help: "Project page resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// Rendered project pages by template: rich, fallback
	PageTemplates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_page_templates_total",
			Help: "Rendered project pages by template",
		},
		[]string{"template"},
	)

	// Lead captures by inquiry type and result: saved, failed, rejected
	LeadCaptures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_lead_captures_total",
			Help: "Lead capture attempts by inquiry type and result",
		},
		[]string{"inquiry_type", "result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)
)

func RecordPageResolution(outcome string) {
	PageResolutions.WithLabelValues(outcome).Inc()
}

func RecordPageTemplate(template string) {
	PageTemplates.WithLabelValues(template).Inc()
}

func RecordLeadCapture(inquiryType, result string) {
	LeadCaptures.WithLabelValues(inquiryType, result).Inc()
}

func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}
