package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobportal_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobportal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobportal_errors_total",
			Help: "Total number of errors returned to clients, by kind.",
		},
		[]string{"kind"},
	)
	ApplicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobportal_applications_submitted_total",
			Help: "Total number of job applications accepted.",
		},
	)
	JobsPosted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobportal_jobs_posted_total",
			Help: "Total number of job postings created.",
		},
	)
	NotificationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobportal_notification_failures_total",
			Help: "Notifications that could not be stored for a domain event.",
		},
	)
	UploadsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobportal_uploads_rejected_total",
			Help: "Uploaded files rejected by the upload stage.",
		},
		[]string{"field", "reason"},
	)
)

// Registry holds every collector above. It is separate from the default
// registry so tests can build several routers in one process.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		HTTPRequests,
		HTTPDuration,
		ErrorsCounter,
		ApplicationsSubmitted,
		JobsPosted,
		NotificationFailures,
		UploadsRejected,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
