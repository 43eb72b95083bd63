// Package observability exposes Prometheus metrics for write operations,
// reports and HTTP requests.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	writesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gym",
		Subsystem: "writes",
		Name:      "total",
		Help:      "Write operations by entity and outcome (ok or the error type).",
	}, []string{"entity", "outcome"})

	reportDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gym",
		Subsystem: "reports",
		Name:      "duration_seconds",
		Help:      "Time spent building and running a report.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "outcome"})

	reportRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gym",
		Subsystem: "reports",
		Name:      "last_row_count",
		Help:      "Rows returned by the most recent run of each report.",
	}, []string{"kind"})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gym",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"method", "route", "status"})

	eventsPublishFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gym",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "record.created events that could not be published.",
	})
)

func init() {
	prometheus.MustRegister(writesTotal, reportDuration, reportRows, httpRequests, eventsPublishFailures)
}

// RecordWrite counts one write operation.
func RecordWrite(entity, outcome string) {
	writesTotal.WithLabelValues(entity, outcome).Inc()
}

// ObserveReport records how long a report took and how many rows it
// returned. rows is ignored when the report failed.
func ObserveReport(kind, outcome string, started time.Time, rows int) {
	reportDuration.WithLabelValues(kind, outcome).Observe(time.Since(started).Seconds())
	if outcome == "ok" {
		reportRows.WithLabelValues(kind).Set(float64(rows))
	}
}

// RecordHTTPRequest counts one served request.
func RecordHTTPRequest(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

// RecordPublishFailure counts an event that was dropped.
func RecordPublishFailure() {
	eventsPublishFailures.Inc()
}
