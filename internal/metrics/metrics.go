// Package metrics exposes Prometheus metrics for form submissions.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeInvalid = "invalid"
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Collector records submission outcomes and HTTP responses.
type Collector struct {
	submissions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	rateLimited prometheus.Counter
	httpStatus  *prometheus.CounterVec
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barber_form_submissions_total",
			Help: "Form submissions by form and outcome.",
		}, []string{"form", "outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barber_form_failures_total",
			Help: "Rejected API calls by form and classified reason.",
		}, []string{"form", "reason"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "barber_api_call_seconds",
			Help:    "Latency of the API call made by a valid submission.",
			Buckets: prometheus.DefBuckets,
		}, []string{"form"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "barber_rate_limited_total",
			Help: "Submissions rejected by the per-client rate limiter.",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barber_http_responses_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
	}

	reg.MustRegister(c.submissions, c.failures, c.latency, c.rateLimited, c.httpStatus)
	return c
}

// RecordInvalid counts a submission blocked by validation.
func (c *Collector) RecordInvalid(form string) {
	c.submissions.WithLabelValues(form, OutcomeInvalid).Inc()
}

// RecordSuccess counts a resolved call.
func (c *Collector) RecordSuccess(form string, elapsed time.Duration) {
	c.submissions.WithLabelValues(form, OutcomeSuccess).Inc()
	c.latency.WithLabelValues(form).Observe(elapsed.Seconds())
}

// RecordFailure counts a rejected call, labelled with the error's Reason()
// when it has one.
func (c *Collector) RecordFailure(form string, err error, elapsed time.Duration) {
	c.submissions.WithLabelValues(form, OutcomeFailure).Inc()
	c.failures.WithLabelValues(form, Reason(err)).Inc()
	c.latency.WithLabelValues(form).Observe(elapsed.Seconds())
}

// RecordRateLimited counts a throttled request.
func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

// RecordHTTPStatus counts a response status.
func (c *Collector) RecordHTTPStatus(code int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(code)).Inc()
}

// Reason extracts a metrics label from err.
func Reason(err error) string {
	var r interface{ Reason() string }
	if errors.As(err, &r) {
		return r.Reason()
	}
	return "unknown"
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
