package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FeedFetches       *prometheus.CounterVec
	FeedFetchTime     prometheus.Histogram
	MessagesSent      *prometheus.CounterVec
	DuplicatesBlocked prometheus.Counter
	ReportsGenerated  *prometheus.CounterVec
	ErrorsCount       *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg.
// Pass prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FeedFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_fetches_total",
			Help:      "The total number of PMS schedule fetches by result",
		}, []string{"result"}),
		FeedFetchTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_fetch_time_seconds",
			Help:      "Time taken to fetch the PMS schedule feed",
			Buckets:   prometheus.DefBuckets,
		}),
		MessagesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkin_messages_total",
			Help:      "The total number of check-in messages by channel and result",
		}, []string{"channel", "result"}),
		DuplicatesBlocked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkin_duplicates_blocked_total",
			Help:      "Check-in sends rejected because the room was already sent today",
		}),
		ReportsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "The total number of generated staff reports",
		}, []string{"report"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}

// ObserveFetch records one feed fetch; nil metrics are ignored
func (m *Metrics) ObserveFetch(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.FeedFetches.WithLabelValues(result).Inc()
	m.FeedFetchTime.Observe(d.Seconds())
}

// CountMessage records one check-in send attempt
func (m *Metrics) CountMessage(channel, result string) {
	if m == nil {
		return
	}
	m.MessagesSent.WithLabelValues(channel, result).Inc()
}

// CountDuplicate records a send rejected by the ledger
func (m *Metrics) CountDuplicate() {
	if m == nil {
		return
	}
	m.DuplicatesBlocked.Inc()
}

// CountReport records a generated report
func (m *Metrics) CountReport(report string) {
	if m == nil {
		return
	}
	m.ReportsGenerated.WithLabelValues(report).Inc()
}

// CountError records a failed operation
func (m *Metrics) CountError(operation string) {
	if m == nil {
		return
	}
	m.ErrorsCount.WithLabelValues(operation).Inc()
}
