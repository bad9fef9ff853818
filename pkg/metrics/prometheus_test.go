package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return metric.GetCounter().GetValue()
}

func TestMetricsHelpers(t *testing.T) {
	m := NewMetrics("test", prometheus.NewRegistry())

	m.ObserveFetch("ok", 120*time.Millisecond)
	m.CountMessage("sms", "sent")
	m.CountMessage("sms", "sent")
	m.CountDuplicate()
	m.CountReport("cleaning")
	m.CountError("fetch")

	if got := counterValue(t, m.FeedFetches.WithLabelValues("ok")); got != 1 {
		t.Errorf("feed fetches = %v, want 1", got)
	}
	if got := counterValue(t, m.MessagesSent.WithLabelValues("sms", "sent")); got != 2 {
		t.Errorf("messages sent = %v, want 2", got)
	}
	if got := counterValue(t, m.DuplicatesBlocked); got != 1 {
		t.Errorf("duplicates = %v, want 1", got)
	}
}

func TestNilMetricsAreIgnored(t *testing.T) {
	var m *Metrics
	m.ObserveFetch("ok", time.Second)
	m.CountMessage("sms", "sent")
	m.CountDuplicate()
	m.CountReport("cleaning")
	m.CountError("fetch")
}
