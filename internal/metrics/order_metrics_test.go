package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()

	ch := make(chan prometheus.Metric)
	go func() {
		c.Collect(ch)
		close(ch)
	}()

	var total float64
	for metric := range ch {
		pb := &dto.Metric{}
		if err := metric.Write(pb); err != nil {
			t.Fatalf("write metric: %v", err)
		}
		total += pb.GetCounter().GetValue()
	}
	return total
}

func TestOrderMetrics_Counters(t *testing.T) {
	m := NewOrderMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordOrderCreated("payment_pending")
	m.RecordOrderCreated("paid")
	m.RecordStatusChanged("closed")
	m.RecordOrderCancelled()
	m.RecordNumberConflict()
	m.RecordFailure(OpCreate, "validation_error")
	m.RecordTimelineEvent()
	m.RecordOutboxEvent()
	m.RecordOutboxEvent()

	if got := counterValue(t, m.ordersCreated); got != 2 {
		t.Fatalf("expected 2 created, got %v", got)
	}
	if got := counterValue(t, m.ordersCreated.WithLabelValues("paid")); got != 1 {
		t.Fatalf("expected 1 created with paid, got %v", got)
	}
	if got := counterValue(t, m.statusChanges); got != 1 {
		t.Fatalf("expected 1 status change, got %v", got)
	}
	if got := counterValue(t, m.ordersCancelled); got != 1 {
		t.Fatalf("expected 1 cancelled, got %v", got)
	}
	if got := counterValue(t, m.numberConflicts); got != 1 {
		t.Fatalf("expected 1 number conflict, got %v", got)
	}
	if got := counterValue(t, m.operationFailures.WithLabelValues(OpCreate, "validation_error")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
	if got := counterValue(t, m.timelineEvents); got != 1 {
		t.Fatalf("expected 1 timeline event, got %v", got)
	}
	if got := counterValue(t, m.outboxEvents); got != 2 {
		t.Fatalf("expected 2 outbox events, got %v", got)
	}
}

func TestOrderMetrics_ObserveDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetricsWithRegisterer(reg)

	m.ObserveDuration(OpGet, 15*time.Millisecond)
	m.ObserveDuration(OpGet, 30*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != "orders_operation_duration_seconds" {
			continue
		}
		hist := family.GetMetric()[0].GetHistogram()
		if hist.GetSampleCount() != 2 {
			t.Fatalf("expected 2 samples, got %d", hist.GetSampleCount())
		}
		return
	}
	t.Fatal("duration histogram not gathered")
}

func TestOrderMetrics_ReRegistrationReturnsExisting(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewOrderMetricsWithRegisterer(reg)
	second := NewOrderMetricsWithRegisterer(reg)

	first.RecordOrderCancelled()
	if got := counterValue(t, second.ordersCancelled); got != 1 {
		t.Fatalf("expected shared collector, got %v", got)
	}
}
