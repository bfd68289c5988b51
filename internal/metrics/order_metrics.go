package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Имена операций сервиса заказов для label `operation`.
const (
	OpCreate       = "create"
	OpList         = "list"
	OpGet          = "get"
	OpLookup       = "lookup_by_number"
	OpUpdateStatus = "update_status"
	OpCancel       = "cancel"
	OpTimeline     = "timeline"
)

// OrderMetrics содержит метрики жизненного цикла заказов.
type OrderMetrics struct {
	ordersCreated   *prometheus.CounterVec
	statusChanges   *prometheus.CounterVec
	ordersCancelled prometheus.Counter
	numberConflicts prometheus.Counter

	operationFailures *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec

	timelineEvents prometheus.Counter
	outboxEvents   prometheus.Counter
}

// NewOrderMetrics регистрирует метрики в prometheus.DefaultRegisterer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer регистрирует метрики в переданном registerer.
// Повторная регистрация возвращает уже существующие коллекторы.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created, by initial status",
		}, []string{"status"})),
		statusChanges: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_status_changes_total",
			Help: "Total number of order status changes, by target status",
		}, []string{"status"})),
		ordersCancelled: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_cancelled_total",
			Help: "Total number of orders cancelled by their owners",
		})),
		numberConflicts: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_number_conflicts_total",
			Help: "Total number of order inserts rejected because the order number was taken",
		})),
		operationFailures: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_operation_failures_total",
			Help: "Total number of failed order operations, by operation and error kind",
		}, []string{"operation", "kind"})),
		operationDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orders_operation_duration_seconds",
			Help:    "Duration of order service operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"operation"})),
		timelineEvents: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_timeline_events_total",
			Help: "Total number of order timeline events recorded",
		})),
		outboxEvents: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_outbox_events_total",
			Help: "Total number of order events enqueued to the outbox",
		})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	err := registerer.Register(collector)
	if err == nil {
		return collector
	}

	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		existing, ok := alreadyRegistered.ExistingCollector.(C)
		if !ok {
			panic(fmt.Sprintf("collector already registered with unexpected type %T", alreadyRegistered.ExistingCollector))
		}
		return existing
	}
	panic(fmt.Sprintf("register collector: %v", err))
}

// RecordOrderCreated учитывает созданный заказ.
func (m *OrderMetrics) RecordOrderCreated(status string) {
	m.ordersCreated.WithLabelValues(status).Inc()
}

// RecordStatusChanged учитывает переход в статус status.
func (m *OrderMetrics) RecordStatusChanged(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

func (m *OrderMetrics) RecordOrderCancelled() {
	m.ordersCancelled.Inc()
}

func (m *OrderMetrics) RecordNumberConflict() {
	m.numberConflicts.Inc()
}

// RecordFailure учитывает неуспешную операцию с классом ошибки kind.
func (m *OrderMetrics) RecordFailure(operation, kind string) {
	m.operationFailures.WithLabelValues(operation, kind).Inc()
}

// ObserveDuration записывает длительность операции.
func (m *OrderMetrics) ObserveDuration(operation string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *OrderMetrics) RecordTimelineEvent() {
	m.timelineEvents.Inc()
}

func (m *OrderMetrics) RecordOutboxEvent() {
	m.outboxEvents.Inc()
}
