package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы доставки события из outbox.
const (
	DeliverySent         = "sent"
	DeliveryRetry        = "retry"
	DeliveryDeadLettered = "dead_lettered"
	DeliveryDLQFailed    = "dlq_failed"
)

// OutboxMetrics - метрики доставки событий заказов из outbox в брокер.
type OutboxMetrics struct {
	deliveries *prometheus.CounterVec
	pending    prometheus.Gauge
	oldestAge  prometheus.Gauge
}

// NewOutboxMetrics регистрирует метрики outbox. nil - DefaultRegisterer.
func NewOutboxMetrics(registerer prometheus.Registerer) *OutboxMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OutboxMetrics{
		deliveries: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_outbox_deliveries_total",
			Help: "Outbox delivery attempts for order events, by outcome",
		}, []string{"outcome"})),
		pending: register(registerer, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orders_outbox_backlog",
			Help: "Order events waiting for delivery",
		})),
		oldestAge: register(registerer, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orders_outbox_backlog_age_seconds",
			Help: "Age of the oldest undelivered order event",
		})),
	}
}

// RecordDelivery учитывает исход одной попытки доставки.
func (m *OutboxMetrics) RecordDelivery(outcome string) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(outcome).Inc()
}

// SetBacklog выставляет размер и возраст очереди.
func (m *OutboxMetrics) SetBacklog(pending int, oldest time.Duration) {
	if m == nil {
		return
	}
	if oldest < 0 || pending == 0 {
		oldest = 0
	}
	m.pending.Set(float64(pending))
	m.oldestAge.Set(oldest.Seconds())
}
