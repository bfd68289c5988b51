// Package outbox доставляет события заказов из transactional outbox в брокер.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/metrics"
)

const (
	defaultPollInterval = time.Second
	defaultBatchSize    = 100
	defaultMaxAttempts  = 3
	defaultRetryDelay   = 50 * time.Millisecond
)

// Report - итог одного прохода по outbox.
type Report struct {
	Pulled       int
	Sent         int
	DeadLettered int
}

type settings struct {
	logger       *log.Entry
	metrics      *metrics.OutboxMetrics
	dlq          domain.OutboxPublisher
	now          func() time.Time
	pollInterval time.Duration
	batchSize    int
	retry        retryPolicy
}

// Option настраивает Worker.
type Option func(*settings)

func WithLogger(logger *log.Entry) Option {
	return func(s *settings) { s.logger = logger }
}

// WithMetrics включает метрики доставки и backlog.
func WithMetrics(m *metrics.OutboxMetrics) Option {
	return func(s *settings) { s.metrics = m }
}

// WithDLQPublisher задаёт получателя событий, которые не удалось доставить.
func WithDLQPublisher(publisher domain.OutboxPublisher) Option {
	return func(s *settings) { s.dlq = publisher }
}

func WithPollInterval(interval time.Duration) Option {
	return func(s *settings) { s.pollInterval = interval }
}

func WithBatchSize(size int) Option {
	return func(s *settings) { s.batchSize = size }
}

// WithMaxAttempts задаёт число попыток до отправки в DLQ.
func WithMaxAttempts(attempts int) Option {
	return func(s *settings) { s.retry.attempts = attempts }
}

// WithRetryDelay задаёт паузу после первой неудачи; дальше она удваивается.
func WithRetryDelay(delay time.Duration) Option {
	return func(s *settings) { s.retry.base = delay }
}

func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// Worker периодически забирает pending-события и публикует их.
type Worker struct {
	repo      domain.OutboxRepository
	publisher domain.OutboxPublisher
	settings
}

// NewWorker создаёт воркер. Некорректные значения опций заменяются умолчаниями.
func NewWorker(repo domain.OutboxRepository, publisher domain.OutboxPublisher, options ...Option) *Worker {
	s := settings{
		now:          time.Now,
		pollInterval: defaultPollInterval,
		batchSize:    defaultBatchSize,
		retry:        retryPolicy{attempts: defaultMaxAttempts, base: defaultRetryDelay},
	}
	for _, option := range options {
		option(&s)
	}

	if s.logger == nil {
		s.logger = log.WithField("component", "outbox")
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.pollInterval <= 0 {
		s.pollInterval = defaultPollInterval
	}
	if s.batchSize <= 0 {
		s.batchSize = defaultBatchSize
	}
	if s.retry.attempts <= 0 {
		s.retry.attempts = defaultMaxAttempts
	}
	if s.retry.base < 0 {
		s.retry.base = 0
	}

	return &Worker{repo: repo, publisher: publisher, settings: s}
}

// Run обрабатывает outbox сразу и затем раз в pollInterval, пока жив ctx.
func (w *Worker) Run(ctx context.Context) {
	if w.repo == nil || w.publisher == nil {
		w.logger.Warn("outbox delivery disabled")
		return
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		report := w.ProcessOnce(ctx)
		if report.Pulled > 0 {
			w.logger.WithFields(log.Fields{
				"pulled":        report.Pulled,
				"sent":          report.Sent,
				"dead_lettered": report.DeadLettered,
			}).Debug("outbox batch processed")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ProcessOnce доставляет одну пачку событий. Отменённый ctx прерывает проход
// между сообщениями; недоставленные остаются pending до следующего прохода.
func (w *Worker) ProcessOnce(ctx context.Context) Report {
	var report Report
	if ctx.Err() != nil {
		return report
	}

	batch, err := w.repo.PullPending(ctx, w.batchSize)
	if err != nil {
		w.logger.WithError(err).Warn("pull pending order events")
		return report
	}
	report.Pulled = len(batch)

	for _, msg := range batch {
		if ctx.Err() != nil {
			break
		}
		switch w.deliver(ctx, msg) {
		case delivered:
			report.Sent++
		case deadLettered:
			report.DeadLettered++
		}
	}

	w.observeBacklog(ctx)
	return report
}

type outcome int

const (
	interrupted outcome = iota
	delivered
	deadLettered
)

// deliver публикует сообщение с повторами и фиксирует результат в репозитории.
func (w *Worker) deliver(ctx context.Context, msg domain.OutboxMessage) outcome {
	entry := w.logger.WithFields(log.Fields{
		"outbox_id":  msg.ID,
		"order_id":   msg.AggregateID,
		"event_type": msg.EventType,
	})

	err := w.retry.do(ctx, func() error {
		if pubErr := w.publisher.Publish(ctx, msg); pubErr != nil {
			w.metrics.RecordDelivery(metrics.DeliveryRetry)
			entry.WithError(pubErr).Debug("publish attempt failed")
			return pubErr
		}
		return nil
	})

	switch {
	case err == nil:
		w.metrics.RecordDelivery(metrics.DeliverySent)
		if markErr := w.repo.MarkSent(ctx, msg.ID); markErr != nil {
			entry.WithError(markErr).Warn("mark order event sent")
		}
		return delivered
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return interrupted
	}

	entry.WithError(err).Error("order event moved to dead letters")
	w.metrics.RecordDelivery(metrics.DeliveryDeadLettered)
	if dlqErr := w.sendDeadLetter(ctx, msg, err); dlqErr != nil {
		w.metrics.RecordDelivery(metrics.DeliveryDLQFailed)
		entry.WithError(dlqErr).Warn("dead letter not published")
	}
	if markErr := w.repo.MarkFailed(ctx, msg.ID); markErr != nil {
		entry.WithError(markErr).Warn("mark order event failed")
	}
	return deadLettered
}

func (w *Worker) sendDeadLetter(ctx context.Context, msg domain.OutboxMessage, cause error) error {
	if w.dlq == nil {
		return nil
	}
	letter, err := toDeadLetter(msg, w.retry.attempts, cause, w.now())
	if err != nil {
		return err
	}
	return w.dlq.Publish(ctx, letter)
}

func (w *Worker) observeBacklog(ctx context.Context) {
	if w.metrics == nil {
		return
	}
	stats, err := w.repo.Stats(ctx)
	if err != nil {
		w.logger.WithError(err).Warn("read outbox backlog")
		return
	}
	var age time.Duration
	if !stats.OldestPendingAt.IsZero() {
		age = w.now().Sub(stats.OldestPendingAt)
	}
	w.metrics.SetBacklog(stats.PendingCount, age)
}

// retryPolicy - ограниченное число попыток с экспоненциальной паузой.
type retryPolicy struct {
	attempts int
	base     time.Duration
}

// delay возвращает паузу перед попыткой attempt+1.
func (p retryPolicy) delay(attempt int) time.Duration {
	if p.base <= 0 {
		return 0
	}
	d := p.base
	for i := 1; i < attempt; i++ {
		if d >= time.Duration(1<<62) {
			return d
		}
		d *= 2
	}
	return d
}

func (p retryPolicy) do(ctx context.Context, fn func() error) error {
	var last error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		if last = fn(); last == nil {
			return nil
		}
		if attempt == p.attempts {
			break
		}
		if d := p.delay(attempt); d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return fmt.Errorf("%w: %d attempts: %w", domain.ErrOutboxPublish, p.attempts, last)
}
