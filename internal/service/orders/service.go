// Package orders реализует жизненный цикл оптовых заказов: создание с номером
// AJ-YYYY-NNNN, чтение в пределах владельца, смену статуса и отмену.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/metrics"
)

// CreateInput - данные для создания заказа.
type CreateInput struct {
	OrderName       string
	Items           []domain.OrderItem
	Subtotal        float64
	Notes           string
	DeliveryAddress string
	// Status - запрошенный начальный статус; учитывается только `paid`.
	Status string
}

// Result - результат изменяющей операции с сообщением для пользователя.
type Result struct {
	Order   domain.Order
	Message string
}

// Service - сервис заказов. Не держит блокировок между запросами:
// единственный разделяемый ресурс - хранилище.
type Service struct {
	orders   domain.OrderRepository
	timeline domain.TimelineRepository
	outbox   domain.OutboxRepository
	numbers  NumberGenerator
	metrics  *metrics.OrderMetrics
	logger   *log.Entry
	now      func() time.Time
	newID    func() string
}

// Option настраивает Service.
type Option func(*Service)

// WithTimeline включает запись событий в timeline.
func WithTimeline(repo domain.TimelineRepository) Option {
	return func(s *Service) { s.timeline = repo }
}

// WithOutbox включает постановку событий в outbox.
func WithOutbox(repo domain.OutboxRepository) Option {
	return func(s *Service) { s.outbox = repo }
}

// WithNumberGenerator подменяет генератор номеров (по умолчанию count+1).
func WithNumberGenerator(gen NumberGenerator) Option {
	return func(s *Service) { s.numbers = gen }
}

func WithMetrics(m *metrics.OrderMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(logger *log.Entry) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock задаёт источник времени (год номера, created_at/updated_at).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator задаёт генератор внутренних ID заказов.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService создаёт сервис заказов поверх хранилища.
func NewService(orders domain.OrderRepository, opts ...Option) *Service {
	s := &Service{
		orders: orders,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.WithField("component", "order-service")
	}
	if s.numbers == nil {
		s.numbers = NewCountingGenerator(orders, s.now)
	}
	return s
}

// Create проверяет входные данные, выдаёт номер и сохраняет заказ.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (res Result, err error) {
	defer s.observe(metrics.OpCreate, s.now(), &err)

	if err := requireOwner(ownerID); err != nil {
		return Result{}, err
	}
	if err := validateCreate(in); err != nil {
		return Result{}, err
	}

	number, err := s.numbers.Next(ctx)
	if err != nil {
		s.logger.WithError(err).Error("order number generation failed")
		return Result{}, domain.NewStorageError(err)
	}

	now := s.now().UTC()
	order := domain.Order{
		ID:              s.newID(),
		OrderNumber:     number,
		OrderName:       strings.TrimSpace(in.OrderName),
		OwnerID:         ownerID,
		Status:          domain.InitialStatus(domain.OrderStatus(in.Status)),
		Items:           append([]domain.OrderItem(nil), in.Items...),
		Subtotal:        in.Subtotal,
		Notes:           strings.TrimSpace(in.Notes),
		DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	order.ComputeLineTotals()

	stored, err := s.orders.Insert(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNumberConflict) && s.metrics != nil {
			s.metrics.RecordNumberConflict()
		}
		s.logger.WithError(err).WithFields(log.Fields{
			"owner_id":     ownerID,
			"order_number": number,
		}).Error("insert order failed")
		return Result{}, domain.NewStorageError(err)
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated(string(stored.Status))
	}
	s.emit(ctx, stored, "", domain.EventOrderCreated, domain.TimelineCreated, "")
	s.logger.WithFields(log.Fields{
		"order_id":     stored.ID,
		"order_number": stored.OrderNumber,
		"status":       stored.Status,
	}).Info("order created")

	return Result{
		Order:   stored,
		Message: fmt.Sprintf("Order %s created successfully", stored.OrderNumber),
	}, nil
}

// List возвращает заказы владельца, новые первыми.
func (s *Service) List(ctx context.Context, ownerID string) (orders []domain.Order, err error) {
	defer s.observe(metrics.OpList, s.now(), &err)

	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	orders, err = s.orders.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// Get возвращает заказ владельца. Чужой заказ даёт not_found.
func (s *Service) Get(ctx context.Context, ownerID, id string) (order domain.Order, err error) {
	defer s.observe(metrics.OpGet, s.now(), &err)

	if err := requireOwner(ownerID); err != nil {
		return domain.Order{}, err
	}
	order, err = s.orders.FindByID(ctx, id, ownerID)
	if err != nil {
		return domain.Order{}, storeError(err)
	}
	return order, nil
}

// LookupByNumber ищет заказ по номеру без учёта регистра.
func (s *Service) LookupByNumber(ctx context.Context, ownerID, orderNumber string) (order domain.Order, err error) {
	defer s.observe(metrics.OpLookup, s.now(), &err)

	if err := requireOwner(ownerID); err != nil {
		return domain.Order{}, err
	}
	order, err = s.orders.FindByOrderNumber(ctx, domain.NormalizeOrderNumber(orderNumber), ownerID)
	if err != nil {
		return domain.Order{}, storeError(err)
	}
	return order, nil
}

// Timeline возвращает историю заказа после проверки владельца.
func (s *Service) Timeline(ctx context.Context, ownerID, id string) (events []domain.TimelineEvent, err error) {
	defer s.observe(metrics.OpTimeline, s.now(), &err)

	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if _, err := s.orders.FindByID(ctx, id, ownerID); err != nil {
		return nil, storeError(err)
	}
	if s.timeline == nil {
		return []domain.TimelineEvent{}, nil
	}
	events, err = s.timeline.List(ctx, id)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	return events, nil
}

// UpdateStatus переводит заказ в любой из шести статусов.
// Проверка существования и запись - два отдельных обращения к хранилищу.
func (s *Service) UpdateStatus(ctx context.Context, ownerID, id, status string) (res Result, err error) {
	defer s.observe(metrics.OpUpdateStatus, s.now(), &err)

	if err := requireOwner(ownerID); err != nil {
		return Result{}, err
	}
	next := domain.OrderStatus(status)
	if !next.Valid() {
		return Result{}, domain.NewValidationError("status", invalidStatusMessage())
	}

	current, err := s.orders.FindByID(ctx, id, ownerID)
	if err != nil {
		return Result{}, storeError(err)
	}

	updated, err := s.orders.UpdateStatus(ctx, id, ownerID, next, s.now().UTC())
	if err != nil {
		return Result{}, storeError(err)
	}

	if s.metrics != nil {
		s.metrics.RecordStatusChanged(string(next))
	}
	s.emit(ctx, updated, current.Status, domain.EventOrderStatusChanged, domain.TimelineStatusChanged, "")

	return Result{
		Order:   updated,
		Message: fmt.Sprintf("Order status updated to %s", next),
	}, nil
}

// Cancel отменяет заказ, если он в статусе pending.
func (s *Service) Cancel(ctx context.Context, ownerID, id string) (res Result, err error) {
	defer s.observe(metrics.OpCancel, s.now(), &err)

	if err := requireOwner(ownerID); err != nil {
		return Result{}, err
	}

	current, err := s.orders.FindByID(ctx, id, ownerID)
	if err != nil {
		return Result{}, storeError(err)
	}
	if current.Status != domain.OrderStatusPending {
		return Result{}, domain.NewValidationError("status", domain.MsgOnlyPendingCancellable)
	}

	cancelled, err := s.orders.UpdateStatus(ctx, id, ownerID, domain.OrderStatusCancelled, s.now().UTC())
	if err != nil {
		return Result{}, storeError(err)
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCancelled()
	}
	s.emit(ctx, cancelled, current.Status, domain.EventOrderCancelled, domain.TimelineCancelled, "cancelled by owner")

	return Result{
		Order:   cancelled,
		Message: fmt.Sprintf("Order %s cancelled successfully", cancelled.OrderNumber),
	}, nil
}

// emit пишет событие в timeline и outbox. Ошибки только логируются:
// заказ уже сохранён, и операция считается успешной.
func (s *Service) emit(ctx context.Context, order domain.Order, previous domain.OrderStatus, eventType string, kind domain.TimelineKind, note string) {
	logger := s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"event":    eventType,
	})
	occurred := order.UpdatedAt

	if s.timeline != nil {
		event := domain.TimelineEvent{
			OrderID:    order.ID,
			Kind:       kind,
			From:       previous,
			To:         order.Status,
			Note:       note,
			OccurredAt: occurred,
		}
		if err := s.timeline.Append(ctx, event); err != nil {
			logger.WithError(err).Warn("append timeline event failed")
		} else if s.metrics != nil {
			s.metrics.RecordTimelineEvent()
		}
	}

	if s.outbox == nil {
		return
	}
	payload, err := json.Marshal(domain.NewOrderEvent(order, previous, occurred))
	if err != nil {
		logger.WithError(err).Error("marshal order event failed")
		return
	}
	msg := domain.OutboxMessage{
		AggregateType: domain.AggregateOrder,
		AggregateID:   order.ID,
		EventType:     eventType,
		Payload:       payload,
	}
	if _, err := s.outbox.Enqueue(ctx, msg); err != nil {
		logger.WithError(err).Warn("enqueue order event failed")
	} else if s.metrics != nil {
		s.metrics.RecordOutboxEvent()
	}
}

func (s *Service) observe(operation string, started time.Time, errp *error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveDuration(operation, s.now().Sub(started))
	if errp != nil && *errp != nil {
		s.metrics.RecordFailure(operation, string(domain.KindOf(*errp)))
	}
}

func requireOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return &domain.Error{
			Kind:    domain.KindValidation,
			Field:   "owner_id",
			Message: domain.ErrOwnerRequired.Error(),
			Err:     domain.ErrOwnerRequired,
		}
	}
	return nil
}

// validateCreate возвращает ошибку по первому невалидному полю.
func validateCreate(in CreateInput) error {
	if strings.TrimSpace(in.OrderName) == "" {
		return domain.NewValidationError("order_name", domain.MsgOrderNameRequired)
	}
	if len(in.Items) == 0 {
		return domain.NewValidationError("items", domain.MsgItemsRequired)
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return domain.NewValidationError("delivery_address", domain.MsgDeliveryAddressRequired)
	}
	for i, item := range in.Items {
		if item.Quantity <= 0 {
			return domain.NewValidationError(fmt.Sprintf("items[%d].quantity", i), "Item quantity must be greater than zero")
		}
		if item.Quantity > domain.MaxItemQuantity {
			return domain.NewValidationError(fmt.Sprintf("items[%d].quantity", i), fmt.Sprintf("Item quantity must not exceed %d", domain.MaxItemQuantity))
		}
		if item.CustomPrice < 0 {
			return domain.NewValidationError(fmt.Sprintf("items[%d].custom_price", i), "Item price must not be negative")
		}
	}
	return nil
}

func invalidStatusMessage() string {
	return "Invalid status. Must be one of: " + domain.StatusList(domain.AllOrderStatuses())
}

// storeError переводит ошибку хранилища в доменную: отсутствие заказа - not_found,
// всё остальное - storage_error с исходным текстом.
func storeError(err error) error {
	if errors.Is(err, domain.ErrOrderNotFound) {
		return domain.NewNotFoundError()
	}
	return domain.NewStorageError(err)
}
