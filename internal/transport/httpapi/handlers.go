package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/auth"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/metrics"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/service/orders"
)

const maxBodyBytes = 1 << 20

const msgInvalidBody = "Invalid request body"

// Orders - операции сервиса заказов, доступные через HTTP.
type Orders interface {
	Create(ctx context.Context, ownerID string, in orders.CreateInput) (orders.Result, error)
	List(ctx context.Context, ownerID string) ([]domain.Order, error)
	Get(ctx context.Context, ownerID, id string) (domain.Order, error)
	LookupByNumber(ctx context.Context, ownerID, orderNumber string) (domain.Order, error)
	UpdateStatus(ctx context.Context, ownerID, id, status string) (orders.Result, error)
	Cancel(ctx context.Context, ownerID, id string) (orders.Result, error)
	Timeline(ctx context.Context, ownerID, id string) ([]domain.TimelineEvent, error)
}

// Handlers обслуживает /api/orders.
type Handlers struct {
	orders   Orders
	validate *validator.Validate
	logger   *log.Entry
	metrics  *metrics.HTTPMetrics
}

// NewHandlers создаёт HTTP-обработчики поверх сервиса заказов.
func NewHandlers(svc Orders, logger *log.Entry) *Handlers {
	if logger == nil {
		logger = log.WithField("component", "http-api")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handlers{
		orders:   svc,
		validate: validate,
		logger:   logger,
	}
}

func (h *Handlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.orders.List(r.Context(), ownerOf(r))
	if err != nil {
		writeDomainError(w, requestLogger(r, h.logger), err)
		return
	}
	writeData(w, http.StatusOK, newOrderViews(list), "")
}

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload createOrderPayload
	if !h.decode(w, r, &payload) {
		return
	}

	res, err := h.orders.Create(r.Context(), ownerOf(r), payload.toInput())
	if err != nil {
		writeDomainError(w, requestLogger(r, h.logger), err)
		return
	}
	writeData(w, http.StatusCreated, newOrderView(res.Order), res.Message)
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(r.Context(), ownerOf(r), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, requestLogger(r, h.logger), err)
		return
	}
	writeData(w, http.StatusOK, newOrderView(order), "")
}

func (h *Handlers) LookupOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.LookupByNumber(r.Context(), ownerOf(r), mux.Vars(r)["orderNumber"])
	if err != nil {
		writeDomainError(w, requestLogger(r, h.logger), err)
		return
	}
	writeData(w, http.StatusOK, newOrderView(order), "")
}

func (h *Handlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload updateStatusPayload
	if !h.decode(w, r, &payload) {
		return
	}

	res, err := h.orders.UpdateStatus(r.Context(), ownerOf(r), mux.Vars(r)["id"], payload.Status)
	if err != nil {
		writeDomainError(w, requestLogger(r, h.logger), err)
		return
	}
	writeData(w, http.StatusOK, newOrderView(res.Order), res.Message)
}

func (h *Handlers) CancelOrder(w http.ResponseWriter, r *http.Request) {
	res, err := h.orders.Cancel(r.Context(), ownerOf(r), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, requestLogger(r, h.logger), err)
		return
	}
	writeData(w, http.StatusOK, newOrderView(res.Order), res.Message)
}

func (h *Handlers) OrderTimeline(w http.ResponseWriter, r *http.Request) {
	events, err := h.orders.Timeline(r.Context(), ownerOf(r), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, requestLogger(r, h.logger), err)
		return
	}
	writeData(w, http.StatusOK, newTimelineViews(events), "")
}

// decode читает JSON-тело и проверяет транспортные ограничения.
// При ошибке ответ уже записан.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if !errors.Is(err, io.EOF) {
			requestLogger(r, h.logger).WithError(err).Debug("decode request body failed")
		}
		writeFailure(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		writeFailure(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return msgInvalidBody
	}
	first := fieldErrs[0]
	// Namespace начинается с имени структуры: "createOrderPayload.items[0].pack".
	_, field, _ := strings.Cut(first.Namespace(), ".")
	if first.Tag() == "max" || first.Tag() == "lte" {
		return fmt.Sprintf("Field %s must not exceed %s", field, first.Param())
	}
	return fmt.Sprintf("Field %s is invalid", field)
}

func ownerOf(r *http.Request) string {
	owner, _ := auth.OwnerFromContext(r.Context())
	return owner
}
