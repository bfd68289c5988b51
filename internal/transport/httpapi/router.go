package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/auth"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/metrics"
)

// Option настраивает HTTP API.
type Option func(*Handlers)

// WithMetrics включает метрики запросов.
func WithMetrics(m *metrics.HTTPMetrics) Option {
	return func(h *Handlers) { h.metrics = m }
}

// NewRouter собирает маршруты /api/orders.
func NewRouter(svc Orders, tokens *auth.Tokens, logger *log.Entry, opts ...Option) *mux.Router {
	h := NewHandlers(svc, logger)
	for _, opt := range opts {
		opt(h)
	}

	r := mux.NewRouter()
	r.Use(h.RequestLogger)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeFailure(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeFailure(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	api := r.PathPrefix("/api/orders").Subrouter()
	api.Use(h.RequireOwner(tokens))
	api.HandleFunc("", h.ListOrders).Methods(http.MethodGet).Name("orders.list")
	api.HandleFunc("", h.CreateOrder).Methods(http.MethodPost).Name("orders.create")
	api.HandleFunc("/number/{orderNumber}", h.LookupOrder).Methods(http.MethodGet).Name("orders.lookup")
	api.HandleFunc("/{id}", h.GetOrder).Methods(http.MethodGet).Name("orders.get")
	api.HandleFunc("/{id}/status", h.UpdateOrderStatus).Methods(http.MethodPatch).Name("orders.status")
	api.HandleFunc("/{id}/cancel", h.CancelOrder).Methods(http.MethodPost).Name("orders.cancel")
	api.HandleFunc("/{id}/timeline", h.OrderTimeline).Methods(http.MethodGet).Name("orders.timeline")

	return r
}

// Server - HTTP-сервер API заказов.
type Server struct {
	httpServer *http.Server
	logger     *log.Entry
}

// NewServer создаёт сервер с таймаутами по умолчанию.
func NewServer(addr string, handler http.Handler, logger *log.Entry) (*Server, error) {
	if handler == nil {
		return nil, fmt.Errorf("handler is required")
	}
	if logger == nil {
		logger = log.WithField("component", "http-api")
	}
	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}, nil
}

// Run блокируется до остановки сервера. Штатная остановка не считается ошибкой.
func (s *Server) Run() error {
	s.logger.WithField("addr", s.httpServer.Addr).Info("http api starting")

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Close останавливает сервер, дожидаясь активных запросов.
func (s *Server) Close(ctx context.Context) error {
	if s == nil || s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("http api stopped")
	return nil
}
