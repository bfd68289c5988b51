package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/auth"
)

const headerRequestID = "X-Request-ID"

type loggerKey struct{}

type loggingResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *loggingResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// RequestLogger логирует запросы, проставляет X-Request-ID и кладёт
// request-scoped логгер в контекст.
func (h *Handlers) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := routeLabel(r)

		requestID := requestIDFromRequest(r)
		w.Header().Set(headerRequestID, requestID)

		logger := h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"remote_ip":  clientIP(r),
		})
		if route != "" {
			logger = logger.WithField("route", route)
		}

		r = r.WithContext(context.WithValue(r.Context(), loggerKey{}, logger))

		wrapped := &loggingResponseWriter{ResponseWriter: w}
		next.ServeHTTP(wrapped, r)

		status := wrapped.status
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		h.metrics.ObserveRequest(route, r.Method, status, elapsed)

		logger.WithFields(log.Fields{
			"status":      status,
			"duration_ms": elapsed.Milliseconds(),
			"bytes":       wrapped.bytes,
		}).Info("request completed")
	})
}

// RequireOwner пропускает только запросы с валидным bearer-токеном.
// Владелец из claim `sub` попадает в контекст.
func (h *Handlers) RequireOwner(tokens *auth.Tokens) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner, err := tokens.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				requestLogger(r, h.logger).WithError(err).Debug("request rejected")
				writeFailure(w, http.StatusUnauthorized, unauthorizedMessage(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithOwner(r.Context(), owner)))
		})
	}
}

func unauthorizedMessage(err error) string {
	if errors.Is(err, auth.ErrMissingToken) {
		return "Authorization token is required"
	}
	return "Invalid authorization token"
}

func requestLogger(r *http.Request, fallback *log.Entry) *log.Entry {
	if logger, ok := r.Context().Value(loggerKey{}).(*log.Entry); ok && logger != nil {
		return logger
	}
	return fallback
}

func requestIDFromRequest(r *http.Request) string {
	if requestID := strings.TrimSpace(r.Header.Get(headerRequestID)); requestID != "" {
		return requestID
	}
	return uuid.NewString()
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-Ip")); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

func routeLabel(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	if name := route.GetName(); name != "" {
		return name
	}
	if template, err := route.GetPathTemplate(); err == nil {
		return template
	}
	return ""
}
