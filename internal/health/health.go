// Package health отдаёт состояние сервиса заказов: /healthz с деталями по компонентам,
// /livez и /readyz для оркестратора.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"
)

const defaultCheckTimeout = 2 * time.Second

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// worse сравнивает статусы по тяжести.
func (s Status) worse(than Status) bool { return s.rank() > than.rank() }

func (s Status) rank() int {
	switch s {
	case StatusHealthy:
		return 0
	case StatusDegraded:
		return 1
	default:
		return 2
	}
}

// Check - результат проверки одного компонента.
type Check struct {
	Name      string `json:"name"`
	Status    Status `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

// Response - тело ответа /healthz.
type Response struct {
	Status        Status           `json:"status"`
	Version       string           `json:"version,omitempty"`
	CheckedAt     time.Time        `json:"checked_at"`
	UptimeSeconds int64            `json:"uptime_seconds"`
	Checks        map[string]Check `json:"checks,omitempty"`
}

type Checker interface {
	Check(ctx context.Context) Check
}

type registered struct {
	name    string
	checker Checker
}

// Handler агрегирует проверки компонентов.
type Handler struct {
	mu       sync.RWMutex
	checkers []registered
	version  string
	started  time.Time
	now      func() time.Time
}

func NewHandler(version string) *Handler {
	return &Handler{version: version, started: time.Now(), now: time.Now}
}

// RegisterChecker добавляет проверку; повторное имя заменяет прежнюю.
func (h *Handler) RegisterChecker(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.checkers {
		if h.checkers[i].name == name {
			h.checkers[i].checker = checker
			return
		}
	}
	h.checkers = append(h.checkers, registered{name: name, checker: checker})
}

// Names возвращает имена проверок по алфавиту.
func (h *Handler) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.checkers))
	for _, r := range h.checkers {
		names = append(names, r.name)
	}
	slices.Sort(names)
	return names
}

// Evaluate запускает проверки параллельно; итоговый статус - худший из полученных.
func (h *Handler) Evaluate(ctx context.Context) Response {
	h.mu.RLock()
	checkers := slices.Clone(h.checkers)
	h.mu.RUnlock()

	results := make([]Check, len(checkers))
	var wg sync.WaitGroup
	for i, r := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = r.checker.Check(ctx)
		}()
	}
	wg.Wait()

	resp := Response{
		Status:        StatusHealthy,
		Version:       h.version,
		CheckedAt:     h.now().UTC(),
		UptimeSeconds: int64(h.now().Sub(h.started).Seconds()),
	}
	if len(results) > 0 {
		resp.Checks = make(map[string]Check, len(results))
	}
	for i, check := range results {
		resp.Checks[checkers[i].name] = check
		if check.Status.worse(resp.Status) {
			resp.Status = check.Status
		}
	}
	return resp
}

// ServeHTTP отдаёт 503 только при unhealthy: degraded сервис продолжает работать.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h.Evaluate(r.Context())

	code := http.StatusOK
	if resp.Status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	if h.Evaluate(r.Context()).Status == StatusUnhealthy {
		writeText(w, http.StatusServiceUnavailable, "not ready")
		return
	}
	writeText(w, http.StatusOK, "ready")
}

// LivenessHandler отвечает 200, пока процесс жив.
func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

// PingChecker проверяет компонент функцией ping. Ошибка критичного
// компонента (хранилище) даёт unhealthy, некритичного (кэш) - degraded.
type PingChecker struct {
	name     string
	ping     func(ctx context.Context) error
	timeout  time.Duration
	critical bool
}

func NewPingChecker(name string, ping func(ctx context.Context) error) *PingChecker {
	return &PingChecker{name: name, ping: ping, timeout: defaultCheckTimeout, critical: true}
}

func NewOptionalChecker(name string, ping func(ctx context.Context) error) *PingChecker {
	return &PingChecker{name: name, ping: ping, timeout: defaultCheckTimeout}
}

func (c *PingChecker) WithTimeout(timeout time.Duration) *PingChecker {
	if timeout > 0 {
		c.timeout = timeout
	}
	return c
}

func (c *PingChecker) Check(ctx context.Context) Check {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	err := c.ping(ctx)
	check := Check{Name: c.name, Status: StatusHealthy, LatencyMs: time.Since(start).Milliseconds()}
	if err == nil {
		return check
	}

	check.Error = err.Error()
	check.Status = StatusDegraded
	if c.critical {
		check.Status = StatusUnhealthy
	}
	return check
}
