package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/auth"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/metrics"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/service/orders"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/storage/memory"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/transport/httpapi"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type orderBody struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	OwnerID     string `json:"owner_id"`
	Status      string `json:"status"`
	Items       []struct {
		LineTotal float64 `json:"line_total"`
	} `json:"items"`
}

type testAPI struct {
	handler http.Handler
	tokens  *auth.Tokens
	reg     *prometheus.Registry
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	entry := logger.WithField("component", "test")

	tokens, err := auth.NewTokens("test-secret")
	require.NoError(t, err)

	svc := orders.NewService(
		memory.NewOrderRepository(),
		orders.WithTimeline(memory.NewTimelineRepository()),
		orders.WithLogger(entry),
	)

	reg := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)

	return testAPI{
		handler: httpapi.NewRouter(svc, tokens, entry, httpapi.WithMetrics(httpMetrics)),
		tokens:  tokens,
		reg:     reg,
	}
}

func (api testAPI) do(t *testing.T, owner, method, path, body string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if owner != "" {
		token, err := api.tokens.Issue(owner)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)

	var resp apiResponse
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&resp), rec.Body.String())
	return rec, resp
}

func decodeOrder(t *testing.T, raw json.RawMessage) orderBody {
	t.Helper()
	var order orderBody
	require.NoError(t, json.Unmarshal(raw, &order))
	return order
}

const createBody = `{
	"order_name": "Weekly produce",
	"delivery_address": "12 Market St",
	"subtotal": 85,
	"items": [{"product_id": "p-1", "product_name": "Bananas", "pack": "13kg", "price": "$42.50 / ctn", "custom_price": 42.5, "quantity": 2}]
}`

func TestOrderLifecycleOverHTTP(t *testing.T) {
	api := newTestAPI(t)

	rec, resp := api.do(t, "owner-1", http.MethodPost, "/api/orders", createBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, resp.Success)
	created := decodeOrder(t, resp.Data)
	assert.Regexp(t, `^AJ-\d{4}-\d{4}$`, created.OrderNumber)
	assert.Equal(t, "payment_pending", created.Status)
	assert.Equal(t, "owner-1", created.OwnerID)
	require.Len(t, created.Items, 1)
	assert.InDelta(t, 85.0, created.Items[0].LineTotal, 0.0001)
	assert.Contains(t, resp.Message, created.OrderNumber)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec, resp = api.do(t, "owner-1", http.MethodGet, "/api/orders/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeOrder(t, resp.Data).ID)

	rec, resp = api.do(t, "owner-1", http.MethodGet, "/api/orders/number/"+strings.ToLower(created.OrderNumber), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeOrder(t, resp.Data).ID)

	rec, resp = api.do(t, "owner-1", http.MethodPatch, "/api/orders/"+created.ID+"/status", `{"status":"in_progress"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "in_progress", decodeOrder(t, resp.Data).Status)
	assert.Equal(t, "Order status updated to in_progress", resp.Message)

	rec, resp = api.do(t, "owner-1", http.MethodPost, "/api/orders/"+created.ID+"/cancel", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Only pending orders can be cancelled", resp.Error)

	rec, resp = api.do(t, "owner-1", http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []orderBody
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)

	rec, resp = api.do(t, "owner-1", http.MethodGet, "/api/orders/"+created.ID+"/timeline", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var events []struct {
		Kind string `json:"kind"`
		From string `json:"from_status"`
		To   string `json:"to_status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &events))
	require.Len(t, events, 2)
	assert.Equal(t, "created", events[0].Kind)
	assert.Equal(t, "status_changed", events[1].Kind)
	assert.Equal(t, events[0].To, events[1].From)
}

func TestCancelPendingOrder(t *testing.T) {
	api := newTestAPI(t)

	_, resp := api.do(t, "owner-1", http.MethodPost, "/api/orders", createBody)
	created := decodeOrder(t, resp.Data)
	require.Equal(t, "payment_pending", created.Status)

	// свежий заказ ещё не pending
	rec, resp := api.do(t, "owner-1", http.MethodPost, "/api/orders/"+created.ID+"/cancel", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Only pending orders can be cancelled", resp.Error)

	rec, resp = api.do(t, "owner-1", http.MethodPatch, "/api/orders/"+created.ID+"/status", `{"status":"pending"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "pending", decodeOrder(t, resp.Data).Status)

	rec, resp = api.do(t, "owner-1", http.MethodPost, "/api/orders/"+created.ID+"/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", decodeOrder(t, resp.Data).Status)
	assert.Equal(t, "Order "+created.OrderNumber+" cancelled successfully", resp.Message)
}

func TestForeignOwnerGetsNotFound(t *testing.T) {
	api := newTestAPI(t)

	_, resp := api.do(t, "owner-1", http.MethodPost, "/api/orders", createBody)
	created := decodeOrder(t, resp.Data)

	rec, resp := api.do(t, "owner-2", http.MethodGet, "/api/orders/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", resp.Error)

	rec, resp = api.do(t, "owner-2", http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(resp.Data))
}

func TestCreateValidation(t *testing.T) {
	api := newTestAPI(t)

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{name: "malformed json", body: `{"order_name":`, message: "Invalid request body"},
		{name: "empty body", body: "", message: "Invalid request body"},
		{name: "missing name", body: `{"delivery_address":"x","items":[{"quantity":1}]}`, message: "Order name is required"},
		{name: "no items", body: `{"order_name":"x","delivery_address":"x","items":[]}`, message: "At least one item is required"},
		{name: "missing address", body: `{"order_name":"x","items":[{"quantity":1}]}`, message: "Delivery address is required"},
		{name: "pack too long", body: `{"order_name":"x","delivery_address":"x","items":[{"quantity":1,"pack":"` + strings.Repeat("a", 65) + `"}]}`, message: "Field items[0].pack must not exceed 64"},
		{name: "quantity overflows int32", body: `{"order_name":"x","delivery_address":"x","items":[{"quantity":2147483648}]}`, message: "Field items[0].quantity must not exceed 2147483647"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := api.do(t, "owner-1", http.MethodPost, "/api/orders", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.message, resp.Error)
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	api := newTestAPI(t)

	_, resp := api.do(t, "owner-1", http.MethodPost, "/api/orders", createBody)
	created := decodeOrder(t, resp.Data)

	rec, resp := api.do(t, "owner-1", http.MethodPatch, "/api/orders/"+created.ID+"/status", `{"status":"shipped"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Error, "pending, in_progress, payment_pending, paid, closed, cancelled")
}

func TestAuthRequired(t *testing.T) {
	api := newTestAPI(t)

	rec, resp := api.do(t, "", http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization token is required", resp.Error)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid authorization token")
}

func TestRequestIDIsPropagated(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec, resp := api.do(t, "owner-1", http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", resp.Error)
}

func TestRequestMetricsByRoute(t *testing.T) {
	api := newTestAPI(t)

	api.do(t, "owner-1", http.MethodGet, "/api/orders", "")
	api.do(t, "owner-1", http.MethodGet, "/api/orders", "")
	api.do(t, "", http.MethodGet, "/api/orders", "")

	count, err := testutil.GatherAndCount(api.reg, "orders_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per status code")
}
