package httpapi_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/marketsvc/internal/service/market"
	"github.com/vladislavdragonenkov/marketsvc/internal/storage/memory"
	httpapi "github.com/vladislavdragonenkov/marketsvc/internal/transport/http"
)

func newTestAPI() http.Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	entry := logger.WithField("component", "test")

	store := memory.NewStore()
	store.SeedDemo()
	svc := market.NewService(store.Customers(), store.Orders(), nil, nil, entry)
	return httpapi.NewRouter(httpapi.NewHandler(svc, entry), nil, entry)
}

func doRequest(t *testing.T, api http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func TestAPI_ListCustomers(t *testing.T) {
	api := newTestAPI()

	rec := doRequest(t, api, http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var customers []httpapi.CustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customers))
	require.Len(t, customers, 3)
	require.Equal(t, int64(1), customers[0].ID)
	require.Equal(t, "Alice Santos", customers[0].Name)
}

func TestAPI_AddNewOrderAndReadBack(t *testing.T) {
	api := newTestAPI()

	rec := doRequest(t, api, http.MethodPost, "/api/add_new_order",
		`{"customer_id":1,"items":[{"id":10,"quantity":2},{"id":11,"quantity":1}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created httpapi.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Positive(t, created.OrderID)

	rec = doRequest(t, api, http.MethodGet, fmt.Sprintf("/api/order_total/%d", created.OrderID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var total httpapi.OrderTotalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &total))
	require.Equal(t, "12.50", total.OrderTotal)

	rec = doRequest(t, api, http.MethodGet, "/api/orders/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var lines []httpapi.CustomerOrderLineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	require.Len(t, lines, 2)
	require.Equal(t, "10.00", lines[0].Total)
	require.Equal(t, "2.50", lines[1].Total)
}

func TestAPI_AddNewOrderEmptyItems(t *testing.T) {
	api := newTestAPI()

	rec := doRequest(t, api, http.MethodPost, "/api/add_new_order", `{"customer_id":1,"items":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Отказ не должен оставить следов в хранилище.
	rec = doRequest(t, api, http.MethodGet, "/api/orders/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]\n", rec.Body.String())
}

func TestAPI_AddNewOrderUnknownItem(t *testing.T) {
	api := newTestAPI()

	rec := doRequest(t, api, http.MethodPost, "/api/add_new_order",
		`{"customer_id":1,"items":[{"id":999,"quantity":1}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "order_rejected", resp["error"])

	rec = doRequest(t, api, http.MethodGet, "/api/orders/1", "")
	require.Equal(t, "[]\n", rec.Body.String())
}

func TestAPI_OrderTotalNotFound(t *testing.T) {
	api := newTestAPI()

	rec := doRequest(t, api, http.MethodGet, "/api/order_total/404", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_OrdersBetweenDates(t *testing.T) {
	api := newTestAPI()

	rec := doRequest(t, api, http.MethodPost, "/api/add_new_order",
		`{"customer_id":2,"items":[{"id":12,"quantity":2}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	today := time.Now().UTC().Format("2006-01-02")
	rec = doRequest(t, api, http.MethodGet, "/api/orders_between_dates/"+today+"/"+today, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var lines []httpapi.RangeOrderLineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	require.Equal(t, "Bob Keller", lines[0].CustomerName)
	require.Equal(t, "Espresso", lines[0].ItemName)
	require.Equal(t, "6.00", lines[0].Total)
}

func TestAPI_OrdersBetweenBadDate(t *testing.T) {
	api := newTestAPI()

	rec := doRequest(t, api, http.MethodGet, "/api/orders_between_dates/not-a-date/2026-01-01", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_InvalidCustomerID(t *testing.T) {
	api := newTestAPI()

	rec := doRequest(t, api, http.MethodGet, "/api/orders/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_RequestIDHeader(t *testing.T) {
	api := newTestAPI()

	rec := doRequest(t, api, http.MethodGet, "/api/customers", "")
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	require.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}
