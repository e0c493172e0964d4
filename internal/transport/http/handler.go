package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
	"github.com/vladislavdragonenkov/marketsvc/internal/service/market"
)

// Поддерживаемые форматы границ диапазона дат.
const (
	dateOnlyLayout = "2006-01-02"
)

// Handler обрабатывает HTTP-запросы маркетплейса поверх сервисного слоя.
type Handler struct {
	svc    *market.Service
	logger *log.Entry
}

// NewHandler конструирует обработчик.
func NewHandler(svc *market.Service, logger *log.Entry) *Handler {
	if logger == nil {
		logger = log.WithField("component", "http-handler")
	}
	return &Handler{svc: svc, logger: logger}
}

// Hello — приветствие корневого пути.
func (h *Handler) Hello(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, "Welcome to Marketplace!")
}

// ListCustomers возвращает всех покупателей.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.Customers()
	if err != nil {
		h.serverError(w, r, "list customers", err)
		return
	}
	writeJSON(w, http.StatusOK, mapCustomers(customers))
}

// OrdersForCustomer возвращает позиции заказов одного покупателя.
func (h *Handler) OrdersForCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_customer_id", err.Error())
		return
	}

	lines, err := h.svc.OrdersForCustomer(customerID)
	if err != nil {
		h.serverError(w, r, "orders for customer", err)
		return
	}
	writeJSON(w, http.StatusOK, mapCustomerOrderLines(lines))
}

// OrderTotal возвращает сумму заказа. Отсутствующий заказ — 404, а не
// нулевая сумма.
func (h *Handler) OrderTotal(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order_id", err.Error())
		return
	}

	total, err := h.svc.OrderTotal(orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order_not_found", "order has no line items or does not exist")
			return
		}
		h.serverError(w, r, "order total", err)
		return
	}
	writeJSON(w, http.StatusOK, OrderTotalResponse{OrderTotal: formatMinor(total)})
}

// OrdersBetween возвращает позиции заказов за инклюзивный период.
// Перевёрнутый диапазон не считается ошибкой и даёт пустой список.
func (h *Handler) OrdersBetween(w http.ResponseWriter, r *http.Request) {
	after, err := parseRangeBound(chi.URLParam(r, "after"), false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_after", err.Error())
		return
	}
	before, err := parseRangeBound(chi.URLParam(r, "before"), true)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_before", err.Error())
		return
	}

	lines, err := h.svc.OrdersBetween(after, before)
	if err != nil {
		h.serverError(w, r, "orders between dates", err)
		return
	}
	writeJSON(w, http.StatusOK, mapRangeOrderLines(lines))
}

// AddNewOrder принимает заказ и отвечает 201 с новым id либо 400.
// Все отказы workflow схлопнуты в один клиентский исход.
func (h *Handler) AddNewOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	items := make([]domain.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderLineInput{ItemID: item.ID, Quantity: item.Quantity})
	}

	orderID, err := h.svc.PlaceOrder(domain.NewOrder{CustomerID: req.CustomerID, Items: items})
	if err != nil {
		if domain.IsValidation(err) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "order_rejected", "order was rejected")
		return
	}

	writeJSON(w, http.StatusCreated, CreateOrderResponse{OrderID: orderID})
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.WithError(err).WithFields(log.Fields{
		"path":       r.URL.Path,
		"request_id": requestIDFromContext(r.Context()),
	}).Errorf("%s failed", op)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// parseRangeBound принимает RFC3339 или дату без времени. Дата без
// времени в позиции before трактуется как конец дня, чтобы граница
// оставалась инклюзивной.
func parseRangeBound(value string, endOfDay bool) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}

	day, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		return day.Add(24*time.Hour - time.Nanosecond), nil
	}
	return day, nil
}
