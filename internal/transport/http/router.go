package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketsvc/internal/metrics"
)

// NewRouter собирает маршруты API. Пути повторяют публичный контракт
// сервиса: справочник покупателей, заказы покупателя, сумма заказа,
// заказы за период и создание заказа.
func NewRouter(handler *Handler, m *metrics.MarketMetrics, logger *log.Entry) http.Handler {
	if logger == nil {
		logger = log.WithField("component", "http")
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(Instrument(m))
	r.Use(middleware.Recoverer)

	r.Get("/", handler.Hello)
	r.Get("/api/customers", handler.ListCustomers)
	r.Get("/api/orders/{customerID}", handler.OrdersForCustomer)
	r.Get("/api/order_total/{orderID}", handler.OrderTotal)
	r.Get("/api/orders_between_dates/{after}/{before}", handler.OrdersBetween)
	r.Post("/api/add_new_order", handler.AddNewOrder)

	return r
}
