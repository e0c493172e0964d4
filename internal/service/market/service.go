package market

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
	"github.com/vladislavdragonenkov/marketsvc/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/marketsvc/internal/metrics"
)

// Service реализует пять операций маркетплейса поверх доменных
// репозиториев. Читающие операции пробрасывают ошибки хранилища без
// изменений; единственное место локального восстановления — PlaceOrder.
type Service struct {
	customers domain.CustomerRepository
	orders    domain.OrderRepository
	producer  *kafka.Producer // nil-safe: без Kafka события не публикуются
	metrics   *metrics.MarketMetrics
	logger    *log.Entry
}

// NewService конструирует сервис с зависимостями.
func NewService(
	customers domain.CustomerRepository,
	orders domain.OrderRepository,
	producer *kafka.Producer,
	marketMetrics *metrics.MarketMetrics,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "market-service")
	}
	return &Service{
		customers: customers,
		orders:    orders,
		producer:  producer,
		metrics:   marketMetrics,
		logger:    logger,
	}
}

// Customers возвращает весь справочник покупателей.
func (s *Service) Customers() ([]domain.Customer, error) {
	defer s.observe("list_customers", time.Now())
	return s.customers.List()
}

// OrdersForCustomer возвращает позиции заказов покупателя.
func (s *Service) OrdersForCustomer(customerID int64) ([]domain.CustomerOrderLine, error) {
	defer s.observe("orders_for_customer", time.Now())
	return s.orders.ListForCustomer(customerID)
}

// OrderTotal возвращает сумму заказа в минимальных единицах.
// Отсутствующий заказ — это ErrOrderNotFound, а не нулевая сумма.
func (s *Service) OrderTotal(orderID int64) (int64, error) {
	defer s.observe("order_total", time.Now())
	return s.orders.Total(orderID)
}

// OrdersBetween возвращает позиции заказов за инклюзивный период.
func (s *Service) OrdersBetween(after, before time.Time) ([]domain.RangeOrderLine, error) {
	defer s.observe("orders_between", time.Now())
	return s.orders.ListBetween(after, before)
}

// PlaceOrder валидирует запрос и атомарно сохраняет заказ.
// Ошибки валидации возвращаются как есть — хранилище при этом не
// затрагивается. Любой сбой записи логируется с первопричиной и
// схлопывается в ErrOrderRejected, чтобы детали хранилища не утекали
// вызывающей стороне.
func (s *Service) PlaceOrder(order domain.NewOrder) (int64, error) {
	defer s.observe("place_order", time.Now())

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return 0, errors.Join(errs...)
	}

	orderID, err := s.orders.Create(order)
	if err != nil {
		s.logger.WithError(err).WithField("customer_id", order.CustomerID).Error("failed to add new order")
		if s.metrics != nil {
			s.metrics.RecordOrderRejected()
		}
		return 0, domain.ErrOrderRejected
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated()
	}
	s.publishOrderPlaced(orderID, order)

	return orderID, nil
}

// publishOrderPlaced отправляет событие о заказе, если Kafka настроена.
// Заказ уже закоммичен, поэтому сбой публикации только логируется.
func (s *Service) publishOrderPlaced(orderID int64, order domain.NewOrder) {
	if s.producer == nil {
		return
	}

	event := kafka.NewOrderPlacedEvent(orderID, order.CustomerID, len(order.Items))
	if err := s.producer.PublishEvent(kafka.TopicOrderEvents, event.Key(), event); err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("failed to publish order placed event")
	}
}

func (s *Service) observe(operation string, started time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, started)
	}
}
