package kafka

import (
	"strconv"
	"time"
)

// EventType определяет тип события.
type EventType string

const (
	// EventTypeOrderPlaced — заказ и все его позиции закоммичены.
	EventTypeOrderPlaced EventType = "order.placed"
)

// TopicOrderEvents — топик событий заказов.
const TopicOrderEvents = "marketsvc.order.events"

// OrderPlacedEvent публикуется после успешного коммита заказа.
// Событие информационное: его доставка не влияет на судьбу заказа.
type OrderPlacedEvent struct {
	EventType  EventType `json:"event_type"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	LineCount  int       `json:"line_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewOrderPlacedEvent создает событие о размещении заказа.
func NewOrderPlacedEvent(orderID, customerID int64, lineCount int) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		EventType:  EventTypeOrderPlaced,
		OrderID:    orderID,
		CustomerID: customerID,
		LineCount:  lineCount,
		Timestamp:  time.Now(),
	}
}

// Key возвращает ключ партиционирования — id заказа.
func (e *OrderPlacedEvent) Key() string {
	return strconv.FormatInt(e.OrderID, 10)
}
