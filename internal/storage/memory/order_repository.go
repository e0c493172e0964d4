package memory

import (
	"fmt"
	"sort"
	"time"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
)

type orderRepository struct {
	store *Store
}

// ListForCustomer собирает позиции заказов покупателя, упорядочивая их
// по id заказа и id товара — так же, как ORDER BY в SQL-реализации.
func (r *orderRepository) ListForCustomer(customerID int64) ([]domain.CustomerOrderLine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lines := make([]domain.CustomerOrderLine, 0)
	for _, orderID := range r.sortedOrderIDs() {
		order := r.store.orders[orderID]
		if order.CustomerID != customerID {
			continue
		}
		for _, oi := range r.sortedLines(orderID) {
			item := r.store.items[oi.ItemID]
			lines = append(lines, domain.CustomerOrderLine{
				ItemName:        item.Name,
				ItemDescription: item.Description,
				PriceMinor:      item.PriceMinor,
				LineTotalMinor:  item.PriceMinor * int64(oi.Quantity),
			})
		}
	}

	return lines, nil
}

// Total суммирует price*quantity по позициям заказа.
func (r *orderRepository) Total(orderID int64) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items, ok := r.store.orderItems[orderID]
	if !ok || len(items) == 0 {
		return 0, domain.ErrOrderNotFound
	}

	var total int64
	for _, oi := range items {
		total += r.store.items[oi.ItemID].PriceMinor * int64(oi.Quantity)
	}

	return total, nil
}

// ListBetween возвращает позиции заказов с order_time в [after, before].
func (r *orderRepository) ListBetween(after, before time.Time) ([]domain.RangeOrderLine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lines := make([]domain.RangeOrderLine, 0)
	for _, orderID := range r.sortedOrderIDs() {
		order := r.store.orders[orderID]
		// Инклюзивные границы с обеих сторон.
		if order.OrderTime.Before(after) || order.OrderTime.After(before) {
			continue
		}
		customer := r.store.customers[order.CustomerID]
		for _, oi := range r.sortedLines(orderID) {
			item := r.store.items[oi.ItemID]
			lines = append(lines, domain.RangeOrderLine{
				CustomerName:   customer.Name,
				ItemName:       item.Name,
				PriceMinor:     item.PriceMinor,
				LineTotalMinor: item.PriceMinor * int64(oi.Quantity),
			})
		}
	}

	return lines, nil
}

// Create повторяет транзакционную семантику SQL-реализации: сначала
// проверяются все ссылки, и только потом хранилище мутирует. Частично
// созданный заказ невозможен.
func (r *orderRepository) Create(order domain.NewOrder) (int64, error) {
	if len(order.Items) == 0 {
		return 0, domain.ErrItemsRequired
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.customers[order.CustomerID]; !ok {
		return 0, fmt.Errorf("insert order: %w: unknown customer %d", domain.ErrConstraint, order.CustomerID)
	}
	for _, item := range order.Items {
		if _, ok := r.store.items[item.ItemID]; !ok {
			return 0, fmt.Errorf("insert order item %d: %w: unknown item", item.ItemID, domain.ErrConstraint)
		}
	}

	orderID := r.store.nextOrderID
	r.store.nextOrderID++

	r.store.orders[orderID] = domain.Order{
		ID:         orderID,
		CustomerID: order.CustomerID,
		OrderTime:  time.Now().UTC(),
	}
	// Дубликаты ItemID не схлопываются: каждая входная позиция — своя строка.
	for _, item := range order.Items {
		r.store.orderItems[orderID] = append(r.store.orderItems[orderID], domain.OrderItem{
			OrderID:  orderID,
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	return orderID, nil
}

func (r *orderRepository) sortedOrderIDs() []int64 {
	ids := make([]int64, 0, len(r.store.orders))
	for id := range r.store.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *orderRepository) sortedLines(orderID int64) []domain.OrderItem {
	items := make([]domain.OrderItem, len(r.store.orderItems[orderID]))
	copy(items, r.store.orderItems[orderID])
	sort.SliceStable(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items
}

var _ domain.OrderRepository = (*orderRepository)(nil)
