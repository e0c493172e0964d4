package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
)

type orderRepository struct {
	gw *Gateway
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(gw *Gateway) domain.OrderRepository {
	return &orderRepository{gw: gw}
}

// ListForCustomer возвращает позиции заказов покупателя. line_total
// считается в запросе, чтобы агрегат нельзя было пересчитать иначе,
// чем по строкам order_items.
func (r *orderRepository) ListForCustomer(customerID int64) ([]domain.CustomerOrderLine, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	lines := make([]domain.CustomerOrderLine, 0)
	err := r.gw.Read(ctx, `
		SELECT
			item.name,
			item.description,
			item.price_minor,
			item.price_minor * order_items.quantity AS line_total
		FROM orders
		JOIN order_items ON order_items.order_id = orders.id
		JOIN item ON item.id = order_items.item_id
		WHERE orders.customer_id = $1
		ORDER BY orders.id, item.id
	`, func(rows *sql.Rows) error {
		var line domain.CustomerOrderLine
		if err := rows.Scan(&line.ItemName, &line.ItemDescription, &line.PriceMinor, &line.LineTotalMinor); err != nil {
			return err
		}
		lines = append(lines, line)
		return nil
	}, customerID)
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// Total возвращает сумму заказа. SUM по пустой выборке даёт NULL —
// так мы отличаем отсутствующий заказ от заказа с нулевой суммой.
func (r *orderRepository) Total(orderID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var total sql.NullInt64
	err := r.gw.Read(ctx, `
		SELECT SUM(item.price_minor * order_items.quantity) AS total
		FROM orders
		JOIN order_items ON order_items.order_id = orders.id
		JOIN item ON item.id = order_items.item_id
		WHERE orders.id = $1
	`, func(rows *sql.Rows) error {
		return rows.Scan(&total)
	}, orderID)
	if err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, domain.ErrOrderNotFound
	}

	return total.Int64, nil
}

// ListBetween возвращает позиции заказов за инклюзивный период.
func (r *orderRepository) ListBetween(after, before time.Time) ([]domain.RangeOrderLine, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	lines := make([]domain.RangeOrderLine, 0)
	err := r.gw.Read(ctx, `
		SELECT
			customer.name,
			item.name,
			item.price_minor,
			item.price_minor * order_items.quantity AS line_total
		FROM orders
		JOIN customer ON customer.id = orders.customer_id
		JOIN order_items ON order_items.order_id = orders.id
		JOIN item ON item.id = order_items.item_id
		WHERE orders.order_time >= $1
		  AND orders.order_time <= $2
		ORDER BY orders.id, item.id
	`, func(rows *sql.Rows) error {
		var line domain.RangeOrderLine
		if err := rows.Scan(&line.CustomerName, &line.ItemName, &line.PriceMinor, &line.LineTotalMinor); err != nil {
			return err
		}
		lines = append(lines, line)
		return nil
	}, after, before)
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// Create вставляет заказ и все его позиции в одной транзакции: сбой на
// любой позиции откатывает и строку orders, осиротевший заказ появиться
// не может.
func (r *orderRepository) Create(order domain.NewOrder) (int64, error) {
	if len(order.Items) == 0 {
		return 0, domain.ErrItemsRequired
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var orderID int64
	err := r.gw.WithinTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (customer_id, order_time)
			VALUES ($1, $2)
			RETURNING id
		`, order.CustomerID, time.Now().UTC()).Scan(&orderID)
		if err != nil {
			return classify("insert order", err)
		}

		for _, item := range order.Items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, item_id, quantity)
				VALUES ($1, $2, $3)
			`, orderID, item.ItemID, item.Quantity); err != nil {
				return classify(fmt.Sprintf("insert order item %d", item.ItemID), err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return orderID, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
