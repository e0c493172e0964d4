package domain

import "time"

// Customer — покупатель маркетплейса. Справочник ведётся внешними
// процессами, сервис его только читает.
type Customer struct {
	ID   int64
	Name string
}

// Item — товар каталога.
type Item struct {
	ID          int64
	Name        string
	Description string
	// PriceMinor — цена за единицу в минимальных денежных единицах (центы/копейки).
	PriceMinor int64
}

// Order — заказ покупателя. После коммита заказ неизменяем: сервис
// не выполняет update/delete по заказам.
type Order struct {
	ID         int64
	CustomerID int64
	// OrderTime фиксируется в момент создания заказа.
	OrderTime time.Time
}

// OrderItem — одна позиция заказа.
type OrderItem struct {
	OrderID int64
	ItemID  int64
	// Quantity — количество единиц товара, всегда >= 1.
	Quantity int32
}

// CustomerOrderLine — строка выборки "заказы покупателя": позиция заказа
// вместе с данными товара. LineTotalMinor = PriceMinor * quantity,
// вычисляется запросом, а не вызывающей стороной.
type CustomerOrderLine struct {
	ItemName        string
	ItemDescription string
	PriceMinor      int64
	LineTotalMinor  int64
}

// RangeOrderLine — строка выборки "заказы за период".
type RangeOrderLine struct {
	CustomerName   string
	ItemName       string
	PriceMinor     int64
	LineTotalMinor int64
}

// OrderLineInput — входная позиция нового заказа.
type OrderLineInput struct {
	ItemID   int64
	Quantity int32
}

// NewOrder — запрос на создание заказа для одного покупателя.
type NewOrder struct {
	CustomerID int64
	Items      []OrderLineInput
}

// ValidateInvariants проверяет базовые инварианты запроса и возвращает
// список замечаний. Дубликаты ItemID допустимы: каждая входная позиция
// становится отдельной строкой order_items.
func (o *NewOrder) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID <= 0 {
		errs = append(errs, ErrCustomerRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}
	for _, item := range o.Items {
		if item.ItemID <= 0 {
			errs = append(errs, ErrItemIDInvalid)
		}
		if item.Quantity < 1 {
			errs = append(errs, ErrQuantityInvalid)
		}
	}

	return errs
}
