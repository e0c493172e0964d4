package domain

import "time"

// CustomerRepository описывает требования к справочнику покупателей.
type CustomerRepository interface {
	// List возвращает всех покупателей. Пагинации нет намеренно:
	// справочник ограничен по размеру.
	List() ([]Customer, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// ListForCustomer возвращает позиции всех заказов покупателя
	// вместе с данными товаров.
	ListForCustomer(customerID int64) ([]CustomerOrderLine, error)
	// Total возвращает сумму заказа в минимальных единицах или
	// ErrOrderNotFound, если заказа нет либо у него нет позиций.
	Total(orderID int64) (int64, error)
	// ListBetween возвращает позиции заказов с order_time в
	// инклюзивном диапазоне [after, before]. Перевёрнутый диапазон
	// даёт пустую выборку, ошибки нет.
	ListBetween(after, before time.Time) ([]RangeOrderLine, error)
	// Create атомарно сохраняет заказ и все его позиции и возвращает
	// сгенерированный идентификатор. Либо видны все строки, либо ни одной.
	Create(order NewOrder) (int64, error)
}
