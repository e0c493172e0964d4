package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора покупателя.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка отсутствия хотя бы одного товара в заказе.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// Ошибка некорректного идентификатора товара в позиции.
	ErrItemIDInvalid = errors.New("item id must be greater than zero")
	// Ошибка при некорректном количестве товара (< 1).
	ErrQuantityInvalid = errors.New("item quantity must be at least one")
	// ErrOrderNotFound возвращается, когда заказ не найден или у него нет позиций.
	ErrOrderNotFound = errors.New("order not found")
	// ErrConstraint — хранилище отклонило запись (нарушение FK/уникальности).
	ErrConstraint = errors.New("store constraint violated")
	// ErrUnavailable — база недоступна или соединение оборвалось посреди операции.
	ErrUnavailable = errors.New("store unavailable")
	// ErrOrderRejected — обезличенный отказ workflow создания заказа.
	// Первопричина логируется на месте и наружу не утекает.
	ErrOrderRejected = errors.New("order rejected")
)

// IsValidation сообщает, относится ли ошибка к проверке входных данных,
// то есть была поймана до обращения к хранилищу.
func IsValidation(err error) bool {
	return errors.Is(err, ErrCustomerRequired) ||
		errors.Is(err, ErrItemsRequired) ||
		errors.Is(err, ErrItemIDInvalid) ||
		errors.Is(err, ErrQuantityInvalid)
}
