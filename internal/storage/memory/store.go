package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
)

// Store — общее in-memory хранилище для локальной разработки и тестов.
// Повторяет семантику SQL-хранилища: проверка внешних ключей, атомарное
// создание заказа, идентичные виды ошибок.
type Store struct {
	mu          sync.RWMutex
	customers   map[int64]domain.Customer
	items       map[int64]domain.Item
	orders      map[int64]domain.Order
	orderItems  map[int64][]domain.OrderItem
	nextOrderID int64
}

// NewStore возвращает пустое хранилище.
func NewStore() *Store {
	return &Store{
		customers:   make(map[int64]domain.Customer),
		items:       make(map[int64]domain.Item),
		orders:      make(map[int64]domain.Order),
		orderItems:  make(map[int64][]domain.OrderItem),
		nextOrderID: 1,
	}
}

// AddCustomer кладёт покупателя в справочник. Справочники наполняются
// снаружи, как и в боевой схеме.
func (s *Store) AddCustomer(c domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

// AddItem кладёт товар в каталог.
func (s *Store) AddItem(i domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[i.ID] = i
}

// SeedDemo загружает те же демо-данные, что и sql/seed.sql.
func (s *Store) SeedDemo() {
	s.AddCustomer(domain.Customer{ID: 1, Name: "Alice Santos"})
	s.AddCustomer(domain.Customer{ID: 2, Name: "Bob Keller"})
	s.AddCustomer(domain.Customer{ID: 3, Name: "Chandra Rao"})

	s.AddItem(domain.Item{ID: 10, Name: "Americano", Description: "double shot, 250ml", PriceMinor: 500})
	s.AddItem(domain.Item{ID: 11, Name: "Croissant", Description: "butter, freshly baked", PriceMinor: 250})
	s.AddItem(domain.Item{ID: 12, Name: "Espresso", Description: "single origin", PriceMinor: 300})
	s.AddItem(domain.Item{ID: 13, Name: "Bagel", Description: "sesame, with cream cheese", PriceMinor: 420})
}

// Customers возвращает представление справочника покупателей.
func (s *Store) Customers() domain.CustomerRepository {
	return &customerRepository{store: s}
}

// Orders возвращает представление хранилища заказов.
func (s *Store) Orders() domain.OrderRepository {
	return &orderRepository{store: s}
}
