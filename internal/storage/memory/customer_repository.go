package memory

import (
	"sort"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
)

type customerRepository struct {
	store *Store
}

// List возвращает покупателей в порядке возрастания id, как и SQL-выборка.
func (r *customerRepository) List() ([]domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	customers := make([]domain.Customer, 0, len(r.store.customers))
	for _, c := range r.store.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].ID < customers[j].ID
	})

	return customers, nil
}

var _ domain.CustomerRepository = (*customerRepository)(nil)
