package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
)

const opTimeout = 5 * time.Second

type customerRepository struct {
	gw *Gateway
}

// NewCustomerRepository создаёт PostgreSQL-реализацию CustomerRepository.
func NewCustomerRepository(gw *Gateway) domain.CustomerRepository {
	return &customerRepository{gw: gw}
}

// List возвращает весь справочник покупателей.
func (r *customerRepository) List() ([]domain.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	customers := make([]domain.Customer, 0)
	err := r.gw.Read(ctx, `
		SELECT id, name
		FROM customer
		ORDER BY id
	`, func(rows *sql.Rows) error {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return err
		}
		customers = append(customers, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return customers, nil
}

var _ domain.CustomerRepository = (*customerRepository)(nil)
