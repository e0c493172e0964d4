package memory

import (
	"testing"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
)

func TestCustomerRepository_ListSortedByID(t *testing.T) {
	store := NewStore()
	store.AddCustomer(domain.Customer{ID: 3, Name: "Chandra Rao"})
	store.AddCustomer(domain.Customer{ID: 1, Name: "Alice Santos"})
	store.AddCustomer(domain.Customer{ID: 2, Name: "Bob Keller"})

	customers, err := store.Customers().List()
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(customers) != 3 {
		t.Fatalf("expected 3 customers, got %d", len(customers))
	}
	for i, want := range []int64{1, 2, 3} {
		if customers[i].ID != want {
			t.Fatalf("customers[%d].ID = %d, want %d", i, customers[i].ID, want)
		}
	}
}

func TestCustomerRepository_EmptyStore(t *testing.T) {
	customers, err := NewStore().Customers().List()
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("expected empty slice, got %+v", customers)
	}
}
