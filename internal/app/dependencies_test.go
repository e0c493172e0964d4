package app

import (
	"context"
	"testing"
)

func TestNewDependencies_Memory(t *testing.T) {
	cfg := DefaultConfig()

	deps, err := NewDependencies(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("new dependencies: %v", err)
	}
	t.Cleanup(func() { _ = deps.Close() })

	if deps.Customers == nil || deps.Orders == nil {
		t.Fatal("repositories must be initialized")
	}

	// Демо-данные загружены.
	customers, err := deps.Customers.List()
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(customers) != 3 {
		t.Fatalf("expected 3 seeded customers, got %d", len(customers))
	}
}

func TestNewDependencies_MemoryWithoutSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeedDemoData = false

	deps, err := NewDependencies(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("new dependencies: %v", err)
	}
	t.Cleanup(func() { _ = deps.Close() })

	customers, err := deps.Customers.List()
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("expected empty catalog, got %d customers", len(customers))
	}
}

func TestNewDependencies_UnknownDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StorageDriver = "cassandra"

	if _, err := NewDependencies(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}
