package postgres

import (
	"context"
	"embed"
	"fmt"
	"time"
)

//go:embed sql/schema.sql sql/seed.sql
var schemaFS embed.FS

const schemaTimeout = 10 * time.Second

// EnsureSchema создаёт таблицы сервиса, если их ещё нет. Это простой
// бутстрап для запуска и тестов, а не инструмент миграций: DDL написан
// идемпотентно и применяется одним куском.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.execEmbedded(ctx, "sql/schema.sql")
}

// Seed загружает демо-справочники покупателей и товаров. Повторный
// вызов ничего не меняет.
func (s *Store) Seed(ctx context.Context) error {
	return s.execEmbedded(ctx, "sql/seed.sql")
}

func (s *Store) execEmbedded(ctx context.Context, name string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("postgres store is not initialized")
	}

	ddl, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read embedded %s: %w", name, err)
	}

	execCtx, cancel := context.WithTimeout(ctx, schemaTimeout)
	defer cancel()
	if _, err := s.db.ExecContext(execCtx, string(ddl)); err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}

	return nil
}
