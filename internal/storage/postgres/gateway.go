package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Gateway — единственная точка выполнения SQL для репозиториев.
// Соединение берётся из пула на время одной логической операции и
// гарантированно возвращается на любом пути выхода; чтение и запись
// разделены, чтобы семантика коммита была видна в месте вызова.
type Gateway struct {
	db *sql.DB
}

// NewGateway создаёт шлюз поверх открытого Store.
func NewGateway(store *Store) *Gateway {
	return &Gateway{db: store.DB()}
}

// Read выполняет параметризованный читающий запрос и вызывает scan для
// каждой строки результата. Ошибка запроса, скана или итерации
// возвращается классифицированной, курсор закрывается всегда.
func (g *Gateway) Read(ctx context.Context, query string, scan func(*sql.Rows) error, args ...any) error {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return classify("execute read", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return classify("iterate rows", err)
	}

	return nil
}

// Write выполняет один пишущий statement в собственной транзакции.
func (g *Gateway) Write(ctx context.Context, query string, args ...any) error {
	return g.WithinTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return classify("execute write", err)
		}
		return nil
	})
}

// WriteReturning выполняет пишущий statement с RETURNING-колонкой и
// возвращает сгенерированное значение (обычно id вставленной строки).
func (g *Gateway) WriteReturning(ctx context.Context, query string, args ...any) (int64, error) {
	var generated int64
	err := g.WithinTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&generated); err != nil {
			return classify("execute write returning", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return generated, nil
}

// WriteBatch выполняет один и тот же statement для каждого набора
// параметров внутри одной транзакции с единственным коммитом в конце.
func (g *Gateway) WriteBatch(ctx context.Context, query string, paramsList [][]any) error {
	return g.WithinTx(ctx, func(tx *sql.Tx) error {
		for i, params := range paramsList {
			if _, err := tx.ExecContext(ctx, query, params...); err != nil {
				return classify(fmt.Sprintf("execute batch entry %d", i), err)
			}
		}
		return nil
	})
}

// WithinTx открывает транзакцию, передаёт её fn и коммитит. При любой
// ошибке транзакция откатывается целиком, частичное состояние не
// становится видимым. Это общий транзакционный скоуп для
// многошаговых записей вроде создания заказа.
func (g *Gateway) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin tx", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return classify("commit tx", err)
	}

	return nil
}
