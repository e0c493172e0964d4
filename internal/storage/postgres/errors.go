package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
)

// Классы SQLSTATE, которые мы различаем. Остальные коды пробрасываются
// как есть — политика восстановления на стороне вызывающего.
const (
	sqlstateClassIntegrity  = "23" // нарушение ограничений целостности
	sqlstateClassConnection = "08" // проблемы соединения
)

// classify оборачивает ошибку хранилища доменным видом ошибки, не
// теряя первопричину: errors.Is работает и по доменному sentinel, и
// по исходной ошибке драйвера.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, sqlstateClassIntegrity):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrConstraint, err)
	case errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, sqlstateClassConnection),
		errors.Is(err, driver.ErrBadConn),
		isNetError(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func isNetError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}
