package pgrepo

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrFatalConnect = errors.New("[pgrepo] connection cannot succeed")

// isFatalConnErr ошибки, которые не исправятся повторной попыткой: некорректный DSN,
// неверные учетные данные, отсутствующая база, нехватка прав.
func isFatalConnErr(err error) bool {
	if errors.Is(err, ErrFatalConnect) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch {
	case pgerrcode.IsInvalidAuthorizationSpecification(pgErr.Code),
		pgErr.Code == pgerrcode.InvalidCatalogName,
		pgErr.Code == pgerrcode.InsufficientPrivilege:
		return true
	default:
		return false
	}
}
